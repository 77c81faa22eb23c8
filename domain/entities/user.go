package entities

import "errors"

// DefaultUserImage is stored until the account uploads a picture.
const DefaultUserImage = "Image not registered"

// User represents a registered account. Email and Telefone are unique
// across all users.
type User struct {
	ID        string  `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Password  string  `json:"-" db:"password"`
	Email     string  `json:"email" db:"email"`
	Telefone  string  `json:"telefone" db:"telefone"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Image     string  `json:"image" db:"image"`
}

func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("The name is mandatory")
	}
	if u.Password == "" {
		return errors.New("The password is mandatory")
	}
	if u.Email == "" {
		return errors.New("The email is mandatory")
	}
	if u.Telefone == "" {
		return errors.New("The telefone is mandatory")
	}
	if u.Latitude == 0 || u.Longitude == 0 {
		return errors.New("The location is mandatory")
	}
	return nil
}
