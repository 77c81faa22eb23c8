package usecase

// Rejection is a rule violation reported back to the client. Key names the
// JSON field the message is delivered under; the API keeps the historical
// mix of "error", "erro" and "message" keys per endpoint.
type Rejection struct {
	Key     string
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

func reject(message string) *Rejection {
	return &Rejection{Key: "error", Message: message}
}

func rejectMsg(message string) *Rejection {
	return &Rejection{Key: "message", Message: message}
}

func rejectErro(message string) *Rejection {
	return &Rejection{Key: "erro", Message: message}
}
