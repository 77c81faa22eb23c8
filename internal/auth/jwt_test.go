package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTRoundTrip(t *testing.T) {
	tokens := NewJWT([]byte("test-secret"))

	token, err := tokens.Generate("user-123", "Maria")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if claims.Subject != "user-123" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "user-123")
	}
	if claims.Name != "Maria" {
		t.Errorf("Name = %q, want %q", claims.Name, "Maria")
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := NewJWT([]byte("secret-a")).Generate("user-123", "Maria")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := NewJWT([]byte("secret-b")).Validate(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestJWTExpiredToken(t *testing.T) {
	secret := []byte("test-secret")

	claims := &Claims{
		Name: "Maria",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := NewJWT(secret).Validate(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}

func TestJWTGarbageToken(t *testing.T) {
	if _, err := NewJWT([]byte("test-secret")).Validate("not.a.token"); err == nil {
		t.Error("expected validation to fail for a malformed token")
	}
}
