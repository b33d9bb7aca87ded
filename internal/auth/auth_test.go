package auth

import (
	"testing"
)

const testSecret = "test-secret-key"

func TestJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "Jean Dupont", "jean@example.com", testSecret)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateJWT(token, testSecret)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("user id: got %q", claims.UserID)
	}
	if claims.FullName != "Jean Dupont" || claims.Email != "jean@example.com" {
		t.Fatalf("claims: got %+v", claims)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(claims.IssuedAt.Time) {
		t.Fatalf("expiry not after issuance: %+v", claims.RegisteredClaims)
	}
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-1", "Jean Dupont", "jean@example.com", testSecret)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateJWT(token, "other-secret"); err == nil {
		t.Fatal("expected validation to fail with the wrong secret")
	}
}

func TestValidateJWT_Garbage(t *testing.T) {
	if _, err := ValidateJWT("not.a.token", testSecret); err == nil {
		t.Fatal("expected validation to fail for a malformed token")
	}
}

func TestGenerateJWT_RequiresSecretAndUser(t *testing.T) {
	if _, err := GenerateJWT("user-1", "Jean", "jean@example.com", ""); err == nil {
		t.Fatal("expected an error for empty secret")
	}
	if _, err := GenerateJWT("", "Jean", "jean@example.com", testSecret); err == nil {
		t.Fatal("expected an error for empty user id")
	}
}
