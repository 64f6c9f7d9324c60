package services

import (
	"strings"
	"testing"
)

func TestRenderVerifyEmail(t *testing.T) {
	body, err := renderVerifyEmail(verifyEmailData{
		FirstName: "Ana",
		LastName:  "Lopez",
		Link:      "https://front.example/abc123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(body, "Hello Ana Lopez") {
		t.Error("expected greeting with first and last name")
	}
	if !strings.Contains(body, `href="https://front.example/abc123"`) {
		t.Error("expected the verification link as href")
	}
	if !strings.Contains(body, "Thanks for sign up in user app") {
		t.Error("expected the signup copy")
	}
}

func TestRenderResetPassword(t *testing.T) {
	body, err := renderResetPassword(resetPasswordData{
		Email: "ana@example.com",
		Link:  "https://front.example/xyz789",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(body, "ana@example.com") {
		t.Error("expected the account email in the copy")
	}
	if !strings.Contains(body, `href="https://front.example/xyz789"`) {
		t.Error("expected the recovery link as href")
	}
	if !strings.Contains(body, "If you didn't make the password reset request") {
		t.Error("expected the ignore-this-message copy")
	}
}
