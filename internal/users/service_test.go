package users

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(NewMemoryRepo(), 4)

	user, err := svc.Register(context.Background(), "Dev@Example.com", "Dev User", "correct horse battery")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "dev@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "" || user.PasswordHash == "correct horse battery" {
		t.Fatal("password must be stored hashed")
	}

	logged, err := svc.Login(context.Background(), "dev@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("login returned user %q, want %q", logged.ID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo(), 4)

	if _, err := svc.Register(context.Background(), "dev@example.com", "Dev", "password123"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(context.Background(), "DEV@example.com", "Other", "password456")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestLoginWrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	svc := NewService(NewMemoryRepo(), 4)
	if _, err := svc.Register(context.Background(), "dev@example.com", "Dev", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "dev@example.com", "wrong")
	_, unknown := svc.Login(context.Background(), "nobody@example.com", "password123")

	if !errors.Is(wrongPass, ErrInvalidCredentials) || !errors.Is(unknown, ErrInvalidCredentials) {
		t.Fatalf("both errors must be ErrInvalidCredentials: %v / %v", wrongPass, unknown)
	}
}

func TestUpsertFromOAuthKeepsIdentityStable(t *testing.T) {
	svc := NewService(NewMemoryRepo(), 4)

	first, err := svc.UpsertFromOAuth(context.Background(), "dev@example.com", "Dev", "https://pic/1")
	if err != nil {
		t.Fatalf("UpsertFromOAuth: %v", err)
	}
	second, err := svc.UpsertFromOAuth(context.Background(), "dev@example.com", "Dev Renamed", "https://pic/2")
	if err != nil {
		t.Fatalf("UpsertFromOAuth: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("user ID changed across OAuth logins: %q then %q", first.ID, second.ID)
	}
	if second.Name != "Dev Renamed" || second.PictureURL != "https://pic/2" {
		t.Fatalf("profile not updated: %+v", second)
	}
}

func TestUpsertFromOAuthPreservesPassword(t *testing.T) {
	svc := NewService(NewMemoryRepo(), 4)

	if _, err := svc.Register(context.Background(), "dev@example.com", "Dev", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.UpsertFromOAuth(context.Background(), "dev@example.com", "Dev", ""); err != nil {
		t.Fatalf("UpsertFromOAuth: %v", err)
	}
	if _, err := svc.Login(context.Background(), "dev@example.com", "password123"); err != nil {
		t.Fatalf("password login must survive OAuth upsert: %v", err)
	}
}
