package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/infrastructure/config"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/infrastructure/logger"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/ports"
)

func newAuthService(expiresIn time.Duration) (*AuthService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, config.JWTConfig{
		Secret:    "test-secret",
		ExpiresIn: expiresIn,
		Issuer:    "todolist-test",
	}, logger.NewNop())
	return svc, userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(time.Hour)
	ctx := context.Background()

	err := svc.Register(ctx, ports.RegisterRequest{
		Name:     "Jane Doe",
		Username: "janedoe",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	resp, err := svc.Login(ctx, ports.LoginRequest{Username: "janedoe", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token == "" {
		t.Fatal("Login() returned empty token")
	}
	if resp.Message != "Login successful!" {
		t.Errorf("Login() message = %q", resp.Message)
	}

	claims, err := svc.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Name != "Jane Doe" {
		t.Errorf("claims name = %q, want %q", claims.Name, "Jane Doe")
	}

	user, err := svc.userRepo.GetByUsername(ctx, "janedoe")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("claims user id = %s, want %s", claims.UserID, user.ID)
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Error("password stored in plain text")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(time.Hour)
	ctx := context.Background()

	req := ports.RegisterRequest{Name: "Jane", Username: "janedoe", Password: "s3cret-pass"}
	if err := svc.Register(ctx, req); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	req.Name = "Another Jane"
	if err := svc.Register(ctx, req); !errors.Is(err, entities.ErrDuplicateUsername) {
		t.Errorf("Register() error = %v, want ErrDuplicateUsername", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(time.Hour)
	ctx := context.Background()

	if err := svc.Register(ctx, ports.RegisterRequest{Name: "Jane", Username: "janedoe", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, unknownErr := svc.Login(ctx, ports.LoginRequest{Username: "nobody", Password: "whatever"})
	_, wrongPassErr := svc.Login(ctx, ports.LoginRequest{Username: "janedoe", Password: "wrong"})

	if !errors.Is(unknownErr, entities.ErrInvalidCredentials) {
		t.Errorf("unknown username error = %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongPassErr, entities.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPassErr)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := newAuthService(time.Hour)

	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, entities.ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	ctx := context.Background()

	issuer, userRepo := newAuthService(time.Hour)
	if err := issuer.Register(ctx, ports.RegisterRequest{Name: "Jane", Username: "janedoe", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	resp, err := issuer.Login(ctx, ports.LoginRequest{Username: "janedoe", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	verifier := NewAuthService(userRepo, config.JWTConfig{
		Secret:    "a-different-secret",
		ExpiresIn: time.Hour,
		Issuer:    "todolist-test",
	}, logger.NewNop())

	if _, err := verifier.ValidateToken(resp.Token); !errors.Is(err, entities.ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc, _ := newAuthService(-time.Minute)
	ctx := context.Background()

	if err := svc.Register(ctx, ports.RegisterRequest{Name: "Jane", Username: "janedoe", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	resp, err := svc.Login(ctx, ports.LoginRequest{Username: "janedoe", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if _, err := svc.ValidateToken(resp.Token); !errors.Is(err, entities.ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}
