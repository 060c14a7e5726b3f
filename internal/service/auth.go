package service

import (
	"context"
	"errors"
	"strings"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/lib/token"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/repository"
	"github.com/deppfellow/bluewave/internal/sqlerr"

	"github.com/rs/zerolog"
)

// CredentialStore looks up an account by its login name.
type CredentialStore interface {
	Credentials(ctx context.Context, login string) (model.Credentials, error)
}

type UserRegistrar interface {
	CredentialStore
	Create(ctx context.Context, in model.RegisterInput, passwordHash string) (int64, error)
}

type AdminSeeder interface {
	CredentialStore
	Upsert(ctx context.Context, acc model.Account, passwordHash string) (int64, error)
}

// TokenIssuer signs bearer tokens.
type TokenIssuer interface {
	Issue(acc model.Account) (string, error)
}

// WelcomeNotifier schedules the welcome email of a new visitor.
type WelcomeNotifier interface {
	EnqueueWelcome(ctx context.Context, to, name string) error
}

const (
	msgLoginSuccess      = "Login berhasil"
	msgEmailCredentials  = "Email atau password salah"
	msgLoginCredentials  = "Username atau password salah"
	msgEmailTaken        = "Email sudah terdaftar"
	msgRegisterSucceeded = "Registrasi berhasil! Silakan login."
)

type AuthService struct {
	users   UserRegistrar
	admins  AdminSeeder
	mitra   CredentialStore
	tokens  TokenIssuer
	welcome WelcomeNotifier
	logger  *zerolog.Logger
}

func NewAuthService(users UserRegistrar, admins AdminSeeder, mitra CredentialStore, tokens TokenIssuer, welcome WelcomeNotifier, logger *zerolog.Logger) *AuthService {
	return &AuthService{
		users:   users,
		admins:  admins,
		mitra:   mitra,
		tokens:  tokens,
		welcome: welcome,
		logger:  logger,
	}
}

// UserLogin authenticates a visitor by email.
func (s *AuthService) UserLogin(ctx context.Context, email, password string) (model.LoginResponse, error) {
	return s.login(ctx, s.users, strings.TrimSpace(email), password, msgEmailCredentials)
}

// AdminLogin authenticates an admin or superadmin by username.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (model.LoginResponse, error) {
	return s.login(ctx, s.admins, strings.TrimSpace(username), password, msgLoginCredentials)
}

// MitraLogin authenticates a partner whose service is active.
func (s *AuthService) MitraLogin(ctx context.Context, username, password string) (model.LoginResponse, error) {
	return s.login(ctx, s.mitra, strings.TrimSpace(username), password, msgLoginCredentials)
}

func (s *AuthService) login(ctx context.Context, store CredentialStore, login, password, failMsg string) (model.LoginResponse, error) {
	creds, err := store.Credentials(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.LoginResponse{}, errs.NewUnauthorizedError(failMsg, true)
		}
		return model.LoginResponse{}, errs.NewStoreError("Gagal memproses login", err)
	}

	if !token.CheckPassword(password, creds.PasswordHash) {
		return model.LoginResponse{}, errs.NewUnauthorizedError(failMsg, true)
	}

	raw, err := s.tokens.Issue(creds.Account)
	if err != nil {
		return model.LoginResponse{}, errs.NewStoreError("Gagal membuat token", err)
	}

	acc := creds.Account
	return model.LoginResponse{
		Success: true,
		Message: msgLoginSuccess,
		Token:   raw,
		User:    &acc,
	}, nil
}

// Register creates a visitor account and schedules the welcome email. A
// failed enqueue is logged and does not fail the registration.
func (s *AuthService) Register(ctx context.Context, in model.RegisterInput) (string, error) {
	in.Email = strings.TrimSpace(in.Email)

	if _, err := s.users.Credentials(ctx, in.Email); err == nil {
		return "", errs.NewConflictError(msgEmailTaken, true)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", errs.NewStoreError("Gagal mendaftarkan akun", err)
	}

	hash, err := token.HashPassword(in.Password)
	if err != nil {
		return "", errs.NewStoreError("Gagal mendaftarkan akun", err)
	}

	if _, err := s.users.Create(ctx, in, hash); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if sqlerr.IsUniqueViolation(err) {
			return "", errs.NewConflictError(msgEmailTaken, true)
		}
		return "", storeError("Gagal mendaftarkan akun", err)
	}

	if s.welcome != nil {
		if err := s.welcome.EnqueueWelcome(ctx, in.Email, in.Nama); err != nil {
			s.logger.Warn().Err(err).Str("email", in.Email).Msg("failed to enqueue welcome email")
		}
	}

	return msgRegisterSucceeded, nil
}

// SeedAdmin creates or resets an admin account.
func (s *AuthService) SeedAdmin(ctx context.Context, acc model.Account, password string) (int64, error) {
	if !acc.Role.IsAdmin() {
		return 0, errs.NewBadRequestError("Role admin tidak valid", true, nil, nil)
	}
	if len(password) < 6 {
		return 0, errs.NewBadRequestError("Password minimal 6 karakter", true, nil, nil)
	}

	hash, err := token.HashPassword(password)
	if err != nil {
		return 0, err
	}

	return s.admins.Upsert(ctx, acc, hash)
}
