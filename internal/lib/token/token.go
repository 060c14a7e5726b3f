// Package token issues and verifies the bearer tokens carried by private
// actions, and hashes account passwords.
package token

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/deppfellow/bluewave/internal/config"
	"github.com/deppfellow/bluewave/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Result is the outcome of verifying one token. It is built fresh for every
// request and never stored.
type Result struct {
	Authenticated bool
	UserID        int64
	Role          model.Role
	// WisataID is the partner's attraction, 0 when none.
	WisataID int64
	// Message explains a failed verification.
	Message string
}

// Verifier checks an opaque bearer token.
type Verifier interface {
	Verify(ctx context.Context, raw string) Result
}

// Claims are the private claims of a bluewave token.
type Claims struct {
	Role     model.Role `json:"role"`
	WisataID int64      `json:"wisata_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 tokens.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(cfg config.AuthConfig) *JWTManager {
	return &JWTManager{
		secret: []byte(cfg.SecretKey),
		issuer: cfg.Issuer,
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}
}

// Issue signs a token for acc.
func (m *JWTManager) Issue(acc model.Account) (string, error) {
	now := m.now()
	claims := Claims{
		Role:     acc.Role,
		WisataID: acc.WisataID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(acc.ID, 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify implements Verifier.
func (m *JWTManager) Verify(_ context.Context, raw string) Result {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Result{Message: "Token sudah kedaluwarsa"}
		}
		return Result{Message: "Token tidak valid"}
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return Result{Message: "Token tidak valid"}
	}

	return Result{
		Authenticated: true,
		UserID:        userID,
		Role:          claims.Role,
		WisataID:      claims.WisataID,
	}
}
