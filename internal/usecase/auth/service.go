package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domuser "example.com/product-catalog/internal/domain/user"
	"example.com/product-catalog/internal/pkg/logger"
)

// PasswordComparer checks a plain password against a stored hash.
type PasswordComparer interface {
	Compare(hash string, password string) error
}

// Claims are the identity facts carried by an access token.
type Claims struct {
	UserID   int64
	RoleCode domuser.RoleCode
	Email    string
	Name     string
}

// CanWriteCatalog reports whether the token holder may save or delete
// products.
func (c *Claims) CanWriteCatalog() bool {
	return c != nil && c.RoleCode.CanWriteCatalog()
}

type TokenService interface {
	GenerateToken(u *domuser.User) (string, error)
	ParseToken(token string) (*Claims, error)
}

// Service signs catalog operators in and resolves their bearer tokens.
type Service struct {
	operators domuser.Repository
	passwords PasswordComparer
	tokens    TokenService
	log       logger.Logger
}

func NewService(operators domuser.Repository, passwords PasswordComparer, tokens TokenService, log logger.Logger) *Service {
	return &Service{
		operators: operators,
		passwords: passwords,
		tokens:    tokens,
		log:       log,
	}
}

type Credentials struct {
	Email    string
	Password string
}

// Session is the outcome of a successful sign-in.
type Session struct {
	Token    string
	Operator *domuser.User
	CanWrite bool
}

// Login answers every rejection with ErrUnauthorized so callers cannot tell
// an unknown operator from a wrong password. Store failures and unreadable
// operator rows are logged before being hidden the same way.
func (s *Service) Login(ctx context.Context, c Credentials) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(c.Email))
	if email == "" || c.Password == "" {
		return nil, domuser.ErrInvalidCredential
	}

	op, err := s.operators.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, domuser.ErrUserNotFound):
		s.log.Info("login rejected", logger.String("reason", "unknown operator"))
		return nil, domuser.ErrUnauthorized
	case err != nil:
		s.log.Error("operator lookup failed", logger.Error(err))
		return nil, domuser.ErrUnauthorized
	}

	if err := s.passwords.Compare(op.PasswordHash, c.Password); err != nil {
		s.log.Info("login rejected", logger.String("reason", "password"), logger.Int64("user_id", op.ID))
		return nil, domuser.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(op)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("operator signed in", logger.Int64("user_id", op.ID), logger.String("role", string(op.RoleCode)))

	return &Session{
		Token:    token,
		Operator: op,
		CanWrite: op.RoleCode.CanWriteCatalog(),
	}, nil
}

// Authenticate resolves a bearer token. Any parse failure is ErrUnauthorized.
func (s *Service) Authenticate(token string) (*Claims, error) {
	if token == "" {
		return nil, domuser.ErrUnauthorized
	}
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		s.log.Debug("rejected bearer token", logger.Error(err))
		return nil, fmt.Errorf("%w: %v", domuser.ErrUnauthorized, err)
	}
	return claims, nil
}
