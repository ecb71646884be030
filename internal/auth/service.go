package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sebuszqo/ExpenseTracker/internal/user"
)

var (
	ErrMissingToken = errors.New("authorization token is required")
	ErrUnknownOwner = errors.New("token does not belong to a known user")
)

// UserGetter is the slice of the user service the gateway needs: it only
// checks that the token's owner still exists.
type UserGetter interface {
	GetUserByID(ctx context.Context, userID string) (*user.User, error)
}

// Service is the access gateway. Every store operation runs behind Resolve:
// an opaque bearer token in, an owner id out, nothing ambient in between.
type Service interface {
	Resolve(ctx context.Context, token string) (string, error)
	IssueAccessToken(userID string) (string, error)
	Middleware() func(http.Handler) http.Handler
}

type service struct {
	jwtManager JWTManagerInterface
	users      UserGetter
	tokenTTL   time.Duration
}

func NewAuthService(jwtManager JWTManagerInterface, users UserGetter, tokenTTL time.Duration) Service {
	return &service{
		jwtManager: jwtManager,
		users:      users,
		tokenTTL:   tokenTTL,
	}
}

func (s *service) IssueAccessToken(userID string) (string, error) {
	return s.jwtManager.GenerateAccessJWT(userID, s.tokenTTL)
}

// Resolve turns a bearer token into the owner id it was issued for. Missing,
// malformed and expired tokens, and tokens of deleted users, all fail before
// any store call happens.
func (s *service) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}

	userID, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return "", err
	}

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrUnknownOwner
		}
		return "", err
	}

	return userID, nil
}
