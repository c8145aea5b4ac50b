package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cardwall/internal/core/domain"
	"cardwall/internal/core/policy"
	"cardwall/internal/core/port"
)

type AuthService struct {
	store  port.UserStore
	tokens port.TokenService
	logger zerolog.Logger
}

func NewAuthService(store port.UserStore, tokens port.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		store:  store,
		tokens: tokens,
		logger: logger.With().Str("component", "auth_service").Logger(),
	}
}

// Register validates the credentials, checks username availability and
// persists a new user with an empty card list and a freshly issued
// token. The read-then-create pair is not serialized against concurrent
// registrations; the store may still reject the insert.
func (s *AuthService) Register(ctx context.Context, username, password string) (domain.Session, error) {
	if !policy.ValidUsername(username) {
		return domain.Session{}, domain.ErrInvalidUsername
	}

	if !policy.ValidPassword(password) {
		return domain.Session{}, domain.ErrInvalidPassword
	}

	_, err := s.store.Read(ctx, port.UserRef{Username: username})

	if err == nil {
		return domain.Session{}, domain.ErrUsernameTaken
	}

	if !errors.Is(err, port.ErrUserNotFound) {
		return domain.Session{}, fmt.Errorf("reading user by username: %w", err)
	}

	id := uuid.NewString()

	token, err := s.tokens.Issue(id)

	if err != nil {
		return domain.Session{}, fmt.Errorf("issuing token: %w", err)
	}

	user := domain.User{
		ID:       id,
		Username: username,
		Password: password,
		Token:    token,
		Cards:    []domain.Card{},
	}

	if err := s.store.Create(ctx, user); err != nil {
		return domain.Session{}, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info().Str("user_id", id).Str("username", username).Msg("user registered")

	return domain.Session{JWT: token, User: user.Public()}, nil
}

// Login checks the password byte-for-byte against the stored one and
// rotates the user's token, invalidating every previously issued token
// for that user.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Session, error) {
	user, err := s.store.Read(ctx, port.UserRef{Username: username})

	if errors.Is(err, port.ErrUserNotFound) {
		return domain.Session{}, domain.ErrBadCredentials
	}

	if err != nil {
		return domain.Session{}, fmt.Errorf("reading user by username: %w", err)
	}

	if password != user.Password {
		return domain.Session{}, domain.ErrBadCredentials
	}

	token, err := s.tokens.Issue(user.ID)

	if err != nil {
		return domain.Session{}, fmt.Errorf("issuing token: %w", err)
	}

	user.Token = token

	if err := s.store.Update(ctx, user); err != nil {
		return domain.Session{}, fmt.Errorf("updating user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return domain.Session{JWT: token, User: user.Public()}, nil
}

// Authenticate resolves a presented token to the full user entity. The
// token must both verify cryptographically and equal the stored one:
// only the most recently issued token per user is accepted.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	id, err := s.tokens.Verify(token)

	if err != nil {
		s.logger.Debug().Err(err).Msg("token verification failed")
		return domain.User{}, domain.ErrFaultyToken
	}

	user, err := s.store.Read(ctx, port.UserRef{ID: id})

	if errors.Is(err, port.ErrUserNotFound) {
		return domain.User{}, domain.ErrAuthenticationFailed
	}

	if err != nil {
		return domain.User{}, fmt.Errorf("reading user by id: %w", err)
	}

	if user.Token != token {
		return domain.User{}, domain.ErrAuthenticationFailed
	}

	return user, nil
}
