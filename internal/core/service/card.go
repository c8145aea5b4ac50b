package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cardwall/internal/core/domain"
	"cardwall/internal/core/policy"
	"cardwall/internal/core/port"
)

// CardService mutates the authenticated user's embedded card list and
// persists by rewriting the whole user document. Concurrent mutations
// on the same user race on that read-modify-write; last writer wins.
type CardService struct {
	store  port.UserStore
	logger zerolog.Logger
}

func NewCardService(store port.UserStore, logger zerolog.Logger) *CardService {
	return &CardService{
		store:  store,
		logger: logger.With().Str("component", "card_service").Logger(),
	}
}

// List returns the user's cards in insertion order. Read-only.
func (s *CardService) List(user *domain.User) []domain.Card {
	if user.Cards == nil {
		return []domain.Card{}
	}
	return user.Cards
}

func (s *CardService) Get(user *domain.User, cardID string) (domain.Card, error) {
	for _, card := range user.Cards {
		if card.ID == cardID {
			return card, nil
		}
	}
	return domain.Card{}, domain.ErrNotFound
}

// Create validates the draft, assigns a fresh id, appends the card and
// persists the user. Validation completes before any mutation.
func (s *CardService) Create(ctx context.Context, user *domain.User, draft domain.Card) (domain.Card, error) {
	if !policy.ValidCard(draft) {
		return domain.Card{}, domain.ErrInvalidCard
	}

	draft.ID = uuid.NewString()
	user.Cards = append(user.Cards, draft)

	if err := s.store.Update(ctx, *user); err != nil {
		return domain.Card{}, fmt.Errorf("updating user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("card_id", draft.ID).Msg("card created")

	return draft, nil
}

// Update replaces the card with the given id in place, keeping list
// order. The existence check comes before draft validation.
func (s *CardService) Update(ctx context.Context, user *domain.User, cardID string, draft domain.Card) (domain.Card, error) {
	index := s.indexOf(user, cardID)

	if index == -1 {
		return domain.Card{}, domain.ErrNotFound
	}

	if !policy.ValidCard(draft) {
		return domain.Card{}, domain.ErrInvalidCard
	}

	draft.ID = cardID
	user.Cards[index] = draft

	if err := s.store.Update(ctx, *user); err != nil {
		return domain.Card{}, fmt.Errorf("updating user: %w", err)
	}

	return draft, nil
}

// Delete removes the card with the given id, preserving the relative
// order of the remaining cards.
func (s *CardService) Delete(ctx context.Context, user *domain.User, cardID string) error {
	index := s.indexOf(user, cardID)

	if index == -1 {
		return domain.ErrNotFound
	}

	user.Cards = append(user.Cards[:index], user.Cards[index+1:]...)

	if err := s.store.Update(ctx, *user); err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("card_id", cardID).Msg("card deleted")

	return nil
}

func (s *CardService) indexOf(user *domain.User, cardID string) int {
	for i, card := range user.Cards {
		if card.ID == cardID {
			return i
		}
	}
	return -1
}
