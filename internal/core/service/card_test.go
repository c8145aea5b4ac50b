package service_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"cardwall/internal/adapter/database/memory"
	"cardwall/internal/core/domain"
	"cardwall/internal/core/port"
	"cardwall/internal/core/service"
	"cardwall/pkg/test/factory"
)

type CardServiceTestSuite struct {
	suite.Suite
	svc   port.CardService
	store port.UserStore
	user  domain.User
}

func (s *CardServiceTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.svc = service.NewCardService(s.store, zerolog.Nop())

	s.user = factory.NewUser(map[string]any{
		"ID":       "74e631c4-50bc-4109-8e68-f2bc66fe2c24",
		"Username": "anna_vasylashko",
		"Cards": []domain.Card{
			{ID: "card-1", Title: "First", Description: "First card", Status: domain.StatusToDo},
			{ID: "card-2", Title: "Second", Description: "Second card", Status: domain.StatusInProgress},
			{ID: "card-3", Title: "Third", Description: "Third card", Status: domain.StatusDone},
		},
	})

	assert.NoError(s.T(), s.store.Create(context.Background(), s.user))
}

func TestCardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CardServiceTestSuite))
}

func (s *CardServiceTestSuite) storedCards() []domain.Card {
	stored, err := s.store.Read(context.Background(), port.UserRef{ID: s.user.ID})
	assert.NoError(s.T(), err)
	return stored.Cards
}

func (s *CardServiceTestSuite) TestListReturnsCardsInOrder() {
	cards := s.svc.List(&s.user)

	assert.Len(s.T(), cards, 3)
	assert.Equal(s.T(), "card-1", cards[0].ID)
	assert.Equal(s.T(), "card-2", cards[1].ID)
	assert.Equal(s.T(), "card-3", cards[2].ID)
}

func (s *CardServiceTestSuite) TestListEmptyIsNotNil() {
	user := factory.NewUser(map[string]any{"Cards": []domain.Card(nil)})

	cards := s.svc.List(&user)

	assert.NotNil(s.T(), cards)
	assert.Empty(s.T(), cards)
}

func (s *CardServiceTestSuite) TestGet() {
	card, err := s.svc.Get(&s.user, "card-2")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Second", card.Title)
}

func (s *CardServiceTestSuite) TestGetMissing() {
	_, err := s.svc.Get(&s.user, "falsy-id")

	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *CardServiceTestSuite) TestCreateAppendsWithFreshID() {
	draft := domain.Card{Title: "New", Description: "New card", Status: domain.StatusToDo}

	card, err := s.svc.Create(context.Background(), &s.user, draft)

	assert.NoError(s.T(), err)
	assert.NotEmpty(s.T(), card.ID)
	assert.NotContains(s.T(), []string{"card-1", "card-2", "card-3"}, card.ID)

	cards := s.storedCards()

	assert.Len(s.T(), cards, 4)
	assert.Equal(s.T(), card, cards[3])
}

func (s *CardServiceTestSuite) TestCreateIgnoresClientID() {
	draft := domain.Card{ID: "client-id", Title: "New", Description: "New card", Status: domain.StatusToDo}

	card, err := s.svc.Create(context.Background(), &s.user, draft)

	assert.NoError(s.T(), err)
	assert.NotEqual(s.T(), "client-id", card.ID)
}

func (s *CardServiceTestSuite) TestCreateInvalidStatus() {
	draft := domain.Card{Title: "New", Description: "New card", Status: "falsy_status"}

	_, err := s.svc.Create(context.Background(), &s.user, draft)

	assert.ErrorIs(s.T(), err, domain.ErrInvalidCard)
	assert.Len(s.T(), s.storedCards(), 3)
}

func (s *CardServiceTestSuite) TestCreateEmptyTitle() {
	draft := domain.Card{Description: "New card", Status: domain.StatusToDo}

	_, err := s.svc.Create(context.Background(), &s.user, draft)

	assert.ErrorIs(s.T(), err, domain.ErrInvalidCard)
}

func (s *CardServiceTestSuite) TestUpdateReplacesInPlace() {
	draft := domain.Card{Title: "Renamed", Description: "Renamed card", Status: domain.StatusTesting}

	card, err := s.svc.Update(context.Background(), &s.user, "card-2", draft)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "card-2", card.ID)
	assert.Equal(s.T(), "Renamed", card.Title)

	cards := s.storedCards()

	assert.Len(s.T(), cards, 3)
	assert.Equal(s.T(), "card-1", cards[0].ID)
	assert.Equal(s.T(), card, cards[1])
	assert.Equal(s.T(), "card-3", cards[2].ID)
}

func (s *CardServiceTestSuite) TestUpdateMissingDoesNotPersist() {
	draft := domain.Card{Title: "Renamed", Description: "Renamed card", Status: domain.StatusTesting}

	_, err := s.svc.Update(context.Background(), &s.user, "falsy-id", draft)

	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
	assert.Equal(s.T(), s.user.Cards, s.storedCards())
}

// Not-found wins over draft validity: an invalid draft for a missing
// card still reports not found.
func (s *CardServiceTestSuite) TestUpdateMissingBeforeInvalid() {
	draft := domain.Card{Status: "falsy_status"}

	_, err := s.svc.Update(context.Background(), &s.user, "falsy-id", draft)

	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *CardServiceTestSuite) TestUpdateInvalidStatus() {
	draft := domain.Card{Title: "Renamed", Description: "Renamed card", Status: "falsy_status"}

	_, err := s.svc.Update(context.Background(), &s.user, "card-2", draft)

	assert.ErrorIs(s.T(), err, domain.ErrInvalidCard)
	assert.Equal(s.T(), "Second", s.storedCards()[1].Title)
}

func (s *CardServiceTestSuite) TestDeletePreservesOrder() {
	err := s.svc.Delete(context.Background(), &s.user, "card-2")

	assert.NoError(s.T(), err)

	cards := s.storedCards()

	assert.Len(s.T(), cards, 2)
	assert.Equal(s.T(), "card-1", cards[0].ID)
	assert.Equal(s.T(), "card-3", cards[1].ID)
}

func (s *CardServiceTestSuite) TestDeleteMissing() {
	err := s.svc.Delete(context.Background(), &s.user, "falsy-id")

	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
	assert.Len(s.T(), s.storedCards(), 3)
}
