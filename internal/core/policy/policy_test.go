package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardwall/internal/core/domain"
	"cardwall/internal/core/policy"
)

func TestValidUsername(t *testing.T) {
	cases := []struct {
		name     string
		username string
		want     bool
	}{
		{"simple lowercase", "anna", true},
		{"with digits and separators", "anna_vasylashko-1", true},
		{"minimum length", "abc", true},
		{"maximum length", "abcdefgh12345678", true},
		{"too short", "ab", false},
		{"too long", "abcdefgh123456789", false},
		{"uppercase rejected", "Anna", false},
		{"spaces rejected", "anna smith", false},
		{"symbols rejected", "anna!", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.ValidUsername(tc.username))
		})
	}
}

func TestValidPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"all classes present", "048PJs52rt!", true},
		{"exactly eight chars", "aB3$efgh", true},
		{"too short", "aB3$efg", false},
		{"no uppercase", "abc3$efgh", false},
		{"no lowercase", "ABC3$EFGH", false},
		{"no digit", "abcD$efgh", false},
		{"no symbol", "abcD3efgh", false},
		{"symbol outside the set", "abcD3efgh?", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.ValidPassword(tc.password))
		})
	}
}

func TestValidCard(t *testing.T) {
	valid := domain.Card{
		Title:       "Card title",
		Description: "Card description",
		Status:      domain.StatusToDo,
	}

	assert.True(t, policy.ValidCard(valid))

	for _, status := range domain.CardStatuses {
		card := valid
		card.Status = status
		assert.True(t, policy.ValidCard(card))
	}

	cases := []struct {
		name   string
		mutate func(*domain.Card)
	}{
		{"empty title", func(c *domain.Card) { c.Title = "" }},
		{"empty description", func(c *domain.Card) { c.Description = "" }},
		{"unknown status", func(c *domain.Card) { c.Status = "falsy_status" }},
		{"empty status", func(c *domain.Card) { c.Status = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card := valid
			tc.mutate(&card)
			assert.False(t, policy.ValidCard(card))
		})
	}
}

func TestValidCardIgnoresID(t *testing.T) {
	card := domain.Card{
		ID:          "client-supplied",
		Title:       "Card title",
		Description: "Card description",
		Status:      domain.StatusDone,
	}

	assert.True(t, policy.ValidCard(card))
}
