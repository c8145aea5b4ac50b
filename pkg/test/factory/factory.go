package factory

import (
	fab "github.com/Goldziher/fabricator"

	"cardwall/internal/core/domain"
)

// NewUser builds a user with fabricated field values, overridable per
// test.
func NewUser(customData ...map[string]any) domain.User {
	instance := fab.New(domain.User{})

	hasCards := false

	for _, data := range customData {
		if _, exists := data["Cards"]; exists {
			hasCards = true
			break
		}
	}

	if !hasCards {
		customData = append(customData, map[string]any{
			"Cards": []domain.Card{},
		})
	}

	return instance.Build(customData...)
}

// NewCard builds a card draft with a valid status unless overridden.
func NewCard(customData ...map[string]any) domain.Card {
	instance := fab.New(domain.Card{})

	hasStatus := false

	for _, data := range customData {
		if _, exists := data["Status"]; exists {
			hasStatus = true
			break
		}
	}

	if !hasStatus {
		customData = append(customData, map[string]any{
			"Status": domain.StatusToDo,
		})
	}

	return instance.Build(customData...)
}
