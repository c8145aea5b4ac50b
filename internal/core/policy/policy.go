package policy

import (
	"regexp"
	"strings"
	"unicode"

	"cardwall/internal/core/domain"
)

var usernameRe = regexp.MustCompile(`^[a-z0-9_-]{3,16}$`)

// passwordSymbols is the punctuation set a password must draw from.
const passwordSymbols = "!@#$%^&*"

// ValidUsername reports whether username is 3-16 lowercase
// alphanumeric, underscore or hyphen characters.
func ValidUsername(username string) bool {
	return usernameRe.MatchString(username)
}

// ValidPassword reports whether password is at least 8 characters and
// contains a lowercase letter, an uppercase letter, a digit and a
// symbol. Go's regexp has no lookahead, so the character classes are
// checked in a single pass instead of one pattern.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var lower, upper, digit, symbol bool

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}

	return lower && upper && digit && symbol
}

// ValidCard reports whether a card draft has a non-empty title and
// description and a status from the closed set. The draft's id is not
// part of the check.
func ValidCard(card domain.Card) bool {
	return card.Title != "" && card.Description != "" && card.Status.Valid()
}
