package port

import (
	"context"
	"errors"

	"cardwall/internal/core/domain"
)

// ErrUserNotFound is the store-level miss. Services translate it into
// the domain kind appropriate for the operation.
var ErrUserNotFound = errors.New("user not found")

// UserRef identifies a user by id or by username. When both are set,
// lookup by id wins.
type UserRef struct {
	ID       string
	Username string
}

// UserStore is the persistence collaborator contract. Update replaces
// the whole stored document, card list included; there is no partial
// update. Uniqueness of usernames is the caller's job, not the store's.
type UserStore interface {
	Read(ctx context.Context, ref UserRef) (domain.User, error)
	Create(ctx context.Context, user domain.User) error
	Update(ctx context.Context, user domain.User) error
}
