package port

import (
	"context"

	"cardwall/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (domain.Session, error)
	Login(ctx context.Context, username, password string) (domain.Session, error)
	Authenticate(ctx context.Context, token string) (domain.User, error)
}

// CardService operates on an already-authenticated user entity; it
// never performs its own auth.
type CardService interface {
	List(user *domain.User) []domain.Card
	Get(user *domain.User, cardID string) (domain.Card, error)
	Create(ctx context.Context, user *domain.User, draft domain.Card) (domain.Card, error)
	Update(ctx context.Context, user *domain.User, cardID string, draft domain.Card) (domain.Card, error)
	Delete(ctx context.Context, user *domain.User, cardID string) error
}
