package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cardwall/internal/core/domain"
	"cardwall/internal/core/port"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id       TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    token    TEXT NOT NULL DEFAULT '',
    cards    JSONB NOT NULL DEFAULT '[]'
)`

// UserStore is the pgx-backed variant of the sqlite store: one row per
// user, cards in a JSONB column, whole-document reads and updates.
type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

// EnsureSchema creates the users table if it is missing.
func (s *UserStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}
	return nil
}

func (s *UserStore) Read(ctx context.Context, ref port.UserRef) (domain.User, error) {
	query := `SELECT id, username, password, token, cards FROM users WHERE id = $1`
	key := ref.ID

	if ref.ID == "" {
		query = `SELECT id, username, password, token, cards FROM users WHERE username = $1`
		key = ref.Username
	}

	var (
		user  domain.User
		cards []byte
	)

	row := s.pool.QueryRow(ctx, query, key)

	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Token, &cards)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, port.ErrUserNotFound
	}

	if err != nil {
		return domain.User{}, fmt.Errorf("scanning user row: %w", err)
	}

	if err := json.Unmarshal(cards, &user.Cards); err != nil {
		return domain.User{}, fmt.Errorf("decoding cards column: %w", err)
	}

	return user, nil
}

func (s *UserStore) Create(ctx context.Context, user domain.User) error {
	cards, err := encodeCards(user.Cards)

	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO users (id, username, password, token, cards) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.Password, user.Token, cards)

	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

func (s *UserStore) Update(ctx context.Context, user domain.User) error {
	cards, err := encodeCards(user.Cards)

	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`UPDATE users SET username = $2, password = $3, token = $4, cards = $5 WHERE id = $1`,
		user.ID, user.Username, user.Password, user.Token, cards)

	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

func encodeCards(cards []domain.Card) ([]byte, error) {
	if cards == nil {
		cards = []domain.Card{}
	}

	encoded, err := json.Marshal(cards)

	if err != nil {
		return nil, fmt.Errorf("encoding cards column: %w", err)
	}

	return encoded, nil
}
