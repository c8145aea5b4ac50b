package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"cardwall/internal/core/domain"
	"cardwall/internal/core/port"
)

// UserStore keeps each user as one row with the card list serialized
// into a JSON column, preserving the embedded-document contract: Read
// returns the whole document, Update replaces it.
type UserStore struct {
	db *DB
}

func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Read(ctx context.Context, ref port.UserRef) (domain.User, error) {
	query := s.db.QueryBuilder.
		Select("id", "username", "password", "token", "cards").
		From("users").
		Limit(1)

	if ref.ID != "" {
		query = query.Where(sq.Eq{"id": ref.ID})
	} else {
		query = query.Where(sq.Eq{"username": ref.Username})
	}

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var (
		user  domain.User
		cards []byte
	)

	row := s.db.QueryRowContext(ctx, stmt, args...)

	err = row.Scan(&user.ID, &user.Username, &user.Password, &user.Token, &cards)

	if errors.Is(err, sql.ErrNoRows) {
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

	stmt, args, err := s.db.QueryBuilder.
		Insert("users").
		Columns("id", "username", "password", "token", "cards").
		Values(user.ID, user.Username, user.Password, user.Token, cards).
		ToSql()

	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

func (s *UserStore) Update(ctx context.Context, user domain.User) error {
	cards, err := encodeCards(user.Cards)

	if err != nil {
		return err
	}

	stmt, args, err := s.db.QueryBuilder.
		Update("users").
		Set("username", user.Username).
		Set("password", user.Password).
		Set("token", user.Token).
		Set("cards", cards).
		Where(sq.Eq{"id": user.ID}).
		ToSql()

	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
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
