// Package identity wraps credential storage and verification behind a
// small provider interface. The rest of the system never touches
// password hashes; it only asks the provider to sign up or
// authenticate and receives a user id.
package identity

import (
	"context"
	"errors"

	"github.com/experience-marketplace/backend/internal/auth"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Provider interface {
	// SignUp creates a credential record and returns the new user id.
	SignUp(ctx context.Context, email, password string) (uuid.UUID, error)
	// Authenticate verifies email/password and returns the user id.
	Authenticate(ctx context.Context, email, password string) (uuid.UUID, error)
}

type PostgresProvider struct {
	pool       *pgxpool.Pool
	bcryptCost int
}

func NewPostgresProvider(pool *pgxpool.Pool, bcryptCost int) *PostgresProvider {
	return &PostgresProvider{pool: pool, bcryptCost: bcryptCost}
}

func (p *PostgresProvider) SignUp(ctx context.Context, email, password string) (uuid.UUID, error) {
	hash, err := auth.HashPassword(password, p.bcryptCost)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = p.pool.QueryRow(ctx, `
		INSERT INTO identities (email, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, email, hash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (p *PostgresProvider) Authenticate(ctx context.Context, email, password string) (uuid.UUID, error) {
	var id uuid.UUID
	var hash string
	err := p.pool.QueryRow(ctx, `
		SELECT id, password_hash FROM identities WHERE email = $1
	`, email).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrInvalidCredentials
		}
		return uuid.Nil, err
	}

	if !auth.VerifyPassword(hash, password) {
		return uuid.Nil, ErrInvalidCredentials
	}
	return id, nil
}
