package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"expresso/internal/entities"
	"expresso/internal/repository"
	"expresso/internal/service/auth"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, sessionEntity entities.Session) error {
	query := `INSERT INTO sessions (token, account_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(
		ctx,
		query,
		sessionEntity.Token,
		sessionEntity.AccountID,
		sessionEntity.CreatedAt,
		sessionEntity.ExpiresAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return auth.ErrConflict
		}
		return fmt.Errorf("unexpected session repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByToken(ctx context.Context, token string) (*entities.Session, error) {
	query := `SELECT s.token, s.account_id, a.username, a.role, s.created_at, s.expires_at
		FROM sessions s
		JOIN accounts a ON a.id = s.account_id
		WHERE s.token = $1`

	var sessionModel SessionDB
	err := r.querier.QueryRow(ctx, query, token).
		Scan(
			&sessionModel.Token,
			&sessionModel.AccountID,
			&sessionModel.Username,
			&sessionModel.Role,
			&sessionModel.CreatedAt,
			&sessionModel.ExpiresAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrSessionNotFound
		}

		return nil, fmt.Errorf("unexpected session repository getbytoken error: %w", err)
	}

	return ToDomain(&sessionModel), nil
}

func (r *Repository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`

	tag, err := r.querier.Exec(ctx, query, token)
	if err != nil {
		return fmt.Errorf("unexpected session repository delete error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return auth.ErrSessionNotFound
	}
	return nil
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < $1`

	tag, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected session repository deleteexpired error: %w", err)
	}

	return tag.RowsAffected(), nil
}
