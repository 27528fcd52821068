package account

import (
	"context"
	"errors"
	"fmt"

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

func (r *Repository) Create(ctx context.Context, accountModifyEntity entities.AccountModify) (int64, error) {
	accountModifyModel := FromDomainModify(&accountModifyEntity)
	query := `INSERT INTO accounts (username, password_hash, role, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		accountModifyModel.Username,
		accountModifyModel.PasswordHash,
		accountModifyModel.Role,
		accountModifyModel.Active,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, auth.ErrConflict
		}
		return 0, fmt.Errorf("unexpected account repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Account, error) {
	query := `SELECT id, username, password_hash, role, active, created_at
		FROM accounts
		WHERE id = $1`

	var accountModel AccountDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&accountModel.ID,
			&accountModel.Username,
			&accountModel.PasswordHash,
			&accountModel.Role,
			&accountModel.Active,
			&accountModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}

		return nil, fmt.Errorf("unexpected account repository getbyid error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*entities.Account, error) {
	query := `SELECT id, username, password_hash, role, active, created_at
		FROM accounts
		WHERE username = $1`

	var accountModel AccountDB
	err := r.querier.QueryRow(ctx, query, username).
		Scan(
			&accountModel.ID,
			&accountModel.Username,
			&accountModel.PasswordHash,
			&accountModel.Role,
			&accountModel.Active,
			&accountModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}

		return nil, fmt.Errorf("unexpected account repository getbyusername error: %w", err)
	}

	return ToDomain(&accountModel), nil
}
