package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"expresso/internal/entities"
	"expresso/internal/repository"
	"expresso/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, tracking_code,
	sender_name, sender_address, sender_city,
	recipient_name, recipient_address, recipient_city,
	product_type, weight, declared_value, notes,
	status, created_at, updated_at, account_id`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (int64, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)
	query := `INSERT INTO shipments (tracking_code,
			sender_name, sender_address, sender_city,
			recipient_name, recipient_address, recipient_city,
			product_type, weight, declared_value, notes,
			status, account_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyModel.TrackingCode,
		shipmentModifyModel.SenderName,
		shipmentModifyModel.SenderAddress,
		shipmentModifyModel.SenderCity,
		shipmentModifyModel.RecipientName,
		shipmentModifyModel.RecipientAddress,
		shipmentModifyModel.RecipientCity,
		shipmentModifyModel.ProductType,
		shipmentModifyModel.Weight,
		shipmentModifyModel.DeclaredValue,
		shipmentModifyModel.Notes,
		shipmentModifyModel.Status,
		shipmentModifyModel.AccountID,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, shipment.ErrCodeConflict
		}
		return 0, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
	FROM shipments
	ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		var shipmentModel ShipmentDB
		err := scanShipment(rows, &shipmentModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
		}
		shipmentModels = append(shipmentModels, shipmentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}

func (r *Repository) GetByCode(ctx context.Context, trackingCode string) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
	FROM shipments
	WHERE tracking_code = $1`

	var shipmentModel ShipmentDB
	err := scanShipment(r.querier.QueryRow(ctx, query, trackingCode), &shipmentModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository getbycode error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, trackingCode string, status entities.ShipmentStatusType) (*entities.Shipment, error) {
	builder := qb.
		Update("shipments").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"tracking_code": trackingCode}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}

	var shipmentModel ShipmentDB
	err = scanShipment(r.querier.QueryRow(ctx, query, args...), &shipmentModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.ShipmentStatusType]int64, error) {
	query := `SELECT status, COUNT(*)
	FROM shipments
	GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository countbystatus error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.ShipmentStatusType]int64, 4)
	for rows.Next() {
		var status string
		var count int64
		err := rows.Scan(&status, &count)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository countbystatus error: %w", err)
		}
		counts[entities.ShipmentStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository countbystatus error: %w", err)
	}

	return counts, nil
}

func scanShipment(row pgx.Row, shipmentModel *ShipmentDB) error {
	return row.Scan(
		&shipmentModel.ID,
		&shipmentModel.TrackingCode,
		&shipmentModel.SenderName,
		&shipmentModel.SenderAddress,
		&shipmentModel.SenderCity,
		&shipmentModel.RecipientName,
		&shipmentModel.RecipientAddress,
		&shipmentModel.RecipientCity,
		&shipmentModel.ProductType,
		&shipmentModel.Weight,
		&shipmentModel.DeclaredValue,
		&shipmentModel.Notes,
		&shipmentModel.Status,
		&shipmentModel.CreatedAt,
		&shipmentModel.UpdatedAt,
		&shipmentModel.AccountID,
	)
}
