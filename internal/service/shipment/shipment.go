package shipment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"expresso/internal/entities"
)

// codeAttempts bounds the regeneration loop when a freshly generated
// tracking code collides with an existing one.
const codeAttempts = 5

type Shipment struct {
	repository Repository
	codes      CodeFactory
	txManager  TxManager
}

func New(repository Repository, codes CodeFactory, txManager TxManager) *Shipment {
	return &Shipment{
		repository: repository,
		codes:      codes,
		txManager:  txManager,
	}
}

// CreateShipment validates the intake fields, issues a unique tracking code
// and persists the record with status pendente. The returned code is shown
// to the operator.
func (s *Shipment) CreateShipment(ctx context.Context, shipmentModify entities.ShipmentModify, accountID int64) (string, error) {
	if isBlank(shipmentModify.SenderName) ||
		isBlank(shipmentModify.SenderAddress) ||
		isBlank(shipmentModify.SenderCity) ||
		isBlank(shipmentModify.RecipientName) ||
		isBlank(shipmentModify.RecipientAddress) ||
		isBlank(shipmentModify.RecipientCity) ||
		isBlank(shipmentModify.ProductType) {
		return "", ErrMissingRequiredFields
	}

	if shipmentModify.Weight != nil && *shipmentModify.Weight < 0 {
		return "", ErrInvalidWeight
	}
	if shipmentModify.DeclaredValue != nil && *shipmentModify.DeclaredValue < 0 {
		return "", ErrInvalidDeclaredValue
	}

	status := entities.DefaultShipmentStatus
	shipmentModify.Status = &status
	shipmentModify.AccountID = &accountID

	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := s.codes.NewCode()
		if err != nil {
			return "", fmt.Errorf("generate tracking code: %w", err)
		}
		shipmentModify.TrackingCode = &code

		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			_, err := s.repository.Create(ctx, shipmentModify)
			return err
		})
		if err != nil {
			if errors.Is(err, ErrCodeConflict) {
				continue
			}
			return "", fmt.Errorf("create shipment: %w", err)
		}

		return code, nil
	}

	return "", ErrCodeExhausted
}

func (s *Shipment) GetShipments(ctx context.Context) ([]entities.Shipment, error) {
	shipments, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get shipments: %w", err)
	}

	return shipments, nil
}

// TrackByCode is the public lookup. A miss surfaces as ErrShipmentNotFound,
// which callers translate into an explicit negative result rather than a
// failure, since probing unknown codes is expected end-user behavior.
func (s *Shipment) TrackByCode(ctx context.Context, trackingCode string) (*entities.ShipmentSummary, error) {
	if !isValidTrackingCode(trackingCode) {
		return nil, ErrShipmentNotFound
	}

	shipmentEntity, err := s.repository.GetByCode(ctx, trackingCode)
	if err != nil {
		if errors.Is(err, ErrShipmentNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("track by code: %w", err)
	}

	return &entities.ShipmentSummary{
		TrackingCode:  shipmentEntity.TrackingCode,
		Status:        shipmentEntity.Status,
		RecipientName: shipmentEntity.RecipientName,
		RecipientCity: shipmentEntity.RecipientCity,
		CreatedAt:     shipmentEntity.CreatedAt,
	}, nil
}

// UpdateStatus applies one step of the shipment lifecycle:
// pendente -> em_transito -> entregue | devolvida.
func (s *Shipment) UpdateStatus(ctx context.Context, trackingCode string, next entities.ShipmentStatusType) (*entities.Shipment, error) {
	if !isValidTrackingCode(trackingCode) {
		return nil, ErrInvalidTrackingCode
	}
	if !isValidStatus(next.String()) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByCode(ctx, trackingCode)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if !current.Status.CanTransitionTo(next) {
			return ErrInvalidTransition
		}

		updated, err = s.repository.UpdateStatus(ctx, trackingCode, next)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ComputeStats aggregates fresh counts on every call; nothing is cached.
// SuccessRate is entregue/total*100 rounded to one decimal, 0 for an empty
// store.
func (s *Shipment) ComputeStats(ctx context.Context) (*entities.ShipmentStats, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count shipments: %w", err)
	}

	stats := entities.ShipmentStats{
		Pending:   counts[entities.StatusPending],
		InTransit: counts[entities.StatusInTransit],
		Delivered: counts[entities.StatusDelivered],
		Returned:  counts[entities.StatusReturned],
	}
	stats.Total = stats.Pending + stats.InTransit + stats.Delivered + stats.Returned

	if stats.Total > 0 {
		rate := float64(stats.Delivered) / float64(stats.Total) * 100
		stats.SuccessRate = math.Round(rate*10) / 10
	}

	return &stats, nil
}
