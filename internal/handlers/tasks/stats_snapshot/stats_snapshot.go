package stats_snapshot

import (
	"context"
	"time"

	"expresso/internal/entities"
	"expresso/pkg/logger"
)

type Service interface {
	ComputeStats(ctx context.Context) (*entities.ShipmentStats, error)
}

type StatsSnapshot struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStatsSnapshot(log logger.Logger, service Service, interval time.Duration) *StatsSnapshot {
	return &StatsSnapshot{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StatsSnapshot) TTL() time.Duration {
	return s.interval
}

func (s *StatsSnapshot) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	stats, err := s.service.ComputeStats(ctxWithTimeout)
	if err != nil {
		return err
	}

	ShipmentsByStatus.WithLabelValues(string(entities.StatusPending)).Set(float64(stats.Pending))
	ShipmentsByStatus.WithLabelValues(string(entities.StatusInTransit)).Set(float64(stats.InTransit))
	ShipmentsByStatus.WithLabelValues(string(entities.StatusDelivered)).Set(float64(stats.Delivered))
	ShipmentsByStatus.WithLabelValues(string(entities.StatusReturned)).Set(float64(stats.Returned))
	DeliverySuccessRate.Set(stats.SuccessRate)

	return nil
}

func (s *StatsSnapshot) Info() string {
	return "stats snapshot"
}
