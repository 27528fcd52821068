package stats_snapshot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShipmentsByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "shipments_by_status",
		Help: "Current number of shipments per status.",
	}, []string{"status"})

	DeliverySuccessRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "delivery_success_rate_percent",
		Help: "Share of finished shipments that were delivered.",
	})
)
