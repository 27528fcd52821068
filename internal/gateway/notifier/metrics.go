package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ContactMessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "contact_messages_sent_total",
		Help: "Total number of contact messages relayed to the notifier",
	},
)
