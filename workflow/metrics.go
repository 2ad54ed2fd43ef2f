package workflow

import (
	"Gin_postgres_redis_library/models"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "library_borrow_requests_total",
		Help: "Borrow requests by outcome",
	}, []string{"outcome"})

	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "library_borrow_transitions_total",
		Help: "Borrow status transitions by transition and outcome",
	}, []string{"transition", "outcome"})

	notificationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "library_notification_failures_total",
		Help: "Notifications dropped after a committed transition",
	}, []string{"type"})
)

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, models.ErrItemNotFound):
		return "item_not_found"
	case errors.Is(err, models.ErrRecordNotFound):
		return "record_not_found"
	case errors.Is(err, models.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, models.ErrOutOfStock):
		return "out_of_stock"
	case errors.Is(err, models.ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}
