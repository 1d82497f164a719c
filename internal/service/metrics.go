package service

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/pageza/repas/backend/internal/errors"
)

var generationRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "repas_generation_requests_total",
		Help: "Text-generation requests by operation and outcome",
	},
	[]string{"operation", "outcome"},
)

// observeGeneration records one generation attempt. An empty code means success.
func observeGeneration(op string, code apperrors.ErrorCode) {
	outcome := "success"
	if code != "" {
		outcome = strings.ToLower(string(code))
	}
	generationRequests.WithLabelValues(op, outcome).Inc()
}
