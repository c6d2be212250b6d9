package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ============================================================
// Metrics
// ============================================================

var (
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bim_generations_total",
		Help: "Generation requests, labelled by outcome.",
	}, []string{"status"})

	elementsBuiltTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bim_elements_built_total",
		Help: "Elements successfully built, labelled by type.",
	}, []string{"type"})

	elementWarningsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bim_element_warnings_total",
		Help: "Elements skipped or failed during generation.",
	})
)
