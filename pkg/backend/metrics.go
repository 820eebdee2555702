package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	voteToggleCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clubreads",
		Subsystem: "books",
		Name:      "vote_toggles_total",
		Help:      "The total number of vote toggles",
	}, []string{"action"})

	winnerCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "clubreads",
		Subsystem: "books",
		Name:      "winners_selected_total",
		Help:      "The total number of winner selections",
	})

	questionCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "clubreads",
		Subsystem: "ai",
		Name:      "questions_generated_total",
		Help:      "The total number of discussion questions generated",
	})

	emailCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clubreads",
		Subsystem: "mail",
		Name:      "emails_total",
		Help:      "The total number of email send attempts",
	}, []string{"type", "status"})
)
