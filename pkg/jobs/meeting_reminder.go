package jobs

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/clubreads/clubreads/pkg/backend"
	"github.com/clubreads/clubreads/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func init() {
	Register("meeting-reminder", meetingReminder{})
}

var reminderEmails = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "clubreads",
	Subsystem: "jobs",
	Name:      "reminder_emails_total",
	Help:      "Meeting reminder emails delivered, by outcome.",
}, []string{"status"})

// meetingReminder emails every club that has a meeting starting within
// the next day.
type meetingReminder struct{}

var _ Runner = meetingReminder{}

// Spec implements Runner.
func (meetingReminder) Spec(ctx context.Context) string {
	return config.FromContext(ctx).Jobs.MeetingReminder
}

// Func implements Runner.
func (meetingReminder) Func(ctx context.Context) func() {
	return func() {
		logger := log.FromContext(ctx).WithPrefix("jobs.meeting-reminder")
		be := backend.FromContext(ctx)

		res, err := be.SendMeetingReminders(ctx)
		if err != nil {
			logger.Error("reminder run failed", "err", err)
			return
		}

		reminderEmails.WithLabelValues("sent").Add(float64(res.Sent))
		reminderEmails.WithLabelValues("failed").Add(float64(res.Failed))
		if res.Sent+res.Failed > 0 {
			logger.Info("reminders delivered", "sent", res.Sent, "failed", res.Failed)
		}
	}
}
