package backend

import (
	"context"
	"time"

	"github.com/clubreads/clubreads/pkg/mail"
)

// reminderWindow is how far ahead the reminder job looks for meetings.
const reminderWindow = 24 * time.Hour

// SendMeetingReminders sends a reminder for every meeting starting
// within the next 24 hours. A club gets at most one reminder batch per
// window, so the hourly job never repeats itself.
func (b *Backend) SendMeetingReminders(ctx context.Context) (NotifyResult, error) {
	now := time.Now().UTC()
	meetings, err := b.store.ListMeetingsStartingBetween(ctx, b.db, now, now.Add(reminderWindow))
	if err != nil {
		return NotifyResult{}, err
	}

	var total NotifyResult
	for _, meeting := range meetings {
		reminded, err := b.store.HasEmailLog(ctx, b.db, meeting.ClubID, mail.TypeMeetingReminder, now.Add(-reminderWindow))
		if err != nil {
			b.logger.Error("reminder dedup check failed", "club", meeting.ClubID, "err", err)
			continue
		}
		if reminded {
			continue
		}

		club, err := b.Club(ctx, meeting.ClubID)
		if err != nil {
			b.logger.Error("reminder club lookup failed", "club", meeting.ClubID, "err", err)
			continue
		}
		members, err := b.store.ListMembers(ctx, b.db, meeting.ClubID)
		if err != nil {
			b.logger.Error("reminder member lookup failed", "club", meeting.ClubID, "err", err)
			continue
		}

		data := mail.TemplateData{
			ClubName:     club.Name,
			DashboardURL: b.cfg.HTTP.PublicURL + "/dashboard",
		}
		questions := b.meetingData(ctx, meeting, &data)

		res := b.deliver(ctx, meeting.ClubID, mail.TypeMeetingReminder, data, questions, members)
		total.Sent += res.Sent
		total.Failed += res.Failed
		b.logger.Info("meeting reminder sent", "club", meeting.ClubID, "meeting", meeting.ID, "sent", res.Sent, "failed", res.Failed)
	}

	return total, nil
}
