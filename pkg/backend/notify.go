package backend

import (
	"context"
	"fmt"

	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/mail"
	"github.com/clubreads/clubreads/pkg/proto"
	"github.com/google/uuid"
)

// NotifyParams select what a club notification is about.
type NotifyParams struct {
	Type      string
	BookID    string
	MeetingID string
}

// NotifyResult reports how a notification batch went.
type NotifyResult struct {
	Sent   int
	Failed int
}

const meetingDateDisplayLayout = "Monday, January 2 at 3:04 PM"

// NotifyClub renders and sends a notification to every member of a club,
// one recipient at a time. A failed recipient is logged and skipped; the
// rest of the batch still goes out.
func (b *Backend) NotifyClub(ctx context.Context, user models.Profile, clubID string, params NotifyParams) (NotifyResult, error) {
	if _, err := b.Member(ctx, clubID, user.ID); err != nil {
		return NotifyResult{}, err
	}
	if !mail.ValidType(params.Type) {
		return NotifyResult{}, fmt.Errorf("invalid email type %q", params.Type)
	}

	club, err := b.Club(ctx, clubID)
	if err != nil {
		return NotifyResult{}, err
	}
	members, err := b.store.ListMembers(ctx, b.db, clubID)
	if err != nil {
		return NotifyResult{}, err
	}

	data := mail.TemplateData{
		ClubName:     club.Name,
		DashboardURL: b.cfg.HTTP.PublicURL + "/dashboard",
	}

	var questions []models.DiscussionQuestion
	switch params.Type {
	case mail.TypeBookSelected, mail.TypeQuestionsAssigned:
		book, err := b.Book(ctx, params.BookID)
		if err != nil {
			return NotifyResult{}, err
		}
		data.BookTitle = book.Title
		data.BookAuthor = book.Author
		if params.Type == mail.TypeQuestionsAssigned {
			questions, err = b.store.ListQuestionsByBook(ctx, b.db, book.ID)
			if err != nil {
				return NotifyResult{}, err
			}
		}
	case mail.TypeMeetingReminder:
		meeting, err := b.Meeting(ctx, params.MeetingID)
		if err != nil {
			return NotifyResult{}, err
		}
		if meeting.ClubID != clubID {
			return NotifyResult{}, proto.ErrMeetingNotFound
		}
		questions = b.meetingData(ctx, meeting, &data)
	}

	res := b.deliver(ctx, clubID, params.Type, data, questions, members)
	b.logger.Info("club notified", "club", clubID, "type", params.Type, "sent", res.Sent, "failed", res.Failed)
	return res, nil
}

// meetingData fills the meeting fields of the template data and returns
// the discussion questions for the meeting's book, if there is one.
func (b *Backend) meetingData(ctx context.Context, meeting models.Meeting, data *mail.TemplateData) []models.DiscussionQuestion {
	data.MeetingDate = meeting.ScheduledAt.In(b.cfg.Location()).Format(meetingDateDisplayLayout)
	data.MeetingLocation = meeting.Location.String
	if !meeting.BookID.Valid {
		return nil
	}
	book, err := b.Book(ctx, meeting.BookID.String)
	if err != nil {
		return nil
	}
	data.BookTitle = book.Title
	data.BookAuthor = book.Author
	questions, _ := b.store.ListQuestionsByBook(ctx, b.db, book.ID)
	return questions
}

// deliver sends one email per member and logs every attempt.
func (b *Backend) deliver(ctx context.Context, clubID, emailType string, data mail.TemplateData, questions []models.DiscussionQuestion, members []models.ClubMemberProfile) NotifyResult {
	var res NotifyResult
	for _, m := range members {
		md := data
		md.MemberName = m.Profile.DisplayName()
		md.Question = assignedQuestion(questions, m.UserID)

		err := b.sendToMember(ctx, m, emailType, md)
		logEntry := models.EmailLog{
			ID:        uuid.NewString(),
			UserID:    m.UserID,
			ClubID:    clubID,
			EmailType: emailType,
			Status:    models.EmailStatusSent,
		}
		if err != nil {
			b.logger.Error("email send failed", "club", clubID, "user", m.UserID, "type", emailType, "err", err)
			logEntry.Status = models.EmailStatusFailed
			logEntry.Error = nullString(err.Error())
			res.Failed++
		} else {
			res.Sent++
		}
		emailCounter.WithLabelValues(emailType, logEntry.Status).Inc()
		if err := b.store.LogEmail(ctx, b.db, logEntry); err != nil {
			b.logger.Error("email log failed", "club", clubID, "user", m.UserID, "err", err)
		}
	}
	return res
}

func (b *Backend) sendToMember(ctx context.Context, m models.ClubMemberProfile, emailType string, data mail.TemplateData) error {
	if m.Profile.Email == "" {
		return fmt.Errorf("member has no email")
	}
	e, err := mail.Render(emailType, data)
	if err != nil {
		return err
	}
	return b.mail.Send(ctx, m.Profile.Email, e)
}

// assignedQuestion finds the question assigned to a member, if any.
func assignedQuestion(questions []models.DiscussionQuestion, userID string) string {
	for _, q := range questions {
		if q.AssignedTo.Valid && q.AssignedTo.String == userID {
			return q.Question
		}
	}
	return ""
}
