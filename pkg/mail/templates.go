package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

// Types of email the app sends. These values end up in email_logs.
const (
	TypeBookSelected      = "book_selected"
	TypeVotingOpen        = "voting_open"
	TypeQuestionsAssigned = "questions_assigned"
	TypeMeetingReminder   = "meeting_reminder"
)

// Email is a rendered message ready to send.
type Email struct {
	Subject string
	HTML    string
}

const layout = `<!DOCTYPE html>
<html>
<body style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #1c1917;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #d97706, #7c3aed); padding: 30px; border-radius: 12px 12px 0 0; text-align: center;">
      <h1 style="color: white; margin: 0; font-size: 24px;">📖 ClubReads</h1>
    </div>
    <div style="background: #ffffff; padding: 30px; border: 1px solid #e7e5e4; border-top: none; border-radius: 0 0 12px 12px;">
      <p>Hi {{.MemberName}}!</p>
      {{block "body" .}}{{end}}
      <a href="{{.DashboardURL}}" style="display: inline-block; background: #d97706; color: white; padding: 12px 24px; text-decoration: none; border-radius: 8px; font-weight: 600; margin-top: 20px;">View in ClubReads</a>
    </div>
    <div style="text-align: center; padding: 20px; color: #78716c; font-size: 14px;">
      <p>Happy reading! 📚</p>
      <p>ClubReads - Run your book club on autopilot</p>
    </div>
  </div>
</body>
</html>`

var templates = map[string]*template.Template{
	TypeBookSelected: mustParse(TypeBookSelected, `{{define "body"}}
      <p>Great news! <strong>{{.ClubName}}</strong> has selected your next read:</p>
      <div style="background: #fffbeb; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #d97706;">
        <p style="font-size: 20px; font-weight: bold; color: #92400e; margin: 0 0 5px 0;">{{.BookTitle}}</p>
        <p style="color: #78716c; margin: 0;">by {{.BookAuthor}}</p>
      </div>
      {{if .MeetingDate}}<p>📅 Discussion scheduled for: <strong>{{.MeetingDate}}</strong></p>{{end}}
      <p>Time to start reading! Discussion questions will be assigned soon.</p>
{{end}}`),
	TypeVotingOpen: mustParse(TypeVotingOpen, `{{define "body"}}
      <p>Nominations are in and voting is now open in <strong>{{.ClubName}}</strong>!</p>
      <p>Head over to the club page and vote for the book you want to read next.</p>
{{end}}`),
	TypeQuestionsAssigned: mustParse(TypeQuestionsAssigned, `{{define "body"}}
      <p>Discussion questions for <strong>{{.BookTitle}}</strong> have been generated, and you've been assigned one to lead!</p>
      <div style="background: #faf5ff; padding: 25px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #7c3aed;">
        <p style="font-size: 18px; font-style: italic; color: #581c87; margin: 0;">"{{.Question}}"</p>
      </div>
      <p>Think about this question as you read, and be ready to share your thoughts and guide the group discussion on this topic.</p>
{{end}}`),
	TypeMeetingReminder: mustParse(TypeMeetingReminder, `{{define "body"}}
      <p>Just a friendly reminder that <strong>{{.ClubName}}</strong> is meeting soon to discuss <em>{{.BookTitle}}</em>.</p>
      <div style="background: #faf5ff; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #7c3aed;">
        <p><strong>📅 When:</strong> {{.MeetingDate}}</p>
        {{if .MeetingLocation}}<p><strong>📍 Where:</strong> {{.MeetingLocation}}</p>{{end}}
      </div>
      {{if .Question}}
      <div style="background: #fffbeb; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <p><strong>💡 Your discussion question:</strong></p>
        <p><em>"{{.Question}}"</em></p>
        <p style="font-size: 14px; color: #78716c;">Be ready to lead this part of the discussion!</p>
      </div>
      {{end}}
{{end}}`),
}

func mustParse(name, body string) *template.Template {
	return template.Must(template.Must(template.New(name).Parse(layout)).Parse(body))
}

// TemplateData carries everything any of the templates can reference.
// Unused fields are simply ignored by a given template.
type TemplateData struct {
	MemberName      string
	ClubName        string
	BookTitle       string
	BookAuthor      string
	MeetingDate     string
	MeetingLocation string
	Question        string
	DashboardURL    string
}

// Render produces the email of the given type from data.
func Render(emailType string, data TemplateData) (Email, error) {
	tmpl, ok := templates[emailType]
	if !ok {
		return Email{}, fmt.Errorf("unknown email type %q", emailType)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return Email{}, fmt.Errorf("render %s: %w", emailType, err)
	}

	return Email{
		Subject: subject(emailType, data),
		HTML:    buf.String(),
	}, nil
}

func subject(emailType string, data TemplateData) string {
	switch emailType {
	case TypeBookSelected:
		return fmt.Sprintf("📚 New book selected: %s", data.BookTitle)
	case TypeVotingOpen:
		return fmt.Sprintf("🗳️ Voting is open in %s", data.ClubName)
	case TypeQuestionsAssigned:
		return fmt.Sprintf("💡 Your discussion question for %s", data.BookTitle)
	case TypeMeetingReminder:
		return fmt.Sprintf("⏰ Reminder: %s meets %s", data.ClubName, data.MeetingDate)
	default:
		return "ClubReads"
	}
}

// ValidType reports whether emailType is one the app knows how to render.
func ValidType(emailType string) bool {
	_, ok := templates[emailType]
	return ok
}
