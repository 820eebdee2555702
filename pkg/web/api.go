package web

import (
	"database/sql"
	"time"

	"github.com/clubreads/clubreads/pkg/backend"
	"github.com/clubreads/clubreads/pkg/db/models"
)

// The wire types below decouple the JSON surface from the database
// models. Null columns come out as empty strings or absent fields.

type profileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	IsPremium bool      `json:"is_premium"`
	CreatedAt time.Time `json:"created_at"`
}

func toProfile(p models.Profile) profileResponse {
	return profileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName.String,
		AvatarURL: p.AvatarURL.String,
		IsPremium: p.IsPremium,
		CreatedAt: p.CreatedAt,
	}
}

type clubResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	OwnerID        string    `json:"owner_id"`
	InviteCode     string    `json:"invite_code"`
	InviteURL      string    `json:"invite_url"`
	MeetingCadence string    `json:"meeting_cadence"`
	CreatedAt      time.Time `json:"created_at"`
}

func toClub(b *backend.Backend, c models.Club) clubResponse {
	return clubResponse{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description.String,
		OwnerID:        c.OwnerID,
		InviteCode:     c.InviteCode,
		InviteURL:      b.InviteURL(c),
		MeetingCadence: c.MeetingCadence,
		CreatedAt:      c.CreatedAt,
	}
}

type memberResponse struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	IsPremium bool      `json:"is_premium"`
}

func toMember(m models.ClubMemberProfile) memberResponse {
	return memberResponse{
		UserID:    m.UserID,
		Role:      m.Role,
		JoinedAt:  m.JoinedAt,
		Email:     m.Profile.Email,
		FullName:  m.Profile.FullName.String,
		AvatarURL: m.Profile.AvatarURL.String,
		IsPremium: m.Profile.IsPremium,
	}
}

type bookResponse struct {
	ID           string     `json:"id"`
	ClubID       string     `json:"club_id"`
	Title        string     `json:"title"`
	Author       string     `json:"author"`
	PageCount    int64      `json:"page_count,omitempty"`
	CoverURL     string     `json:"cover_url,omitempty"`
	GoodreadsURL string     `json:"goodreads_url,omitempty"`
	ThemeID      string     `json:"theme_id,omitempty"`
	Status       string     `json:"status"`
	NominatedBy  string     `json:"nominated_by,omitempty"`
	SelectedAt   *time.Time `json:"selected_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	VoteCount    int        `json:"vote_count"`
}

func toBook(b models.Book) bookResponse {
	return bookResponse{
		ID:           b.ID,
		ClubID:       b.ClubID,
		Title:        b.Title,
		Author:       b.Author,
		PageCount:    b.PageCount.Int64,
		CoverURL:     b.CoverURL.String,
		GoodreadsURL: b.GoodreadsURL.String,
		ThemeID:      b.ThemeID.String,
		Status:       string(b.Status),
		NominatedBy:  b.NominatedBy.String,
		SelectedAt:   nullTime(b.SelectedAt),
		CompletedAt:  nullTime(b.CompletedAt),
		CreatedAt:    b.CreatedAt,
	}
}

func toTally(t models.BookTally) bookResponse {
	r := toBook(t.Book)
	r.VoteCount = t.VoteCount
	return r
}

type meetingResponse struct {
	ID          string    `json:"id"`
	ClubID      string    `json:"club_id"`
	BookID      string    `json:"book_id,omitempty"`
	Title       string    `json:"title"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Location    string    `json:"location,omitempty"`
	Link        string    `json:"link,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toMeeting(m models.Meeting) meetingResponse {
	return meetingResponse{
		ID:          m.ID,
		ClubID:      m.ClubID,
		BookID:      m.BookID.String,
		Title:       m.Title,
		ScheduledAt: m.ScheduledAt,
		Location:    backend.MeetingPlace(m),
		Link:        backend.MeetingLink(m),
		Notes:       m.Notes.String,
		CreatedAt:   m.CreatedAt,
	}
}

type questionResponse struct {
	ID         string `json:"id"`
	BookID     string `json:"book_id"`
	Question   string `json:"question"`
	AssignedTo string `json:"assigned_to,omitempty"`
	SortOrder  int    `json:"sort_order"`
}

func toQuestion(q models.DiscussionQuestion) questionResponse {
	return questionResponse{
		ID:         q.ID,
		BookID:     q.BookID,
		Question:   q.Question,
		AssignedTo: q.AssignedTo.String,
		SortOrder:  q.SortOrder,
	}
}

type themeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

func toTheme(t models.Theme) themeResponse {
	return themeResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description.String,
		Icon:        t.Icon.String,
		SortOrder:   t.SortOrder,
	}
}

type clubDetailResponse struct {
	Club        clubResponse       `json:"club"`
	Members     []memberResponse   `json:"members"`
	CurrentBook *bookResponse      `json:"current_book,omitempty"`
	Nominations []bookResponse     `json:"nominations"`
	Meetings    []meetingResponse  `json:"meetings"`
	Questions   []questionResponse `json:"questions"`
	History     []bookResponse     `json:"history"`
}

func toClubDetail(b *backend.Backend, d backend.ClubDetail) clubDetailResponse {
	resp := clubDetailResponse{
		Club:        toClub(b, d.Club),
		Members:     make([]memberResponse, 0, len(d.Members)),
		Nominations: make([]bookResponse, 0, len(d.Nominations)),
		Meetings:    make([]meetingResponse, 0, len(d.Meetings)),
		Questions:   make([]questionResponse, 0, len(d.Questions)),
		History:     make([]bookResponse, 0, len(d.History)),
	}
	for _, m := range d.Members {
		resp.Members = append(resp.Members, toMember(m))
	}
	if d.CurrentBook != nil {
		book := toBook(*d.CurrentBook)
		resp.CurrentBook = &book
	}
	for _, n := range d.Nominations {
		resp.Nominations = append(resp.Nominations, toTally(n))
	}
	for _, m := range d.Meetings {
		resp.Meetings = append(resp.Meetings, toMeeting(m))
	}
	for _, q := range d.Questions {
		resp.Questions = append(resp.Questions, toQuestion(q))
	}
	for _, h := range d.History {
		resp.History = append(resp.History, toBook(h))
	}
	return resp
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
