package store

// Store is an interface for managing clubs, books, and their surrounding
// records.
type Store interface {
	ProfileStore
	ClubStore
	MemberStore
	BookStore
	VoteStore
	MeetingStore
	QuestionStore
	ThemeStore
	EmailLogStore
}
