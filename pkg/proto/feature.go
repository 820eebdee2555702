package proto

// Feature is a premium-gated capability.
type Feature string

const (
	// FeatureMultiClub allows owning more than one club.
	FeatureMultiClub Feature = "multi-club"
	// FeatureAIQuestions allows generating discussion questions.
	FeatureAIQuestions Feature = "ai-questions"
	// FeatureMeetingScheduling allows scheduling meetings.
	FeatureMeetingScheduling Feature = "meeting-scheduling"
)

// String implements fmt.Stringer.
func (f Feature) String() string {
	return string(f)
}
