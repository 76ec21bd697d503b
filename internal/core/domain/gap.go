package domain

import "time"

// GapStatus tracks a knowledge gap's triage lifecycle. Resolved and ignored
// are terminal; there is no way back to pending.
type GapStatus string

// Available gap statuses.
const (
	// GapPending awaits triage.
	GapPending GapStatus = "pending"

	// GapResolved was answered; resolution metadata records how.
	GapResolved GapStatus = "resolved"

	// GapIgnored was dismissed without an answer.
	GapIgnored GapStatus = "ignored"
)

// IsValid returns true if the status is recognised.
func (s GapStatus) IsValid() bool {
	switch s {
	case GapPending, GapResolved, GapIgnored:
		return true
	default:
		return false
	}
}

// IsTerminal returns true when no further status transition is allowed.
func (s GapStatus) IsTerminal() bool {
	return s == GapResolved || s == GapIgnored
}

// String returns the string representation.
func (s GapStatus) String() string {
	return string(s)
}

// PriorityLevel ranks how urgently a gap should be triaged.
type PriorityLevel string

// Available priority levels.
const (
	PriorityHigh   PriorityLevel = "high"
	PriorityMedium PriorityLevel = "medium"
	PriorityLow    PriorityLevel = "low"
)

// IsValid returns true if the priority is recognised.
func (p PriorityLevel) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p PriorityLevel) String() string {
	return string(p)
}

// RecommendationLevel states how confident the machine classification is.
type RecommendationLevel string

// Available recommendation levels.
const (
	// RecommendationAI means the suggested classification is trusted.
	RecommendationAI RecommendationLevel = "ai_recommended"

	// RecommendationNeedConfirm means a human should verify the suggestion.
	RecommendationNeedConfirm RecommendationLevel = "need_confirm"

	// RecommendationNeedManual means no usable suggestion exists.
	RecommendationNeedManual RecommendationLevel = "need_manual"
)

// IsValid returns true if the level is recognised.
func (r RecommendationLevel) IsValid() bool {
	switch r {
	case RecommendationAI, RecommendationNeedConfirm, RecommendationNeedManual:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r RecommendationLevel) String() string {
	return string(r)
}

// TranscriptTurn is one message of the conversation that produced a gap.
type TranscriptTurn struct {
	// Role is the speaker, "user" or "assistant".
	Role string `json:"role"`

	// Content is the message text.
	Content string `json:"content"`
}

// KnowledgeGap records an unanswered guest question, classifiable into the
// same taxonomy as documents. Suggested* is the machine proposal and is
// never mutated after creation; Confirmed* is the human override and takes
// precedence level by level for display.
type KnowledgeGap struct {
	// ID is the unique identifier for the gap.
	ID string `json:"id"`

	// Question is the unanswered question as asked.
	Question string `json:"question"`

	// QuestionTheme is an optional short topic label.
	QuestionTheme string `json:"questionTheme,omitempty"`

	// AIResponse is the assistant's (failed) answer, when captured.
	AIResponse string `json:"aiResponse,omitempty"`

	// FrequencyDescription describes how often the question comes up.
	FrequencyDescription string `json:"frequencyDescription,omitempty"`

	// Status is the triage lifecycle state.
	Status GapStatus `json:"status"`

	// Priority ranks triage urgency.
	Priority PriorityLevel `json:"priorityLevel"`

	// LastAskedAt is when the question was last asked.
	LastAskedAt time.Time `json:"lastAskedAt"`

	// SuggestedCategory/Section/Subsection is the machine classification.
	SuggestedCategory   Category `json:"suggestedCategory,omitempty"`
	SuggestedSection    string   `json:"suggestedSection,omitempty"`
	SuggestedSubsection string   `json:"suggestedSubsection,omitempty"`

	// ConfirmedCategory/Section/Subsection is the human override.
	ConfirmedCategory   Category `json:"confirmedCategory,omitempty"`
	ConfirmedSection    string   `json:"confirmedSection,omitempty"`
	ConfirmedSubsection string   `json:"confirmedSubsection,omitempty"`

	// Recommendation states the confidence of the suggestion.
	Recommendation RecommendationLevel `json:"recommendationLevel"`

	// Transcript is the optional conversation snippet behind the gap.
	Transcript []TranscriptTurn `json:"conversationSnippet,omitempty"`

	// ResolvedAt is when the gap was resolved.
	ResolvedAt time.Time `json:"resolvedAt,omitempty"`

	// ResolvedBy names who resolved the gap.
	ResolvedBy string `json:"resolvedBy,omitempty"`

	// Resolution describes how the gap was answered.
	Resolution string `json:"resolution,omitempty"`
}

// DisplayCategory returns the classification category to render: confirmed
// when present, else suggested. Each level resolves independently.
func (g KnowledgeGap) DisplayCategory() Category {
	if g.ConfirmedCategory != "" {
		return g.ConfirmedCategory
	}
	return g.SuggestedCategory
}

// DisplaySection returns the section to render, preferring confirmed.
func (g KnowledgeGap) DisplaySection() string {
	if g.ConfirmedSection != "" {
		return g.ConfirmedSection
	}
	return g.SuggestedSection
}

// DisplaySubsection returns the subsection to render, preferring confirmed.
func (g KnowledgeGap) DisplaySubsection() string {
	if g.ConfirmedSubsection != "" {
		return g.ConfirmedSubsection
	}
	return g.SuggestedSubsection
}
