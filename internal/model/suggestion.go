package model

// PlaceholderQuestion is stored as questionText when an assistant turn
// arrives with no resolvable originating question.
const PlaceholderQuestion = "context not available"

// PlaceholderFeedbackQuestion is the bottom of the feedback linkage
// fallback chain.
const PlaceholderFeedbackQuestion = "question unavailable"

// Suggestion is the denormalized record unifying a chat question, its
// answer and optional user feedback about that answer. A row with a nil
// AnswerText is an open question awaiting an answer.
//
// The (question_id, user_id) unique index makes question ingest an atomic
// upsert: resending the same message id updates the row instead of
// inserting a second one.
// swagger:model Suggestion
type Suggestion struct {
	BaseModel
	ChatID       string  `gorm:"size:36;index;not null" json:"chatId"`
	QuestionID   string  `gorm:"size:64;uniqueIndex:idx_question_user;not null" json:"questionId"`
	QuestionText string  `gorm:"type:text;not null" json:"questionText"`
	AnswerID     *string `gorm:"size:64" json:"answerId"`
	AnswerText   *string `gorm:"type:text" json:"answerText"`
	// SuggestionText is qualitative user feedback about the exchange,
	// a separate channel from the question/answer pair itself.
	SuggestionText string `gorm:"type:text" json:"suggestionText"`
	UserID         uint   `gorm:"uniqueIndex:idx_question_user;index;not null" json:"userId"`
	// BusinessID and AdminID are derived from the user's membership and
	// the business creator; they are never taken from request input.
	BusinessID uint  `gorm:"index;not null" json:"businessId"`
	AdminID    uint  `gorm:"index;not null" json:"adminId"`
	DocumentID *uint `gorm:"index" json:"documentId"`
}

func (Suggestion) TableName() string {
	return "suggestions"
}

// Answered reports whether this suggestion's question has an answer.
func (s *Suggestion) Answered() bool {
	return s.AnswerText != nil
}
