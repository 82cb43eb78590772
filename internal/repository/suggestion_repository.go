package repository

import (
	"altacoach_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SuggestionRepository struct {
	DB *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{DB: db}
}

func (r *SuggestionRepository) Create(suggestion *model.Suggestion) error {
	return r.DB.Create(suggestion).Error
}

func (r *SuggestionRepository) Update(suggestion *model.Suggestion) error {
	return r.DB.Save(suggestion).Error
}

// UpsertQuestion inserts a question row or, when the (question_id,
// user_id) key already exists, updates its text in place. The write is a
// single ON DUPLICATE KEY statement so a concurrent double-submission of
// the same message id cannot create two rows. MySQL reports 1 affected
// row for an insert and 2 for an update, which is how created is derived.
func (r *SuggestionRepository) UpsertQuestion(suggestion *model.Suggestion) (bool, error) {
	tx := r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "question_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"question_text": suggestion.QuestionText,
			"updated_at":    gorm.Expr("CURRENT_TIMESTAMP(3)"),
		}),
	}).Create(suggestion)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *SuggestionRepository) FindByID(id uint) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	err := r.DB.First(&suggestion, id).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *SuggestionRepository) FindByQuestionID(userID uint, questionID string) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	err := r.DB.Where("user_id = ? AND question_id = ?", userID, questionID).First(&suggestion).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// FindByMessageID matches either side of the pair: the id may belong to
// the question turn or the answer turn.
func (r *SuggestionRepository) FindByMessageID(userID uint, messageID string) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	err := r.DB.Where("user_id = ? AND (question_id = ? OR answer_id = ?)", userID, messageID, messageID).
		First(&suggestion).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *SuggestionRepository) FindByAnswerID(userID uint, answerID string) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	err := r.DB.Where("user_id = ? AND answer_id = ?", userID, answerID).First(&suggestion).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// LatestOpen returns the most recent unanswered question in a chat —
// the question an incoming assistant turn is taken to answer.
func (r *SuggestionRepository) LatestOpen(userID uint, chatID string) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	err := r.DB.Where("user_id = ? AND chat_id = ? AND answer_text IS NULL", userID, chatID).
		Order("created_at desc").First(&suggestion).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *SuggestionRepository) LatestOpenForUser(userID uint) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	err := r.DB.Where("user_id = ? AND answer_text IS NULL", userID).
		Order("created_at desc").First(&suggestion).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *SuggestionRepository) LatestForUser(userID uint) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").First(&suggestion).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *SuggestionRepository) ListForUser(userID uint, chatID string) ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	query := r.DB.Where("user_id = ?", userID)
	if chatID != "" {
		query = query.Where("chat_id = ?", chatID)
	}
	err := query.Order("created_at asc").Find(&suggestions).Error
	return suggestions, err
}

func (r *SuggestionRepository) CountOpen() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Suggestion{}).Where("answer_text IS NULL").Count(&total).Error
	return total, err
}

func (r *SuggestionRepository) CountAnswered() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Suggestion{}).Where("answer_text IS NOT NULL").Count(&total).Error
	return total, err
}

func (r *SuggestionRepository) CountFeedback() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Suggestion{}).Where("suggestion_text <> ''").Count(&total).Error
	return total, err
}
