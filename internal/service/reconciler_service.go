package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"altacoach_backend/internal/model"
	"altacoach_backend/internal/util"
	"altacoach_backend/pkg/logger"
	"altacoach_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Ingest outcomes.
const (
	IngestCreated                 = "created"
	IngestUpdated                 = "updated"
	IngestAnswered                = "answered"
	IngestAnsweredWithoutQuestion = "answered-without-question"
)

// Store interfaces satisfied by the concrete repositories. Declared on
// the consumer side so the reconciler can be exercised against in-memory
// fakes.

type UserStore interface {
	FindByID(id uint) (*model.User, error)
}

type BusinessStore interface {
	FindByID(id uint) (*model.Business, error)
	FirstMembershipForUser(userID uint) (*model.BusinessUser, error)
}

type SuggestionStore interface {
	Create(suggestion *model.Suggestion) error
	Update(suggestion *model.Suggestion) error
	UpsertQuestion(suggestion *model.Suggestion) (bool, error)
	FindByID(id uint) (*model.Suggestion, error)
	FindByQuestionID(userID uint, questionID string) (*model.Suggestion, error)
	FindByMessageID(userID uint, messageID string) (*model.Suggestion, error)
	FindByAnswerID(userID uint, answerID string) (*model.Suggestion, error)
	LatestOpen(userID uint, chatID string) (*model.Suggestion, error)
	LatestOpenForUser(userID uint) (*model.Suggestion, error)
	LatestForUser(userID uint) (*model.Suggestion, error)
	ListForUser(userID uint, chatID string) ([]model.Suggestion, error)
}

type DocumentStore interface {
	Create(doc *model.Document) error
	AttachToBusiness(businessID, documentID uint) error
	ListByBusiness(businessID uint, docType model.DocumentType) ([]model.Document, error)
	CountByBusiness(businessID uint) (int64, error)
}

// ReconcilerService maintains the suggestions table as a coherent log of
// question/answer pairs per user, per business. It accepts one chat turn
// at a time and matches best-effort: there is no replay or queue ordering
// guarantee. An assistant turn ingested before its user turn falls into
// the standalone-answer path and is never retroactively repaired.
type ReconcilerService struct {
	Users       UserStore
	Businesses  BusinessStore
	Suggestions SuggestionStore
	Documents   DocumentStore
	Redis       *redis.Client
}

func NewReconcilerService(
	users UserStore,
	businesses BusinessStore,
	suggestions SuggestionStore,
	documents DocumentStore,
	rdb *redis.Client,
) *ReconcilerService {
	return &ReconcilerService{
		Users:       users,
		Businesses:  businesses,
		Suggestions: suggestions,
		Documents:   documents,
		Redis:       rdb,
	}
}

// Turn is one chat message, tagged user or assistant.
type Turn struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
	UserID    uint   `json:"userId"`
	ChatID    string `json:"chatId"`
}

type IngestResult struct {
	Result       string `json:"result"`
	SuggestionID uint   `json:"suggestionId"`
	ChatID       string `json:"chatId"`
}

// tenantContext is the derived routing target for a suggestion row.
type tenantContext struct {
	businessID uint
	adminID    uint
}

func (s *ReconcilerService) resolveTenant(userID uint) (*tenantContext, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &util.NotFoundError{Resource: "user", ID: userID}
		}
		return nil, &util.PersistenceError{Op: "lookup user", Err: err}
	}

	membership, err := s.Businesses.FirstMembershipForUser(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &util.BusinessAssociationError{UserID: user.ID}
		}
		return nil, &util.PersistenceError{Op: "lookup membership", Err: err}
	}

	business, err := s.Businesses.FindByID(membership.BusinessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &util.NotFoundError{Resource: "business", ID: membership.BusinessID}
		}
		return nil, &util.PersistenceError{Op: "lookup business", Err: err}
	}

	if business.CreatedBy == 0 {
		return nil, &util.ConfigurationError{Msg: fmt.Sprintf("business %d has no owning admin", business.ID)}
	}

	return &tenantContext{businessID: business.ID, adminID: business.CreatedBy}, nil
}

// Ingest accepts a single chat turn and creates or updates the matching
// suggestion row.
func (s *ReconcilerService) Ingest(turn *Turn) (*IngestResult, error) {
	if err := validateTurn(turn); err != nil {
		return nil, err
	}

	tenant, err := s.resolveTenant(turn.UserID)
	if err != nil {
		return nil, err
	}

	var result *IngestResult
	switch turn.Role {
	case RoleUser:
		result, err = s.ingestQuestion(turn, tenant)
	case RoleAssistant:
		result, err = s.ingestAnswer(turn, tenant)
	default:
		return nil, &util.ValidationError{Msg: fmt.Sprintf("unknown role %q", turn.Role)}
	}
	if err != nil {
		return nil, err
	}

	monitoring.IngestResults.WithLabelValues(result.Result).Inc()
	return result, nil
}

func validateTurn(turn *Turn) error {
	switch {
	case turn.ID == "":
		return &util.ValidationError{Msg: "id is required"}
	case turn.Role == "":
		return &util.ValidationError{Msg: "role is required"}
	case turn.Role != RoleUser && turn.Role != RoleAssistant:
		return &util.ValidationError{Msg: fmt.Sprintf("role must be %q or %q", RoleUser, RoleAssistant)}
	case turn.Text == "":
		return &util.ValidationError{Msg: "text is required"}
	case turn.Timestamp == 0:
		return &util.ValidationError{Msg: "timestamp is required"}
	case turn.UserID == 0:
		return &util.ValidationError{Msg: "userId is required"}
	}
	return nil
}

func (s *ReconcilerService) ingestQuestion(turn *Turn, tenant *tenantContext) (*IngestResult, error) {
	chatID := turn.ChatID
	if chatID == "" {
		chatID = model.GenerateUUID()
	}

	suggestion := &model.Suggestion{
		ChatID:       chatID,
		QuestionID:   turn.ID,
		QuestionText: turn.Text,
		UserID:       turn.UserID,
		BusinessID:   tenant.businessID,
		AdminID:      tenant.adminID,
	}

	created, err := s.Suggestions.UpsertQuestion(suggestion)
	if err != nil {
		return nil, &util.PersistenceError{Op: "upsert question", Err: err}
	}

	result := IngestCreated
	if !created {
		result = IngestUpdated
		// The upsert leaves the existing row's id and chat untouched;
		// reload so the response reflects the stored row.
		if existing, err := s.Suggestions.FindByQuestionID(turn.UserID, turn.ID); err == nil {
			suggestion = existing
		}
	}

	return &IngestResult{Result: result, SuggestionID: suggestion.ID, ChatID: suggestion.ChatID}, nil
}

func (s *ReconcilerService) ingestAnswer(turn *Turn, tenant *tenantContext) (*IngestResult, error) {
	var open *model.Suggestion
	var err error
	if turn.ChatID != "" {
		open, err = s.Suggestions.LatestOpen(turn.UserID, turn.ChatID)
	} else {
		open, err = s.Suggestions.LatestOpenForUser(turn.UserID)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &util.PersistenceError{Op: "lookup open question", Err: err}
	}

	if open != nil {
		open.AnswerID = &turn.ID
		open.AnswerText = &turn.Text
		if err := s.Suggestions.Update(open); err != nil {
			return nil, &util.PersistenceError{Op: "attach answer", Err: err}
		}
		return &IngestResult{Result: IngestAnswered, SuggestionID: open.ID, ChatID: open.ChatID}, nil
	}

	// No open question: the answer may have outrun its question, or every
	// question is already answered. Preserve the turn as a standalone row
	// instead of dropping it.
	chatID := turn.ChatID
	if chatID == "" {
		chatID = model.GenerateUUID()
	}
	standalone := &model.Suggestion{
		ChatID:       chatID,
		QuestionID:   model.GenerateUUID(),
		QuestionText: model.PlaceholderQuestion,
		AnswerID:     &turn.ID,
		AnswerText:   &turn.Text,
		UserID:       turn.UserID,
		BusinessID:   tenant.businessID,
		AdminID:      tenant.adminID,
	}
	if err := s.Suggestions.Create(standalone); err != nil {
		return nil, &util.PersistenceError{Op: "create standalone answer", Err: err}
	}

	return &IngestResult{Result: IngestAnsweredWithoutQuestion, SuggestionID: standalone.ID, ChatID: standalone.ChatID}, nil
}

// FeedbackInput carries a user's qualitative feedback about a prior
// exchange, optionally with supporting documents.
type FeedbackInput struct {
	UserID            uint               `json:"userId"`
	SuggestionText    string             `json:"suggestionText"`
	RelatedMessageID  string             `json:"relatedMessageId"`
	MessageText       string             `json:"messageText"`
	MessageRole       string             `json:"messageRole"`
	QuestionText      string             `json:"questionText"`
	BusinessDocuments []FeedbackDocument `json:"businessDocuments"`
}

type FeedbackDocument struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	DocumentType string `json:"documentType"`
	FileName     string `json:"fileName"`
	ContentType  string `json:"contentType"`
}

type FeedbackResult struct {
	SuggestionID   uint     `json:"suggestionId"`
	Linked         bool     `json:"linked"`
	MatchedBy      string   `json:"matchedBy,omitempty"`
	DocumentsSaved []uint   `json:"documentsSaved"`
	DocumentErrors []string `json:"documentErrors,omitempty"`
}

// matchStrategy is one tier of the feedback linkage fallback chain. The
// tiers run in order and the first hit wins; the chain itself never
// raises, it degrades to a placeholder.
type matchStrategy struct {
	name string
	fn   func() (*model.Suggestion, error)
}

// SubmitFeedback records feedback about a prior exchange. Documents are
// persisted before the suggestion row; an individual document failure is
// logged and skipped, and the partial result is returned even when the
// suggestion write itself fails.
func (s *ReconcilerService) SubmitFeedback(input *FeedbackInput) (*FeedbackResult, error) {
	if input.UserID == 0 {
		return nil, &util.ValidationError{Msg: "userId is required"}
	}
	if input.SuggestionText == "" {
		return nil, &util.ValidationError{Msg: "suggestionText is required"}
	}

	tenant, err := s.resolveTenant(input.UserID)
	if err != nil {
		return nil, err
	}

	result := &FeedbackResult{DocumentsSaved: []uint{}}
	s.persistDocuments(input, tenant, result)

	var firstDoc *uint
	if len(result.DocumentsSaved) > 0 {
		firstDoc = &result.DocumentsSaved[0]
	}

	// Direct linkage: the related message id identifies an existing pair.
	if input.RelatedMessageID != "" {
		existing, err := s.Suggestions.FindByMessageID(input.UserID, input.RelatedMessageID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return result, &util.PersistenceError{Op: "lookup related message", Err: err}
		}
		if existing != nil {
			existing.SuggestionText = input.SuggestionText
			if existing.DocumentID == nil {
				existing.DocumentID = firstDoc
			}
			if err := s.Suggestions.Update(existing); err != nil {
				return result, &util.PersistenceError{Op: "update feedback", Err: err}
			}
			result.SuggestionID = existing.ID
			result.Linked = true
			result.MatchedBy = "related-message"
			return result, nil
		}
	}

	matched, matchedBy := s.reconstructPair(input)

	suggestion := &model.Suggestion{
		QuestionID:     model.GenerateUUID(),
		SuggestionText: input.SuggestionText,
		UserID:         input.UserID,
		BusinessID:     tenant.businessID,
		AdminID:        tenant.adminID,
		DocumentID:     firstDoc,
	}
	if matched != nil {
		suggestion.ChatID = matched.ChatID
		suggestion.QuestionText = matched.QuestionText
		suggestion.AnswerID = matched.AnswerID
		suggestion.AnswerText = matched.AnswerText
	} else {
		suggestion.ChatID = model.GenerateUUID()
		suggestion.QuestionText = input.QuestionText
		if suggestion.QuestionText == "" && input.MessageRole == RoleUser {
			suggestion.QuestionText = input.MessageText
		}
		if suggestion.QuestionText == "" {
			suggestion.QuestionText = model.PlaceholderFeedbackQuestion
		}
		if input.MessageRole == RoleAssistant && input.MessageText != "" {
			answerText := input.MessageText
			suggestion.AnswerText = &answerText
			if input.RelatedMessageID != "" {
				answerID := input.RelatedMessageID
				suggestion.AnswerID = &answerID
			}
		}
	}

	if err := s.Suggestions.Create(suggestion); err != nil {
		return result, &util.PersistenceError{Op: "create feedback suggestion", Err: err}
	}

	result.SuggestionID = suggestion.ID
	result.MatchedBy = matchedBy
	return result, nil
}

// reconstructPair walks the ordered fallback tiers looking for the
// question/answer pair this feedback most plausibly refers to. The true
// linkage is not always recoverable at feedback time; a nil return means
// the caller should fall back to the literal provided text.
func (s *ReconcilerService) reconstructPair(input *FeedbackInput) (*model.Suggestion, string) {
	strategies := []matchStrategy{
		{
			name: "linked-answer",
			fn: func() (*model.Suggestion, error) {
				if input.RelatedMessageID == "" || input.MessageRole != RoleAssistant {
					return nil, nil
				}
				return s.Suggestions.FindByAnswerID(input.UserID, input.RelatedMessageID)
			},
		},
		{
			name: "latest-open-question",
			fn: func() (*model.Suggestion, error) {
				return s.Suggestions.LatestOpenForUser(input.UserID)
			},
		},
		{
			name: "latest-question",
			fn: func() (*model.Suggestion, error) {
				return s.Suggestions.LatestForUser(input.UserID)
			},
		},
	}

	for _, strategy := range strategies {
		match, err := strategy.fn()
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Log.Warn("feedback match tier failed",
					zap.String("tier", strategy.name), zap.Error(err))
			}
			continue
		}
		if match != nil {
			return match, strategy.name
		}
	}

	return nil, "provided-text"
}

func (s *ReconcilerService) persistDocuments(input *FeedbackInput, tenant *tenantContext, result *FeedbackResult) {
	for i, fd := range input.BusinessDocuments {
		if fd.Title == "" {
			msg := fmt.Sprintf("document %d: title is required", i)
			result.DocumentErrors = append(result.DocumentErrors, msg)
			logger.Log.Warn("skipping feedback document", zap.String("reason", msg))
			continue
		}

		docType := model.DocumentType(fd.DocumentType)
		if docType == "" {
			docType = model.DocOther
		}
		doc := &model.Document{
			Title:        fd.Title,
			Description:  fd.Description,
			DocumentType: docType,
			FileName:     fd.FileName,
			ContentType:  fd.ContentType,
			UploadedBy:   input.UserID,
		}
		if err := s.Documents.Create(doc); err != nil {
			result.DocumentErrors = append(result.DocumentErrors, fmt.Sprintf("document %d: %v", i, err))
			logger.Log.Warn("failed to persist feedback document", zap.Error(err))
			continue
		}
		if err := s.Documents.AttachToBusiness(tenant.businessID, doc.ID); err != nil {
			result.DocumentErrors = append(result.DocumentErrors, fmt.Sprintf("document %d: %v", i, err))
			logger.Log.Warn("failed to attach feedback document", zap.Error(err))
			continue
		}
		result.DocumentsSaved = append(result.DocumentsSaved, doc.ID)
	}
}

type ContextOptions struct {
	SuggestionID     uint
	ChatID           string
	IncludeDocuments bool
	DocumentType     model.DocumentType
	IncludeMessages  bool
}

type ChatMessage struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ContextResult degrades per field: a failing sub-fetch populates its
// *Error key instead of failing the whole response.
type ContextResult struct {
	BusinessAdminName      string           `json:"businessAdminName,omitempty"`
	BusinessAdminNameError string           `json:"businessAdminNameError,omitempty"`
	DocumentCount          int64            `json:"documentCount"`
	Documents              []model.Document `json:"documents,omitempty"`
	DocumentsError         string           `json:"documentsError,omitempty"`
	Messages               []ChatMessage    `json:"messages,omitempty"`
	MessagesError          string           `json:"messagesError,omitempty"`
}

const adminNameCacheTTL = 10 * time.Minute

func adminNameCacheKey(businessID uint) string {
	return fmt.Sprintf("altacoach:admin-name:%d", businessID)
}

// QueryContext returns the admin name for the user's business, the
// attached documents and, optionally, the reconstructed message list.
func (s *ReconcilerService) QueryContext(userID uint, opts *ContextOptions) (*ContextResult, error) {
	tenant, err := s.resolveTenant(userID)
	if err != nil {
		return nil, err
	}

	result := &ContextResult{}
	result.BusinessAdminName, result.BusinessAdminNameError = s.adminName(tenant)

	if count, err := s.Documents.CountByBusiness(tenant.businessID); err != nil {
		result.DocumentsError = err.Error()
	} else {
		result.DocumentCount = count
	}

	if opts.IncludeDocuments && result.DocumentsError == "" {
		docs, err := s.Documents.ListByBusiness(tenant.businessID, opts.DocumentType)
		if err != nil {
			result.DocumentsError = err.Error()
		} else {
			result.Documents = docs
		}
	}

	if opts.IncludeMessages {
		chatID := opts.ChatID
		if chatID == "" && opts.SuggestionID != 0 {
			if sg, err := s.Suggestions.FindByID(opts.SuggestionID); err == nil && sg.UserID == userID {
				chatID = sg.ChatID
			}
		}
		messages, err := s.reconstructMessages(userID, chatID)
		if err != nil {
			result.MessagesError = err.Error()
		} else {
			result.Messages = messages
		}
	}

	return result, nil
}

func (s *ReconcilerService) adminName(tenant *tenantContext) (string, string) {
	ctx := context.Background()
	key := adminNameCacheKey(tenant.businessID)

	if s.Redis != nil {
		if name, err := s.Redis.Get(ctx, key).Result(); err == nil && name != "" {
			return name, ""
		}
	}

	admin, err := s.Users.FindByID(tenant.adminID)
	if err != nil {
		return "", err.Error()
	}

	if s.Redis != nil {
		s.Redis.Set(ctx, key, admin.Name, adminNameCacheTTL)
	}
	return admin.Name, ""
}

// reconstructMessages rebuilds the chat transcript from the suggestion
// rows: a user entry for every meaningful question text, an assistant
// entry for every answer, in creation order.
func (s *ReconcilerService) reconstructMessages(userID uint, chatID string) ([]ChatMessage, error) {
	suggestions, err := s.Suggestions.ListForUser(userID, chatID)
	if err != nil {
		return nil, err
	}

	messages := make([]ChatMessage, 0, len(suggestions)*2)
	for _, sg := range suggestions {
		if meaningfulQuestion(sg.QuestionText) {
			messages = append(messages, ChatMessage{
				Role:      RoleUser,
				Text:      sg.QuestionText,
				Timestamp: sg.CreatedAt,
			})
		}
		if sg.AnswerText != nil {
			messages = append(messages, ChatMessage{
				Role:      RoleAssistant,
				Text:      *sg.AnswerText,
				Timestamp: sg.UpdatedAt,
			})
		}
	}
	return messages, nil
}

func meaningfulQuestion(text string) bool {
	return text != "" && text != model.PlaceholderQuestion && text != model.PlaceholderFeedbackQuestion
}
