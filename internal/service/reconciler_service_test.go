package service

import (
	"testing"
	"time"

	"altacoach_backend/internal/model"
	"altacoach_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUsers struct {
	users map[uint]*model.User
}

func (f *fakeUsers) FindByID(id uint) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeBusinesses struct {
	businesses  map[uint]*model.Business
	memberships []model.BusinessUser
}

func (f *fakeBusinesses) FindByID(id uint) (*model.Business, error) {
	if b, ok := f.businesses[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBusinesses) FirstMembershipForUser(userID uint) (*model.BusinessUser, error) {
	for _, m := range f.memberships {
		if m.UserID == userID {
			copied := m
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeSuggestions struct {
	nextID uint
	rows   []*model.Suggestion
}

func (f *fakeSuggestions) Create(s *model.Suggestion) error {
	f.nextID++
	s.ID = f.nextID
	s.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Millisecond)
	s.UpdatedAt = s.CreatedAt
	copied := *s
	f.rows = append(f.rows, &copied)
	return nil
}

func (f *fakeSuggestions) Update(s *model.Suggestion) error {
	for i, row := range f.rows {
		if row.ID == s.ID {
			s.UpdatedAt = time.Now().Add(time.Duration(f.nextID+100) * time.Millisecond)
			copied := *s
			f.rows[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeSuggestions) UpsertQuestion(s *model.Suggestion) (bool, error) {
	for i, row := range f.rows {
		if row.QuestionID == s.QuestionID && row.UserID == s.UserID {
			updated := *row
			updated.QuestionText = s.QuestionText
			updated.UpdatedAt = time.Now().Add(time.Duration(f.nextID+100) * time.Millisecond)
			f.rows[i] = &updated
			return false, nil
		}
	}
	return true, f.Create(s)
}

func (f *fakeSuggestions) FindByID(id uint) (*model.Suggestion, error) {
	for _, row := range f.rows {
		if row.ID == id {
			copied := *row
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSuggestions) FindByQuestionID(userID uint, questionID string) (*model.Suggestion, error) {
	for _, row := range f.rows {
		if row.UserID == userID && row.QuestionID == questionID {
			copied := *row
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSuggestions) FindByMessageID(userID uint, messageID string) (*model.Suggestion, error) {
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		if row.QuestionID == messageID || (row.AnswerID != nil && *row.AnswerID == messageID) {
			copied := *row
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSuggestions) FindByAnswerID(userID uint, answerID string) (*model.Suggestion, error) {
	for _, row := range f.rows {
		if row.UserID == userID && row.AnswerID != nil && *row.AnswerID == answerID {
			copied := *row
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSuggestions) LatestOpen(userID uint, chatID string) (*model.Suggestion, error) {
	var latest *model.Suggestion
	for _, row := range f.rows {
		if row.UserID == userID && row.ChatID == chatID && row.AnswerText == nil {
			if latest == nil || row.ID > latest.ID {
				latest = row
			}
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeSuggestions) LatestOpenForUser(userID uint) (*model.Suggestion, error) {
	var latest *model.Suggestion
	for _, row := range f.rows {
		if row.UserID == userID && row.AnswerText == nil {
			if latest == nil || row.ID > latest.ID {
				latest = row
			}
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeSuggestions) LatestForUser(userID uint) (*model.Suggestion, error) {
	var latest *model.Suggestion
	for _, row := range f.rows {
		if row.UserID == userID {
			if latest == nil || row.ID > latest.ID {
				latest = row
			}
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeSuggestions) ListForUser(userID uint, chatID string) ([]model.Suggestion, error) {
	var out []model.Suggestion
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		if chatID != "" && row.ChatID != chatID {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

type fakeDocuments struct {
	nextID   uint
	docs     []*model.Document
	attached []model.BusinessDocument
	failFor  string
}

func (f *fakeDocuments) Create(doc *model.Document) error {
	if f.failFor != "" && doc.Title == f.failFor {
		return gorm.ErrInvalidData
	}
	f.nextID++
	doc.ID = f.nextID
	copied := *doc
	f.docs = append(f.docs, &copied)
	return nil
}

func (f *fakeDocuments) AttachToBusiness(businessID, documentID uint) error {
	f.attached = append(f.attached, model.BusinessDocument{BusinessID: businessID, DocumentID: documentID})
	return nil
}

func (f *fakeDocuments) ListByBusiness(businessID uint, docType model.DocumentType) ([]model.Document, error) {
	var out []model.Document
	for _, a := range f.attached {
		if a.BusinessID != businessID {
			continue
		}
		for _, d := range f.docs {
			if d.ID == a.DocumentID && (docType == "" || d.DocumentType == docType) {
				out = append(out, *d)
			}
		}
	}
	return out, nil
}

func (f *fakeDocuments) CountByBusiness(businessID uint) (int64, error) {
	var n int64
	for _, a := range f.attached {
		if a.BusinessID == businessID {
			n++
		}
	}
	return n, nil
}

type fixture struct {
	users       *fakeUsers
	businesses  *fakeBusinesses
	suggestions *fakeSuggestions
	documents   *fakeDocuments
	svc         *ReconcilerService
}

func newFixture() *fixture {
	users := &fakeUsers{users: map[uint]*model.User{
		1: {BaseModel: model.BaseModel{ID: 1}, Name: "End User", Role: model.EndUser},
		9: {BaseModel: model.BaseModel{ID: 9}, Name: "Tenant Admin", Role: model.Admin},
	}}
	businesses := &fakeBusinesses{
		businesses: map[uint]*model.Business{
			5: {BaseModel: model.BaseModel{ID: 5}, Name: "Acme", CreatedBy: 9},
		},
		memberships: []model.BusinessUser{{BusinessID: 5, UserID: 1}},
	}
	suggestions := &fakeSuggestions{}
	documents := &fakeDocuments{}
	return &fixture{
		users:       users,
		businesses:  businesses,
		suggestions: suggestions,
		documents:   documents,
		svc:         NewReconcilerService(users, businesses, suggestions, documents, nil),
	}
}

func question(id, text string) *Turn {
	return &Turn{ID: id, Role: RoleUser, Text: text, Timestamp: 1700000000, UserID: 1}
}

func answer(id, text string) *Turn {
	return &Turn{ID: id, Role: RoleAssistant, Text: text, Timestamp: 1700000001, UserID: 1}
}

func TestIngestQuestionCreatesRow(t *testing.T) {
	fx := newFixture()

	result, err := fx.svc.Ingest(question("q-1", "How do I reset my password?"))
	require.NoError(t, err)

	assert.Equal(t, IngestCreated, result.Result)
	assert.NotEmpty(t, result.ChatID, "a chat id is generated when the turn carries none")

	row, err := fx.suggestions.FindByID(result.SuggestionID)
	require.NoError(t, err)
	assert.Equal(t, "How do I reset my password?", row.QuestionText)
	assert.Equal(t, uint(5), row.BusinessID)
	assert.Equal(t, uint(9), row.AdminID)
	assert.False(t, row.Answered())
}

func TestIngestDuplicateQuestionUpdatesInPlace(t *testing.T) {
	fx := newFixture()

	first, err := fx.svc.Ingest(question("q-1", "original text"))
	require.NoError(t, err)

	second, err := fx.svc.Ingest(question("q-1", "edited text"))
	require.NoError(t, err)

	assert.Equal(t, IngestUpdated, second.Result)
	assert.Equal(t, first.SuggestionID, second.SuggestionID)
	assert.Equal(t, first.ChatID, second.ChatID, "the original chat id survives the edit")

	require.Len(t, fx.suggestions.rows, 1)
	assert.Equal(t, "edited text", fx.suggestions.rows[0].QuestionText)
}

func TestIngestAnswerAttachesToLatestOpenInChat(t *testing.T) {
	fx := newFixture()

	q, err := fx.svc.Ingest(&Turn{ID: "q-1", Role: RoleUser, Text: "question", Timestamp: 1, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)

	a, err := fx.svc.Ingest(&Turn{ID: "a-1", Role: RoleAssistant, Text: "the answer", Timestamp: 2, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)

	assert.Equal(t, IngestAnswered, a.Result)
	assert.Equal(t, q.SuggestionID, a.SuggestionID)

	row, err := fx.suggestions.FindByID(q.SuggestionID)
	require.NoError(t, err)
	require.NotNil(t, row.AnswerText)
	assert.Equal(t, "the answer", *row.AnswerText)
	require.NotNil(t, row.AnswerID)
	assert.Equal(t, "a-1", *row.AnswerID)
}

func TestIngestAnswerWithoutQuestionCreatesStandaloneRow(t *testing.T) {
	fx := newFixture()

	result, err := fx.svc.Ingest(answer("a-1", "orphaned answer"))
	require.NoError(t, err)

	assert.Equal(t, IngestAnsweredWithoutQuestion, result.Result)

	row, err := fx.suggestions.FindByID(result.SuggestionID)
	require.NoError(t, err)
	assert.Equal(t, model.PlaceholderQuestion, row.QuestionText)
	require.NotNil(t, row.AnswerText)
	assert.Equal(t, "orphaned answer", *row.AnswerText)
	assert.NotEmpty(t, row.QuestionID, "a synthetic question id keeps the unique index satisfied")
}

func TestIngestOrphanAnswerIsNotRepairedByLaterQuestion(t *testing.T) {
	fx := newFixture()

	orphan, err := fx.svc.Ingest(&Turn{ID: "a-1", Role: RoleAssistant, Text: "early answer", Timestamp: 1, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)
	assert.Equal(t, IngestAnsweredWithoutQuestion, orphan.Result)

	late, err := fx.svc.Ingest(&Turn{ID: "q-1", Role: RoleUser, Text: "its question, arriving late", Timestamp: 2, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)

	assert.Equal(t, IngestCreated, late.Result)
	assert.NotEqual(t, orphan.SuggestionID, late.SuggestionID)

	row, err := fx.suggestions.FindByID(orphan.SuggestionID)
	require.NoError(t, err)
	assert.Equal(t, model.PlaceholderQuestion, row.QuestionText, "the standalone row keeps its placeholder")
}

func TestIngestAnswerPrefersLatestOpenQuestion(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.Ingest(&Turn{ID: "q-1", Role: RoleUser, Text: "first", Timestamp: 1, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)
	q2, err := fx.svc.Ingest(&Turn{ID: "q-2", Role: RoleUser, Text: "second", Timestamp: 2, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)

	a, err := fx.svc.Ingest(&Turn{ID: "a-1", Role: RoleAssistant, Text: "answer", Timestamp: 3, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)

	assert.Equal(t, q2.SuggestionID, a.SuggestionID)
}

func TestIngestValidation(t *testing.T) {
	fx := newFixture()

	cases := []struct {
		name string
		turn *Turn
	}{
		{"missing id", &Turn{Role: RoleUser, Text: "x", Timestamp: 1, UserID: 1}},
		{"missing role", &Turn{ID: "m-1", Text: "x", Timestamp: 1, UserID: 1}},
		{"unknown role", &Turn{ID: "m-1", Role: "system", Text: "x", Timestamp: 1, UserID: 1}},
		{"missing text", &Turn{ID: "m-1", Role: RoleUser, Timestamp: 1, UserID: 1}},
		{"missing timestamp", &Turn{ID: "m-1", Role: RoleUser, Text: "x", UserID: 1}},
		{"missing user", &Turn{ID: "m-1", Role: RoleUser, Text: "x", Timestamp: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.svc.Ingest(tc.turn)
			var validationErr *util.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
	assert.Empty(t, fx.suggestions.rows, "invalid turns never reach storage")
}

func TestIngestTenantResolutionErrors(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		fx := newFixture()
		_, err := fx.svc.Ingest(&Turn{ID: "q-1", Role: RoleUser, Text: "x", Timestamp: 1, UserID: 42})
		var notFoundErr *util.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "user", notFoundErr.Resource)
	})

	t.Run("user without business", func(t *testing.T) {
		fx := newFixture()
		fx.users.users[2] = &model.User{BaseModel: model.BaseModel{ID: 2}, Name: "Loner"}
		_, err := fx.svc.Ingest(&Turn{ID: "q-1", Role: RoleUser, Text: "x", Timestamp: 1, UserID: 2})
		var assocErr *util.BusinessAssociationError
		assert.ErrorAs(t, err, &assocErr)
	})

	t.Run("business without owner", func(t *testing.T) {
		fx := newFixture()
		fx.businesses.businesses[5].CreatedBy = 0
		_, err := fx.svc.Ingest(question("q-1", "x"))
		var configErr *util.ConfigurationError
		assert.ErrorAs(t, err, &configErr)
	})
}

func TestSubmitFeedbackValidation(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.SubmitFeedback(&FeedbackInput{SuggestionText: "text"})
	var validationErr *util.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = fx.svc.SubmitFeedback(&FeedbackInput{UserID: 1})
	assert.ErrorAs(t, err, &validationErr)
}

func TestSubmitFeedbackLinksToRelatedMessage(t *testing.T) {
	fx := newFixture()

	q, err := fx.svc.Ingest(&Turn{ID: "q-1", Role: RoleUser, Text: "question", Timestamp: 1, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)
	_, err = fx.svc.Ingest(&Turn{ID: "a-1", Role: RoleAssistant, Text: "answer", Timestamp: 2, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)

	result, err := fx.svc.SubmitFeedback(&FeedbackInput{
		UserID:           1,
		SuggestionText:   "this answer was outdated",
		RelatedMessageID: "a-1",
	})
	require.NoError(t, err)

	assert.True(t, result.Linked)
	assert.Equal(t, "related-message", result.MatchedBy)
	assert.Equal(t, q.SuggestionID, result.SuggestionID)

	row, err := fx.suggestions.FindByID(q.SuggestionID)
	require.NoError(t, err)
	assert.Equal(t, "this answer was outdated", row.SuggestionText)
	assert.Equal(t, "question", row.QuestionText, "linking feedback never rewrites the pair")
}

func TestSubmitFeedbackFallsBackToLatestOpenQuestion(t *testing.T) {
	fx := newFixture()

	q, err := fx.svc.Ingest(&Turn{ID: "q-1", Role: RoleUser, Text: "open question", Timestamp: 1, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)

	result, err := fx.svc.SubmitFeedback(&FeedbackInput{
		UserID:         1,
		SuggestionText: "general feedback",
	})
	require.NoError(t, err)

	assert.False(t, result.Linked)
	assert.Equal(t, "latest-open-question", result.MatchedBy)
	assert.NotEqual(t, q.SuggestionID, result.SuggestionID, "feedback lands on a new row")

	row, err := fx.suggestions.FindByID(result.SuggestionID)
	require.NoError(t, err)
	assert.Equal(t, "open question", row.QuestionText, "the matched pair is copied onto the feedback row")
	assert.Equal(t, "chat-1", row.ChatID)
}

func TestSubmitFeedbackFallsBackToLatestQuestion(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.Ingest(&Turn{ID: "q-1", Role: RoleUser, Text: "question", Timestamp: 1, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)
	_, err = fx.svc.Ingest(&Turn{ID: "a-1", Role: RoleAssistant, Text: "answer", Timestamp: 2, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)

	result, err := fx.svc.SubmitFeedback(&FeedbackInput{
		UserID:         1,
		SuggestionText: "feedback with nothing open",
	})
	require.NoError(t, err)

	assert.Equal(t, "latest-question", result.MatchedBy)

	row, err := fx.suggestions.FindByID(result.SuggestionID)
	require.NoError(t, err)
	assert.Equal(t, "question", row.QuestionText)
	require.NotNil(t, row.AnswerText)
	assert.Equal(t, "answer", *row.AnswerText)
}

func TestSubmitFeedbackBottomsOutInProvidedText(t *testing.T) {
	fx := newFixture()

	result, err := fx.svc.SubmitFeedback(&FeedbackInput{
		UserID:         1,
		SuggestionText: "feedback into the void",
	})
	require.NoError(t, err)

	assert.Equal(t, "provided-text", result.MatchedBy)

	row, err := fx.suggestions.FindByID(result.SuggestionID)
	require.NoError(t, err)
	assert.Equal(t, model.PlaceholderFeedbackQuestion, row.QuestionText)
}

func TestSubmitFeedbackUnknownRelatedMessageStillSucceeds(t *testing.T) {
	fx := newFixture()

	result, err := fx.svc.SubmitFeedback(&FeedbackInput{
		UserID:           1,
		SuggestionText:   "feedback on a message nobody ingested",
		RelatedMessageID: "never-seen",
	})
	require.NoError(t, err)

	assert.False(t, result.Linked)
	assert.Equal(t, "provided-text", result.MatchedBy)

	row, err := fx.suggestions.FindByID(result.SuggestionID)
	require.NoError(t, err)
	assert.Equal(t, model.PlaceholderFeedbackQuestion, row.QuestionText)
}

func TestSubmitFeedbackUsesProvidedMessageText(t *testing.T) {
	fx := newFixture()

	result, err := fx.svc.SubmitFeedback(&FeedbackInput{
		UserID:         1,
		SuggestionText: "wrong answer",
		MessageText:    "what is the refund policy?",
		MessageRole:    RoleUser,
	})
	require.NoError(t, err)

	row, err := fx.suggestions.FindByID(result.SuggestionID)
	require.NoError(t, err)
	assert.Equal(t, "what is the refund policy?", row.QuestionText)
}

func TestSubmitFeedbackPersistsDocumentsWithPartialFailure(t *testing.T) {
	fx := newFixture()
	fx.documents.failFor = "broken"

	result, err := fx.svc.SubmitFeedback(&FeedbackInput{
		UserID:         1,
		SuggestionText: "see the attached guides",
		BusinessDocuments: []FeedbackDocument{
			{Title: "Onboarding guide", DocumentType: "guide"},
			{Title: ""},
			{Title: "broken"},
			{Title: "FAQ", DocumentType: "faq"},
		},
	})
	require.NoError(t, err)

	assert.Len(t, result.DocumentsSaved, 2, "valid documents survive their siblings' failures")
	assert.Len(t, result.DocumentErrors, 2)

	row, err := fx.suggestions.FindByID(result.SuggestionID)
	require.NoError(t, err)
	require.NotNil(t, row.DocumentID)
	assert.Equal(t, result.DocumentsSaved[0], *row.DocumentID, "the first saved document is linked")

	count, err := fx.documents.CountByBusiness(5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "saved documents are attached to the user's business")
}

func TestQueryContextReturnsAdminNameAndCounts(t *testing.T) {
	fx := newFixture()

	doc := &model.Document{Title: "Guide", DocumentType: model.DocGuide}
	require.NoError(t, fx.documents.Create(doc))
	require.NoError(t, fx.documents.AttachToBusiness(5, doc.ID))

	result, err := fx.svc.QueryContext(1, &ContextOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Tenant Admin", result.BusinessAdminName)
	assert.Empty(t, result.BusinessAdminNameError)
	assert.Equal(t, int64(1), result.DocumentCount)
	assert.Nil(t, result.Documents, "the full list is opt-in")
}

func TestQueryContextDegradesPerField(t *testing.T) {
	fx := newFixture()
	// Break only the admin lookup.
	delete(fx.users.users, 9)

	result, err := fx.svc.QueryContext(1, &ContextOptions{})
	require.NoError(t, err, "a failing sub-fetch never fails the whole query")

	assert.Empty(t, result.BusinessAdminName)
	assert.NotEmpty(t, result.BusinessAdminNameError)
	assert.Equal(t, int64(0), result.DocumentCount)
}

func TestQueryContextFiltersDocumentsByType(t *testing.T) {
	fx := newFixture()

	guide := &model.Document{Title: "Guide", DocumentType: model.DocGuide}
	faq := &model.Document{Title: "FAQ", DocumentType: model.DocFAQ}
	require.NoError(t, fx.documents.Create(guide))
	require.NoError(t, fx.documents.Create(faq))
	require.NoError(t, fx.documents.AttachToBusiness(5, guide.ID))
	require.NoError(t, fx.documents.AttachToBusiness(5, faq.ID))

	result, err := fx.svc.QueryContext(1, &ContextOptions{
		IncludeDocuments: true,
		DocumentType:     model.DocFAQ,
	})
	require.NoError(t, err)

	require.Len(t, result.Documents, 1)
	assert.Equal(t, "FAQ", result.Documents[0].Title)
}

func TestQueryContextReconstructsMessages(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.Ingest(&Turn{ID: "q-1", Role: RoleUser, Text: "first question", Timestamp: 1, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)
	_, err = fx.svc.Ingest(&Turn{ID: "a-1", Role: RoleAssistant, Text: "first answer", Timestamp: 2, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)
	_, err = fx.svc.Ingest(&Turn{ID: "q-2", Role: RoleUser, Text: "second question", Timestamp: 3, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)

	result, err := fx.svc.QueryContext(1, &ContextOptions{IncludeMessages: true, ChatID: "chat-1"})
	require.NoError(t, err)

	require.Len(t, result.Messages, 3)
	assert.Equal(t, RoleUser, result.Messages[0].Role)
	assert.Equal(t, "first question", result.Messages[0].Text)
	assert.Equal(t, RoleAssistant, result.Messages[1].Role)
	assert.Equal(t, "first answer", result.Messages[1].Text)
	assert.Equal(t, RoleUser, result.Messages[2].Role)
	assert.Equal(t, "second question", result.Messages[2].Text)
}

func TestQueryContextSkipsPlaceholderQuestionsInTranscript(t *testing.T) {
	fx := newFixture()

	orphan, err := fx.svc.Ingest(&Turn{ID: "a-1", Role: RoleAssistant, Text: "standalone answer", Timestamp: 1, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)
	require.Equal(t, IngestAnsweredWithoutQuestion, orphan.Result)

	result, err := fx.svc.QueryContext(1, &ContextOptions{IncludeMessages: true, ChatID: "chat-1"})
	require.NoError(t, err)

	require.Len(t, result.Messages, 1, "the placeholder question is not a real user turn")
	assert.Equal(t, RoleAssistant, result.Messages[0].Role)
}

func TestQueryContextResolvesChatFromSuggestionID(t *testing.T) {
	fx := newFixture()

	q, err := fx.svc.Ingest(&Turn{ID: "q-1", Role: RoleUser, Text: "scoped question", Timestamp: 1, UserID: 1, ChatID: "chat-1"})
	require.NoError(t, err)
	_, err = fx.svc.Ingest(&Turn{ID: "q-2", Role: RoleUser, Text: "other chat", Timestamp: 2, UserID: 1, ChatID: "chat-2"})
	require.NoError(t, err)

	result, err := fx.svc.QueryContext(1, &ContextOptions{IncludeMessages: true, SuggestionID: q.SuggestionID})
	require.NoError(t, err)

	require.Len(t, result.Messages, 1)
	assert.Equal(t, "scoped question", result.Messages[0].Text)
}
