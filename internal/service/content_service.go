package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"altacoach_backend/internal/model"
	"altacoach_backend/internal/repository"
	"altacoach_backend/pkg/logger"

	"go.uber.org/zap"
)

// ContentService manages admin-uploaded documents and their attachment
// to businesses.
type ContentService struct {
	DocumentRepo *repository.DocumentRepository
	BusinessRepo *repository.BusinessRepository
	Storage      *StorageService
}

func NewContentService(documentRepo *repository.DocumentRepository, businessRepo *repository.BusinessRepository, storage *StorageService) *ContentService {
	return &ContentService{
		DocumentRepo: documentRepo,
		BusinessRepo: businessRepo,
		Storage:      storage,
	}
}

type UploadDocumentInput struct {
	Title        string
	Description  string
	DocumentType model.DocumentType
	FileName     string
	ContentType  string
	Size         int64
	Reader       io.Reader
	BusinessIDs  []uint
	UploadedBy   uint
}

// UploadDocument stores the file, creates the document row and attaches
// it to each requested business. Attachment failures are logged and
// skipped so one bad business id does not lose the upload.
func (s *ContentService) UploadDocument(ctx context.Context, input *UploadDocumentInput) (*model.Document, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	// StoragePath holds the storage key, not the serving URL, so the
	// file can be deleted through the same provider later.
	storagePath := ""
	if input.Reader != nil {
		objectName := fmt.Sprintf("documents/%s%s", model.GenerateUUID(), filepath.Ext(input.FileName))
		if _, err := s.Storage.Upload(ctx, objectName, input.Reader, input.Size, input.ContentType); err != nil {
			return nil, err
		}
		storagePath = objectName
	}

	docType := input.DocumentType
	if docType == "" {
		docType = model.DocOther
	}

	doc := &model.Document{
		Title:        input.Title,
		Description:  input.Description,
		DocumentType: docType,
		FileName:     input.FileName,
		StoragePath:  storagePath,
		ContentType:  input.ContentType,
		UploadedBy:   input.UploadedBy,
	}
	if err := s.DocumentRepo.Create(doc); err != nil {
		return nil, err
	}

	for _, businessID := range input.BusinessIDs {
		if _, err := s.BusinessRepo.FindByID(businessID); err != nil {
			logger.Log.Warn("skipping document attachment, business not found",
				zap.Uint("businessId", businessID), zap.Error(err))
			continue
		}
		if err := s.DocumentRepo.AttachToBusiness(businessID, doc.ID); err != nil {
			logger.Log.Warn("failed to attach document",
				zap.Uint("businessId", businessID), zap.Error(err))
		}
	}

	return doc, nil
}

func (s *ContentService) ListBusinessDocuments(businessID uint, docType model.DocumentType) ([]model.Document, error) {
	return s.DocumentRepo.ListByBusiness(businessID, docType)
}

func (s *ContentService) AttachDocument(businessID, documentID uint) error {
	if _, err := s.DocumentRepo.FindByID(documentID); err != nil {
		return err
	}
	return s.DocumentRepo.AttachToBusiness(businessID, documentID)
}

func (s *ContentService) DeleteDocument(ctx context.Context, id uint) error {
	doc, err := s.DocumentRepo.FindByID(id)
	if err != nil {
		return err
	}
	if doc.StoragePath != "" {
		if err := s.Storage.Delete(ctx, doc.StoragePath); err != nil {
			logger.Log.Warn("failed to delete stored file", zap.String("path", doc.StoragePath), zap.Error(err))
		}
	}
	return s.DocumentRepo.Delete(id)
}
