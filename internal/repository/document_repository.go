package repository

import (
	"altacoach_backend/internal/model"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	DB *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

func (r *DocumentRepository) Create(doc *model.Document) error {
	return r.DB.Create(doc).Error
}

func (r *DocumentRepository) FindByID(id uint) (*model.Document, error) {
	var doc model.Document
	err := r.DB.First(&doc, id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// AttachToBusiness creates the join row if it does not exist yet.
func (r *DocumentRepository) AttachToBusiness(businessID, documentID uint) error {
	var existing model.BusinessDocument
	err := r.DB.Where("business_id = ? AND document_id = ?", businessID, documentID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(&model.BusinessDocument{BusinessID: businessID, DocumentID: documentID}).Error
	}
	return err
}

func (r *DocumentRepository) ListByBusiness(businessID uint, docType model.DocumentType) ([]model.Document, error) {
	var docs []model.Document
	query := r.DB.Table("documents").
		Joins("JOIN business_documents ON business_documents.document_id = documents.id").
		Where("business_documents.business_id = ? AND business_documents.deleted_at IS NULL", businessID)
	if docType != "" {
		query = query.Where("documents.document_type = ?", docType)
	}
	err := query.Order("documents.created_at desc").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) CountByBusiness(businessID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.BusinessDocument{}).Where("business_id = ?", businessID).Count(&total).Error
	return total, err
}

func (r *DocumentRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Document{}).Count(&total).Error
	return total, err
}

func (r *DocumentRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&model.BusinessDocument{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Document{}, id).Error
	})
}
