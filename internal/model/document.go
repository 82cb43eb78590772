package model

type DocumentType string

const (
	DocCourse DocumentType = "course"
	DocGuide  DocumentType = "guide"
	DocFAQ    DocumentType = "faq"
	DocOther  DocumentType = "other"
)

// swagger:model Document
type Document struct {
	BaseModel
	Title        string       `gorm:"size:255;not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	DocumentType DocumentType `gorm:"type:varchar(20);default:'other';index" json:"documentType"`
	FileName     string       `gorm:"size:255" json:"fileName"`
	StoragePath  string       `gorm:"size:512" json:"storagePath"`
	ContentType  string       `gorm:"size:100" json:"contentType"`
	UploadedBy   uint         `gorm:"index" json:"uploadedBy"`
}

// BusinessDocument attaches a document to a tenant.
// swagger:model BusinessDocument
type BusinessDocument struct {
	BaseModel
	BusinessID uint `gorm:"uniqueIndex:idx_business_document;not null" json:"businessId"`
	DocumentID uint `gorm:"uniqueIndex:idx_business_document;not null" json:"documentId"`
}

func (Document) TableName() string {
	return "documents"
}

func (BusinessDocument) TableName() string {
	return "business_documents"
}
