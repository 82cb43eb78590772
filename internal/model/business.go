package model

type BusinessStatus string

const (
	BusinessActive   BusinessStatus = "active"
	BusinessInactive BusinessStatus = "inactive"
)

// Business is a tenant: a customer organization with its own users,
// documents and owning admin.
// swagger:model Business
type Business struct {
	BaseModel
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Status      BusinessStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	// CreatedBy is the admin who owns this tenant. Suggestion routing
	// resolves adminId through this field, never from request input.
	CreatedBy uint `gorm:"index;not null" json:"createdBy"`
}

// BusinessUser records a user's membership in a business.
// swagger:model BusinessUser
type BusinessUser struct {
	BaseModel
	BusinessID uint `gorm:"uniqueIndex:idx_business_user;not null" json:"businessId"`
	UserID     uint `gorm:"uniqueIndex:idx_business_user;not null" json:"userId"`
}

func (Business) TableName() string {
	return "businesses"
}

func (BusinessUser) TableName() string {
	return "business_users"
}
