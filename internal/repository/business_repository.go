package repository

import (
	"altacoach_backend/internal/model"

	"gorm.io/gorm"
)

type BusinessRepository struct {
	DB *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{DB: db}
}

func (r *BusinessRepository) Create(business *model.Business) error {
	return r.DB.Create(business).Error
}

func (r *BusinessRepository) Update(business *model.Business) error {
	return r.DB.Save(business).Error
}

func (r *BusinessRepository) FindByID(id uint) (*model.Business, error) {
	var business model.Business
	err := r.DB.First(&business, id).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepository) ListByCreator(adminID uint) ([]model.Business, error) {
	var businesses []model.Business
	err := r.DB.Where("created_by = ?", adminID).Order("created_at desc").Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepository) ListAll() ([]model.Business, error) {
	var businesses []model.Business
	err := r.DB.Order("created_at desc").Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Business{}).Count(&total).Error
	return total, err
}

func (r *BusinessRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("business_id = ?", id).Delete(&model.BusinessUser{}).Error; err != nil {
			return err
		}
		if err := tx.Where("business_id = ?", id).Delete(&model.BusinessDocument{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Business{}, id).Error
	})
}

// Membership methods

func (r *BusinessRepository) AddMember(businessID, userID uint) error {
	var existing model.BusinessUser
	err := r.DB.Where("business_id = ? AND user_id = ?", businessID, userID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(&model.BusinessUser{BusinessID: businessID, UserID: userID}).Error
	}
	return err
}

func (r *BusinessRepository) RemoveMember(businessID, userID uint) error {
	return r.DB.Where("business_id = ? AND user_id = ?", businessID, userID).
		Delete(&model.BusinessUser{}).Error
}

// FirstMembershipForUser returns the user's earliest membership. Tenant
// resolution always picks this one so multi-membership users route
// deterministically.
func (r *BusinessRepository) FirstMembershipForUser(userID uint) (*model.BusinessUser, error) {
	var membership model.BusinessUser
	err := r.DB.Where("user_id = ?", userID).Order("id asc").First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *BusinessRepository) ListMembers(businessID uint) ([]model.User, error) {
	var users []model.User
	err := r.DB.Table("users").
		Joins("JOIN business_users ON business_users.user_id = users.id").
		Where("business_users.business_id = ? AND business_users.deleted_at IS NULL", businessID).
		Find(&users).Error
	return users, err
}
