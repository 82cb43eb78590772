package service

import (
	"context"
	"fmt"

	"altacoach_backend/internal/model"
	"altacoach_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

type BusinessService struct {
	BusinessRepo *repository.BusinessRepository
	UserRepo     *repository.UserRepository
	Redis        *redis.Client
}

func NewBusinessService(businessRepo *repository.BusinessRepository, userRepo *repository.UserRepository, rdb *redis.Client) *BusinessService {
	return &BusinessService{
		BusinessRepo: businessRepo,
		UserRepo:     userRepo,
		Redis:        rdb,
	}
}

func (s *BusinessService) CreateBusiness(business *model.Business, adminID uint) error {
	business.CreatedBy = adminID
	return s.BusinessRepo.Create(business)
}

func (s *BusinessService) UpdateBusiness(businessID, adminID uint, updates *model.Business) error {
	existing, err := s.BusinessRepo.FindByID(businessID)
	if err != nil {
		return err
	}

	if existing.CreatedBy != adminID {
		return fmt.Errorf("unauthorized to update this business")
	}

	existing.Name = updates.Name
	existing.Description = updates.Description
	if updates.Status != "" {
		existing.Status = updates.Status
	}

	if err := s.BusinessRepo.Update(existing); err != nil {
		return err
	}

	// The reconciler caches the resolved admin name per business.
	if s.Redis != nil {
		s.Redis.Del(context.Background(), adminNameCacheKey(businessID))
	}
	return nil
}

func (s *BusinessService) GetBusiness(id uint) (*model.Business, error) {
	return s.BusinessRepo.FindByID(id)
}

func (s *BusinessService) ListBusinesses(actor *model.User) ([]model.Business, error) {
	if actor.Role == model.SuperAdmin {
		return s.BusinessRepo.ListAll()
	}
	return s.BusinessRepo.ListByCreator(actor.ID)
}

func (s *BusinessService) DeleteBusiness(businessID, adminID uint, actorRole model.UserRole) error {
	business, err := s.BusinessRepo.FindByID(businessID)
	if err != nil {
		return err
	}

	if actorRole != model.SuperAdmin && business.CreatedBy != adminID {
		return fmt.Errorf("unauthorized to delete this business")
	}

	if s.Redis != nil {
		s.Redis.Del(context.Background(), adminNameCacheKey(businessID))
	}
	return s.BusinessRepo.Delete(businessID)
}

func (s *BusinessService) AddMember(businessID, userID uint) error {
	if _, err := s.BusinessRepo.FindByID(businessID); err != nil {
		return err
	}
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return err
	}
	return s.BusinessRepo.AddMember(businessID, userID)
}

func (s *BusinessService) RemoveMember(businessID, userID uint) error {
	return s.BusinessRepo.RemoveMember(businessID, userID)
}

func (s *BusinessService) ListMembers(businessID uint) ([]model.User, error) {
	return s.BusinessRepo.ListMembers(businessID)
}
