package service

import (
	"errors"

	"altacoach_backend/internal/model"
	"altacoach_backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) CreateUser(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return errors.New("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.Create(user)
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

func (s *UserService) ListUsers(page, limit int, search string, role model.UserRole) ([]model.User, int64, error) {
	return s.UserRepo.List(page, limit, search, role)
}

func (s *UserService) UpdateProfile(userID uint, updates *model.User) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}

	// Only profile fields; role and status changes go through SetStatus
	// and are admin operations.
	if updates.Name != "" {
		user.Name = updates.Name
	}
	if updates.Language != "" {
		user.Language = updates.Language
	}

	return s.UserRepo.Update(user)
}

func (s *UserService) SetStatus(userID uint, status model.UserStatus) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}
	user.Status = status
	return s.UserRepo.Update(user)
}
