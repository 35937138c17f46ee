package services

import (
	"errors"
	"fmt"

	"github.com/metaphorce/taskflow/internal/models"
	"github.com/metaphorce/taskflow/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email is already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService handles user account business logic.
type UserService struct {
	userRepo repository.UserRepository
	hasher   Hasher
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, hasher Hasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// CreateUser registers a new user. The PasswordHash field of the candidate
// carries the plaintext credential on the way in and is replaced with its
// hashed form before the record is persisted.
//
// The duplicate-email pre-check and the write are separate round-trips, so a
// concurrent create for the same email can slip past the check; the store's
// uniqueness constraint then rejects the write and that failure is reported
// as ErrEmailTaken as well.
func (s *UserService) CreateUser(user *models.User) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(user.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := s.hasher.Hash(user.PasswordHash)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}
	user.PasswordHash = hashed

	if err := s.userRepo.Save(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// GetUsers returns every user.
func (s *UserService) GetUsers() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUserByEmail retrieves a user by email.
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// GetUserByName retrieves a user by display name.
func (s *UserService) GetUserByName(name string) (*models.User, error) {
	user, err := s.userRepo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// GetUsersByRole returns all users with the given role.
func (s *UserService) GetUsersByRole(role models.Role) ([]models.User, error) {
	users, err := s.userRepo.FindByRole(role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	return users, nil
}

// UpdateUser replaces the stored user wholesale with the given record,
// forcing its ID. Fields absent from the replacement reset to their zero
// values rather than being carried over.
func (s *UserService) UpdateUser(id uint64, user *models.User) (*models.User, error) {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.ID = id
	if err := s.userRepo.Save(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteUser removes a user by ID. Tasks, projects, and time logs that
// reference the user are left in place.
func (s *UserService) DeleteUser(id uint64) error {
	exists, err := s.userRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
