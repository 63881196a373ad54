package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"optica_backend/internal/models"
	"optica_backend/internal/repositories"
)

// --- Custom Service Errors for User ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrUserValidation     = errors.New("user data validation error")
	ErrPasswordProcessing = errors.New("failed to process password")
)

// --- User DTOs ---

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
	Name     string `json:"name" binding:"required"`
	Status   string `json:"status"`
}

// UpdateUserRequest carries a partial update: only non-nil fields are
// applied. A non-nil Password is re-hashed before storage.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Name     *string `json:"name"`
	Status   *string `json:"status"`
}

// --- UserService Interface ---
type UserService interface {
	CreateUser(req CreateUserRequest) (*models.User, error)
	GetUserByID(userID int64) (*models.User, error)
	GetUsers() ([]models.User, error)
	UpdateUser(userID int64, req UpdateUserRequest) (*models.User, error)
	DeleteUser(userID int64) error
}

type userService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{userRepo: repo}
}

func (s *userService) validateUser(u *models.User) error {
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("%w: username cannot be empty", ErrUserValidation)
	}
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrUserValidation)
	}
	if !oneOf(u.Role, models.RoleAdmin, models.RoleSeller) {
		return fmt.Errorf("%w: invalid role %q", ErrUserValidation, u.Role)
	}
	return nil
}

func (s *userService) checkUsernameUnique(username string, currentID int64) error {
	existing, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check username uniqueness: %w", err)
	}
	if existing.ID != currentID {
		return ErrUsernameExists
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPasswordProcessing, err)
	}
	return string(hashed), nil
}

func (s *userService) CreateUser(req CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Username: strings.TrimSpace(req.Username),
		Role:     req.Role,
		Name:     req.Name,
		Status:   req.Status,
	}
	if user.Role == "" {
		user.Role = models.RoleSeller
	}
	if user.Status == "" {
		user.Status = "activo"
	}

	if err := s.validateUser(user); err != nil {
		return nil, err
	}
	if err := s.checkUsernameUnique(user.Username, 0); err != nil {
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hashed

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByID(userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

func (s *userService) UpdateUser(userID int64, req UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrUserValidation)
		}
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := s.validateUser(user); err != nil {
		return nil, err
	}
	if req.Username != nil {
		if err := s.checkUsernameUnique(user.Username, userID); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user in repository: %w", err)
	}
	return user, nil
}

func (s *userService) DeleteUser(userID int64) error {
	err := s.userRepo.Delete(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
