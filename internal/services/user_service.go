package services

import (
	"errors"
	"fmt"
	"unicode"

	"food_order/internal/models"
	"food_order/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Phone          string `json:"phone"`
	DefaultAddress string `json:"default_address"`
}

type UpdateProfileInput struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DefaultAddress string `json:"default_address"`
	OldPassword    string `json:"old_password"`
	NewPassword    string `json:"new_password"`
}

type UserService interface {
	Register(input RegisterInput) (*models.User, error)
	Login(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateProfile(id uint, input UpdateProfileInput) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(input RegisterInput) (*models.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("username, email and password are required: %w", ErrInvalidInput)
	}
	if !validPassword(input.Password) {
		return nil, ErrWeakPassword
	}

	_, err := s.userRepo.GetByEmail(input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       input.Username,
		Email:          input.Email,
		Password:       string(hashed),
		Role:           string(models.RoleUser),
		Phone:          input.Phone,
		DefaultAddress: input.DefaultAddress,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login resolves the credentials or fails with the same error for an unknown
// email and a wrong password, so callers cannot probe which one it was.
func (s *userService) Login(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", ErrInvalidInput)
	}
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWrongCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrWrongCredentials
	}
	return user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(id uint, input UpdateProfileInput) (*models.User, error) {
	if input.Username == "" || input.Email == "" {
		return nil, fmt.Errorf("username and email are required: %w", ErrInvalidInput)
	}

	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	taken, err := s.userRepo.EmailTakenByOther(input.Email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	if input.NewPassword != "" {
		if input.OldPassword == "" {
			return nil, fmt.Errorf("current password is required to set a new one: %w", ErrInvalidInput)
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)) != nil {
			return nil, ErrWrongCredentials
		}
		if !validPassword(input.NewPassword) {
			return nil, ErrWeakPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	user.Username = input.Username
	user.Email = input.Email
	user.Phone = input.Phone
	user.DefaultAddress = input.DefaultAddress

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// validPassword enforces the storefront password policy: at least 6
// characters with an upper case letter, a lower case letter and a digit.
func validPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
