package service

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"quizhub_backend/internal/config"
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	usernamePattern  = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)
	legalNamePattern = regexp.MustCompile(`^\p{L}+$`)
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

type RegisterInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Birthday  string
	Password  string
}

// ValidateRegistration applies the credential rules; the first failing field
// is reported.
func ValidateRegistration(in RegisterInput) error {
	if len(in.Username) < 3 || len(in.Username) > 25 {
		return util.Invalid("username", "must contain between 3 and 25 characters")
	}
	if !usernamePattern.MatchString(in.Username) {
		return util.Invalid("username", "can only contain letters, numbers, '_' and '-'")
	}
	for _, field := range []struct{ name, value string }{
		{"firstName", in.FirstName},
		{"lastName", in.LastName},
	} {
		if len([]rune(field.value)) < 3 || len([]rune(field.value)) > 25 {
			return util.Invalid(field.name, "must contain between 3 and 25 characters")
		}
		if !legalNamePattern.MatchString(field.value) {
			return util.Invalid(field.name, "can only contain letters")
		}
	}
	if _, err := time.Parse("2006-01-02", in.Birthday); err != nil {
		return util.Invalid("birthday", "must be a date in YYYY-MM-DD form")
	}
	return ValidatePassword(in.Password)
}

// ValidatePassword requires at least 8 characters with one lowercase letter,
// one uppercase letter, one digit and one special character.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return util.Invalid("password", "must be at least 8 characters")
	}

	var lower, upper, digit, special bool
	for _, ch := range password {
		switch {
		case ch >= 'a' && ch <= 'z':
			lower = true
		case ch >= 'A' && ch <= 'Z':
			upper = true
		case ch >= '0' && ch <= '9':
			digit = true
		case strings.ContainsRune("!@#$%^&*()-_=+[{]}\\|;:'\",<.>/?`~", ch):
			special = true
		default:
			return util.Invalid("password", "contains an unsupported character")
		}
	}
	if !lower || !upper || !digit || !special {
		return util.Invalid("password", "must contain a lowercase letter, an uppercase letter, a number and a special character")
	}
	return nil
}

// Register creates a user with role "user"; the role can never come from the
// request payload.
func (s *AuthService) Register(in RegisterInput) (*model.User, error) {
	if err := ValidateRegistration(in); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Birthday:     in.Birthday,
		PasswordHash: string(hashed),
		Role:         model.RoleUser,
	}

	if err := s.UserRepo.Create(user); err != nil {
		if errors.Is(err, util.ErrConflict) {
			return nil, util.Invalid("", "username or email already registered")
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrForbidden
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", util.ErrForbidden
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
