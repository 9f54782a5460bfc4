package service

import (
	"errors"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService backs the admin user-management surface; role checks happen in
// the routing layer, so every method here assumes an admin principal.
type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) List(page util.PageQuery) ([]model.User, error) {
	return s.UserRepo.List(page.Offset(), page.PageSize)
}

func (s *UserService) Get(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create provisions a user from the admin surface. The same credential rules
// as self-registration apply; the role may be set directly and defaults to
// "user" when omitted.
func (s *UserService) Create(in RegisterInput, role model.UserRole) (*model.User, error) {
	if err := ValidateRegistration(in); err != nil {
		return nil, err
	}
	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleUser && role != model.RoleAdmin {
		return nil, util.Invalid("role", "must be %q or %q", model.RoleUser, model.RoleAdmin)
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
		Role:         role,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

type UserUpdateInput struct {
	Username  *string
	FirstName *string
	LastName  *string
	Email     *string
	Birthday  *string
	Password  *string
}

// Update applies an allow-listed partial update; the role and the password
// hash can never be set through this path.
func (s *UserService) Update(id uint, in UserUpdateInput) (*model.User, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Username != nil {
		updates["username"] = *in.Username
	}
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		updates["last_name"] = *in.LastName
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Birthday != nil {
		updates["birthday"] = *in.Birthday
	}
	if in.Password != nil {
		if err := ValidatePassword(*in.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = string(hashed)
	}
	if len(updates) == 0 {
		return nil, util.ErrEmptyUpdate
	}

	if err := s.UserRepo.UpdateFields(id, updates); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.UserRepo.Delete(id)
}

func (s *UserService) SetRole(id uint, role model.UserRole) (*model.User, error) {
	if role != model.RoleUser && role != model.RoleAdmin {
		return nil, util.Invalid("role", "must be %q or %q", model.RoleUser, model.RoleAdmin)
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.UserRepo.UpdateFields(id, map[string]interface{}{"role": role}); err != nil {
		return nil, err
	}
	return s.Get(id)
}
