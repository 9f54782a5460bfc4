package service

import (
	"errors"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/policy"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"

	"gorm.io/gorm"
)

type ClassService struct {
	ClassRepo *repository.ClassRepository
	UserRepo  *repository.UserRepository
}

func NewClassService(classRepo *repository.ClassRepository, userRepo *repository.UserRepository) *ClassService {
	return &ClassService{ClassRepo: classRepo, UserRepo: userRepo}
}

func (s *ClassService) Create(p policy.Principal, name string) (*model.Class, error) {
	if name == "" {
		return nil, util.Invalid("name", "is required")
	}
	class := &model.Class{Name: name, AuthorID: p.UserID}
	if err := s.ClassRepo.Create(class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Get(id uint) (*model.Class, error) {
	class, err := s.ClassRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrClassNotFound
		}
		return nil, err
	}
	return class, nil
}

func (s *ClassService) List(page util.PageQuery) ([]model.Class, error) {
	return s.ClassRepo.List(page.Offset(), page.PageSize)
}

func (s *ClassService) Update(p policy.Principal, id uint, name *string) (*model.Class, error) {
	class, err := s.findOwned(p, id)
	if err != nil {
		return nil, err
	}
	if name == nil {
		return nil, util.ErrEmptyUpdate
	}
	if *name == "" {
		return nil, util.Invalid("name", "must not be empty")
	}
	if err := s.ClassRepo.UpdateFields(class.ID, map[string]interface{}{"name": *name}); err != nil {
		return nil, err
	}
	class.Name = *name
	return class, nil
}

// Delete removes the class together with both membership tables.
func (s *ClassService) Delete(p policy.Principal, id uint) error {
	class, err := s.findOwned(p, id)
	if err != nil {
		return err
	}
	return s.ClassRepo.DeleteCascade(class.ID)
}

// AddStudent enrolls a user; enrolling twice is a no-op.
func (s *ClassService) AddStudent(p policy.Principal, classID, userID uint) error {
	if err := s.checkMembershipWrite(p, classID, userID); err != nil {
		return err
	}
	return s.ClassRepo.AddStudent(userID, classID)
}

// RemoveStudent succeeds whether or not the membership existed.
func (s *ClassService) RemoveStudent(p policy.Principal, classID, userID uint) error {
	if err := s.checkMembershipWrite(p, classID, userID); err != nil {
		return err
	}
	return s.ClassRepo.RemoveStudent(userID, classID)
}

func (s *ClassService) AddTeacher(p policy.Principal, classID, userID uint) error {
	if err := s.checkMembershipWrite(p, classID, userID); err != nil {
		return err
	}
	return s.ClassRepo.AddTeacher(userID, classID)
}

func (s *ClassService) RemoveTeacher(p policy.Principal, classID, userID uint) error {
	if err := s.checkMembershipWrite(p, classID, userID); err != nil {
		return err
	}
	return s.ClassRepo.RemoveTeacher(userID, classID)
}

// checkMembershipWrite gates membership changes behind class ownership and
// verifies both referenced rows exist first.
func (s *ClassService) checkMembershipWrite(p policy.Principal, classID, userID uint) error {
	if _, err := s.findOwned(p, classID); err != nil {
		return err
	}
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *ClassService) findOwned(p policy.Principal, id uint) (*model.Class, error) {
	class, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := policy.OwnerOrAdmin(p, class.AuthorID); err != nil {
		return nil, err
	}
	return class, nil
}
