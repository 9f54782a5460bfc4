package service

import (
	"errors"
	"time"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/policy"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"

	"gorm.io/gorm"
)

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	ClassRepo      *repository.ClassRepository
	QuizRepo       *repository.QuizRepository
}

func NewAssignmentService(assignmentRepo *repository.AssignmentRepository, classRepo *repository.ClassRepository, quizRepo *repository.QuizRepository) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		ClassRepo:      classRepo,
		QuizRepo:       quizRepo,
	}
}

type CreateAssignmentInput struct {
	Title       string
	Description string
	DueBy       time.Time
	QuizIDs     []uint
}

// Create adds an assignment to a class the principal owns and links the
// given quizzes in the same transaction. Every referenced quiz must exist.
func (s *AssignmentService) Create(p policy.Principal, classID uint, in CreateAssignmentInput) (*model.Assignment, error) {
	class, err := s.findClass(classID)
	if err != nil {
		return nil, err
	}
	if err := policy.OwnerOrAdmin(p, class.AuthorID); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, util.Invalid("title", "is required")
	}
	if in.DueBy.IsZero() {
		return nil, util.Invalid("dueBy", "is required")
	}
	if err := s.checkQuizzesExist(in.QuizIDs); err != nil {
		return nil, err
	}

	assignment := &model.Assignment{
		ClassID:     classID,
		AuthorID:    p.UserID,
		Title:       in.Title,
		Description: in.Description,
		DueBy:       in.DueBy,
	}
	if err := s.AssignmentRepo.CreateWithQuizzes(assignment, in.QuizIDs); err != nil {
		return nil, err
	}
	return assignment, nil
}

// ListByClass is open to class students and admins; the class author sees it
// too.
func (s *AssignmentService) ListByClass(p policy.Principal, classID uint) ([]model.Assignment, error) {
	class, err := s.findClass(classID)
	if err != nil {
		return nil, err
	}
	if class.AuthorID != p.UserID {
		isMember, err := s.ClassRepo.IsStudent(p.UserID, classID)
		if err != nil {
			return nil, err
		}
		if err := policy.ClassScoped(p, isMember); err != nil {
			return nil, err
		}
	}
	return s.AssignmentRepo.ListByClass(classID)
}

func (s *AssignmentService) Get(p policy.Principal, id uint) (*model.Assignment, error) {
	assignment, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if assignment.AuthorID != p.UserID {
		isMember, err := s.ClassRepo.IsStudent(p.UserID, assignment.ClassID)
		if err != nil {
			return nil, err
		}
		if err := policy.ClassScoped(p, isMember); err != nil {
			return nil, err
		}
	}
	return assignment, nil
}

type AssignmentUpdateInput struct {
	Title       *string
	Description *string
	DueBy       *time.Time
}

func (s *AssignmentService) Update(p policy.Principal, id uint, in AssignmentUpdateInput) (*model.Assignment, error) {
	assignment, err := s.findOwned(p, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, util.Invalid("title", "must not be empty")
		}
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.DueBy != nil {
		updates["due_by"] = *in.DueBy
	}
	if len(updates) == 0 {
		return nil, util.ErrEmptyUpdate
	}

	if err := s.AssignmentRepo.UpdateFields(assignment.ID, updates); err != nil {
		return nil, err
	}
	return s.AssignmentRepo.FindByID(assignment.ID)
}

// Delete removes the assignment and its quiz links.
func (s *AssignmentService) Delete(p policy.Principal, id uint) error {
	assignment, err := s.findOwned(p, id)
	if err != nil {
		return err
	}
	return s.AssignmentRepo.DeleteCascade(assignment.ID)
}

func (s *AssignmentService) ListQuizLinks(p policy.Principal, id uint) ([]model.AssignmentQuiz, error) {
	if _, err := s.Get(p, id); err != nil {
		return nil, err
	}
	return s.AssignmentRepo.ListQuizLinks(id)
}

// LinkQuizzes attaches quizzes to an assignment; linking a quiz twice is a
// no-op.
func (s *AssignmentService) LinkQuizzes(p policy.Principal, id uint, quizIDs []uint) error {
	assignment, err := s.findOwned(p, id)
	if err != nil {
		return err
	}
	if len(quizIDs) == 0 {
		return util.Invalid("quizIds", "at least one quiz id is required")
	}
	if err := s.checkQuizzesExist(quizIDs); err != nil {
		return err
	}
	return s.AssignmentRepo.LinkQuizzes(assignment.ID, quizIDs)
}

func (s *AssignmentService) UnlinkQuiz(p policy.Principal, id, quizID uint) error {
	assignment, err := s.findOwned(p, id)
	if err != nil {
		return err
	}
	return s.AssignmentRepo.UnlinkQuiz(assignment.ID, quizID)
}

func (s *AssignmentService) find(id uint) (*model.Assignment, error) {
	assignment, err := s.AssignmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) findOwned(p policy.Principal, id uint) (*model.Assignment, error) {
	assignment, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := policy.OwnerOrAdmin(p, assignment.AuthorID); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) findClass(id uint) (*model.Class, error) {
	class, err := s.ClassRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrClassNotFound
		}
		return nil, err
	}
	return class, nil
}

// checkQuizzesExist rejects links to missing quizzes up front so the
// transaction never inserts dangling references.
func (s *AssignmentService) checkQuizzesExist(quizIDs []uint) error {
	for _, quizID := range quizIDs {
		if _, err := s.QuizRepo.FindByID(quizID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrInvalidReference
			}
			return err
		}
	}
	return nil
}
