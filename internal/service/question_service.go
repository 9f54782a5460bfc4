package service

import (
	"encoding/json"
	"errors"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/policy"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/schema"
	"quizhub_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	QuizRepo     *repository.QuizRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository, quizRepo *repository.QuizRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo, QuizRepo: quizRepo}
}

// Create adds a question to an existing quiz. Only the quiz author may
// extend a quiz; admins get no bypass on create and edit, in contrast with
// delete.
func (s *QuestionService) Create(p policy.Principal, quizID uint, title string, data json.RawMessage) (*model.Question, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	if err := policy.OwnerOnly(p, quiz.AuthorID); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, util.Invalid("title", "is required")
	}

	_, canonical, err := schema.ParseCreate(data)
	if err != nil {
		return nil, err
	}

	question := &model.Question{QuizID: quizID, Title: title, Data: canonical}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	s.QuizRepo.InvalidateCache(quizID)
	return question, nil
}

func (s *QuestionService) ListByQuiz(p policy.Principal, quizID uint) ([]model.Question, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	if quiz.AuthorID != p.UserID {
		if err := policy.CanAttemptQuiz(p, quiz.ViewType); err != nil {
			return nil, err
		}
	}
	return s.QuestionRepo.ListByQuiz(quizID)
}

func (s *QuestionService) Get(p policy.Principal, id uint) (*model.Question, error) {
	owner, err := s.findWithOwner(id)
	if err != nil {
		return nil, err
	}
	if owner.QuizAuthor != p.UserID {
		quiz, err := s.QuizRepo.FindByID(owner.Question.QuizID)
		if err != nil {
			return nil, err
		}
		if err := policy.CanAttemptQuiz(p, quiz.ViewType); err != nil {
			return nil, err
		}
	}
	return &owner.Question, nil
}

// Update merges the patch over the stored payload and revalidates the whole
// shape; the stored discriminant can never change.
func (s *QuestionService) Update(p policy.Principal, id uint, title *string, patch json.RawMessage) (*model.Question, error) {
	owner, err := s.findWithOwner(id)
	if err != nil {
		return nil, err
	}
	if err := policy.OwnerOnly(p, owner.QuizAuthor); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if title != nil {
		if *title == "" {
			return nil, util.Invalid("title", "must not be empty")
		}
		updates["title"] = *title
	}
	if len(patch) > 0 {
		merged, err := schema.ApplyEdit(owner.Question.Data, patch)
		if err != nil {
			return nil, err
		}
		updates["data"] = []byte(merged)
	}
	if len(updates) == 0 {
		return nil, util.ErrEmptyUpdate
	}

	if err := s.QuestionRepo.UpdateFields(id, updates); err != nil {
		return nil, err
	}
	s.QuizRepo.InvalidateCache(owner.Question.QuizID)
	return s.QuestionRepo.FindByID(id)
}

func (s *QuestionService) Delete(p policy.Principal, id uint) error {
	owner, err := s.findWithOwner(id)
	if err != nil {
		return err
	}
	if err := policy.OwnerOrAdmin(p, owner.QuizAuthor); err != nil {
		return err
	}
	if err := s.QuestionRepo.Delete(id); err != nil {
		return err
	}
	s.QuizRepo.InvalidateCache(owner.Question.QuizID)
	return nil
}

func (s *QuestionService) findWithOwner(id uint) (*repository.QuestionOwner, error) {
	owner, err := s.QuestionRepo.FindWithQuizAuthor(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return owner, nil
}
