package service

import (
	"errors"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/policy"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"

	"gorm.io/gorm"
)

type CommentService struct {
	CommentRepo *repository.CommentRepository
	QuizRepo    *repository.QuizRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, quizRepo *repository.QuizRepository) *CommentService {
	return &CommentService{CommentRepo: commentRepo, QuizRepo: quizRepo}
}

// Create attaches a comment to a quiz the principal can see.
func (s *CommentService) Create(p policy.Principal, quizID uint, text string) (*model.Comment, error) {
	if text == "" {
		return nil, util.Invalid("text", "is required")
	}
	if err := s.checkQuizVisible(p, quizID); err != nil {
		return nil, err
	}

	comment := &model.Comment{UserID: p.UserID, QuizID: quizID, Text: text}
	if err := s.CommentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListByQuiz(p policy.Principal, quizID uint) ([]model.Comment, error) {
	if err := s.checkQuizVisible(p, quizID); err != nil {
		return nil, err
	}
	return s.CommentRepo.ListByQuiz(quizID)
}

func (s *CommentService) Update(p policy.Principal, id uint, text string) (*model.Comment, error) {
	if text == "" {
		return nil, util.Invalid("text", "is required")
	}
	comment, err := s.findOwned(p, id)
	if err != nil {
		return nil, err
	}
	if err := s.CommentRepo.UpdateText(comment.ID, text); err != nil {
		return nil, err
	}
	comment.Text = text
	return comment, nil
}

func (s *CommentService) Delete(p policy.Principal, id uint) error {
	comment, err := s.findOwned(p, id)
	if err != nil {
		return err
	}
	return s.CommentRepo.Delete(comment.ID)
}

func (s *CommentService) findOwned(p policy.Principal, id uint) (*model.Comment, error) {
	comment, err := s.CommentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCommentNotFound
		}
		return nil, err
	}
	if err := policy.OwnerOrAdmin(p, comment.UserID); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) checkQuizVisible(p policy.Principal, quizID uint) error {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuizNotFound
		}
		return err
	}
	if quiz.AuthorID == p.UserID {
		return nil
	}
	return policy.CanAttemptQuiz(p, quiz.ViewType)
}
