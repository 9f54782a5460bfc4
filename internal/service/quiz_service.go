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

type QuizService struct {
	QuizRepo *repository.QuizRepository
}

func NewQuizService(quizRepo *repository.QuizRepository) *QuizService {
	return &QuizService{QuizRepo: quizRepo}
}

type QuestionInput struct {
	Title string
	Data  json.RawMessage
}

type CreateQuizInput struct {
	Title       string
	Description string
	Difficulty  model.Difficulty
	Subject     string
	ViewType    model.ViewType
	Questions   []QuestionInput
}

func validDifficulty(d model.Difficulty) bool {
	switch d {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
		return true
	}
	return false
}

func validViewType(v model.ViewType) bool {
	switch v {
	case model.ViewPublic, model.ViewPrivate, model.ViewUnlisted:
		return true
	}
	return false
}

// Create validates every question payload before anything is written; the
// quiz and its questions then land in one transaction.
func (s *QuizService) Create(p policy.Principal, in CreateQuizInput) (*model.Quiz, error) {
	if in.Title == "" {
		return nil, util.Invalid("title", "is required")
	}
	if !validDifficulty(in.Difficulty) {
		return nil, util.Invalid("difficulty", "must be easy, medium or hard")
	}
	if !validViewType(in.ViewType) {
		return nil, util.Invalid("viewType", "must be public, private or unlisted")
	}
	if len(in.Questions) == 0 {
		return nil, util.Invalid("questions", "at least one question is required")
	}

	questions := make([]model.Question, 0, len(in.Questions))
	for i, q := range in.Questions {
		if q.Title == "" {
			return nil, util.Invalid("questions", "question %d must have a title", i)
		}
		_, canonical, err := schema.ParseCreate(q.Data)
		if err != nil {
			return nil, err
		}
		questions = append(questions, model.Question{Title: q.Title, Data: canonical})
	}

	quiz := &model.Quiz{
		Title:       in.Title,
		Description: in.Description,
		Difficulty:  in.Difficulty,
		Subject:     in.Subject,
		AuthorID:    p.UserID,
		ViewType:    in.ViewType,
	}
	if err := s.QuizRepo.CreateWithQuestions(quiz, questions); err != nil {
		return nil, err
	}
	return quiz, nil
}

// Get returns a quiz with its questions. Private quizzes stay visible to
// their author and to admins; everyone else gets the visibility denial.
func (s *QuizService) Get(p policy.Principal, id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByIDWithQuestions(id)
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
	return quiz, nil
}

type QuizListInput struct {
	Page       util.PageQuery
	Subject    string
	Difficulty string
	ViewType   string
	AuthorID   uint
	Search     string
}

// List applies the caller's filters. Non-admins only ever see public quizzes
// plus their own, whatever they filter by.
func (s *QuizService) List(p policy.Principal, in QuizListInput) ([]model.Quiz, error) {
	filter := repository.QuizFilter{
		Subject:    in.Subject,
		Difficulty: in.Difficulty,
		ViewType:   in.ViewType,
		AuthorID:   in.AuthorID,
		Search:     in.Search,
	}
	if !p.IsAdmin() {
		userID := p.UserID
		filter.RestrictFor = &userID
	}
	return s.QuizRepo.List(filter, in.Page.Offset(), in.Page.PageSize)
}

type QuizUpdateInput struct {
	Title       *string
	Description *string
	Difficulty  *model.Difficulty
	Subject     *string
	ViewType    *model.ViewType
}

// Update is an allow-listed partial edit; the author can never change.
func (s *QuizService) Update(p policy.Principal, id uint, in QuizUpdateInput) (*model.Quiz, error) {
	quiz, err := s.findOwned(p, id)
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
	if in.Difficulty != nil {
		if !validDifficulty(*in.Difficulty) {
			return nil, util.Invalid("difficulty", "must be easy, medium or hard")
		}
		updates["difficulty"] = *in.Difficulty
	}
	if in.Subject != nil {
		updates["subject"] = *in.Subject
	}
	if in.ViewType != nil {
		if !validViewType(*in.ViewType) {
			return nil, util.Invalid("viewType", "must be public, private or unlisted")
		}
		updates["view_type"] = *in.ViewType
	}
	if len(updates) == 0 {
		return nil, util.ErrEmptyUpdate
	}

	if err := s.QuizRepo.UpdateFields(quiz.ID, updates); err != nil {
		return nil, err
	}
	return s.QuizRepo.FindByIDWithQuestions(quiz.ID)
}

// Delete removes the quiz and all dependent rows in one transaction.
func (s *QuizService) Delete(p policy.Principal, id uint) error {
	quiz, err := s.findOwned(p, id)
	if err != nil {
		return err
	}
	return s.QuizRepo.DeleteCascade(quiz.ID)
}

// findOwned resolves the quiz and then checks ownership, so a missing quiz
// is always reported before an authorization denial.
func (s *QuizService) findOwned(p policy.Principal, id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	if err := policy.OwnerOrAdmin(p, quiz.AuthorID); err != nil {
		return nil, err
	}
	return quiz, nil
}
