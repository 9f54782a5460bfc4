package service

import (
	"encoding/json"
	"errors"
	"time"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/policy"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"

	"gorm.io/gorm"
)

type AttemptService struct {
	AttemptRepo    *repository.AttemptRepository
	QuizRepo       *repository.QuizRepository
	QuestionRepo   *repository.QuestionRepository
	AssignmentRepo *repository.AssignmentRepository
	ClassRepo      *repository.ClassRepository
}

func NewAttemptService(
	attemptRepo *repository.AttemptRepository,
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	assignmentRepo *repository.AssignmentRepository,
	classRepo *repository.ClassRepository,
) *AttemptService {
	return &AttemptService{
		AttemptRepo:    attemptRepo,
		QuizRepo:       quizRepo,
		QuestionRepo:   questionRepo,
		AssignmentRepo: assignmentRepo,
		ClassRepo:      classRepo,
	}
}

type CreateAttemptInput struct {
	AssignmentID *uint
	StartedAt    *time.Time
}

// Create starts an attempt on a quiz the principal may take. The quiz is the
// path resource (missing → 404); a missing assignment is a bad reference in
// the payload (400). Class scoping applies only when an assignment is given.
// finishedAt starts equal to startedAt and only the finish transition moves
// it.
func (s *AttemptService) Create(p policy.Principal, quizID uint, in CreateAttemptInput) (*model.QuizAttempt, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	if err := policy.CanAttemptQuiz(p, quiz.ViewType); err != nil {
		return nil, err
	}

	if in.AssignmentID != nil {
		assignment, err := s.AssignmentRepo.FindByID(*in.AssignmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrInvalidReference
			}
			return nil, err
		}
		isMember, err := s.ClassRepo.IsStudent(p.UserID, assignment.ClassID)
		if err != nil {
			return nil, err
		}
		if err := policy.ClassScoped(p, isMember); err != nil {
			return nil, err
		}
	}

	startedAt := time.Now()
	if in.StartedAt != nil {
		startedAt = *in.StartedAt
	}
	attempt := &model.QuizAttempt{
		UserID:       p.UserID,
		QuizID:       quizID,
		AssignmentID: in.AssignmentID,
		StartedAt:    startedAt,
		FinishedAt:   startedAt,
		Score:        0,
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *AttemptService) Get(p policy.Principal, id uint) (*model.QuizAttempt, error) {
	return s.findOwned(p, id)
}

type AttemptListInput struct {
	Page   util.PageQuery
	QuizID uint
}

// List returns the principal's own attempts; admins see everyone's.
func (s *AttemptService) List(p policy.Principal, in AttemptListInput) ([]model.QuizAttempt, error) {
	userID := p.UserID
	if p.IsAdmin() {
		userID = 0
	}
	return s.AttemptRepo.List(userID, in.QuizID, in.Page.Offset(), in.Page.PageSize)
}

// Finish runs the one-shot finish transition: finishedAt and score move
// together, exactly once. A second finish is rejected.
func (s *AttemptService) Finish(p policy.Principal, id uint, score int) (*model.QuizAttempt, error) {
	attempt, err := s.findOwned(p, id)
	if err != nil {
		return nil, err
	}
	if attempt.Finished() {
		return nil, util.ErrAttemptFinished
	}
	if score < 0 {
		return nil, util.Invalid("score", "must not be negative")
	}

	finishedAt := time.Now()
	if !finishedAt.After(attempt.StartedAt) {
		finishedAt = attempt.StartedAt.Add(time.Millisecond)
	}
	if err := s.AttemptRepo.Finish(attempt.ID, finishedAt, score); err != nil {
		return nil, err
	}
	attempt.FinishedAt = finishedAt
	attempt.Score = score
	return attempt, nil
}

// Delete removes the attempt and its answers.
func (s *AttemptService) Delete(p policy.Principal, id uint) error {
	attempt, err := s.findOwned(p, id)
	if err != nil {
		return err
	}
	return s.AttemptRepo.DeleteCascade(attempt.ID)
}

func (s *AttemptService) ListAnswers(p policy.Principal, attemptID uint) ([]model.AttemptAnswer, error) {
	attempt, err := s.findOwned(p, attemptID)
	if err != nil {
		return nil, err
	}
	return s.AttemptRepo.ListAnswers(attempt.ID)
}

type AnswerInput struct {
	QuestionID uint
	Answer     json.RawMessage
}

// SaveAnswers bulk-inserts answers with first-write-wins semantics. Every
// question must belong to the attempt's quiz. The finished state gates only
// the finish transition, never the answer rows.
func (s *AttemptService) SaveAnswers(p policy.Principal, attemptID uint, answers []AnswerInput) error {
	attempt, err := s.findOwned(p, attemptID)
	if err != nil {
		return err
	}
	if len(answers) == 0 {
		return util.Invalid("answers", "at least one answer is required")
	}

	rows := make([]model.AttemptAnswer, 0, len(answers))
	for _, a := range answers {
		if err := s.checkQuestionInQuiz(a.QuestionID, attempt.QuizID); err != nil {
			return err
		}
		if !json.Valid(a.Answer) {
			return util.Invalid("answer", "must be valid JSON")
		}
		rows = append(rows, model.AttemptAnswer{
			AttemptID:  attempt.ID,
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
		})
	}
	return s.AttemptRepo.BulkCreateAnswers(rows)
}

// UpdateAnswer replaces exactly one answer row by its composite key.
func (s *AttemptService) UpdateAnswer(p policy.Principal, attemptID, questionID uint, answer json.RawMessage) error {
	attempt, err := s.findOwned(p, attemptID)
	if err != nil {
		return err
	}
	if !json.Valid(answer) {
		return util.Invalid("answer", "must be valid JSON")
	}
	if err := s.checkAnswerExists(attempt.ID, questionID); err != nil {
		return err
	}
	return s.AttemptRepo.UpdateAnswer(attempt.ID, questionID, answer)
}

func (s *AttemptService) DeleteAnswer(p policy.Principal, attemptID, questionID uint) error {
	attempt, err := s.findOwned(p, attemptID)
	if err != nil {
		return err
	}
	if err := s.checkAnswerExists(attempt.ID, questionID); err != nil {
		return err
	}
	return s.AttemptRepo.DeleteAnswer(attempt.ID, questionID)
}

func (s *AttemptService) findOwned(p policy.Principal, id uint) (*model.QuizAttempt, error) {
	attempt, err := s.AttemptRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	if err := policy.OwnerOrAdmin(p, attempt.UserID); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *AttemptService) checkQuestionInQuiz(questionID, quizID uint) error {
	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrInvalidReference
		}
		return err
	}
	if question.QuizID != quizID {
		return util.ErrInvalidReference
	}
	return nil
}

func (s *AttemptService) checkAnswerExists(attemptID, questionID uint) error {
	answers, err := s.AttemptRepo.ListAnswers(attemptID)
	if err != nil {
		return err
	}
	for _, a := range answers {
		if a.QuestionID == questionID {
			return nil
		}
	}
	return util.ErrAnswerNotFound
}
