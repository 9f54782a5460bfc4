package service

import (
	"encoding/json"
	"errors"
	"testing"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/policy"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
)

type attemptFixture struct {
	svc       *AttemptService
	classRepo *repository.ClassRepository
	quiz      *model.Quiz
	class     *model.Class
	homework  *model.Assignment
}

func newAttemptFixture(t *testing.T) *attemptFixture {
	t.Helper()

	db := testDB(t)
	quizRepo := repository.NewQuizRepository(db, nil)
	classRepo := repository.NewClassRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	svc := NewAttemptService(
		repository.NewAttemptRepository(db),
		quizRepo,
		repository.NewQuestionRepository(db),
		assignmentRepo,
		classRepo,
	)

	quiz := &model.Quiz{
		Title:      "fractions",
		Difficulty: model.DifficultyEasy,
		Subject:    "math",
		AuthorID:   1,
		ViewType:   model.ViewPublic,
	}
	questions := []model.Question{
		{Title: "q1", Data: json.RawMessage(`{"type":"trueFalse","correct":true}`)},
		{Title: "q2", Data: json.RawMessage(`{"type":"trueFalse","correct":false}`)},
	}
	if err := quizRepo.CreateWithQuestions(quiz, questions); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	class := &model.Class{Name: "algebra", AuthorID: 1}
	if err := classRepo.Create(class); err != nil {
		t.Fatalf("seed class: %v", err)
	}
	homework := &model.Assignment{ClassID: class.ID, AuthorID: 1, Title: "homework"}
	if err := assignmentRepo.CreateWithQuizzes(homework, []uint{quiz.ID}); err != nil {
		t.Fatalf("seed assignment: %v", err)
	}

	return &attemptFixture{svc: svc, classRepo: classRepo, quiz: quiz, class: class, homework: homework}
}

func TestAttemptCreateClassScoped(t *testing.T) {
	fx := newAttemptFixture(t)
	student := policy.Principal{UserID: 2, Role: model.RoleUser}
	admin := policy.Principal{UserID: 9, Role: model.RoleAdmin}

	_, err := fx.svc.Create(student, fx.quiz.ID, CreateAttemptInput{AssignmentID: &fx.homework.ID})
	if !errors.Is(err, util.ErrNotInClass) {
		t.Fatalf("non-member must be rejected, got %v", err)
	}

	if err := fx.classRepo.AddStudent(student.UserID, fx.class.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	attempt, err := fx.svc.Create(student, fx.quiz.ID, CreateAttemptInput{AssignmentID: &fx.homework.ID})
	if err != nil {
		t.Fatalf("enrolled student must start an attempt: %v", err)
	}
	if attempt.AssignmentID == nil || *attempt.AssignmentID != fx.homework.ID {
		t.Fatal("assignment link not recorded")
	}
	if attempt.Finished() {
		t.Fatal("a fresh attempt must not report finished")
	}

	if _, err := fx.svc.Create(admin, fx.quiz.ID, CreateAttemptInput{AssignmentID: &fx.homework.ID}); err != nil {
		t.Fatalf("admin must bypass class scoping: %v", err)
	}

	missing := fx.homework.ID + 100
	_, err = fx.svc.Create(student, fx.quiz.ID, CreateAttemptInput{AssignmentID: &missing})
	if !errors.Is(err, util.ErrInvalidReference) {
		t.Fatalf("missing assignment is a bad reference, got %v", err)
	}
}

func TestAttemptCreateRespectsVisibility(t *testing.T) {
	fx := newAttemptFixture(t)
	student := policy.Principal{UserID: 2, Role: model.RoleUser}

	if err := fx.svc.QuizRepo.UpdateFields(fx.quiz.ID, map[string]interface{}{"view_type": model.ViewPrivate}); err != nil {
		t.Fatalf("update quiz: %v", err)
	}
	if _, err := fx.svc.Create(student, fx.quiz.ID, CreateAttemptInput{}); !errors.Is(err, util.ErrQuizPrivate) {
		t.Fatalf("expected ErrQuizPrivate, got %v", err)
	}
	if _, err := fx.svc.Create(student, fx.quiz.ID+100, CreateAttemptInput{}); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("missing quiz is a 404, got %v", err)
	}
}

func TestFinishIsOneShot(t *testing.T) {
	fx := newAttemptFixture(t)
	student := policy.Principal{UserID: 2, Role: model.RoleUser}

	attempt, err := fx.svc.Create(student, fx.quiz.ID, CreateAttemptInput{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	finished, err := fx.svc.Finish(student, attempt.ID, 7)
	if err != nil {
		t.Fatalf("first finish: %v", err)
	}
	if finished.Score != 7 || !finished.Finished() {
		t.Fatalf("finish transition not recorded: %+v", finished)
	}

	if _, err := fx.svc.Finish(student, attempt.ID, 8); !errors.Is(err, util.ErrAttemptFinished) {
		t.Fatalf("second finish must be rejected, got %v", err)
	}
}

func TestAnswersEditableAfterFinish(t *testing.T) {
	fx := newAttemptFixture(t)
	student := policy.Principal{UserID: 2, Role: model.RoleUser}
	q1 := fx.quiz.Questions[0].ID
	q2 := fx.quiz.Questions[1].ID

	attempt, err := fx.svc.Create(student, fx.quiz.ID, CreateAttemptInput{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	answers := []AnswerInput{{QuestionID: q1, Answer: json.RawMessage(`true`)}}
	if err := fx.svc.SaveAnswers(student, attempt.ID, answers); err != nil {
		t.Fatalf("save before finish: %v", err)
	}
	if _, err := fx.svc.Finish(student, attempt.ID, 5); err != nil {
		t.Fatalf("finish: %v", err)
	}

	// Answer rows stay writable after the finish transition.
	more := []AnswerInput{{QuestionID: q2, Answer: json.RawMessage(`false`)}}
	if err := fx.svc.SaveAnswers(student, attempt.ID, more); err != nil {
		t.Fatalf("save after finish: %v", err)
	}
	if err := fx.svc.UpdateAnswer(student, attempt.ID, q1, json.RawMessage(`false`)); err != nil {
		t.Fatalf("update after finish: %v", err)
	}
	if err := fx.svc.DeleteAnswer(student, attempt.ID, q2); err != nil {
		t.Fatalf("delete after finish: %v", err)
	}

	rows, err := fx.svc.ListAnswers(student, attempt.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].QuestionID != q1 || string(rows[0].Answer) != `false` {
		t.Fatalf("unexpected answer rows: %+v", rows)
	}
}

func TestSaveAnswersRejectsForeignQuestion(t *testing.T) {
	fx := newAttemptFixture(t)
	student := policy.Principal{UserID: 2, Role: model.RoleUser}

	attempt, err := fx.svc.Create(student, fx.quiz.ID, CreateAttemptInput{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var foreign model.Question
	foreign.QuizID = fx.quiz.ID + 50
	foreign.Title = "stray"
	foreign.Data = json.RawMessage(`{"type":"trueFalse","correct":true}`)
	if err := fx.svc.QuestionRepo.Create(&foreign); err != nil {
		t.Fatalf("seed foreign question: %v", err)
	}

	answers := []AnswerInput{{QuestionID: foreign.ID, Answer: json.RawMessage(`true`)}}
	if err := fx.svc.SaveAnswers(student, attempt.ID, answers); !errors.Is(err, util.ErrInvalidReference) {
		t.Fatalf("foreign question is a bad reference, got %v", err)
	}
}
