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

func newQuestionService(t *testing.T) (*QuestionService, *model.Quiz) {
	t.Helper()

	db := testDB(t)
	quizRepo := repository.NewQuizRepository(db, nil)
	svc := NewQuestionService(repository.NewQuestionRepository(db), quizRepo)

	quiz := &model.Quiz{
		Title:      "fractions",
		Difficulty: model.DifficultyEasy,
		Subject:    "math",
		AuthorID:   1,
		ViewType:   model.ViewPublic,
	}
	questions := []model.Question{
		{Title: "q1", Data: json.RawMessage(`{"type":"trueFalse","correct":true}`)},
	}
	if err := quizRepo.CreateWithQuestions(quiz, questions); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	return svc, quiz
}

func TestQuestionCreateAuthorOnly(t *testing.T) {
	svc, quiz := newQuestionService(t)

	author := policy.Principal{UserID: quiz.AuthorID, Role: model.RoleUser}
	admin := policy.Principal{UserID: 9, Role: model.RoleAdmin}
	other := policy.Principal{UserID: 2, Role: model.RoleUser}
	payload := json.RawMessage(`{"type":"trueFalse","correct":false}`)

	if _, err := svc.Create(author, quiz.ID, "q2", payload); err != nil {
		t.Fatalf("author must create: %v", err)
	}
	if _, err := svc.Create(admin, quiz.ID, "q3", payload); !errors.Is(err, util.ErrForbidden) {
		t.Fatalf("admin must not create on another author's quiz, got %v", err)
	}
	if _, err := svc.Create(other, quiz.ID, "q3", payload); !errors.Is(err, util.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestQuestionUpdateAuthorOnly(t *testing.T) {
	svc, quiz := newQuestionService(t)
	questionID := quiz.Questions[0].ID

	author := policy.Principal{UserID: quiz.AuthorID, Role: model.RoleUser}
	admin := policy.Principal{UserID: 9, Role: model.RoleAdmin}
	patch := json.RawMessage(`{"correct":false}`)

	if _, err := svc.Update(admin, questionID, nil, patch); !errors.Is(err, util.ErrForbidden) {
		t.Fatalf("admin must not edit another author's question, got %v", err)
	}

	updated, err := svc.Update(author, questionID, nil, patch)
	if err != nil {
		t.Fatalf("author must edit: %v", err)
	}
	var tf struct {
		Correct *bool `json:"correct"`
	}
	if err := json.Unmarshal(updated.Data, &tf); err != nil || tf.Correct == nil || *tf.Correct {
		t.Fatalf("patch not applied: %s", updated.Data)
	}
}

func TestQuestionDeleteAllowsAdmin(t *testing.T) {
	svc, quiz := newQuestionService(t)
	questionID := quiz.Questions[0].ID

	other := policy.Principal{UserID: 2, Role: model.RoleUser}
	if err := svc.Delete(other, questionID); !errors.Is(err, util.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	admin := policy.Principal{UserID: 9, Role: model.RoleAdmin}
	if err := svc.Delete(admin, questionID); err != nil {
		t.Fatalf("admin must delete: %v", err)
	}
	if _, err := svc.Get(admin, questionID); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
