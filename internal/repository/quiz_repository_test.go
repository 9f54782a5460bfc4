package repository

import (
	"encoding/json"
	"testing"
	"time"

	"quizhub_backend/internal/model"
)

func seedQuizGraph(t *testing.T, repo *QuizRepository, attemptRepo *AttemptRepository) *model.Quiz {
	t.Helper()

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
	if err := repo.CreateWithQuestions(quiz, questions); err != nil {
		t.Fatalf("CreateWithQuestions: %v", err)
	}

	db := repo.DB
	if err := db.Create(&model.Comment{UserID: 2, QuizID: quiz.ID, Text: "nice"}).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	if err := db.Create(&model.AssignmentQuiz{AssignmentID: 7, QuizID: quiz.ID}).Error; err != nil {
		t.Fatalf("seed link: %v", err)
	}

	now := time.Now()
	attempt := &model.QuizAttempt{UserID: 2, QuizID: quiz.ID, StartedAt: now, FinishedAt: now}
	if err := attemptRepo.Create(attempt); err != nil {
		t.Fatalf("seed attempt: %v", err)
	}
	answers := []model.AttemptAnswer{
		{AttemptID: attempt.ID, QuestionID: quiz.Questions[0].ID, Answer: json.RawMessage(`true`)},
	}
	if err := attemptRepo.BulkCreateAnswers(answers); err != nil {
		t.Fatalf("seed answers: %v", err)
	}
	return quiz
}

func TestCreateWithQuestionsAtomic(t *testing.T) {
	db := testDB(t)
	repo := NewQuizRepository(db, nil)

	quiz := &model.Quiz{
		Title:      "atoms",
		Difficulty: model.DifficultyHard,
		Subject:    "chemistry",
		AuthorID:   1,
		ViewType:   model.ViewUnlisted,
	}
	questions := []model.Question{
		{Title: "q1", Data: json.RawMessage(`{"type":"trueFalse","correct":true}`)},
	}
	if err := repo.CreateWithQuestions(quiz, questions); err != nil {
		t.Fatalf("CreateWithQuestions: %v", err)
	}

	if quiz.ID == 0 {
		t.Fatal("quiz id not assigned")
	}
	if n := count(t, db, &model.Question{}, "quiz_id = ?", quiz.ID); n != 1 {
		t.Fatalf("expected one question row, got %d", n)
	}
}

func TestQuizDeleteCascadeLeavesNoDanglingRows(t *testing.T) {
	db := testDB(t)
	repo := NewQuizRepository(db, nil)
	attemptRepo := NewAttemptRepository(db)

	quiz := seedQuizGraph(t, repo, attemptRepo)

	if err := repo.DeleteCascade(quiz.ID); err != nil {
		t.Fatalf("DeleteCascade: %v", err)
	}

	checks := []struct {
		name  string
		value interface{}
		query string
	}{
		{"quiz", &model.Quiz{}, "id = ?"},
		{"questions", &model.Question{}, "quiz_id = ?"},
		{"comments", &model.Comment{}, "quiz_id = ?"},
		{"assignment links", &model.AssignmentQuiz{}, "quiz_id = ?"},
		{"attempts", &model.QuizAttempt{}, "quiz_id = ?"},
	}
	for _, c := range checks {
		if n := count(t, db, c.value, c.query, quiz.ID); n != 0 {
			t.Fatalf("%s must be gone, %d rows remain", c.name, n)
		}
	}
	if n := count(t, db, &model.AttemptAnswer{}, ""); n != 0 {
		t.Fatalf("attempt answers must be gone, %d rows remain", n)
	}
}

func TestQuizListRestrictsNonAdmins(t *testing.T) {
	db := testDB(t)
	repo := NewQuizRepository(db, nil)

	seed := []model.Quiz{
		{Title: "mine private", Difficulty: model.DifficultyEasy, Subject: "s", AuthorID: 1, ViewType: model.ViewPrivate},
		{Title: "theirs public", Difficulty: model.DifficultyEasy, Subject: "s", AuthorID: 2, ViewType: model.ViewPublic},
		{Title: "theirs private", Difficulty: model.DifficultyEasy, Subject: "s", AuthorID: 2, ViewType: model.ViewPrivate},
		{Title: "theirs unlisted", Difficulty: model.DifficultyEasy, Subject: "s", AuthorID: 2, ViewType: model.ViewUnlisted},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	me := uint(1)
	quizzes, err := repo.List(QuizFilter{RestrictFor: &me}, 0, 50)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("expected own private + foreign public, got %d rows", len(quizzes))
	}
	for _, q := range quizzes {
		if q.AuthorID != me && q.ViewType != model.ViewPublic {
			t.Fatalf("leaked quiz %q", q.Title)
		}
	}
}
