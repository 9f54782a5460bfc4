package service

import (
	"fmt"
	"strings"
	"testing"

	"quizhub_backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an isolated in-memory database per test and migrates the full
// schema, mirroring the repository suite's harness.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.Comment{},
		&model.Class{},
		&model.StudentClass{},
		&model.TeacherClass{},
		&model.Assignment{},
		&model.AssignmentQuiz{},
		&model.QuizAttempt{},
		&model.AttemptAnswer{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
