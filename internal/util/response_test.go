package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizhub_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

func TestFromErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Invalid("title", "is required"), http.StatusBadRequest},
		{"conflict", ErrConflict, http.StatusBadRequest},
		{"invalid reference", ErrInvalidReference, http.StatusBadRequest},
		{"attempt finished", ErrAttemptFinished, http.StatusBadRequest},
		{"empty update", ErrEmptyUpdate, http.StatusBadRequest},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"quiz private", ErrQuizPrivate, http.StatusForbidden},
		{"not in class", ErrNotInClass, http.StatusForbidden},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"entity not found", ErrQuizNotFound, http.StatusNotFound},
		{"gorm not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			FromError(c, tc.err)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestEntityNotFoundWrapsNotFound(t *testing.T) {
	for _, err := range []error{
		ErrUserNotFound, ErrQuizNotFound, ErrQuestionNotFound, ErrCommentNotFound,
		ErrClassNotFound, ErrAssignmentNotFound, ErrAttemptNotFound, ErrAnswerNotFound,
	} {
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("%v must match ErrNotFound", err)
		}
	}
}
