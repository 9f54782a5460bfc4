package repository

import (
	"time"

	"quizhub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) FindByID(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.First(&attempt, id).Error
	return &attempt, err
}

// List returns attempts constrained to userID when it is non-zero, optionally
// filtered by quiz.
func (r *AttemptRepository) List(userID, quizID uint, offset, limit int) ([]model.QuizAttempt, error) {
	query := r.DB.Model(&model.QuizAttempt{})
	if userID > 0 {
		query = query.Where("user_id = ?", userID)
	}
	if quizID > 0 {
		query = query.Where("quiz_id = ?", quizID)
	}

	var attempts []model.QuizAttempt
	err := query.Order("started_at desc").Offset(offset).Limit(limit).Find(&attempts).Error
	return attempts, err
}

// Finish records the finish transition; this is the only write path that
// touches score.
func (r *AttemptRepository) Finish(id uint, finishedAt time.Time, score int) error {
	return r.DB.Model(&model.QuizAttempt{}).Where("id = ?", id).Updates(map[string]interface{}{
		"finished_at": finishedAt,
		"score":       score,
	}).Error
}

// DeleteCascade removes the attempt and its answers atomically.
func (r *AttemptRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attempt_id = ?", id).Delete(&model.AttemptAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuizAttempt{}, id).Error
	})
}

func (r *AttemptRepository) ListAnswers(attemptID uint) ([]model.AttemptAnswer, error) {
	var answers []model.AttemptAnswer
	err := r.DB.Where("attempt_id = ?", attemptID).Find(&answers).Error
	return answers, err
}

// BulkCreateAnswers inserts answer rows with insert-or-ignore semantics:
// on a composite-key conflict the first write wins.
func (r *AttemptRepository) BulkCreateAnswers(answers []model.AttemptAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&answers).Error
}

func (r *AttemptRepository) UpdateAnswer(attemptID, questionID uint, answer []byte) error {
	return r.DB.Model(&model.AttemptAnswer{}).
		Where("attempt_id = ? AND question_id = ?", attemptID, questionID).
		Update("answer", answer).Error
}

func (r *AttemptRepository) DeleteAnswer(attemptID, questionID uint) error {
	return r.DB.Where("attempt_id = ? AND question_id = ?", attemptID, questionID).
		Delete(&model.AttemptAnswer{}).Error
}
