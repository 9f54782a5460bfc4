package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quizhub_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const quizCacheTTL = 5 * time.Minute

type QuizRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewQuizRepository(db *gorm.DB, rdb *redis.Client) *QuizRepository {
	return &QuizRepository{DB: db, Redis: rdb}
}

// QuizFilter narrows a listing. Zero values mean "no filter"; Search matches
// title or description case-insensitively. RestrictFor limits visibility for
// non-admin principals to public quizzes plus their own.
type QuizFilter struct {
	Subject     string
	Difficulty  string
	ViewType    string
	AuthorID    uint
	Search      string
	RestrictFor *uint
}

func quizCacheKey(id uint) string {
	return fmt.Sprintf("quiz:%d", id)
}

// CreateWithQuestions inserts the quiz row and all question rows as one
// transaction; a failure anywhere rolls everything back.
func (r *QuizRepository) CreateWithQuestions(quiz *model.Quiz, questions []model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuizID = quiz.ID
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		quiz.Questions = questions
		return nil
	})
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

// FindByIDWithQuestions reads through the redis cache when available.
func (r *QuizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	ctx := context.Background()
	if r.Redis != nil {
		if cached, err := r.Redis.Get(ctx, quizCacheKey(id)).Bytes(); err == nil {
			var quiz model.Quiz
			if json.Unmarshal(cached, &quiz) == nil {
				return &quiz, nil
			}
		}
	}

	var quiz model.Quiz
	if err := r.DB.Preload("Questions").First(&quiz, id).Error; err != nil {
		return nil, err
	}

	if r.Redis != nil {
		if payload, err := json.Marshal(&quiz); err == nil {
			r.Redis.Set(ctx, quizCacheKey(id), payload, quizCacheTTL)
		}
	}
	return &quiz, nil
}

func (r *QuizRepository) InvalidateCache(id uint) {
	if r.Redis != nil {
		r.Redis.Del(context.Background(), quizCacheKey(id))
	}
}

func (r *QuizRepository) List(filter QuizFilter, offset, limit int) ([]model.Quiz, error) {
	query := r.DB.Model(&model.Quiz{})

	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.ViewType != "" {
		query = query.Where("view_type = ?", filter.ViewType)
	}
	if filter.AuthorID > 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("(LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?))", term, term)
	}
	if filter.RestrictFor != nil {
		query = query.Where("(view_type = ? OR author_id = ?)", model.ViewPublic, *filter.RestrictFor)
	}

	var quizzes []model.Quiz
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if err := r.DB.Model(&model.Quiz{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return err
	}
	r.InvalidateCache(id)
	return nil
}

// DeleteCascade removes the quiz and everything hanging off it (comments,
// questions, assignment links, attempts and their answers) atomically.
func (r *QuizRepository) DeleteCascade(id uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		attemptIDs := tx.Model(&model.QuizAttempt{}).Select("id").Where("quiz_id = ?", id)
		if err := tx.Where("attempt_id IN (?)", attemptIDs).Delete(&model.AttemptAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.QuizAttempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.AssignmentQuiz{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
	if err != nil {
		return err
	}
	r.InvalidateCache(id)
	return nil
}
