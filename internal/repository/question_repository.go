package repository

import (
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, id).Error
	return &question, err
}

// QuestionOwner resolves a question together with the author of its quiz, so
// ownership checks run off a single join.
type QuestionOwner struct {
	Question   model.Question
	QuizAuthor uint
}

func (r *QuestionRepository) FindWithQuizAuthor(id uint) (*QuestionOwner, error) {
	var question model.Question
	if err := r.DB.First(&question, id).Error; err != nil {
		return nil, err
	}

	var authorID uint
	err := r.DB.Model(&model.Quiz{}).
		Select("author_id").
		Where("id = ?", question.QuizID).
		Scan(&authorID).Error
	if err != nil {
		return nil, err
	}

	return &QuestionOwner{Question: question, QuizAuthor: authorID}, nil
}

func (r *QuestionRepository) ListByQuiz(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("quiz_id = ?", quizID).Order("id asc").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&model.Question{}).Where("id = ?", id).Updates(updates).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}
