package repository

import (
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.First(&comment, id).Error
	return &comment, err
}

func (r *CommentRepository) ListByQuiz(quizID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.Where("quiz_id = ?", quizID).Order("created_at asc").Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) UpdateText(id uint, text string) error {
	return r.DB.Model(&model.Comment{}).Where("id = ?", id).Update("text", text).Error
}

func (r *CommentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Comment{}, id).Error
}
