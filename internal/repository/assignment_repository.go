package repository

import (
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

// CreateWithQuizzes inserts the assignment row and its quiz links in one
// transaction.
func (r *AssignmentRepository) CreateWithQuizzes(assignment *model.Assignment, quizIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(assignment).Error; err != nil {
			return err
		}
		if len(quizIDs) == 0 {
			return nil
		}
		links := make([]model.AssignmentQuiz, 0, len(quizIDs))
		for _, quizID := range quizIDs {
			links = append(links, model.AssignmentQuiz{
				AssignmentID: assignment.ID,
				QuizID:       quizID,
			})
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	})
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.DB.First(&assignment, id).Error
	return &assignment, err
}

func (r *AssignmentRepository) ListByClass(classID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Where("class_id = ?", classID).Order("due_by asc").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&model.Assignment{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteCascade removes the assignment and its quiz links atomically.
func (r *AssignmentRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", id).Delete(&model.AssignmentQuiz{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Assignment{}, id).Error
	})
}

func (r *AssignmentRepository) ListQuizLinks(assignmentID uint) ([]model.AssignmentQuiz, error) {
	var links []model.AssignmentQuiz
	err := r.DB.Where("assignment_id = ?", assignmentID).Find(&links).Error
	return links, err
}

// LinkQuizzes is an idempotent bulk insert of assignment-quiz links.
func (r *AssignmentRepository) LinkQuizzes(assignmentID uint, quizIDs []uint) error {
	if len(quizIDs) == 0 {
		return nil
	}
	links := make([]model.AssignmentQuiz, 0, len(quizIDs))
	for _, quizID := range quizIDs {
		links = append(links, model.AssignmentQuiz{
			AssignmentID: assignmentID,
			QuizID:       quizID,
		})
	}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}

func (r *AssignmentRepository) UnlinkQuiz(assignmentID, quizID uint) error {
	return r.DB.Where("assignment_id = ? AND quiz_id = ?", assignmentID, quizID).
		Delete(&model.AssignmentQuiz{}).Error
}
