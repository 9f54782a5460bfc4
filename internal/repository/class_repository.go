package repository

import (
	"errors"

	"quizhub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) Create(class *model.Class) error {
	return r.DB.Create(class).Error
}

func (r *ClassRepository) FindByID(id uint) (*model.Class, error) {
	var class model.Class
	err := r.DB.First(&class, id).Error
	return &class, err
}

func (r *ClassRepository) List(offset, limit int) ([]model.Class, error) {
	var classes []model.Class
	err := r.DB.Order("id asc").Offset(offset).Limit(limit).Find(&classes).Error
	return classes, err
}

func (r *ClassRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&model.Class{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteCascade removes the class and both membership tables atomically.
func (r *ClassRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_id = ?", id).Delete(&model.StudentClass{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", id).Delete(&model.TeacherClass{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Class{}, id).Error
	})
}

// AddStudent is an idempotent insert: duplicate membership is a no-op, which
// also keeps concurrent identical requests from racing into a uniqueness
// violation.
func (r *ClassRepository) AddStudent(userID, classID uint) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.StudentClass{UserID: userID, ClassID: classID}).Error
}

// RemoveStudent succeeds even when the membership row is absent.
func (r *ClassRepository) RemoveStudent(userID, classID uint) error {
	return r.DB.Where("user_id = ? AND class_id = ?", userID, classID).
		Delete(&model.StudentClass{}).Error
}

func (r *ClassRepository) AddTeacher(userID, classID uint) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.TeacherClass{UserID: userID, ClassID: classID}).Error
}

func (r *ClassRepository) RemoveTeacher(userID, classID uint) error {
	return r.DB.Where("user_id = ? AND class_id = ?", userID, classID).
		Delete(&model.TeacherClass{}).Error
}

// IsStudent reports whether the user is enrolled in the class.
func (r *ClassRepository) IsStudent(userID, classID uint) (bool, error) {
	var membership model.StudentClass
	err := r.DB.Where("user_id = ? AND class_id = ?", userID, classID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
