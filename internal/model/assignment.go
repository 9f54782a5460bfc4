package model

import "time"

// swagger:model Assignment
type Assignment struct {
	BaseModel
	ClassID     uint      `gorm:"index;not null" json:"classId"`
	AuthorID    uint      `gorm:"index;not null" json:"authorId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	DueBy       time.Time `gorm:"not null" json:"dueBy"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// AssignmentQuiz links a quiz to an assignment. Composite natural key,
// insert-or-ignore semantics.
type AssignmentQuiz struct {
	AssignmentID uint `gorm:"primaryKey;autoIncrement:false" json:"assignmentId"`
	QuizID       uint `gorm:"primaryKey;autoIncrement:false" json:"quizId"`
}

func (AssignmentQuiz) TableName() string {
	return "assignments_to_quizzes"
}
