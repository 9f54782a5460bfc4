package model

import "time"

// QuizAttempt records one run of a quiz by a user. An attempt starts with
// finishedAt == startedAt and score 0; the finish transition sets both
// finishedAt and score exactly once.
// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	UserID       uint      `gorm:"index;not null" json:"userId"`
	QuizID       uint      `gorm:"index;not null" json:"quizId"`
	AssignmentID *uint     `gorm:"index" json:"assignmentId,omitempty"`
	StartedAt    time.Time `gorm:"not null" json:"startedAt"`
	FinishedAt   time.Time `gorm:"not null" json:"finishedAt"`
	Score        int       `gorm:"not null;default:0" json:"score"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// Finished reports whether the finish transition already ran.
func (a *QuizAttempt) Finished() bool {
	return a.FinishedAt.After(a.StartedAt)
}
