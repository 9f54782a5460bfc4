package model

import "encoding/json"

// AttemptAnswer stores a per-question answer of an attempt. The payload shape
// follows the question's variant; first write wins on conflict.
type AttemptAnswer struct {
	AttemptID  uint            `gorm:"primaryKey;autoIncrement:false" json:"attemptId"`
	QuestionID uint            `gorm:"primaryKey;autoIncrement:false" json:"questionId"`
	Answer     json.RawMessage `gorm:"type:json;not null" json:"answer"`
}

func (AttemptAnswer) TableName() string {
	return "attempt_answers"
}
