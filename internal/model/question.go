package model

import "encoding/json"

// Question stores one quiz question. Data holds the typed payload as JSON;
// its "type" discriminant never changes after creation (see internal/schema).
// swagger:model Question
type Question struct {
	BaseModel
	QuizID uint            `gorm:"index" json:"quizId"`
	Title  string          `gorm:"size:255;not null" json:"title"`
	Data   json.RawMessage `gorm:"type:json;not null" json:"data"`
}

func (Question) TableName() string {
	return "questions"
}
