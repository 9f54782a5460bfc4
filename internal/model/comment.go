package model

// swagger:model Comment
type Comment struct {
	BaseModel
	UserID uint   `gorm:"index;not null" json:"userId"`
	QuizID uint   `gorm:"index;not null" json:"quizId"`
	Text   string `gorm:"type:text;not null" json:"text"`
}

func (Comment) TableName() string {
	return "comments"
}
