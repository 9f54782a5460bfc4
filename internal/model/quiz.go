package model

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type ViewType string

const (
	ViewPublic   ViewType = "public"
	ViewPrivate  ViewType = "private"
	ViewUnlisted ViewType = "unlisted"
)

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Difficulty  Difficulty `gorm:"size:10;not null" json:"difficulty"`
	Subject     string     `gorm:"size:100;not null" json:"subject"`
	AuthorID    uint       `gorm:"index;not null" json:"authorId"`
	ViewType    ViewType   `gorm:"size:10;not null" json:"viewType"`
	Questions   []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
