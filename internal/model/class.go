package model

// swagger:model Class
type Class struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	AuthorID uint   `gorm:"index;not null" json:"authorId"`
}

func (Class) TableName() string {
	return "classes"
}

// StudentClass links a student to a class. Composite natural key, insert is
// conflict-tolerant (duplicate membership is a no-op).
type StudentClass struct {
	UserID  uint `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	ClassID uint `gorm:"primaryKey;autoIncrement:false" json:"classId"`
}

func (StudentClass) TableName() string {
	return "students_to_classes"
}

// TeacherClass links a teaching user to a class.
type TeacherClass struct {
	UserID  uint `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	ClassID uint `gorm:"primaryKey;autoIncrement:false" json:"classId"`
}

func (TeacherClass) TableName() string {
	return "teachers_to_classes"
}
