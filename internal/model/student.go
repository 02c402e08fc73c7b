package model

// Student is a row in the roster. StudentCode is the school-issued identifier
// (STU001, ...) and is exposed as "student_id" on the wire.
type Student struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	StudentCode string `gorm:"column:student_id;uniqueIndex;not null" json:"student_id"`
	Class       string `gorm:"column:class;not null" json:"class"`
}

func (Student) TableName() string { return "students" }

// StudentSummary is a student annotated with the mean of their grade scores.
type StudentSummary struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	StudentCode string  `gorm:"column:student_id" json:"student_id"`
	Class       string  `gorm:"column:class" json:"class"`
	AvgScore    float64 `gorm:"column:avg_score" json:"avg_score"`
}
