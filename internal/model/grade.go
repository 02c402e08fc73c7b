package model

type Grade struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	StudentID uint     `gorm:"not null;index" json:"student_id"`
	Student   *Student `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Subject   string   `json:"subject"`
	Score     float64  `json:"score"`
	Letter    string   `gorm:"column:grade" json:"grade"`
	Date      string   `gorm:"index" json:"date"` // YYYY-MM-DD
}

func (Grade) TableName() string { return "grades" }

// GradeEntry is a grade joined with the owning student's name.
type GradeEntry struct {
	ID          uint    `json:"id"`
	StudentID   uint    `json:"student_id"`
	Subject     string  `json:"subject"`
	Score       float64 `json:"score"`
	Letter      string  `gorm:"column:grade" json:"grade"`
	Date        string  `json:"date"`
	StudentName string  `gorm:"column:student_name" json:"student_name"`
}
