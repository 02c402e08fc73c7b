package model

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

type Attendance struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	StudentID uint     `gorm:"not null;index" json:"student_id"`
	Student   *Student `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Date      string   `gorm:"index" json:"date"` // YYYY-MM-DD
	Status    string   `json:"status"`
	Subject   string   `json:"subject"`
}

func (Attendance) TableName() string { return "attendance" }

// AttendanceEntry is an attendance record joined with the owning student's name.
type AttendanceEntry struct {
	ID          uint   `json:"id"`
	StudentID   uint   `json:"student_id"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Subject     string `json:"subject"`
	StudentName string `gorm:"column:student_name" json:"student_name"`
}
