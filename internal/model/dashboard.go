package model

type DashboardStats struct {
	TotalStudents  int64   `json:"total_students"`
	AvgScore       float64 `json:"avg_score"`
	AttendanceRate float64 `json:"attendance_rate"`
}
