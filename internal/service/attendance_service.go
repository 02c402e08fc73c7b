package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studentdash/internal/model"
)

type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

// ListAttendance returns all attendance records with the student's name, newest first.
func (s *AttendanceService) ListAttendance(ctx context.Context) ([]model.AttendanceEntry, error) {
	records := []model.AttendanceEntry{}
	err := s.db.WithContext(ctx).
		Table("attendance AS a").
		Select("a.id, a.student_id, a.date, a.status, a.subject, s.name AS student_name").
		Joins("JOIN students s ON s.id = a.student_id").
		Order("a.date DESC, a.id ASC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}
