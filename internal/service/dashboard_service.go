package service

import (
	"context"
	"fmt"
	"math"

	"gorm.io/gorm"

	"studentdash/internal/model"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Summary returns the headline numbers. Both averages are rounded to one
// decimal and are 0 when there is nothing to average.
func (s *DashboardService) Summary(ctx context.Context) (*model.DashboardStats, error) {
	db := s.db.WithContext(ctx)
	stats := &model.DashboardStats{}

	if err := db.Model(&model.Student{}).Count(&stats.TotalStudents).Error; err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}

	var avg float64
	if err := db.Model(&model.Grade{}).Select("COALESCE(AVG(score), 0)").Scan(&avg).Error; err != nil {
		return nil, fmt.Errorf("average score: %w", err)
	}
	stats.AvgScore = round1(avg)

	var present, total int64
	if err := db.Model(&model.Attendance{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count attendance: %w", err)
	}
	if err := db.Model(&model.Attendance{}).Where("status = ?", model.StatusPresent).Count(&present).Error; err != nil {
		return nil, fmt.Errorf("count present: %w", err)
	}
	if total > 0 {
		stats.AttendanceRate = round1(float64(present) / float64(total) * 100)
	}

	return stats, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
