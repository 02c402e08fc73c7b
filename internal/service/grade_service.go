package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studentdash/internal/model"
)

type GradeService struct {
	db *gorm.DB
}

func NewGradeService(db *gorm.DB) *GradeService {
	return &GradeService{db: db}
}

// ListGrades returns all grades with the student's name, newest first.
func (s *GradeService) ListGrades(ctx context.Context) ([]model.GradeEntry, error) {
	grades := []model.GradeEntry{}
	err := s.db.WithContext(ctx).
		Table("grades AS g").
		Select("g.id, g.student_id, g.subject, g.score, g.grade, g.date, s.name AS student_name").
		Joins("JOIN students s ON s.id = g.student_id").
		Order("g.date DESC, g.id ASC").
		Scan(&grades).Error
	if err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	return grades, nil
}
