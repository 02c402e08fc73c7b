package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studentdash/internal/model"
)

type StudentService struct {
	db *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{db: db}
}

// ListStudents returns every student with the mean of their grades, 0 for
// students without any, ordered by name.
func (s *StudentService) ListStudents(ctx context.Context) ([]model.StudentSummary, error) {
	students := []model.StudentSummary{}
	err := s.db.WithContext(ctx).
		Table("students AS s").
		Select("s.id, s.name, s.student_id, s.class, COALESCE(AVG(g.score), 0) AS avg_score").
		Joins("LEFT JOIN grades g ON g.student_id = s.id").
		Group("s.id, s.name, s.student_id, s.class").
		Order("s.name ASC, s.id ASC").
		Scan(&students).Error
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}
