package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studentdash/internal/model"
)

const seedBatchSize = 500

// GradeSeed and AttendanceSeed refer to students by code so that seed files
// do not depend on surrogate ids.
type GradeSeed struct {
	StudentCode string
	Subject     string
	Score       float64
	Letter      string
	Date        string
}

type AttendanceSeed struct {
	StudentCode string
	Date        string
	Status      string
	Subject     string
}

type SeedSet struct {
	Students   []model.Student
	Grades     []GradeSeed
	Attendance []AttendanceSeed
}

func DefaultSeeds() *SeedSet {
	return &SeedSet{
		Students: []model.Student{
			{Name: "Alice Johnson", StudentCode: "STU001", Class: "Grade 10"},
			{Name: "Bob Martinez", StudentCode: "STU002", Class: "Grade 11"},
			{Name: "Carol White", StudentCode: "STU003", Class: "Grade 10"},
		},
		Grades: []GradeSeed{
			{StudentCode: "STU001", Subject: "Math", Score: 85.5, Letter: "B", Date: "2023-10-01"},
			{StudentCode: "STU002", Subject: "Science", Score: 92.0, Letter: "A", Date: "2023-10-02"},
			{StudentCode: "STU003", Subject: "History", Score: 78.0, Letter: "C", Date: "2023-10-03"},
		},
		Attendance: []AttendanceSeed{
			{StudentCode: "STU001", Date: "2023-10-01", Status: model.StatusPresent, Subject: "Math"},
			{StudentCode: "STU002", Date: "2023-10-02", Status: model.StatusAbsent, Subject: "Science"},
		},
	}
}

// Bootstrap creates the tables if needed and fills every empty table with its
// part of seeds. Tables that already hold rows are left alone, so calling it
// again is a no-op.
func Bootstrap(db *gorm.DB, seeds *SeedSet) error {
	if err := db.AutoMigrate(&model.Student{}, &model.Grade{}, &model.Attendance{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	if seeds == nil {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		empty, err := isEmpty(tx, &model.Student{})
		if err != nil {
			return err
		}
		if empty {
			students := make([]model.Student, len(seeds.Students))
			copy(students, seeds.Students)
			if err := saveBatch(tx, students); err != nil {
				return fmt.Errorf("seed students: %w", err)
			}
			log.Printf("Seeded %d students", len(students))
		}

		ids, err := studentIDsByCode(tx)
		if err != nil {
			return err
		}

		if empty, err = isEmpty(tx, &model.Grade{}); err != nil {
			return err
		}
		if empty {
			var grades []model.Grade
			for _, g := range seeds.Grades {
				id, ok := ids[g.StudentCode]
				if !ok {
					log.Printf("Skipping grade seed for unknown student %s", g.StudentCode)
					continue
				}
				grades = append(grades, model.Grade{StudentID: id, Subject: g.Subject, Score: g.Score, Letter: g.Letter, Date: g.Date})
			}
			if err := saveBatch(tx, grades); err != nil {
				return fmt.Errorf("seed grades: %w", err)
			}
			log.Printf("Seeded %d grades", len(grades))
		}

		if empty, err = isEmpty(tx, &model.Attendance{}); err != nil {
			return err
		}
		if empty {
			var records []model.Attendance
			for _, a := range seeds.Attendance {
				id, ok := ids[a.StudentCode]
				if !ok {
					log.Printf("Skipping attendance seed for unknown student %s", a.StudentCode)
					continue
				}
				records = append(records, model.Attendance{StudentID: id, Date: a.Date, Status: a.Status, Subject: a.Subject})
			}
			if err := saveBatch(tx, records); err != nil {
				return fmt.Errorf("seed attendance: %w", err)
			}
			log.Printf("Seeded %d attendance records", len(records))
		}
		return nil
	})
}

func isEmpty(tx *gorm.DB, m interface{}) (bool, error) {
	var n int64
	if err := tx.Model(m).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count rows: %w", err)
	}
	return n == 0, nil
}

func studentIDsByCode(tx *gorm.DB) (map[string]uint, error) {
	var students []model.Student
	if err := tx.Select("id", "student_id").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("load student ids: %w", err)
	}
	ids := make(map[string]uint, len(students))
	for _, s := range students {
		ids[s.StudentCode] = s.ID
	}
	return ids, nil
}

// saveBatch inserts rows in chunks; rows that collide on a unique key are dropped.
func saveBatch[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, seedBatchSize).Error
}
