package database

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"studentdash/internal/model"
)

const (
	StudentsFile   = "students.csv"
	GradesFile     = "grades.csv"
	AttendanceFile = "attendance.csv"
)

// LoadSeedDir builds a seed set from the CSV files in dir. A file that does
// not exist keeps the built-in rows for that table.
//
//	students.csv   name,student_id,class
//	grades.csv     student_id,subject,score,grade,date
//	attendance.csv student_id,date,status,subject
func LoadSeedDir(dir string) (*SeedSet, error) {
	seeds := DefaultSeeds()

	err := readSeedFile(filepath.Join(dir, StudentsFile), 3, func(rec []string) error {
		if rec[0] == "" || rec[1] == "" {
			return errors.New("name and student_id are required")
		}
		seeds.Students = append(seeds.Students, model.Student{Name: rec[0], StudentCode: rec[1], Class: rec[2]})
		return nil
	}, func() { seeds.Students = nil })
	if err != nil {
		return nil, err
	}

	err = readSeedFile(filepath.Join(dir, GradesFile), 5, func(rec []string) error {
		score, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return fmt.Errorf("invalid score %q", rec[2])
		}
		seeds.Grades = append(seeds.Grades, GradeSeed{StudentCode: rec[0], Subject: rec[1], Score: score, Letter: rec[3], Date: rec[4]})
		return nil
	}, func() { seeds.Grades = nil })
	if err != nil {
		return nil, err
	}

	err = readSeedFile(filepath.Join(dir, AttendanceFile), 4, func(rec []string) error {
		seeds.Attendance = append(seeds.Attendance, AttendanceSeed{StudentCode: rec[0], Date: rec[1], Status: strings.ToLower(rec[2]), Subject: rec[3]})
		return nil
	}, func() { seeds.Attendance = nil })
	if err != nil {
		return nil, err
	}

	return seeds, nil
}

// readSeedFile calls reset once the file is known to exist, then row for each
// record after the header.
func readSeedFile(path string, fields int, row func([]string) error, reset func()) error {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer file.Close()

	reset()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = fields
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil { // header
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	count := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if err := row(record); err != nil {
			return fmt.Errorf("%s row %d: %w", filepath.Base(path), line, err)
		}
		count++
	}

	log.Printf("Loaded %d seed rows from %s", count, path)
	return nil
}
