package handler

import (
	"context"
	"net/http"

	"studentdash/internal/model"
)

type StudentService interface {
	ListStudents(ctx context.Context) ([]model.StudentSummary, error)
}

type StudentHandler struct {
	studentService StudentService
}

func NewStudentHandler(studentService StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentService.ListStudents(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	if students == nil {
		students = []model.StudentSummary{}
	}
	writeJSON(w, http.StatusOK, students)
}
