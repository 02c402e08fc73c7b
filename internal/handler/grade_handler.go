package handler

import (
	"context"
	"net/http"

	"studentdash/internal/model"
)

type GradeService interface {
	ListGrades(ctx context.Context) ([]model.GradeEntry, error)
}

type GradeHandler struct {
	gradeService GradeService
}

func NewGradeHandler(gradeService GradeService) *GradeHandler {
	return &GradeHandler{gradeService: gradeService}
}

func (h *GradeHandler) ListGrades(w http.ResponseWriter, r *http.Request) {
	grades, err := h.gradeService.ListGrades(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	if grades == nil {
		grades = []model.GradeEntry{}
	}
	writeJSON(w, http.StatusOK, grades)
}
