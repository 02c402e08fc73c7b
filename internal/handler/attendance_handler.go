package handler

import (
	"context"
	"net/http"

	"studentdash/internal/model"
)

type AttendanceService interface {
	ListAttendance(ctx context.Context) ([]model.AttendanceEntry, error)
}

type AttendanceHandler struct {
	attendanceService AttendanceService
}

func NewAttendanceHandler(attendanceService AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

func (h *AttendanceHandler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListAttendance(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	if records == nil {
		records = []model.AttendanceEntry{}
	}
	writeJSON(w, http.StatusOK, records)
}
