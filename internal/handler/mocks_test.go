package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studentdash/internal/model"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) ListStudents(ctx context.Context) ([]model.StudentSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudentSummary), args.Error(1)
}

type MockGradeService struct {
	mock.Mock
}

func (m *MockGradeService) ListGrades(ctx context.Context) ([]model.GradeEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GradeEntry), args.Error(1)
}

type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) ListAttendance(ctx context.Context) ([]model.AttendanceEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AttendanceEntry), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
