package student

import (
	"context"
	"fmt"
	"net/http"

	pkgapi "github.com/iudanet/campusctl/pkg/api"
)

//go:generate moq -out requester_mock.go . Requester

// Requester defines the authenticated transport the facade delegates to
type Requester interface {
	DoAuthenticated(ctx context.Context, method, path string, body, result any) error
}

// Service типизированный фасад над эндпоинтами студента.
// Чистое отображение эндпоинт → форма данных: вся логика токенов и повторов
// живёт в транспорте, сюда не просачивается.
type Service struct {
	api Requester
}

// NewService создает фасад поверх аутентифицированного транспорта
func NewService(api Requester) *Service {
	return &Service{api: api}
}

// Dashboard возвращает сводку главной страницы
func (s *Service) Dashboard(ctx context.Context) (*pkgapi.DashboardOverview, error) {
	var overview pkgapi.DashboardOverview
	if err := s.api.DoAuthenticated(ctx, http.MethodGet, "/student/dashboard/", nil, &overview); err != nil {
		return nil, fmt.Errorf("dashboard request failed: %w", err)
	}
	return &overview, nil
}

// Attendance возвращает посещаемость по предметам
func (s *Service) Attendance(ctx context.Context) ([]pkgapi.AttendanceRecord, error) {
	var records []pkgapi.AttendanceRecord
	if err := s.api.DoAuthenticated(ctx, http.MethodGet, "/student/attendance/", nil, &records); err != nil {
		return nil, fmt.Errorf("attendance request failed: %w", err)
	}
	return records, nil
}

// InternalMarks возвращает результаты внутренних тестов
func (s *Service) InternalMarks(ctx context.Context) ([]pkgapi.InternalMark, error) {
	var marks []pkgapi.InternalMark
	if err := s.api.DoAuthenticated(ctx, http.MethodGet, "/student/internal-marks/", nil, &marks); err != nil {
		return nil, fmt.Errorf("internal marks request failed: %w", err)
	}
	return marks, nil
}

// Certificates возвращает загруженные сертификаты
func (s *Service) Certificates(ctx context.Context) ([]pkgapi.Certificate, error) {
	var certs []pkgapi.Certificate
	if err := s.api.DoAuthenticated(ctx, http.MethodGet, "/student/certificates/", nil, &certs); err != nil {
		return nil, fmt.Errorf("certificates request failed: %w", err)
	}
	return certs, nil
}

// LeaveRequests возвращает заявки на отсутствие
func (s *Service) LeaveRequests(ctx context.Context) ([]pkgapi.LeaveRequest, error) {
	var requests []pkgapi.LeaveRequest
	if err := s.api.DoAuthenticated(ctx, http.MethodGet, "/student/leave-requests/", nil, &requests); err != nil {
		return nil, fmt.Errorf("leave requests request failed: %w", err)
	}
	return requests, nil
}

// ApplyLeave подает новую заявку на отсутствие
func (s *Service) ApplyLeave(ctx context.Context, req pkgapi.ApplyLeaveRequest) (*pkgapi.LeaveRequest, error) {
	var created pkgapi.LeaveRequest
	if err := s.api.DoAuthenticated(ctx, http.MethodPost, "/student/apply-leave/", req, &created); err != nil {
		return nil, fmt.Errorf("apply leave request failed: %w", err)
	}
	return &created, nil
}

// Timetable возвращает расписание занятий
func (s *Service) Timetable(ctx context.Context) ([]pkgapi.TimetableEntry, error) {
	var entries []pkgapi.TimetableEntry
	if err := s.api.DoAuthenticated(ctx, http.MethodGet, "/student/timetable/", nil, &entries); err != nil {
		return nil, fmt.Errorf("timetable request failed: %w", err)
	}
	return entries, nil
}

// StudyMaterials возвращает учебные материалы
func (s *Service) StudyMaterials(ctx context.Context) ([]pkgapi.StudyMaterial, error) {
	var materials []pkgapi.StudyMaterial
	if err := s.api.DoAuthenticated(ctx, http.MethodGet, "/student/study-materials/", nil, &materials); err != nil {
		return nil, fmt.Errorf("study materials request failed: %w", err)
	}
	return materials, nil
}

// Announcements возвращает объявления
func (s *Service) Announcements(ctx context.Context) ([]pkgapi.Announcement, error) {
	var items []pkgapi.Announcement
	if err := s.api.DoAuthenticated(ctx, http.MethodGet, "/student/announcements/", nil, &items); err != nil {
		return nil, fmt.Errorf("announcements request failed: %w", err)
	}
	return items, nil
}

// Notifications возвращает персональные уведомления
func (s *Service) Notifications(ctx context.Context) ([]pkgapi.Notification, error) {
	var items []pkgapi.Notification
	if err := s.api.DoAuthenticated(ctx, http.MethodGet, "/student/notifications/", nil, &items); err != nil {
		return nil, fmt.Errorf("notifications request failed: %w", err)
	}
	return items, nil
}

// Assignments возвращает домашние задания
func (s *Service) Assignments(ctx context.Context) ([]pkgapi.Assignment, error) {
	var items []pkgapi.Assignment
	if err := s.api.DoAuthenticated(ctx, http.MethodGet, "/student/assignments/", nil, &items); err != nil {
		return nil, fmt.Errorf("assignments request failed: %w", err)
	}
	return items, nil
}

// Profile возвращает актуальный профиль с сервера
func (s *Service) Profile(ctx context.Context) (*pkgapi.StudentProfile, error) {
	var profile pkgapi.StudentProfile
	if err := s.api.DoAuthenticated(ctx, http.MethodGet, "/student/profile/", nil, &profile); err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &profile, nil
}
