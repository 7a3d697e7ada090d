package api

// StudentProfile представляет профиль студента
// Возвращается сервером при логине и кэшируется клиентом для восстановления сессии
type StudentProfile struct {
	UserID       string `json:"user_id"`                 // UUID пользователя
	Username     string `json:"username"`                // отображаемое имя
	Email        string `json:"email"`                   // email
	Role         string `json:"role"`                    // роль пользователя ("student")
	Department   string `json:"department,omitempty"`    // кафедра
	Branch       string `json:"branch,omitempty"`        // направление
	Section      string `json:"section,omitempty"`       // группа
	ProfileImage string `json:"profile_image,omitempty"` // URL аватара
	Semester     int    `json:"semester,omitempty"`      // номер семестра
}

// DashboardOverview сводка главной страницы студента
type DashboardOverview struct {
	InternalMarks        []InternalMark `json:"internal_marks"`
	AttendancePercentage float64        `json:"attendance_percentage"`
	TotalClasses         int            `json:"total_classes"`
	AttendedClasses      int            `json:"attended_classes"`
	CertificatesCount    int            `json:"certificates_count"`
	LeaveRequestsCount   int            `json:"leave_requests_count"`
}

// AttendanceRecord запись посещаемости по предмету
type AttendanceRecord struct {
	Subject         string  `json:"subject"`
	TotalClasses    int     `json:"total_classes"`
	AttendedClasses int     `json:"attended_classes"`
	Percentage      float64 `json:"percentage"`
}

// InternalMark результат внутреннего теста по предмету
type InternalMark struct {
	Subject    string `json:"subject"`
	TestNumber int    `json:"test_number"`
	Mark       int    `json:"mark"`
	MaxMark    int    `json:"max_mark"`
}

// Certificate загруженный сертификат студента
type Certificate struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	File       string `json:"file,omitempty"`
	UploadedAt string `json:"uploaded_at"`
}

// LeaveRequest заявка на отсутствие
// Status: PENDING | APPROVED | REJECTED
type LeaveRequest struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
}

// ApplyLeaveRequest тело запроса на подачу заявки
type ApplyLeaveRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// TimetableEntry занятие в расписании
type TimetableEntry struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Subject   string `json:"subject"`
	Faculty   string `json:"faculty,omitempty"`
	Room      string `json:"room,omitempty"`
}

// StudyMaterial учебный материал, опубликованный преподавателем
type StudyMaterial struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	File       string `json:"file,omitempty"`
	UploadedAt string `json:"uploaded_at"`
}

// Announcement объявление кафедры или администрации
type Announcement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// Notification персональное уведомление студента
type Notification struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// Assignment домашнее задание с дедлайном
type Assignment struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Title    string `json:"title"`
	DueDate  string `json:"due_date"`
	MaxMark  int    `json:"max_mark,omitempty"`
	Uploaded bool   `json:"uploaded"`
}
