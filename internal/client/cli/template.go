package cli

const usageText = `
CampusCtl Client

Usage:
  campusctl [OPTIONS] COMMAND

Options:
  --version      Show version information
  --server URL   Server URL (default: http://localhost:8000/api)
  --db PATH      Path to local database (default: campusctl.db)

Server URL Priority (highest to lowest):
  1. --server command line flag
  2. CAMPUSCTL_SERVER environment variable
  3. URL saved with 'campusctl server <url>'
  4. Built-in default

Commands:
  login               Login to the student portal
  logout              Logout and clear the local session
  status              Show authentication status
  server [URL]        Show or set the server URL

  dashboard           Show the dashboard overview
  attendance          Show attendance by subject
  marks               Show internal test marks
  timetable           Show the class timetable
  materials           List study materials
  assignments         List assignments
  certificates        List uploaded certificates
  leave               List leave requests
  apply-leave         Submit a new leave request
  announcements       List announcements
  notifications       List personal notifications
  profile             Show the student profile

Examples:
  campusctl login
  campusctl status
  campusctl server https://portal.example.edu/api
  campusctl attendance
  campusctl apply-leave
`

const dashboardTemplate = `
=== Dashboard ===

Attendance: {{printf "%.1f" .AttendancePercentage}}% ({{.AttendedClasses}}/{{.TotalClasses}} classes)
Certificates:   {{.CertificatesCount}}
Leave requests: {{.LeaveRequestsCount}}
{{- if .InternalMarks }}

Recent internal marks:
{{- range .InternalMarks }}
- {{ .Subject }} (test {{ .TestNumber }}): {{ .Mark }}/{{ .MaxMark }}
{{- end }}
{{- end }}
`

const attendanceTemplate = `
=== Attendance ===

{{- if eq (len .) 0 }}
No attendance records found.
{{ else }}
{{- range . }}
- {{ .Subject }}: {{printf "%.1f" .Percentage}}% ({{.AttendedClasses}}/{{.TotalClasses}})
{{- end }}
{{ end }}
`

const marksTemplate = `
=== Internal Marks ===

{{- if eq (len .) 0 }}
No internal marks published yet.
{{ else }}
{{- range . }}
- {{ .Subject }} (test {{ .TestNumber }}): {{ .Mark }}/{{ .MaxMark }}
{{- end }}
{{ end }}
`

const leaveTemplate = `
=== Leave Requests ===

{{- if eq (len .) 0 }}
No leave requests found.

Use 'campusctl apply-leave' to submit one.
{{ else }}
Found {{len .}} request(s):

{{- range . }}
- {{ .StartDate }} .. {{ .EndDate }} [{{ .Status }}]
   Reason: {{ .Reason }}

{{- end }}
{{- end }}
`

const timetableTemplate = `
=== Timetable ===

{{- if eq (len .) 0 }}
No timetable entries found.
{{ else }}
{{- range . }}
- {{ .Day }} {{ .StartTime }}-{{ .EndTime }}: {{ .Subject }}
  {{- if .Faculty }} ({{ .Faculty }}){{ end }}
  {{- if .Room }} room {{ .Room }}{{ end }}
{{- end }}
{{ end }}
`

const materialsTemplate = `
=== Study Materials ===

{{- if eq (len .) 0 }}
No study materials published yet.
{{ else }}
Found {{len .}} material(s):

{{- range . }}
- {{ .Title }} ({{ .Subject }})
   Uploaded: {{ .UploadedAt }}
   {{- if .File }}
   File:     {{ .File }}
   {{- end }}

{{- end }}
{{- end }}
`

const assignmentsTemplate = `
=== Assignments ===

{{- if eq (len .) 0 }}
No assignments found.
{{ else }}
{{- range . }}
- {{ .Title }} ({{ .Subject }})
   Due: {{ .DueDate }}{{ if .Uploaded }} [submitted]{{ end }}
{{- end }}
{{ end }}
`

const certificatesTemplate = `
=== Certificates ===

{{- if eq (len .) 0 }}
No certificates uploaded yet.
{{ else }}
Found {{len .}} certificate(s):

{{- range . }}
- {{ .Title }}
   Uploaded: {{ .UploadedAt }}

{{- end }}
{{- end }}
`

const announcementsTemplate = `
=== Announcements ===

{{- if eq (len .) 0 }}
No announcements.
{{ else }}
{{- range . }}
- {{ .Title }} ({{ .CreatedAt }})
   {{ .Body }}

{{- end }}
{{- end }}
`

const notificationsTemplate = `
=== Notifications ===

{{- if eq (len .) 0 }}
No notifications.
{{ else }}
{{- range . }}
- {{ if .Read }} {{ else }}*{{ end }} {{ .Message }} ({{ .CreatedAt }})
{{- end }}
{{ end }}
`

const profileTemplate = `
=== Student Profile ===

Username:   {{.Username}}
Email:      {{.Email}}
{{- if .Department }}
Department: {{.Department}}
{{- end }}
{{- if .Branch }}
Branch:     {{.Branch}}
{{- end }}
{{- if .Section }}
Section:    {{.Section}}
{{- end }}
{{- if .Semester }}
Semester:   {{.Semester}}
{{- end }}
`
