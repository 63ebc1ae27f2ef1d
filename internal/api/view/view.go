package view

import (
	"embed"
	"html/template"
	"net/url"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/model"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// Parse parses every embedded template once. Page templates are looked up
// by file name, e.g. "dashboard.html".
func Parse() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// FuncMap helpers available to every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"loading":     Loading,
		"empty":       Empty,
		"errorBanner": ErrorBanner,
		"statusClass": StatusClass,
		"pathEscape":  url.PathEscape,
	}
}

// ── presentational helpers ──

// LoadingState carries nothing; the indicator always renders the same.
type LoadingState struct{}

func Loading() LoadingState { return LoadingState{} }

// EmptyState placeholder for an empty list. Hint is optional.
type EmptyState struct {
	Message string
	Hint    string
}

func Empty(message, hint string) EmptyState {
	return EmptyState{Message: message, Hint: hint}
}

// ErrorState error banner. The retry link is omitted when RetryURL is empty.
type ErrorState struct {
	Message  string
	RetryURL string
}

func ErrorBanner(message, retryURL string) ErrorState {
	return ErrorState{Message: message, RetryURL: retryURL}
}

// StatusClass css class of an attendance status badge.
func StatusClass(status model.AttendanceStatus) string {
	if status == model.StatusPresent {
		return "badge badge-present"
	}
	return "badge badge-absent"
}

// Card one dashboard figure.
type Card struct {
	Label string
	Value int
	Href  string
}

// DashboardCards lays the summary out as the four dashboard cards.
func DashboardCards(s model.DashboardSummary) []Card {
	return []Card{
		{Label: "Total Employees", Value: s.TotalEmployees, Href: "/employees"},
		{Label: "Attendance Records", Value: s.TotalAttendanceRecords, Href: "/attendance"},
		{Label: "Present Days", Value: s.TotalPresent},
		{Label: "Absent Days", Value: s.TotalAbsent},
	}
}

// ── page models ──

// Page is handed to every page template.
type Page struct {
	Title     string
	Nav       string
	RequestID string
	Data      any
}

type DashboardPage struct {
	View  service.DashboardView
	Cards []Card
}

func NewDashboardPage(v service.DashboardView) DashboardPage {
	p := DashboardPage{View: v}
	if v.Summary.IsReady() {
		p.Cards = DashboardCards(v.Summary.Data)
	}
	return p
}

type EmployeesPage struct {
	View service.EmployeesView
}

type AttendancePage struct {
	View     service.AttendanceView
	Statuses []model.AttendanceStatus
}

func NewAttendancePage(v service.AttendanceView) AttendancePage {
	return AttendancePage{View: v, Statuses: model.AttendanceStatuses}
}
