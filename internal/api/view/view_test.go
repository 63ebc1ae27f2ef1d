package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/model"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/service"
)

func render(t *testing.T, name string, page Page) string {
	t.Helper()
	tmpl, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, page); err != nil {
		t.Fatalf("execute %s: %v", name, err)
	}
	return buf.String()
}

func TestDashboardCards(t *testing.T) {
	cards := DashboardCards(model.DashboardSummary{
		TotalEmployees:         5,
		TotalAttendanceRecords: 12,
		TotalPresent:           9,
		TotalAbsent:            3,
	})

	want := []Card{
		{Label: "Total Employees", Value: 5, Href: "/employees"},
		{Label: "Attendance Records", Value: 12, Href: "/attendance"},
		{Label: "Present Days", Value: 9},
		{Label: "Absent Days", Value: 3},
	}
	if len(cards) != len(want) {
		t.Fatalf("expected %d cards, got %d", len(want), len(cards))
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Errorf("card %d: expected %+v, got %+v", i, want[i], cards[i])
		}
	}
}

func TestHelpers(t *testing.T) {
	if Loading() != (LoadingState{}) {
		t.Error("loading takes no input")
	}
	if e := Empty("No employees yet", ""); e.Message != "No employees yet" || e.Hint != "" {
		t.Errorf("unexpected empty state %+v", e)
	}
	if b := ErrorBanner("boom", ""); b.RetryURL != "" {
		t.Errorf("retry should be omitted, got %+v", b)
	}
	if StatusClass(model.StatusPresent) == StatusClass(model.StatusAbsent) {
		t.Error("statuses should render differently")
	}
}

func TestRender_DashboardReady(t *testing.T) {
	v := service.DashboardView{Summary: service.Ready(model.DashboardSummary{
		TotalEmployees: 5, TotalAttendanceRecords: 12, TotalPresent: 9, TotalAbsent: 3,
	})}

	html := render(t, "dashboard.html", Page{Title: "Dashboard", Nav: "dashboard", Data: NewDashboardPage(v)})

	for _, want := range []string{
		`<div class="value">5</div>`,
		`<div class="value">12</div>`,
		`<div class="value">9</div>`,
		`<div class="value">3</div>`,
		`href="/employees"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestRender_DashboardFailedHasRetry(t *testing.T) {
	v := service.DashboardView{Summary: service.Failed[model.DashboardSummary]("Database unavailable")}

	html := render(t, "dashboard.html", Page{Title: "Dashboard", Data: NewDashboardPage(v)})

	if !strings.Contains(html, "Database unavailable") || !strings.Contains(html, `<a href="/?retry=1">Try again</a>`) {
		t.Errorf("expected error banner with retry, got:\n%s", html)
	}
}

func TestRender_EmployeesEmptyAndBusyRow(t *testing.T) {
	empty := service.EmployeesView{List: service.Ready([]model.Employee{})}
	html := render(t, "employees.html", Page{Title: "Employees", Data: EmployeesPage{View: empty}})
	if !strings.Contains(html, "No employees yet") || strings.Contains(html, `role="alert"`) {
		t.Errorf("empty list should render the empty state, got:\n%s", html)
	}

	busy := service.EmployeesView{
		List: service.Ready([]model.Employee{
			{EmployeeID: "EMP001", FullName: "Ada"},
			{EmployeeID: "EMP002", FullName: "Grace"},
		}),
		Deleting: []string{"EMP001"},
	}
	html = render(t, "employees.html", Page{Title: "Employees", Data: EmployeesPage{View: busy}})
	if strings.Count(html, "Deleting...") != 1 {
		t.Error("only the busy row shows the indicator")
	}
	if !strings.Contains(html, `action="/employees/EMP002/delete"`) {
		t.Error("other rows stay interactive")
	}
}

func TestRender_EmployeesConfirmPrompt(t *testing.T) {
	v := service.EmployeesView{
		List:    service.Ready([]model.Employee{{EmployeeID: "EMP001"}}),
		Confirm: service.DeleteConfirm{Phase: service.ConfirmPending, EmployeeID: "EMP001"},
	}

	html := render(t, "employees.html", Page{Title: "Employees", Data: EmployeesPage{View: v}})

	if !strings.Contains(html, `action="/employees/EMP001/delete/confirm"`) || !strings.Contains(html, `action="/employees/EMP001/delete/cancel"`) {
		t.Errorf("expected confirm and cancel actions, got:\n%s", html)
	}
}

func TestRender_EmployeeIDsArePathEscaped(t *testing.T) {
	v := service.EmployeesView{
		List:    service.Ready([]model.Employee{{EmployeeID: "HR/007"}}),
		Confirm: service.DeleteConfirm{Phase: service.ConfirmPending, EmployeeID: "HR/007"},
	}

	html := render(t, "employees.html", Page{Title: "Employees", Data: EmployeesPage{View: v}})

	for _, want := range []string{
		`action="/employees/HR%2F007/delete"`,
		`action="/employees/HR%2F007/delete/confirm"`,
		`action="/employees/HR%2F007/delete/cancel"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %s, got:\n%s", want, html)
		}
	}
}

func TestRender_AttendanceHistory(t *testing.T) {
	v := service.AttendanceView{
		Screen: service.Ready(service.AttendanceData{
			Employees: []model.Employee{{EmployeeID: "EMP002", FullName: "Grace"}},
			Records:   []model.AttendanceRecord{{EmployeeID: "EMP002", EmployeeName: "Grace", Date: "2024-01-15", Status: model.StatusAbsent}},
		}),
		Selected: "EMP002",
		History: &model.EmployeeAttendance{
			EmployeeID: "EMP002", EmployeeName: "Grace", TotalPresent: 3, TotalAbsent: 1, Total: 4,
			Records: []model.AttendanceRecord{},
		},
	}

	html := render(t, "attendance.html", Page{Title: "Attendance", Data: NewAttendancePage(v)})

	if !strings.Contains(html, "Present: 3 | Absent: 1 | Total: 4") {
		t.Errorf("expected totals, got:\n%s", html)
	}
	if !strings.Contains(html, "No attendance records for this employee") {
		t.Error("empty history should render the empty state")
	}
}

func TestRender_AttendanceFilteredEmpty(t *testing.T) {
	v := service.AttendanceView{
		Screen: service.Ready(service.AttendanceData{Records: []model.AttendanceRecord{}}),
		Filter: "2024-01-15",
	}

	html := render(t, "attendance.html", Page{Title: "Attendance", Data: NewAttendancePage(v)})

	if !strings.Contains(html, "No attendance on this date") || !strings.Contains(html, "Clear filter") {
		t.Errorf("unexpected render:\n%s", html)
	}
}
