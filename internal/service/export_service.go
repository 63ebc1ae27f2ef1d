package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/client"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/dto"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/model"
)

// ── export errors ──

var (
	ErrExportNoRecords    = errors.New("no attendance records to export")
	ErrExportGenerateFail = errors.New("failed to generate export file")
)

// ExportService turns backend attendance data into downloadable files.
//
// Files are returned as buffers; the handler sets the response headers.
type ExportService interface {
	// ExportAttendance writes the attendance list, optionally for one date,
	// as an Excel workbook.
	ExportAttendance(ctx context.Context, onDate string) (*bytes.Buffer, string, error)
	// ExportEmployeeCalendar writes one employee's history as all-day
	// iCalendar events.
	ExportEmployeeCalendar(ctx context.Context, employeeID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	api    client.AttendanceAPI
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService creates an ExportService.
func NewExportService(api client.AttendanceAPI, logger *zap.Logger, now func() time.Time) ExportService {
	if now == nil {
		now = time.Now
	}
	return &exportService{api: api, logger: logger, now: now}
}

// ═══════════════════════════════════════════════════════════
// ExportAttendance
// ═══════════════════════════════════════════════════════════
//
// Sheet "Attendance": one row per record, sorted by date then employee.
// Sheet "Summary": present/absent counts per employee.

func (s *exportService) ExportAttendance(ctx context.Context, onDate string) (*bytes.Buffer, string, error) {
	records, err := s.api.List(ctx, dto.AttendanceFilter{OnDate: onDate})
	if err != nil {
		s.logger.Error("list attendance for export failed", zap.String("on_date", onDate), zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoRecords
	}

	records = slices.Clone(records)
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return records[i].EmployeeID < records[j].EmployeeID
	})

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "B", 28)
	f.SetColWidth(sheet, "C", "C", 14)
	f.SetColWidth(sheet, "D", "D", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	title := "Attendance (all dates)"
	if onDate != "" {
		title = "Attendance on " + onDate
	}
	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", "D1")
	f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	for i, h := range []string{"Employee ID", "Name", "Date", "Status"} {
		f.SetCellValue(sheet, cell(colName(i), 2), h)
	}
	f.SetCellStyle(sheet, "A2", "D2", headerStyle)

	type tally struct {
		name            string
		present, absent int
	}
	totals := make(map[string]*tally)
	var order []string

	row := 3
	for _, r := range records {
		f.SetCellValue(sheet, cell("A", row), r.EmployeeID)
		f.SetCellValue(sheet, cell("B", row), r.EmployeeName)
		f.SetCellValue(sheet, cell("C", row), r.Date)
		f.SetCellValue(sheet, cell("D", row), string(r.Status))
		row++

		t, ok := totals[r.EmployeeID]
		if !ok {
			t = &tally{name: r.EmployeeName}
			totals[r.EmployeeID] = t
			order = append(order, r.EmployeeID)
		}
		switch r.Status {
		case model.StatusPresent:
			t.present++
		case model.StatusAbsent:
			t.absent++
		}
	}

	summary := "Summary"
	f.NewSheet(summary)
	f.SetColWidth(summary, "A", "A", 14)
	f.SetColWidth(summary, "B", "B", 28)
	for i, h := range []string{"Employee ID", "Name", "Present", "Absent", "Total"} {
		f.SetCellValue(summary, cell(colName(i), 1), h)
	}
	f.SetCellStyle(summary, "A1", "E1", headerStyle)
	sort.Strings(order)
	for i, id := range order {
		t := totals[id]
		r := i + 2
		f.SetCellValue(summary, cell("A", r), id)
		f.SetCellValue(summary, cell("B", r), t.name)
		f.SetCellValue(summary, cell("C", r), t.present)
		f.SetCellValue(summary, cell("D", r), t.absent)
		f.SetCellValue(summary, cell("E", r), t.present+t.absent)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := "attendance.xlsx"
	if onDate != "" {
		filename = fmt.Sprintf("attendance_%s.xlsx", onDate)
	}
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportEmployeeCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportEmployeeCalendar(ctx context.Context, employeeID string) (*bytes.Buffer, string, error) {
	hist, err := s.api.ForEmployee(ctx, employeeID, dto.DateRange{})
	if err != nil {
		s.logger.Error("load employee attendance for export failed",
			zap.String("employee_id", employeeID), zap.Error(err))
		return nil, "", err
	}
	if len(hist.Records) == 0 {
		return nil, "", ErrExportNoRecords
	}

	name := hist.EmployeeName
	if name == "" {
		name = employeeID
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//HRMS Lite//Attendance//EN")
	cal.SetXWRCalName(fmt.Sprintf("Attendance: %s", name))

	stamp := s.now().UTC()
	for _, r := range hist.Records {
		day, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			s.logger.Warn("skip record with bad date",
				zap.String("employee_id", employeeID), zap.String("date", r.Date))
			continue
		}
		evt := cal.AddEvent(fmt.Sprintf("%s-%s@hrms-lite", employeeID, r.Date))
		evt.SetDtStampTime(stamp)
		evt.SetAllDayStartAt(day)
		evt.SetAllDayEndAt(day.AddDate(0, 0, 1))
		evt.SetSummary(fmt.Sprintf("%s: %s", name, r.Status))
		evt.AddCategory(string(r.Status))
	}
	if len(cal.Events()) == 0 {
		return nil, "", ErrExportNoRecords
	}

	buf := new(bytes.Buffer)
	if err := cal.SerializeTo(buf); err != nil {
		s.logger.Error("write ics failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, fmt.Sprintf("attendance_%s.ics", employeeID), nil
}

// ── helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
