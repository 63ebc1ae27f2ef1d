package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/client"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/service"
	"github.com/varunkasnia/LLM-Internship-Frontend/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler export module HTTP handler
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportAttendance downloads the attendance list as a workbook
// GET /export/attendance.xlsx?on_date=YYYY-MM-DD
func (h *ExportHandler) ExportAttendance(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportAttendance(c.Request.Context(), c.Query("on_date"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	sendFile(c, filename, contentTypeXLSX, buf)
}

// ExportEmployeeCalendar downloads one employee's attendance as iCalendar
// GET /export/attendance/:employee_id/calendar.ics
func (h *ExportHandler) ExportEmployeeCalendar(c *gin.Context) {
	employeeID := c.Param("employee_id")
	if employeeID == "" {
		response.BadRequest(c, 10001, "employee_id is required")
		return
	}

	buf, filename, err := h.exportSvc.ExportEmployeeCalendar(c.Request.Context(), employeeID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	sendFile(c, filename, contentTypeICS, buf)
}

func sendFile(c *gin.Context, filename, contentType string, buf *bytes.Buffer) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	_ = c.Error(err)

	var apiErr *client.APIError
	var netErr *client.NetworkError
	switch {
	case errors.Is(err, service.ErrExportNoRecords):
		response.NotFound(c, 16101, "no attendance records to export")
	case client.IsNotFound(err):
		response.NotFound(c, 16102, client.Message(err, "employee not found"))
	case errors.As(err, &apiErr), errors.As(err, &netErr):
		response.BadGateway(c, 16201, "backend request failed", client.Message(err, ""))
	default:
		response.InternalError(c)
	}
}
