package handlers

import (
	"bytes"
	"net/http"

	"github.com/jordanlanch/nexuscrm/pkg/analytics"
	"github.com/jordanlanch/nexuscrm/pkg/api/errors"
	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/export"
	"github.com/jordanlanch/nexuscrm/pkg/leads"
	"github.com/jordanlanch/nexuscrm/pkg/store"
	"github.com/labstack/echo/v4"
)

// ExportRecorder counts generated exports.
type ExportRecorder interface {
	RecordExport(report, format string)
}

// ReportHandler handles the team report and file exports.
type ReportHandler struct {
	store     *store.Store
	leads     *leads.Service
	analytics *analytics.Service
	exporter  *export.Service
	clock     domain.Clock
	recorder  ExportRecorder
}

// NewReportHandler creates a new report handler. recorder may be nil.
func NewReportHandler(
	s *store.Store,
	leadService *leads.Service,
	analyticsService *analytics.Service,
	exporter *export.Service,
	clock domain.Clock,
	recorder ExportRecorder,
) *ReportHandler {
	return &ReportHandler{
		store:     s,
		leads:     leadService,
		analytics: analyticsService,
		exporter:  exporter,
		clock:     clock,
		recorder:  recorder,
	}
}

// Team returns per-rep performance for the sales team.
func (h *ReportHandler) Team(c echo.Context) error {
	return c.JSON(http.StatusOK, h.analytics.Team())
}

// ExportTeam godoc
// @Summary Export the team report
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param format query string false "xlsx or csv" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Router /reports/team/export [get]
func (h *ReportHandler) ExportTeam(c echo.Context) error {
	format, err := export.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return errors.Respond(c, domain.NewValidationError(err.Error()))
	}

	var buf bytes.Buffer
	if err := h.exporter.WriteTeam(&buf, format, h.analytics.Team()); err != nil {
		return errors.InternalError(c, err)
	}
	return h.attach(c, "team", format, &buf)
}

// ExportLeads writes the leads matching the list filters as a file.
func (h *ReportHandler) ExportLeads(c echo.Context) error {
	format, err := export.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return errors.Respond(c, domain.NewValidationError(err.Error()))
	}

	var f leads.Filter
	if err := c.Bind(&f); err != nil {
		return errors.ValidationError(c, err)
	}

	var buf bytes.Buffer
	if err := h.exporter.WriteLeads(&buf, format, h.leads.List(f), h.store.Users()); err != nil {
		return errors.InternalError(c, err)
	}
	return h.attach(c, "leads", format, &buf)
}

func (h *ReportHandler) attach(c echo.Context, report string, format export.Format, buf *bytes.Buffer) error {
	if h.recorder != nil {
		h.recorder.RecordExport(report, string(format))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+format.FileName(report, h.clock.Now())+`"`)
	return c.Blob(http.StatusOK, format.ContentType(), buf.Bytes())
}
