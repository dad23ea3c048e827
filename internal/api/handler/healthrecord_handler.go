package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

// ReportEnqueuer hands a report to the asynchronous intake pipeline.
// Enqueue returns domain.ErrQueueFull when the pipeline cannot absorb more.
type ReportEnqueuer interface {
	Enqueue(report ports.HealthReportInput) error
}

type HealthRecordHandler struct {
	service  ports.HealthRecordService
	enqueuer ReportEnqueuer
}

func NewHealthRecordHandler(service ports.HealthRecordService, enqueuer ReportEnqueuer) *HealthRecordHandler {
	return &HealthRecordHandler{service: service, enqueuer: enqueuer}
}

type submitReportRequest struct {
	PatientID    string         `json:"patient_id" validate:"required"`
	DoctorID     string         `json:"doctor_id"`
	FacilityID   string         `json:"facility_id" validate:"required"`
	Data         map[string]any `json:"data" validate:"required"`
	DateOfReport time.Time      `json:"date_of_report"`
}

// Submit handles POST /v1/health-records. The report is accepted and queued;
// persistence happens on a worker goroutine.
//
// @Summary      Submit a health report
// @Tags         health-records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitReportRequest  true  "Report"
// @Success      202   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      503   {object}  envelope
// @Router       /v1/health-records [post]
func (h *HealthRecordHandler) Submit(c echo.Context) error {
	var req submitReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	report := ports.HealthReportInput{
		PatientID:    req.PatientID,
		DoctorID:     req.DoctorID,
		FacilityID:   req.FacilityID,
		ReportedByID: userID,
		Data:         req.Data,
		DateOfReport: req.DateOfReport,
	}
	if report.DateOfReport.IsZero() {
		report.DateOfReport = time.Now().UTC()
	}
	if err := h.enqueuer.Enqueue(report); err != nil {
		return err
	}

	return respond(c, http.StatusAccepted, "report accepted for processing", nil)
}

// List handles GET /v1/health-records. An optional patient_id query filters
// to a single patient.
//
// @Summary      List health records
// @Tags         health-records
// @Produce      json
// @Security     BearerAuth
// @Param        patient_id  query     string  false  "Filter by patient id"
// @Success      200         {object}  envelope
// @Router       /v1/health-records [get]
func (h *HealthRecordHandler) List(c echo.Context) error {
	records, err := h.service.List(c.Request().Context(), c.QueryParam("patient_id"))
	if err != nil {
		return err
	}
	if records == nil {
		records = []domain.HealthRecord{}
	}
	return respond(c, http.StatusOK, "health records fetched successfully", records)
}

// Get handles GET /v1/health-records/:id.
//
// @Summary      Get a health record by id
// @Tags         health-records
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/health-records/{id} [get]
func (h *HealthRecordHandler) Get(c echo.Context) error {
	record, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "health record fetched successfully", record)
}
