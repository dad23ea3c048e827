package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carehub/hospital-system/internal/core/ports"
)

type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

type createPatientRequest struct {
	UserID           string   `json:"user_id" validate:"required"`
	Age              int      `json:"age" validate:"gte=0"`
	BloodGroup       string   `json:"blood_group" validate:"required"`
	MedicalHistory   string   `json:"medical_history"`
	Allergies        []string `json:"allergies"`
	HospitalID       string   `json:"hospital_id"`
	EmergencyContact string   `json:"emergency_contact"`
	CurrentCondition string   `json:"current_condition"`
	Gender           string   `json:"gender" validate:"required"`
	AssignedDoctorID string   `json:"assigned_doctor_id"`
}

type updatePatientRequest struct {
	Age              *int      `json:"age" validate:"omitempty,gte=0"`
	BloodGroup       *string   `json:"blood_group"`
	MedicalHistory   *string   `json:"medical_history"`
	Allergies        *[]string `json:"allergies"`
	HospitalID       *string   `json:"hospital_id"`
	EmergencyContact *string   `json:"emergency_contact"`
	CurrentCondition *string   `json:"current_condition"`
	AssignedDoctorID *string   `json:"assigned_doctor_id"`
}

// Create handles POST /v1/patients.
//
// @Summary      Register a patient profile
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPatientRequest  true  "Patient"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /v1/patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req createPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.service.Create(c.Request().Context(), ports.CreatePatientInput{
		UserID:           req.UserID,
		Age:              req.Age,
		BloodGroup:       req.BloodGroup,
		MedicalHistory:   req.MedicalHistory,
		Allergies:        req.Allergies,
		HospitalID:       req.HospitalID,
		EmergencyContact: req.EmergencyContact,
		CurrentCondition: req.CurrentCondition,
		Gender:           req.Gender,
		AssignedDoctorID: req.AssignedDoctorID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "patient created successfully", patient)
}

// List handles GET /v1/patients.
//
// @Summary      List usable patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /v1/patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "patients fetched successfully", patients)
}

// Get handles GET /v1/patients/:id.
//
// @Summary      Get a patient by id
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Patient id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	patient, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "patient fetched successfully", patient)
}

// Update handles PATCH /v1/patients/:id. Absent fields are left untouched.
//
// @Summary      Update a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Patient id"
// @Param        body  body      updatePatientRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /v1/patients/{id} [patch]
func (h *PatientHandler) Update(c echo.Context) error {
	var req updatePatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdatePatientInput{
		Age:              req.Age,
		BloodGroup:       req.BloodGroup,
		MedicalHistory:   req.MedicalHistory,
		Allergies:        req.Allergies,
		HospitalID:       req.HospitalID,
		EmergencyContact: req.EmergencyContact,
		CurrentCondition: req.CurrentCondition,
		AssignedDoctorID: req.AssignedDoctorID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "patient updated successfully", patient)
}

// Delete handles DELETE /v1/patients/:id — a soft delete.
//
// @Summary      Soft-delete a patient
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Patient id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/patients/{id} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "patient deleted successfully", nil)
}
