package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

type DoctorHandler struct {
	service ports.DoctorService
}

func NewDoctorHandler(service ports.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

type createDoctorRequest struct {
	UserID            string                    `json:"user_id" validate:"required"`
	Salary            float64                   `json:"salary"`
	Qualification     string                    `json:"qualification" validate:"required"`
	ExperienceInYears int                       `json:"experience_in_years"`
	HospitalIDs       []string                  `json:"hospital_ids"`
	Gender            string                    `json:"gender" validate:"required"`
	Availability      []domain.AvailabilitySlot `json:"availability"`
}

type updateDoctorRequest struct {
	Salary            *float64                   `json:"salary"`
	Qualification     *string                    `json:"qualification"`
	ExperienceInYears *int                       `json:"experience_in_years"`
	HospitalIDs       *[]string                  `json:"hospital_ids"`
	Gender            *string                    `json:"gender"`
	Availability      *[]domain.AvailabilitySlot `json:"availability"`
}

// Create handles POST /v1/doctors.
//
// @Summary      Register a doctor profile
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDoctorRequest  true  "Doctor"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /v1/doctors [post]
func (h *DoctorHandler) Create(c echo.Context) error {
	var req createDoctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doctor, err := h.service.Create(c.Request().Context(), ports.CreateDoctorInput{
		UserID:            req.UserID,
		Salary:            req.Salary,
		Qualification:     req.Qualification,
		ExperienceInYears: req.ExperienceInYears,
		HospitalIDs:       req.HospitalIDs,
		Gender:            req.Gender,
		Availability:      req.Availability,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "doctor created successfully", doctor)
}

// List handles GET /v1/doctors.
//
// @Summary      List usable doctors
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /v1/doctors [get]
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "doctors fetched successfully", doctors)
}

// Get handles GET /v1/doctors/:id.
//
// @Summary      Get a doctor by id
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Doctor id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/doctors/{id} [get]
func (h *DoctorHandler) Get(c echo.Context) error {
	doctor, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "doctor fetched successfully", doctor)
}

// Update handles PATCH /v1/doctors/:id. Absent fields are left untouched.
//
// @Summary      Update a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Doctor id"
// @Param        body  body      updateDoctorRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /v1/doctors/{id} [patch]
func (h *DoctorHandler) Update(c echo.Context) error {
	var req updateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	doctor, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateDoctorInput{
		Salary:            req.Salary,
		Qualification:     req.Qualification,
		ExperienceInYears: req.ExperienceInYears,
		HospitalIDs:       req.HospitalIDs,
		Gender:            req.Gender,
		Availability:      req.Availability,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "doctor updated successfully", doctor)
}

// Delete handles DELETE /v1/doctors/:id — a soft delete.
//
// @Summary      Soft-delete a doctor
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Doctor id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/doctors/{id} [delete]
func (h *DoctorHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "doctor deleted successfully", nil)
}
