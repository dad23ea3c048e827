package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

type HospitalHandler struct {
	service ports.HospitalService
}

func NewHospitalHandler(service ports.HospitalService) *HospitalHandler {
	return &HospitalHandler{service: service}
}

type createHospitalRequest struct {
	Name          string         `json:"name" validate:"required"`
	Address       domain.Address `json:"address" validate:"required"`
	SpecializedIn []string       `json:"specialized_in"`
	ContactNumber string         `json:"contact_number" validate:"required"`
}

type updateHospitalRequest struct {
	Name          *string         `json:"name"`
	Address       *domain.Address `json:"address"`
	SpecializedIn *[]string       `json:"specialized_in"`
	ContactNumber *string         `json:"contact_number"`
}

// Create handles POST /v1/hospitals.
//
// @Summary      Register a hospital
// @Tags         hospitals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHospitalRequest  true  "Hospital"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /v1/hospitals [post]
func (h *HospitalHandler) Create(c echo.Context) error {
	var req createHospitalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hospital, err := h.service.Create(c.Request().Context(), ports.CreateHospitalInput{
		Name:          req.Name,
		Address:       req.Address,
		SpecializedIn: req.SpecializedIn,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "hospital created successfully", hospital)
}

// List handles GET /v1/hospitals.
//
// @Summary      List usable hospitals
// @Tags         hospitals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /v1/hospitals [get]
func (h *HospitalHandler) List(c echo.Context) error {
	hospitals, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "hospitals fetched successfully", hospitals)
}

// Get handles GET /v1/hospitals/:id.
//
// @Summary      Get a hospital by id
// @Tags         hospitals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hospital id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/hospitals/{id} [get]
func (h *HospitalHandler) Get(c echo.Context) error {
	hospital, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "hospital fetched successfully", hospital)
}

// Update handles PATCH /v1/hospitals/:id. Absent fields are left untouched.
//
// @Summary      Update a hospital
// @Tags         hospitals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Hospital id"
// @Param        body  body      updateHospitalRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /v1/hospitals/{id} [patch]
func (h *HospitalHandler) Update(c echo.Context) error {
	var req updateHospitalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	hospital, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateHospitalInput{
		Name:          req.Name,
		Address:       req.Address,
		SpecializedIn: req.SpecializedIn,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "hospital updated successfully", hospital)
}

// Delete handles DELETE /v1/hospitals/:id — a soft delete.
//
// @Summary      Soft-delete a hospital
// @Tags         hospitals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hospital id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/hospitals/{id} [delete]
func (h *HospitalHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "hospital deleted successfully", nil)
}
