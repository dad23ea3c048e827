package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carehub/hospital-system/internal/core/ports"
)

type BedHandler struct {
	service ports.BedService
}

func NewBedHandler(service ports.BedService) *BedHandler {
	return &BedHandler{service: service}
}

type createBedRequest struct {
	BedNumber  string `json:"bed_number" validate:"required"`
	Room       string `json:"room" validate:"required"`
	HospitalID string `json:"hospital_id"`
}

type updateBedRequest struct {
	Room       *string `json:"room"`
	IsOccupied *bool   `json:"is_occupied"`
	PatientID  *string `json:"patient_id"`
	HospitalID *string `json:"hospital_id"`
}

// Create handles POST /v1/beds.
//
// @Summary      Register a bed
// @Tags         beds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBedRequest  true  "Bed"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /v1/beds [post]
func (h *BedHandler) Create(c echo.Context) error {
	var req createBedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bed, err := h.service.Create(c.Request().Context(), ports.CreateBedInput{
		BedNumber:  req.BedNumber,
		Room:       req.Room,
		HospitalID: req.HospitalID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "bed created successfully", bed)
}

// List handles GET /v1/beds.
//
// @Summary      List usable beds
// @Tags         beds
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /v1/beds [get]
func (h *BedHandler) List(c echo.Context) error {
	beds, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "beds fetched successfully", beds)
}

// Get handles GET /v1/beds/:id.
//
// @Summary      Get a bed by id
// @Tags         beds
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Bed id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/beds/{id} [get]
func (h *BedHandler) Get(c echo.Context) error {
	bed, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "bed fetched successfully", bed)
}

// Update handles PATCH /v1/beds/:id. Absent fields are left untouched;
// occupancy and patient assignment change through this endpoint.
//
// @Summary      Update a bed
// @Tags         beds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Bed id"
// @Param        body  body      updateBedRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /v1/beds/{id} [patch]
func (h *BedHandler) Update(c echo.Context) error {
	var req updateBedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	bed, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateBedInput{
		Room:       req.Room,
		IsOccupied: req.IsOccupied,
		PatientID:  req.PatientID,
		HospitalID: req.HospitalID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "bed updated successfully", bed)
}

// Delete handles DELETE /v1/beds/:id — a soft delete.
//
// @Summary      Soft-delete a bed
// @Tags         beds
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Bed id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/beds/{id} [delete]
func (h *BedHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "bed deleted successfully", nil)
}
