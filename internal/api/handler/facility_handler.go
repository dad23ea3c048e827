package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

type FacilityHandler struct {
	service ports.FacilityService
}

func NewFacilityHandler(service ports.FacilityService) *FacilityHandler {
	return &FacilityHandler{service: service}
}

type createFacilityRequest struct {
	Name    string              `json:"name" validate:"required"`
	Address domain.Address      `json:"address" validate:"required"`
	Type    domain.FacilityType `json:"type"`
}

type updateFacilityRequest struct {
	Name    *string              `json:"name"`
	Address *domain.Address      `json:"address"`
	Type    *domain.FacilityType `json:"type"`
}

// Create handles POST /v1/facilities.
//
// @Summary      Register a facility
// @Tags         facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFacilityRequest  true  "Facility"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /v1/facilities [post]
func (h *FacilityHandler) Create(c echo.Context) error {
	var req createFacilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	facility, err := h.service.Create(c.Request().Context(), ports.CreateFacilityInput{
		Name:    req.Name,
		Address: req.Address,
		Type:    req.Type,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "facility created successfully", facility)
}

// List handles GET /v1/facilities.
//
// @Summary      List usable facilities
// @Tags         facilities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /v1/facilities [get]
func (h *FacilityHandler) List(c echo.Context) error {
	facilities, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "facilities fetched successfully", facilities)
}

// Get handles GET /v1/facilities/:id.
//
// @Summary      Get a facility by id
// @Tags         facilities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Facility id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/facilities/{id} [get]
func (h *FacilityHandler) Get(c echo.Context) error {
	facility, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "facility fetched successfully", facility)
}

// Update handles PATCH /v1/facilities/:id. Absent fields are left untouched.
//
// @Summary      Update a facility
// @Tags         facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Facility id"
// @Param        body  body      updateFacilityRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /v1/facilities/{id} [patch]
func (h *FacilityHandler) Update(c echo.Context) error {
	var req updateFacilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	facility, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateFacilityInput{
		Name:    req.Name,
		Address: req.Address,
		Type:    req.Type,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "facility updated successfully", facility)
}

// Delete handles DELETE /v1/facilities/:id — a soft delete.
//
// @Summary      Soft-delete a facility
// @Tags         facilities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Facility id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/facilities/{id} [delete]
func (h *FacilityHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "facility deleted successfully", nil)
}
