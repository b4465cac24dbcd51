package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/krikodium/hermanascaradonti/internal/apierror"
	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/middleware"
	"github.com/krikodium/hermanascaradonti/internal/service"
)

type EventsCashHandler struct{ svc service.EventsCashService }

func NewEventsCashHandler(svc service.EventsCashService) *EventsCashHandler {
	return &EventsCashHandler{svc: svc}
}

// Create godoc
// @Summary Abre la caja de un evento
// @Tags events-cash
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateEventsCashRequest true "Evento"
// @Success 201 {object} dto.EventsCashResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/events-cash [post]
func (h *EventsCashHandler) Create(c *gin.Context) {
	var req dto.CreateEventsCashRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Create(c.Request.Context(), claims.Username, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary Lista cajas de eventos
// @Tags events-cash
// @Produce json
// @Security BearerAuth
// @Param event_type query string false "Tipo de evento"
// @Success 200 {object} dto.EventsCashListResponse
// @Router /api/events-cash [get]
func (h *EventsCashHandler) List(c *gin.Context) {
	var filter dto.EventsCashFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Obtiene la caja de un evento por ID
// @Tags events-cash
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del evento"
// @Success 200 {object} dto.EventsCashResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/events-cash/{id} [get]
func (h *EventsCashHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AppendEntry godoc
// @Summary Agrega un movimiento al ledger del evento
// @Tags events-cash
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del evento"
// @Param body body dto.LedgerEntryRequest true "Movimiento"
// @Success 200 {object} dto.EventsCashResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/events-cash/{id}/ledger [post]
func (h *EventsCashHandler) AppendEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.LedgerEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.AppendEntry(c.Request.Context(), id, claims.Username, req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Summary godoc
// @Summary Resumen agregado de cajas de eventos
// @Tags events-cash
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ledger.EventsCashSummary
// @Router /api/events-cash/summary [get]
func (h *EventsCashHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
