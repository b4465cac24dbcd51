package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krikodium/hermanascaradonti/internal/apierror"
	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/middleware"
	"github.com/krikodium/hermanascaradonti/internal/service"
)

type StudioHandler struct{ svc service.StudioService }

func NewStudioHandler(svc service.StudioService) *StudioHandler { return &StudioHandler{svc: svc} }

// CreateMovement godoc
// @Summary Registra un movimiento de estudio sobre un proyecto
// @Tags studio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateStudioMovementRequest true "Movimiento"
// @Success 201 {object} dto.StudioMovementResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/deco-movements [post]
func (h *StudioHandler) CreateMovement(c *gin.Context) {
	var req dto.CreateStudioMovementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.CreateMovement(c.Request.Context(), claims.Username, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListMovements godoc
// @Summary Lista movimientos de estudio
// @Tags studio
// @Produce json
// @Security BearerAuth
// @Param project query string false "Nombre del proyecto"
// @Success 200 {object} dto.StudioMovementListResponse
// @Router /api/deco-movements [get]
func (h *StudioHandler) ListMovements(c *gin.Context) {
	var filter dto.StudioMovementFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListMovements(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateOrder godoc
// @Summary Crea una orden de desembolso
// @Tags studio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateDisbursementOrderRequest true "Orden"
// @Success 201 {object} dto.DisbursementOrderResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/disbursement-orders [post]
func (h *StudioHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateDisbursementOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.CreateOrder(c.Request.Context(), claims.Username, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListOrders godoc
// @Summary Lista ordenes de desembolso; el vencimiento se deriva al leer
// @Tags studio
// @Produce json
// @Security BearerAuth
// @Param project query string false "Nombre del proyecto"
// @Success 200 {array} dto.DisbursementOrderResponse
// @Router /api/disbursement-orders [get]
func (h *StudioHandler) ListOrders(c *gin.Context) {
	resp, err := h.svc.ListOrders(c.Request.Context(), c.Query("project"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Summary godoc
// @Summary Resumen agregado de movimientos y ordenes
// @Tags studio
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ledger.StudioSummary
// @Router /api/deco-movements/summary [get]
func (h *StudioHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
