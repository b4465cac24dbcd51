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

type CashCountHandler struct{ svc service.CashCountService }

func NewCashCountHandler(svc service.CashCountService) *CashCountHandler {
	return &CashCountHandler{svc: svc}
}

// Create godoc
// @Summary Registra un arqueo y lo reconcilia contra el ledger
// @Tags cash-counts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateCashCountRequest true "Arqueo"
// @Success 201 {object} dto.CashCountResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/cash-counts [post]
func (h *CashCountHandler) Create(c *gin.Context) {
	var req dto.CreateCashCountRequest
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
// @Summary Lista arqueos
// @Tags cash-counts
// @Produce json
// @Security BearerAuth
// @Param deco query string false "Nombre del proyecto"
// @Param status query string false "Estado de reconciliacion"
// @Success 200 {object} dto.CashCountListResponse
// @Router /api/cash-counts [get]
func (h *CashCountHandler) List(c *gin.Context) {
	var filter dto.CashCountFilter
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
// @Summary Obtiene un arqueo por ID
// @Tags cash-counts
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del arqueo"
// @Success 200 {object} dto.CashCountResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/cash-counts/{id} [get]
func (h *CashCountHandler) Get(c *gin.Context) {
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

// ResolveDiscrepancy godoc
// @Summary Resuelve una discrepancia detectada en un arqueo
// @Tags cash-counts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del arqueo"
// @Param discrepancy_id path string true "ID de la discrepancia"
// @Param body body dto.ResolveDiscrepancyRequest true "Notas de resolucion"
// @Success 200 {object} dto.CashCountResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/cash-counts/{id}/discrepancies/{discrepancy_id}/resolve [post]
func (h *CashCountHandler) ResolveDiscrepancy(c *gin.Context) {
	countID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	discrepancyID, err := uuid.Parse(c.Param("discrepancy_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de discrepancia inválido"))
		return
	}
	var req dto.ResolveDiscrepancyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.ResolveDiscrepancy(c.Request.Context(), countID, discrepancyID, claims.Username, req)
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
// @Summary Resumen agregado de arqueos
// @Tags cash-counts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ledger.CashCountSummary
// @Router /api/cash-counts/summary [get]
func (h *CashCountHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
