package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/krikodium/hermanascaradonti/internal/apierror"
	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/ledger"
	"github.com/krikodium/hermanascaradonti/internal/middleware"
	"github.com/krikodium/hermanascaradonti/internal/service"
)

type GeneralCashHandler struct{ svc service.GeneralCashService }

func NewGeneralCashHandler(svc service.GeneralCashService) *GeneralCashHandler {
	return &GeneralCashHandler{svc: svc}
}

// Create godoc
// @Summary Registra un movimiento en caja general
// @Tags general-cash
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateGeneralCashRequest true "Movimiento"
// @Success 201 {object} dto.GeneralCashResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/general-cash [post]
func (h *GeneralCashHandler) Create(c *gin.Context) {
	var req dto.CreateGeneralCashRequest
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
// @Summary Lista movimientos de caja general con filtros
// @Tags general-cash
// @Produce json
// @Security BearerAuth
// @Param date_from query string false "Desde (YYYY-MM-DD)"
// @Param date_to query string false "Hasta (YYYY-MM-DD)"
// @Param application query string false "Aplicacion"
// @Param status query string false "Estado de aprobacion"
// @Success 200 {object} dto.GeneralCashListResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/general-cash [get]
func (h *GeneralCashHandler) List(c *gin.Context) {
	var filter dto.GeneralCashFilter
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
// @Summary Obtiene un movimiento por ID
// @Tags general-cash
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del movimiento"
// @Success 200 {object} dto.GeneralCashResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/general-cash/{id} [get]
func (h *GeneralCashHandler) Get(c *gin.Context) {
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

// Update godoc
// @Summary Modifica un movimiento aun no resuelto
// @Tags general-cash
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del movimiento"
// @Param body body dto.UpdateGeneralCashRequest true "Campos a modificar"
// @Success 200 {object} dto.GeneralCashResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/general-cash/{id} [patch]
func (h *GeneralCashHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.UpdateGeneralCashRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Update(c.Request.Context(), id, claims.Username, req)
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

// Approve godoc
// @Summary Resuelve una orden de pago pendiente
// @Tags general-cash
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del movimiento"
// @Param approval_type query string true "fede | sisters | reject"
// @Param reason query string false "Motivo de rechazo"
// @Success 200 {object} dto.GeneralCashResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/general-cash/{id}/approve [post]
func (h *GeneralCashHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var q dto.ApproveQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Approve(c.Request.Context(), id, claims.Username, q)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, service.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, ledger.ErrInvalidTransition):
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Summary godoc
// @Summary Resumen agregado de caja general
// @Tags general-cash
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ledger.GeneralCashSummary
// @Router /api/general-cash/summary [get]
func (h *GeneralCashHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
