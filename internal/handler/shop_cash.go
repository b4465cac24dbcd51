package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/krikodium/hermanascaradonti/internal/apierror"
	"github.com/krikodium/hermanascaradonti/internal/dto"
	"github.com/krikodium/hermanascaradonti/internal/middleware"
	"github.com/krikodium/hermanascaradonti/internal/service"
)

type ShopCashHandler struct{ svc service.ShopCashService }

func NewShopCashHandler(svc service.ShopCashService) *ShopCashHandler {
	return &ShopCashHandler{svc: svc}
}

// Create godoc
// @Summary Registra una venta del shop
// @Tags shop-cash
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateShopCashRequest true "Venta"
// @Success 201 {object} dto.ShopCashResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/shop-cash [post]
func (h *ShopCashHandler) Create(c *gin.Context) {
	var req dto.CreateShopCashRequest
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
// @Summary Lista ventas del shop
// @Tags shop-cash
// @Produce json
// @Security BearerAuth
// @Param coordinator query string false "Coordinadora interna"
// @Param status query string false "Estado de la venta"
// @Success 200 {object} dto.ShopCashListResponse
// @Router /api/shop-cash [get]
func (h *ShopCashHandler) List(c *gin.Context) {
	var filter dto.ShopCashFilter
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
// @Summary Obtiene una venta por ID
// @Tags shop-cash
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la venta"
// @Success 200 {object} dto.ShopCashResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/shop-cash/{id} [get]
func (h *ShopCashHandler) Get(c *gin.Context) {
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

// Summary godoc
// @Summary Resumen agregado de ventas del shop
// @Tags shop-cash
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ledger.ShopCashSummary
// @Router /api/shop-cash/summary [get]
func (h *ShopCashHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
