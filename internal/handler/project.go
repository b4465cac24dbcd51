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

type ProjectHandler struct{ svc service.ProjectService }

func NewProjectHandler(svc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// Create godoc
// @Summary Crea un proyecto
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateProjectRequest true "Proyecto"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
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
// @Summary Lista proyectos
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param status query string false "Estado"
// @Param type query string false "Tipo"
// @Param include_archived query bool false "Incluir archivados"
// @Success 200 {object} dto.ProjectListResponse
// @Router /api/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var filter dto.ProjectFilter
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
// @Summary Obtiene un proyecto con sus finanzas recalculadas
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del proyecto"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Modifica un proyecto
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del proyecto"
// @Param body body dto.UpdateProjectRequest true "Campos a modificar"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/projects/{id} [patch]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.UpdateProjectRequest
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

// Archive godoc
// @Summary Archiva un proyecto (soft delete)
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del proyecto"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Archive(c.Request.Context(), id); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary godoc
// @Summary Resumen agregado de proyectos
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ProjectSummary
// @Router /api/projects/summary [get]
func (h *ProjectHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
