package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/logger"
	"github.com/campusconnect/backend/internal/middleware"
	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/response"
	"github.com/campusconnect/backend/internal/service"
	"github.com/campusconnect/backend/internal/validator"
)

// CatalogHandler serves the public catalog pages.
type CatalogHandler struct {
	catalogService *service.CatalogService
	log            zerolog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, log: logger.Component(log, "catalog_handler")}
}

// Index godoc
// GET /
func (h *CatalogHandler) Index(c *gin.Context) {
	response.View(c, gin.H{"identity": newIdentityView(middleware.GetIdentity(c))})
}

// Search godoc
// GET /search?dept=&number=&instructor=&open_only=
// Lists catalog courses matching every given filter.
func (h *CatalogHandler) Search(c *gin.Context) {
	var filter model.CourseFilter
	if fields := validator.BindQuery(c, &filter); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	courses, err := h.catalogService.Search(c.Request.Context(), filter)
	if err != nil {
		internalError(c, h.log, err, "Failed to search courses")
		return
	}

	response.View(c, searchView{
		Identity: newIdentityView(middleware.GetIdentity(c)),
		Filter:   filter,
		Courses:  courses,
	})
}
