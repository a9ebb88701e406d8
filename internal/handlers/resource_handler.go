package handlers

import (
	"net/http"

	"wellness-service/internal/models"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct{}

func NewResourceHandler() *ResourceHandler {
	return &ResourceHandler{}
}

// ListResources serves the static support catalog, optionally filtered by
// type.
func (h *ResourceHandler) ListResources(c *gin.Context) {
	kind := c.Query("type")
	if kind == "" {
		c.JSON(http.StatusOK, models.Resources)
		return
	}
	var out []models.Resource
	for _, r := range models.Resources {
		if r.Type == kind {
			out = append(out, r)
		}
	}
	c.JSON(http.StatusOK, out)
}
