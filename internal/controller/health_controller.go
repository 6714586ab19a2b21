package controller

import (
	"time"

	"safemit_training_backend/internal/repository"
	"safemit_training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Catalog   *repository.CatalogRepository
	startedAt time.Time
}

func NewHealthController(catalog *repository.CatalogRepository) *HealthController {
	return &HealthController{Catalog: catalog, startedAt: time.Now()}
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status":        "ok",
		"uptimeSeconds": int(time.Since(c.startedAt).Seconds()),
		"components": gin.H{
			"catalog": gin.H{
				"status":  "up",
				"modules": c.Catalog.Count(),
			},
		},
	})
}
