package controller

import (
	"errors"

	"safemit_training_backend/internal/service"
	"safemit_training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FacilitatorController struct {
	TrainingService *service.TrainingService
}

func NewFacilitatorController(trainingService *service.TrainingService) *FacilitatorController {
	return &FacilitatorController{TrainingService: trainingService}
}

// @Summary List learner progress for a module
// @Description Facilitator roster: per-learner completion, quiz score and certificate status
// @Tags facilitator
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200 {object} util.Response
// @Router /facilitator/modules/{moduleId}/learners [get]
func (c *FacilitatorController) ModuleLearners(ctx *gin.Context) {
	learners, err := c.TrainingService.ModuleLearners(ctx.Param("moduleId"))
	if err != nil {
		if errors.Is(err, util.ErrModuleNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, learners)
}
