package controller

import (
	"errors"
	"net/http"

	"safemit_training_backend/internal/middleware"
	"safemit_training_backend/internal/model"
	"safemit_training_backend/internal/service"
	"safemit_training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TrainingController struct {
	TrainingService *service.TrainingService
}

func NewTrainingController(trainingService *service.TrainingService) *TrainingController {
	return &TrainingController{TrainingService: trainingService}
}

// @Summary List training modules
// @Description Returns the module catalog with difficulty, duration and enrollment data
// @Tags training
// @Produce json
// @Success 200 {object} util.Response
// @Router /training/modules [get]
func (c *TrainingController) ListModules(ctx *gin.Context) {
	util.Success(ctx, c.TrainingService.ListModules())
}

// @Summary Get module overview
// @Description Returns the module's lessons with per-learner completed/accessible/current flags
// @Tags training
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200 {object} util.Response
// @Router /training/modules/{moduleId} [get]
func (c *TrainingController) GetModule(ctx *gin.Context) {
	overview, err := c.TrainingService.GetModuleOverview(middleware.GetLearnerID(ctx), ctx.Param("moduleId"))
	if err != nil {
		respondTrainingError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// @Summary Start or resume a lesson
// @Description Opens a lesson session; refused while prerequisites are incomplete
// @Tags training
// @Produce json
// @Param moduleId path string true "Module ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} util.Response
// @Router /training/modules/{moduleId}/lessons/{lessonId}/start [post]
func (c *TrainingController) StartLesson(ctx *gin.Context) {
	view, err := c.TrainingService.StartLesson(
		middleware.GetLearnerID(ctx),
		ctx.Param("moduleId"),
		ctx.Param("lessonId"),
	)
	if err != nil {
		respondTrainingError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Advance the active lesson
// @Description Marks the current content unit complete and moves forward; completes the lesson on the last unit
// @Tags training
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200 {object} util.Response
// @Router /training/modules/{moduleId}/lesson/advance [post]
func (c *TrainingController) AdvanceLesson(ctx *gin.Context) {
	view, err := c.TrainingService.AdvanceLesson(middleware.GetLearnerID(ctx), ctx.Param("moduleId"))
	if err != nil {
		respondTrainingError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Step back in the active lesson
// @Description Moves back one content unit; completion marks are never revoked
// @Tags training
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200 {object} util.Response
// @Router /training/modules/{moduleId}/lesson/retreat [post]
func (c *TrainingController) RetreatLesson(ctx *gin.Context) {
	view, err := c.TrainingService.RetreatLesson(middleware.GetLearnerID(ctx), ctx.Param("moduleId"))
	if err != nil {
		respondTrainingError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Get the final quiz
// @Description Returns quiz metadata and sanitized questions (no answer keys)
// @Tags training
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200 {object} util.Response
// @Router /training/modules/{moduleId}/quiz [get]
func (c *TrainingController) GetQuiz(ctx *gin.Context) {
	info, err := c.TrainingService.GetQuiz(ctx.Param("moduleId"))
	if err != nil {
		respondTrainingError(ctx, err)
		return
	}
	util.Success(ctx, info)
}

type QuizSubmissionRequest struct {
	// Answers maps question id to the submitted answer: a single option
	// index, or an array of indices for multi-select questions.
	Answers map[string]model.Answer `json:"answers" binding:"required"`
}

// @Summary Submit the final quiz
// @Description Scores the submission; a passing result issues the module certificate
// @Tags training
// @Accept json
// @Produce json
// @Param moduleId path string true "Module ID"
// @Param submission body QuizSubmissionRequest true "Answers keyed by question id"
// @Success 200 {object} util.Response
// @Router /training/modules/{moduleId}/quiz/submit [post]
func (c *TrainingController) SubmitQuiz(ctx *gin.Context) {
	var req QuizSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.TrainingService.SubmitQuiz(middleware.GetLearnerID(ctx), ctx.Param("moduleId"), req.Answers)
	if err != nil {
		respondTrainingError(ctx, err)
		return
	}
	util.Success(ctx, outcome)
}

// @Summary Get module progress
// @Description Returns the learner's raw progress record for the module
// @Tags training
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200 {object} util.Response
// @Router /training/modules/{moduleId}/progress [get]
func (c *TrainingController) GetProgress(ctx *gin.Context) {
	record, err := c.TrainingService.GetProgress(middleware.GetLearnerID(ctx), ctx.Param("moduleId"))
	if err != nil {
		respondTrainingError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

func respondTrainingError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrModuleNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrQuizNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrLessonLocked):
		util.Forbidden(ctx, err.Error())
	case errors.Is(err, util.ErrLessonsIncomplete),
		errors.Is(err, util.ErrNoActiveLesson),
		errors.Is(err, util.ErrLessonNoContent),
		errors.Is(err, util.ErrAnswerKindMismatch):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidQuizConfig):
		util.Error(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
