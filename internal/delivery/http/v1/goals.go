package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkoroteev/go-coachly/internal/models"
	"github.com/dkoroteev/go-coachly/internal/services"
)

type goalResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Progress    int       `json:"progress"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newGoalResponse(goal *models.Goal) goalResponse {
	return goalResponse{
		ID:          goal.ID,
		Title:       goal.Title,
		Description: goal.Description,
		Progress:    goal.Progress,
		Completed:   goal.Completed,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}

func (h *handlerImpl) HandleListGoals(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	goals, err := h.goals.ListGoals(c, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]goalResponse, len(goals))
	for i := range goals {
		response[i] = newGoalResponse(&goals[i])
	}
	c.JSON(http.StatusOK, response)
}

type createGoalRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description,omitempty"`
}

func (h *handlerImpl) HandleCreateGoal(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req createGoalRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	params := services.CreateGoalParams{
		UserID: userID,
		Title:  req.Title,
	}
	if req.Description != nil {
		params.Description = *req.Description
	}

	goal, err := h.goals.CreateGoal(c, params)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newGoalResponse(goal))
}

type updateGoalRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Progress    *int    `json:"progress,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

func (h *handlerImpl) HandleUpdateGoal(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	goalID := c.Param("id")
	if goalID == "" {
		h.logger.Warn().Msg("no goal id provided")
		abort(c, newBadRequestError("goal id is required"))
		return
	}

	var req updateGoalRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	goal, err := h.goals.UpdateGoal(c, services.UpdateGoalParams{
		ID:          goalID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Progress:    req.Progress,
		Completed:   req.Completed,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGoalResponse(goal))
}

func (h *handlerImpl) HandleDeleteGoal(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	goalID := c.Param("id")
	if goalID == "" {
		h.logger.Warn().Msg("no goal id provided")
		abort(c, newBadRequestError("goal id is required"))
		return
	}

	err := h.goals.DeleteGoal(c, userID, goalID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
