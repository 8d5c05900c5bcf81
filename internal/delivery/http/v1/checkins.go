package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkoroteev/go-coachly/internal/models"
)

type checkInResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}

func newMessageListResponse(messages []models.Message) []messageResponse {
	response := make([]messageResponse, len(messages))
	for i, message := range messages {
		response[i] = messageResponse{
			ID:        message.ID,
			Content:   message.Content,
			Sender:    message.Sender,
			CreatedAt: message.CreatedAt,
		}
	}
	return response
}

func (h *handlerImpl) HandleListCheckIns(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	checkIns, err := h.checkIns.ListCheckIns(c, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]checkInResponse, len(checkIns))
	for i, checkIn := range checkIns {
		response[i] = checkInResponse{
			ID:        checkIn.ID,
			CreatedAt: checkIn.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

type createCheckInResponse struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Messages  []messageResponse `json:"messages"`
}

func (h *handlerImpl) HandleCreateCheckIn(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	checkIn, messages, err := h.checkIns.CreateCheckIn(c, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createCheckInResponse{
		ID:        checkIn.ID,
		CreatedAt: checkIn.CreatedAt,
		Messages:  newMessageListResponse(messages),
	})
}

func (h *handlerImpl) HandleGetMessages(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	checkInID := c.Param("id")
	if checkInID == "" {
		h.logger.Warn().Msg("no check-in id provided")
		abort(c, newBadRequestError("check-in id is required"))
		return
	}

	messages, err := h.checkIns.GetMessages(c, userID, checkInID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newMessageListResponse(messages))
}

type addMessageRequest struct {
	Content string `json:"content" binding:"required,max=4000"`
}

func (h *handlerImpl) HandleAddMessage(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	checkInID := c.Param("id")
	if checkInID == "" {
		h.logger.Warn().Msg("no check-in id provided")
		abort(c, newBadRequestError("check-in id is required"))
		return
	}

	var req addMessageRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	messages, err := h.checkIns.AddMessage(c, userID, checkInID, req.Content)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newMessageListResponse(messages))
}
