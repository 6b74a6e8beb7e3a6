package handler

import (
	"net/http"

	"batepapo/backend/internal/auth"
	"batepapo/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// JoinInput defines the structure for joining the chat.
type JoinInput struct {
	Name string `json:"name" binding:"required" example:"Ana"`
}

// ParticipantResponse defines the structure for an active participant.
type ParticipantResponse struct {
	Name       string `json:"name" example:"Ana"`
	LastStatus int64  `json:"lastStatus" example:"1769169600000"`
}

func newParticipantResponse(p models.Participant) ParticipantResponse {
	return ParticipantResponse{Name: p.Name, LastStatus: p.LastStatus}
}

// endregion

// Join godoc
// @Summary      Join the chat
// @Description  Registers a participant and announces the join to everyone.
// @Tags         participants
// @Accept       json
// @Param        input body JoinInput true "Participant"
// @Success      201
// @Failure      409  {object}  ErrorResponse "Name already in use"
// @Failure      422  {object}  ErrorResponse "Invalid name"
// @Failure      500  {object}  ErrorResponse
// @Router       /participants [post]
func (h *Handler) Join(c *gin.Context) {
	var input JoinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.registry.Join(c.Request.Context(), h.sanitizer.Text(input.Name)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// ListParticipants godoc
// @Summary      List participants
// @Description  Lists the active participants in the order they joined.
// @Tags         participants
// @Produce      json
// @Success      200  {array}   ParticipantResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /participants [get]
func (h *Handler) ListParticipants(c *gin.Context) {
	participants, err := h.registry.ListActive(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		response = append(response, newParticipantResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Heartbeat godoc
// @Summary      Keep a participant alive
// @Description  Refreshes the participant's last status so the reaper does not evict them.
// @Tags         participants
// @Param        user header string true "Participant name"
// @Success      200
// @Failure      404  {object}  ErrorResponse "Participant is not active"
// @Failure      500  {object}  ErrorResponse
// @Router       /status [post]
func (h *Handler) Heartbeat(c *gin.Context) {
	if err := h.registry.Heartbeat(c.Request.Context(), auth.User(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
