package handler

import (
	"net/http"
	"strconv"

	"batepapo/backend/internal/auth"
	"batepapo/backend/internal/chat"
	"batepapo/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// MessageInput defines the structure for posting or editing a message.
type MessageInput struct {
	To   string `json:"to" binding:"required" example:"Todos"`
	Text string `json:"text" binding:"required" example:"oi"`
	Type string `json:"type" binding:"required" example:"message"`
}

// MessageResponse defines the structure for a chat message.
type MessageResponse struct {
	ID   string             `json:"_id" example:"0194d1f2-6a2b-7c3d-9e4f-5a6b7c8d9e0f"`
	From string             `json:"from" example:"Ana"`
	To   string             `json:"to" example:"Todos"`
	Text string             `json:"text" example:"oi"`
	Type models.MessageType `json:"type" example:"message"`
	Time string             `json:"time" example:"12:00:00"`
}

func newMessageResponse(m models.Message) MessageResponse {
	return MessageResponse{
		ID:   m.ID,
		From: m.From,
		To:   m.To,
		Text: m.Text,
		Type: m.Type,
		Time: m.Time,
	}
}

func (h *Handler) content(input MessageInput) chat.Content {
	return chat.Content{
		To:   h.sanitizer.Text(input.To),
		Text: h.sanitizer.Text(input.Text),
		Type: models.MessageType(h.sanitizer.Text(input.Type)),
	}
}

// endregion

// PostMessage godoc
// @Summary      Send a message
// @Description  Sends a public or private message as the participant named in the user header.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        user  header string       true "Participant name"
// @Param        input body   MessageInput true "Message"
// @Success      201  {object}  MessageResponse
// @Failure      422  {object}  ErrorResponse "Invalid message or sender is not active"
// @Failure      500  {object}  ErrorResponse
// @Router       /messages [post]
func (h *Handler) PostMessage(c *gin.Context) {
	var input MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	msg, err := h.messages.Post(c.Request.Context(), auth.User(c), h.content(input))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMessageResponse(msg))
}

// ListMessages godoc
// @Summary      List messages
// @Description  Lists the messages the user may read, oldest first. A positive limit keeps only the most recent ones.
// @Tags         messages
// @Produce      json
// @Param        user  header string false "Participant name"
// @Param        limit query  int    false "Number of most recent messages"
// @Success      200  {array}   MessageResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /messages [get]
func (h *Handler) ListMessages(c *gin.Context) {
	// A missing or malformed limit means no limit.
	limit, _ := strconv.Atoi(c.Query("limit"))

	msgs, err := h.messages.ListVisibleTo(c.Request.Context(), auth.User(c), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		response = append(response, newMessageResponse(m))
	}
	c.JSON(http.StatusOK, response)
}

// EditMessage godoc
// @Summary      Edit a message
// @Description  Replaces the recipient, text and type of a message. Only its author may edit it.
// @Tags         messages
// @Accept       json
// @Param        user  header string       true "Participant name"
// @Param        id    path   string       true "Message ID"
// @Param        input body   MessageInput true "New message content"
// @Success      204
// @Failure      401  {object}  ErrorResponse "User is not the author"
// @Failure      404  {object}  ErrorResponse "Message not found"
// @Failure      422  {object}  ErrorResponse "Invalid message"
// @Failure      500  {object}  ErrorResponse
// @Router       /messages/{id} [put]
func (h *Handler) EditMessage(c *gin.Context) {
	var input MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.messages.Edit(c.Request.Context(), c.Param("id"), auth.User(c), h.content(input)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteMessage godoc
// @Summary      Delete a message
// @Description  Deletes a message. Only its author may delete it.
// @Tags         messages
// @Param        user header string true "Participant name"
// @Param        id   path   string true "Message ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse "User is not the author"
// @Failure      404  {object}  ErrorResponse "Message not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /messages/{id} [delete]
func (h *Handler) DeleteMessage(c *gin.Context) {
	if err := h.messages.Delete(c.Request.Context(), c.Param("id"), auth.User(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
