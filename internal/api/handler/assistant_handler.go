package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

type AssistantHandler struct {
	assistant ports.AssistantService
}

func NewAssistantHandler(assistant ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

type chatRequest struct {
	Message string `json:"message" form:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat answers a free-text message. Never fails: backend errors degrade to
// canned replies inside the service.
//
// @Summary      Chat with the assistant
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Message"
// @Success      200   {object}  chatResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/chatbot [post]
func (h *AssistantHandler) Chat(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	reply := h.assistant.Respond(c.Request().Context(), ident, req.Message)
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}
