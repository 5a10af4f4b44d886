package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mood-cinema/internal/dto"
	"mood-cinema/internal/logger"
	"mood-cinema/internal/middleware"
	"mood-cinema/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	sseEventDone  = "done"
	sseEventError = "error"
)

// ChatHandler handles mood chat HTTP requests
type ChatHandler struct {
	service service.ChatService
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{
		service: service,
	}
}

// GetMoods godoc
// @Summary Get moods
// @Description Returns the selectable moods in display order
// @Tags chat
// @Produce json
// @Success 200 {object} dto.MoodsResponse
// @Router /moods [get]
func (h *ChatHandler) GetMoods(c *fiber.Ctx) error {
	return c.JSON(h.service.Moods())
}

// Chat godoc
// @Summary Send a chat message
// @Description Sends one message with a mood tag and returns the full reply
// @Tags chat
// @Accept json
// @Produce json
// @Param X-LLM-API-Key header string false "LLM provider API key"
// @Param request body dto.ChatRequest true "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	req, err := parseChatRequest(c)
	if err != nil {
		return err
	}

	resp, err := h.service.Chat(c.UserContext(), middleware.APIKeyFrom(c, middleware.LLMKeyLocal), req, nil)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ChatStream godoc
// @Summary Stream a chat reply
// @Description Streams the reply as server-sent events. Each chunk is a data event; a final "done" event carries the session.
// @Tags chat
// @Accept json
// @Produce text/event-stream
// @Param X-LLM-API-Key header string false "LLM provider API key"
// @Param request body dto.ChatRequest true "Chat message"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /chat/stream [post]
func (h *ChatHandler) ChatStream(c *fiber.Ctx) error {
	req, err := parseChatRequest(c)
	if err != nil {
		return err
	}

	apiKey := middleware.APIKeyFrom(c, middleware.LLMKeyLocal)
	// Errors known before the stream starts keep their HTTP status.
	if err := h.service.Validate(apiKey, req); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	// fiber.Ctx is recycled once the handler returns; the writer must not touch it.
	ctx := context.WithoutCancel(c.UserContext())
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		onChunk := func(chunk string) error {
			writeSSE(w, "", chunk)
			return w.Flush()
		}

		resp, err := h.service.Chat(ctx, apiKey, req, onChunk)
		if err != nil {
			logger.Get().Warn("Chat stream ended with error", zap.Error(err))
			payload, _ := json.Marshal(streamError(err))
			writeSSE(w, sseEventError, string(payload))
			_ = w.Flush()
			return
		}

		payload, _ := json.Marshal(resp)
		writeSSE(w, sseEventDone, string(payload))
		_ = w.Flush()
	}))

	return nil
}

// GetHistory godoc
// @Summary Get chat history
// @Description Returns the messages of a live session, oldest first
// @Tags chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ChatHistoryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /chat/sessions/{id}/messages [get]
func (h *ChatHandler) GetHistory(c *fiber.Ctx) error {
	sessionID, _ := c.Locals(middleware.SessionIDLocal).(string)
	resp, err := h.service.History(c.UserContext(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ResetSession godoc
// @Summary Reset a chat session
// @Description Discards the session's history
// @Tags chat
// @Param id path string true "Session ID"
// @Success 204
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /chat/sessions/{id} [delete]
func (h *ChatHandler) ResetSession(c *fiber.Ctx) error {
	sessionID, _ := c.Locals(middleware.SessionIDLocal).(string)
	if err := h.service.Reset(c.UserContext(), sessionID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseChatRequest(c *fiber.Ctx) (dto.ChatRequest, error) {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse chat request", zap.Error(err))
		return req, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	// Copy out of fasthttp's request buffer; the stream writer outlives it.
	req.SessionID = strings.Clone(req.SessionID)
	req.Message = strings.Clone(req.Message)
	req.Mood = strings.Clone(req.Mood)
	return req, nil
}

// writeSSE writes one event. Multi-line data is split into several data lines.
func writeSSE(w *bufio.Writer, event, data string) {
	if event != "" {
		fmt.Fprintf(w, "event: %s\n", event)
	}
	for _, line := range strings.Split(data, "\n") {
		fmt.Fprintf(w, "data: %s\n", line)
	}
	w.WriteString("\n")
}

func streamError(err error) middleware.ErrorResponse {
	status := middleware.StatusOf(err)
	resp := middleware.ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Status:  status,
	}
	if de := asDomainError(err); de != nil {
		resp.Code = string(de.Code)
		resp.Message = de.Message
	}
	return resp
}
