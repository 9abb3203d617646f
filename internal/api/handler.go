package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"siska-gateway/internal/assistant"
	"siska-gateway/internal/common/logger"
	"siska-gateway/internal/common/observability"
)

// requestSchema validates the inbound message contract before any JSON
// binding. intent and message are required; location is optional but
// must carry numeric lat/lon when present.
const requestSchema = `{
	"type": "object",
	"required": ["intent", "message"],
	"properties": {
		"intent": {"type": "string"},
		"message": {"type": "string"},
		"location": {
			"type": "object",
			"required": ["lat", "lon"],
			"properties": {
				"lat": {"type": "number"},
				"lon": {"type": "number"}
			}
		}
	}
}`

var compiledRequestSchema = gojsonschema.NewStringLoader(requestSchema)

// Dispatcher is the pipeline surface the handler drives.
type Dispatcher interface {
	Dispatch(ctx context.Context, req assistant.Request) assistant.Reply
}

type Handler struct {
	dispatcher Dispatcher
	obs        *observability.Observability
	logger     logger.Logger
}

// NewHandler builds the message handler. obs may be nil in tests.
func NewHandler(dispatcher Dispatcher, obs *observability.Observability, log logger.Logger) *Handler {
	return &Handler{dispatcher: dispatcher, obs: obs, logger: log}
}

// HandleMessage serves POST /api/message. Every outcome, recoverable or
// not, is shaped as {"responseText": ...}; only the status code varies.
func (h *Handler) HandleMessage(c *gin.Context) {
	requestID := uuid.NewString()
	log := h.logger.WithFields(map[string]interface{}{"requestId": requestID})
	start := time.Now()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.WithError(err).Warn("failed to read request body", nil)
		c.JSON(http.StatusBadRequest, gin.H{"responseText": "Permintaan tidak valid."})
		return
	}

	validation, err := gojsonschema.Validate(compiledRequestSchema, gojsonschema.NewBytesLoader(body))
	if err != nil || !validation.Valid() {
		if err != nil {
			log.WithError(err).Warn("request body is not valid JSON", nil)
		} else {
			log.Warn("request body failed schema validation", map[string]interface{}{
				"errors": validation.Errors(),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"responseText": "Permintaan tidak valid."})
		return
	}

	var req assistant.Request
	if err := json.Unmarshal(body, &req); err != nil {
		log.WithError(err).Warn("failed to decode request", nil)
		c.JSON(http.StatusBadRequest, gin.H{"responseText": "Permintaan tidak valid."})
		return
	}

	reply := h.dispatcher.Dispatch(c.Request.Context(), req)

	if h.obs != nil {
		h.obs.RecordRequest(c.Request.Context(), req.Intent, outcomeLabel(reply.Status))
		h.obs.RecordRequestDuration(c.Request.Context(), time.Since(start), req.Intent)
	}
	log.Info("request dispatched", map[string]interface{}{
		"intent":     req.Intent,
		"status":     reply.Status.HTTPStatus(),
		"durationMs": time.Since(start).Milliseconds(),
	})

	c.JSON(reply.Status.HTTPStatus(), gin.H{"responseText": reply.Text})
}

func outcomeLabel(s assistant.Status) string {
	switch s {
	case assistant.StatusRejected:
		return "rejected"
	case assistant.StatusInternalError:
		return "error"
	default:
		return "done"
	}
}

// HandleHealth serves GET /healthz.
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
