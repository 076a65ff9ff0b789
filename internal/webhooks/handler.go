package webhooks

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	githubtypes "github.com/jasonwhite/github-types"
	"github.com/jasonwhite/github-types/internal/contextkeys"
	"github.com/jasonwhite/github-types/internal/models"
)

// Handler contains dependencies for the webhook HTTP handlers.
type Handler struct {
	Logger   *slog.Logger
	JobQueue chan<- models.Job
}

// NewHandler creates a new instance of the webhook Handler.
func NewHandler(logger *slog.Logger, jobQueue chan<- models.Job) *Handler {
	return &Handler{
		Logger:   logger,
		JobQueue: jobQueue,
	}
}

// HandleWebhook validates the delivery headers and hands the payload to
// the worker pool. Ping events are acknowledged inline; everything else
// is queued.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	bodyBytes, ok := r.Context().Value(contextkeys.RequestBodyKey).([]byte)
	if !ok {
		h.Logger.Error("Could not retrieve request body from context")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	eventName := r.Header.Get("X-GitHub-Event")
	if eventName == "" {
		http.Error(w, "Missing X-GitHub-Event header", http.StatusBadRequest)
		return
	}
	eventType, err := githubtypes.ParseEventType(eventName)
	if err != nil {
		h.Logger.Warn("Received webhook with unknown event type", "event", eventName)
		http.Error(w, "Unknown event type", http.StatusBadRequest)
		return
	}

	// Every delivery carries a GUID used for redelivery detection.
	deliveryID := r.Header.Get("X-GitHub-Delivery")
	if _, err := uuid.Parse(deliveryID); err != nil {
		h.Logger.Warn("Received webhook with invalid delivery ID", "delivery_id", deliveryID)
		http.Error(w, "Invalid X-GitHub-Delivery header", http.StatusBadRequest)
		return
	}

	if eventType == githubtypes.EventPing {
		event, err := githubtypes.ParseEvent(eventType, bodyBytes)
		if err != nil {
			http.Error(w, "Invalid ping payload", http.StatusBadRequest)
			return
		}
		ping := event.(*githubtypes.PingEvent)
		h.Logger.Info("Received ping",
			"delivery_id", deliveryID,
			"hook_id", ping.HookID,
			"zen", ping.Zen,
		)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong\n"))
		return
	}

	job := models.Job{
		Event:      eventType,
		DeliveryID: deliveryID,
		Payload:    bodyBytes,
	}
	select {
	case h.JobQueue <- job:
		h.Logger.Info("Webhook delivery queued for processing",
			"event", eventType, "delivery_id", deliveryID)
		w.WriteHeader(http.StatusAccepted)
	default:
		h.Logger.Error("Job queue is full, rejecting webhook delivery",
			"event", eventType, "delivery_id", deliveryID)
		http.Error(w, "Server busy.", http.StatusServiceUnavailable)
	}
}
