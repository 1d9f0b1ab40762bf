package mcp

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mockmate/interview-engine/internal/transcript"
)

// HealthResponse represents the JSON response for health endpoints
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Service   string            `json:"service"`
	Version   string            `json:"version,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

// LivenessHandlerWithLogger checks if the server is running and accepting
// requests. Always returns 200 OK - no external dependencies required.
func LivenessHandlerWithLogger(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	ctx := r.Context()
	logger.DebugContext(ctx, "liveness check requested")

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "interview-engine-mcp",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)

	logger.DebugContext(ctx, "liveness check completed", "status", "healthy")
}

// ReadinessHandlerWithLogger checks if the server is ready to handle
// requests. Returns 200 OK if the transcript store is accessible, 503 if not.
func ReadinessHandlerWithLogger(w http.ResponseWriter, r *http.Request, store *transcript.Store, logger *slog.Logger) {
	ctx := r.Context()
	logger.DebugContext(ctx, "readiness check requested")

	storeAccessible := store.IsAccessible()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "interview-engine-mcp",
		Checks:    make(map[string]string),
	}

	if storeAccessible {
		response.Checks["transcripts"] = "accessible"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
		logger.DebugContext(ctx, "readiness check completed", "status", "healthy", "transcripts", "accessible")
	} else {
		response.Status = "unhealthy"
		response.Checks["transcripts"] = "inaccessible"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(response)
		logger.ErrorContext(ctx, "readiness check failed", "status", "unhealthy", "transcripts", "inaccessible")
	}
}

// ReadinessHandlerFunc creates a handler function with store dependency
func ReadinessHandlerFunc(store *transcript.Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ReadinessHandlerWithLogger(w, r, store, logger)
	}
}
