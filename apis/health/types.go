package health

// Health status values understood by the orchestrator's poller.
const (
	// StatusUp is reported whenever the handler runs at all.
	StatusUp = "UP"

	// StatusDown is part of the response contract but is never emitted by the
	// service itself; an instance that cannot answer is marked down by the
	// poller through the absence of a response.
	StatusDown = "DOWN"
)

// HealthResponse represents the health check response structure.
// It reports process liveness only: the service has no downstream
// dependencies, so there is nothing deeper to probe.
type HealthResponse struct {
	// Status is the liveness state, always StatusUp in practice
	Status string `json:"status"`
}
