package welcome

// Values fixed by the welcome contract.
const (
	// WelcomeMessage is the static greeting served at the root path.
	WelcomeMessage = "Hello from Go Fiber on GKE!"

	// StatusRunning is the only status the welcome endpoint reports.
	StatusRunning = "running"
)

// WelcomeResponse represents the welcome message returned at the root path.
// Everything except Timestamp is fixed at build time; Timestamp reflects the
// wall clock at the instant the request is handled.
type WelcomeResponse struct {
	// Message is the static greeting
	Message string `json:"message"`

	// Version is the build version of the service (e.g., "1.0.0")
	Version string `json:"version"`

	// Timestamp is the request-time wall clock in ISO-8601 form
	Timestamp string `json:"timestamp"`

	// Status reports that the process is serving traffic
	Status string `json:"status"`
}
