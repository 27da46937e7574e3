package info

// InfoResponse represents the static application-info report.
// Application, Version, and FrameworkVersion are compile-time constants;
// RuntimeVersion is read from the executing Go runtime when the request is
// handled.
type InfoResponse struct {
	// Application is the service identity (e.g., "Go GKE Demo")
	Application string `json:"application"`

	// Version is the build version of the service (e.g., "1.0.0")
	Version string `json:"version"`

	// RuntimeVersion is the Go runtime version (e.g., "go1.25.5")
	RuntimeVersion string `json:"runtime_version"`

	// FrameworkVersion is the pinned version of the HTTP framework
	FrameworkVersion string `json:"framework_version"`
}
