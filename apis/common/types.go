package common

// ErrorResponse is the single error payload this service emits. The three API
// endpoints accept no input, so every error that reaches a client comes from
// the transport layer itself (an unmatched route, or a fault while producing a
// response) and is serialized in this shape by the central error handler.
type ErrorResponse struct {
	// Error indicates whether this is an error response
	Error bool `json:"error"`

	// Message contains the error message description
	Message string `json:"message"`
}
