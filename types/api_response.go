package types

// SuccessResponse is the body returned for a successfully processed enquiry.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body returned for validation and server failures.
// The message is always safe to surface verbatim to the user.
type ErrorResponse struct {
	Error string `json:"error"`
}
