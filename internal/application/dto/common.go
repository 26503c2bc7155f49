package dto

// ErrorResponse is the error body the legacy frontend expects: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the bare acknowledgement body: {"success": true}.
type SuccessResponse struct {
	Success bool `json:"success"`
}
