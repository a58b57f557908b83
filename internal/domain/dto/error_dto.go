package dto

// ErrorResponse is the JSON error body shared by all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ConvertErrorResponse carries converter diagnostics alongside the error.
type ConvertErrorResponse struct {
	Error           string `json:"error"`
	Details         string `json:"details,omitempty"`
	Signal          string `json:"signal,omitempty"`
	KilledByTimeout bool   `json:"killedByTimeout,omitempty"`
	Stdout          string `json:"stdout,omitempty"`
	Stderr          string `json:"stderr,omitempty"`
}
