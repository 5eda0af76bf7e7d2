package handlers

// ErrorResponse is the standard format for JSON error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse reports whether the site data loads.
type HealthResponse struct {
	Status         string `json:"status"`
	Works          int    `json:"works"`
	DefaultProfile bool   `json:"default_profile"`
}
