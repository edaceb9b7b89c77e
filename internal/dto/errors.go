package dto

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorItem describes one rejected request field.
type ValidationErrorItem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrorResponse is returned with 422 for malformed requests.
type ValidationErrorResponse struct {
	Detail []ValidationErrorItem `json:"detail"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RootResponse describes the API at GET /.
type RootResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}
