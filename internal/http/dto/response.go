package dto

// SuccessResponse wraps every successful payload.
type SuccessResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// ErrorResponse keeps the {success, message, errors} shape the board client
// already parses, with a conventional HTTP status.
type ErrorResponse struct {
	StatusCode int          `json:"statusCode"`
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
