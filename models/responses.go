package models

// MessageResponse is the body of greeting, not-found, unauthenticated and
// generic error responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorsResponse is the body of a 400 response caused by field validation.
// Messages keep the order in which the rules are declared.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}
