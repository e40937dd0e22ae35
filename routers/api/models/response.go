package models

// Response is the basic model for an API response
type Response struct {
	Status int    `json:"status"`
	Err    string `json:"error"`
}

// ErrorResponse is sent by the terminal error handler
type ErrorResponse struct {
	Response
	Message string `json:"message"`
}
