// Package model - API types shared by every route's request/response envelope
package model

// APIResponse is the uniform JSON envelope for every route.
// Exactly one of Data or Error is populated; Message carries an optional
// human-readable note on success.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// OKMessage wraps data in a success envelope with a message.
func OKMessage(data interface{}, message string) APIResponse {
	return APIResponse{Success: true, Data: data, Message: message}
}

// Fail wraps an error string in a failure envelope.
func Fail(err string) APIResponse {
	return APIResponse{Success: false, Error: err}
}
