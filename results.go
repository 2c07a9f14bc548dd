package auth

import "net/http"

// Response messages, verbatim strings are part of the API contract. The
// signin not-found and wrong-password cases share one message on purpose so
// responses do not reveal which accounts exist.
const (
	MsgBadInput         = "Bad Input"
	MsgPasswordMismatch = "Passwords does not match"
	MsgUserExists       = "User already exists"
	MsgUserNotFound     = "User does not exist or password is incorrect."
	MsgInternalError    = "Some internal server error occurred"
	MsgSignupSuccessful = "Signup Successful"
	MsgLoginSuccessful  = "Login Successful"
)

// Response is the envelope every public operation returns. StatusCode doubles
// as the HTTP status when the envelope is serialized by the routing layer.
type Response[T any] struct {
	Success    bool     `json:"success"`
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
	Data       T        `json:"data,omitempty"`
}

// Success builds a success envelope with the given payload
func Success[T any](statusCode int, message string, data T) *Response[T] {
	return &Response[T]{
		Success:    true,
		StatusCode: statusCode,
		Message:    message,
		Errors:     []string{},
		Data:       data,
	}
}

// Failure builds a failure envelope. Errors always serializes as a list,
// empty when there is no validator detail to carry.
func Failure[T any](statusCode int, message string, errs ...string) *Response[T] {
	if errs == nil {
		errs = []string{}
	}
	return &Response[T]{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Errors:     errs,
	}
}

// BadInput is the envelope for validation failures
func BadInput[T any](errs ...string) *Response[T] {
	return Failure[T](http.StatusBadRequest, MsgBadInput, errs...)
}

// InternalServerError abstracts the actual error from the client. A
// placeholder message tells the caller something went wrong server side while
// providing no information as to what the issue is, the logging sink gets the
// real error.
func InternalServerError[T any]() *Response[T] {
	return Failure[T](http.StatusInternalServerError, MsgInternalError)
}
