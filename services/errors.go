package services

// Error codes map the engine's failure taxonomy onto the wire. Every error a
// service returns carries one of these so handlers can pick a status and the
// client can render a message.
const (
	CodeBadRequest  = "bad_request"
	CodeNotFound    = "not_found"
	CodeConflict    = "conflict"
	CodeServerError = "server_error"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func BadRequest(message string) *Error {
	return &Error{Code: CodeBadRequest, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

func ServerError(message string) *Error {
	return &Error{Code: CodeServerError, Message: message}
}
