package errors

const (
	UnknownErrorCode            = 100_001
	RequestBodyInvalidErrorCode = 100_002
)

var UnknownError = new(UnknownErrorCode, "UnknownError", "unexpected error: %s")

// RequestBodyInvalidError indicates the request body could not be decoded
var RequestBodyInvalidError = new(RequestBodyInvalidErrorCode, "RequestBodyInvalid", "Request body is invalid: %s")
