package errors

import (
	"fmdverse/api/models/dtos"
	"time"
)

/*
	Utility functions to facillitate returning error responses to HTTP clients
*/

// -- Simplest: 1 error with message
func CreateSimpleBadRequest(message string) dtos.GeneralErrorResponseDto {
	return createSimple(400, "Bad Request", message)
}
func CreateSimpleInternalServerError(message string) dtos.GeneralErrorResponseDto {
	return createSimple(500, "Internal Server Error", message)
}
func CreateSimpleServiceUnavailable(message string) dtos.GeneralErrorResponseDto {
	return createSimple(503, "Service Unavailable", message)
}

func createSimple(code int, status string, message string) dtos.GeneralErrorResponseDto {
	return dtos.GeneralErrorResponseDto{
		Code:      code,
		Message:   status,
		Timestamp: time.Now(),
		Errors: []dtos.GeneralError{
			{
				Message: message,
			},
		},
	}
}

// --
