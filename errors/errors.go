package errors

import (
	"encoding/json"
	"errors"
)

// ErrorCode represents a specific error code.
type ErrorCode string

const (
	GenericErrorCode        ErrorCode = "0"
	ScanFailedErrorCode     ErrorCode = "scan-failed"
	NotFoundErrorCode       ErrorCode = "not-found"
	DownloadFailedErrorCode ErrorCode = "download-failed"
	InvalidTokenIDErrorCode ErrorCode = "invalid-token-id"
	NotConnectedErrorCode   ErrorCode = "not-connected"
	InvalidAddressErrorCode ErrorCode = "invalid-address"
)

// ErrorResponse represents an error response structure.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface for ErrorResponse.
func (e *ErrorResponse) Error() string {
	errorJSON, _ := json.Marshal(e)
	return string(errorJSON)
}

// CreateErrorResponseFromError creates an ErrorResponse from a generic error.
func CreateErrorResponseFromError(err error) error {
	if err == nil {
		return nil
	}
	var errResp *ErrorResponse
	if errors.As(err, &errResp) {
		return errResp
	}
	return &ErrorResponse{
		Code:    GenericErrorCode,
		Details: err.Error(),
	}
}

// NewErrorResponse wraps err into an ErrorResponse carrying code.
func NewErrorResponse(code ErrorCode, err error) *ErrorResponse {
	resp := &ErrorResponse{Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	return resp
}

// IsErrorCode reports whether err is an ErrorResponse with the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	var errResp *ErrorResponse
	return errors.As(err, &errResp) && errResp.Code == code
}
