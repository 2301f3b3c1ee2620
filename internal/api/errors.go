package api

import (
	"errors"
	"fmt"
)

// Machine-readable error codes carried by the dubbing API.
const (
	CodeFileTooLarge    = "FILE_TOO_LARGE"
	CodeInvalidFileType = "INVALID_FILE_TYPE"
	CodeFileEmpty       = "FILE_EMPTY"
	CodeUploadError     = "UPLOAD_ERROR"
	CodeJobNotFound     = "JOB_NOT_FOUND"
	CodeOutputNotReady  = "OUTPUT_NOT_READY"
	CodeDownloadError   = "DOWNLOAD_ERROR"
)

// APIError is a structured transport-or-server failure. Code is empty
// when the server returned a malformed or code-less error payload.
type APIError struct {
	HTTPStatus   int    `json:"httpStatus"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	MaxSize      string `json:"maxSize,omitempty"`
	UploadedSize string `json:"uploadedSize,omitempty"`
}

// Error formats the failure for logs.
func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Code == "" {
		return fmt.Sprintf("api error (http %d): %s", e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("api error %s (http %d): %s", e.Code, e.HTTPStatus, e.Message)
}

// IsNotFound reports whether the error means the job no longer exists
// on the server. This is the only poll failure treated as terminal.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == CodeJobNotFound || apiErr.HTTPStatus == 404
}

// UserMessage maps any client-observed failure to a stable user-facing
// message. Unrecognized and malformed errors fall back to a generic text.
func UserMessage(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return "Unknown error occurred. Please try again."
	}

	switch apiErr.Code {
	case CodeFileTooLarge:
		return fmt.Sprintf("File too large (%s). Maximum allowed size is %s.", apiErr.UploadedSize, apiErr.MaxSize)
	case CodeInvalidFileType:
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "Invalid file type. Allowed: mp4, avi, mkv, mov, wmv, flv, webm"
	case CodeFileEmpty:
		return "File is empty. Please select a valid file."
	case CodeJobNotFound:
		return "Job not found. Please upload a new file."
	case CodeOutputNotReady:
		return "Translation is still in progress. Please check again later."
	case CodeUploadError, CodeDownloadError:
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "Operation failed. Please try again."
	default:
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "An error occurred. Please try again."
	}
}
