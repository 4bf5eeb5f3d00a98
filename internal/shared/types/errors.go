package types

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedFormat = errors.New("extraction result has an unexpected format: account_summary and phones are required")
	ErrEmptyResult      = errors.New("extraction service returned an empty result")

	ErrInvalidFileType = errors.New("invalid file type: please upload a PDF or image file (.pdf, .jpg, .png, .heic)")
	ErrFileTooLarge    = errors.New("file too large")
	ErrInvalidZip      = errors.New("zip code must be 5 digits")
	ErrInvalidPrice    = errors.New("price must be a finite, non-negative number")

	ErrNoExtractorConfigured = errors.New("no bill extractor configured: set webhook_url or openai_api_key")
)

// TransportError reports that the extraction call could not complete.
// StatusCode is zero when no HTTP response was received at all.
type TransportError struct {
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("extraction request failed: %v", e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("extraction service responded %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("extraction service responded %s", e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
