package attendance

import "errors"

// Attendance domain errors
var (
	// Import errors
	ErrMissingFilePath = errors.New("no file URL or path provided")
	ErrFileNotFound    = errors.New("file not found")
	ErrDownloadFailed  = errors.New("failed to download file")
	ErrMissingColumns  = errors.New("csv is missing required columns")
	ErrEmptyFile       = errors.New("csv contains no data rows")

	// Query errors
	ErrRecordNotFound     = errors.New("attendance record not found")
	ErrEmployeeIDRequired = errors.New("employee_id filter is required")
	ErrInvalidMonth       = errors.New("month filter must be MM/YYYY")
)
