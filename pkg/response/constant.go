package response

import "time"

const (
	DeveloperMessage = "Check the documentation."
	DateTimeFormat   = time.RFC3339

	TitleNotFound       = "Not Found Exception"
	TitleNotValid       = "Method Argument Not Valid Exception"
	TitleResponseStatus = "Response Status Exception"
	TitleInternal       = "Internal Server Error"

	ValidationDetails = "Validation failed for request body"
)
