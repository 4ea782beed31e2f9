package response

const (
	// MessageSuccess is the message returned on every successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from the caller.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
