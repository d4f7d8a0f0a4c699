package generation

import "errors"

// Common errors returned by generation providers.
var (
	// ErrGenerationFailed is returned when content generation fails for a
	// general reason.
	ErrGenerationFailed = errors.New("failed to generate word content")

	// ErrInvalidResponse is returned when the provider response cannot be
	// parsed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the provider blocks the content via
	// safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that may resolve
	// on retry.
	ErrTransientFailure = errors.New("transient error during word content generation")

	// ErrInvalidConfig is returned when the generator configuration is
	// invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
