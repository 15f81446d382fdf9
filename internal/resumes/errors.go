package resumes

import "errors"

var (
	// ErrNotFound covers both an absent id and an id owned by someone else;
	// callers never learn which.
	ErrNotFound = errors.New("resume not found")

	ErrInvalidInput         = errors.New("invalid input")
	ErrNoFiles              = errors.New("no images provided")
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrStoreUnavailable wraps document-store and asset-store I/O failures;
	// the underlying error stays server-side.
	ErrStoreUnavailable = errors.New("store unavailable")
)
