package domain

import "errors"

// ErrEmptyOutput is returned when the extraction job reports success but
// leaves nothing in the working directory.
var ErrEmptyOutput = errors.New("extraction produced no files")

// ExtractionError is a failure reported by the extraction tool itself
// (unsupported URL, no matching format, network error and so on). The
// message is kept for logs; users get a generic reply.
type ExtractionError struct {
	Message string
}

func (e *ExtractionError) Error() string {
	return "extraction failed: " + e.Message
}

// IsExtractionError reports whether err is a failure of the extraction tool
// rather than of this process.
func IsExtractionError(err error) bool {
	var ee *ExtractionError
	return errors.As(err, &ee)
}
