package msg

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a violated precondition on a documented
// contract, such as setting a zero routing id. It is the only class of
// failure these operations return; anything else either succeeds or
// terminates the process with a diagnostic.
var ErrInvalidInput = errors.New("invalid input")

// TextEncodingError reports that message content is not valid UTF-8
// when interpreted as text.
type TextEncodingError struct {
	// Offset of the first invalid byte.
	Offset int
}

func (e *TextEncodingError) Error() string {
	return fmt.Sprintf("content is not valid UTF-8 at byte %d", e.Offset)
}
