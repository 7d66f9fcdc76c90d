package wxextract

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyBody is wrapped in a FetchError when the server answers
	// with nothing.
	ErrEmptyBody = errors.New("response body is empty")

	// ErrContentNotFound is returned when the page has no js_content container.
	ErrContentNotFound = errors.New("js_content not found")
)

// FetchError reports a failure to download the page.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s failed: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
