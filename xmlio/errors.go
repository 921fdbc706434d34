package xmlio

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrMissingAttribute = errors.New("missing attribute")

// FormatError reports an attribute of an element that is missing or could not
// be parsed.
type FormatError struct {
	Element string
	Attr    string
	Value   string
	Err     error
}

func (e *FormatError) Error() string {
	if e.Err == ErrMissingAttribute {
		return fmt.Sprintf("<%s>: missing attribute %q", e.Element, e.Attr)
	}
	if e.Attr == "" {
		return fmt.Sprintf("<%s>: invalid value %q: %v", e.Element, e.Value, e.Err)
	}
	return fmt.Sprintf("<%s>: invalid %s=%q: %v", e.Element, e.Attr, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Cause lets errors.Cause from pkg/errors reach the underlying error.
func (e *FormatError) Cause() error {
	return e.Err
}

func errAttrAfterContent(name string) error {
	return errors.Errorf("attribute %q written after element content", name)
}
