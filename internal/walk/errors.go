package walk

import (
	"errors"
	"fmt"
)

// ErrNoFlag reports a parameter request when the item just taken was not
// a flag. The queue is left untouched.
var ErrNoFlag = errors.New("parameter requested before any flag")

// MissingParameterError is returned by the required-parameter methods
// when no attached value is buffered and no raw arguments remain, for
// example on -f at the end of the line.
type MissingParameterError struct {
	Flag string
}

func (e MissingParameterError) Error() string {
	return fmt.Sprintf("parameter missing for flag %s", e.Flag)
}

// UnexpectedValueError is returned by the parameter methods when a value
// is physically attached to the flag (via = or a cluster remainder) but
// the caller declared attached syntax unacceptable.
type UnexpectedValueError struct {
	Flag  string
	Value string
}

func (e UnexpectedValueError) Error() string {
	return fmt.Sprintf("unexpected value %q attached to flag %s", e.Value, e.Flag)
}

// InvalidTextError is returned by the text-validated accessors when a
// fragment is not valid UTF-8. The raw accessors never produce it.
type InvalidTextError struct {
	Text string
}

func (e InvalidTextError) Error() string {
	return fmt.Sprintf("invalid unicode in argument %q", e.Text)
}
