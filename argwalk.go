package argwalk

import (
	"os"

	"github.com/toejough/argwalk/internal/walk"
)

// --- Re-exported types from walk ---

// Item is one classified unit emitted by a Walker: a word or a flag.
type Item = walk.Item

// Kind classifies an Item.
type Kind = walk.Kind

// Walker is a sequential cursor over a raw argument list.
type Walker = walk.Walker

// MissingParameterError reports a required parameter with no attached
// value and no remaining arguments.
type MissingParameterError = walk.MissingParameterError

// UnexpectedValueError reports an attached value supplied to a flag whose
// caller declared attached syntax unacceptable.
type UnexpectedValueError = walk.UnexpectedValueError

// InvalidTextError reports a fragment that is not valid UTF-8. Only the
// text-validated accessors produce it.
type InvalidTextError = walk.InvalidTextError

// Re-export Kind constants
const (
	KindWord = walk.KindWord
	KindFlag = walk.KindFlag
)

// ErrNoFlag reports a parameter request when the item just taken was not
// a flag.
var ErrNoFlag = walk.ErrNoFlag

// --- Public API ---

// New returns a Walker over args, typically os.Args[1:].
func New(args []string) *Walker {
	return walk.New(args)
}

// FromEnv returns a Walker over the process arguments, program name
// excluded.
func FromEnv() *Walker {
	return New(os.Args[1:])
}
