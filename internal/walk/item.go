package walk

// Kind classifies an Item.
type Kind int

const (
	// KindWord is a bare positional argument.
	KindWord Kind = iota

	// KindFlag is a single short flag (-x) or a long flag (--name),
	// leading dashes included in the text for uniform matching.
	KindFlag
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Item is one classified unit emitted by a Walker.
type Item struct {
	Kind Kind
	Text string
}

func (i Item) String() string {
	return i.Text
}
