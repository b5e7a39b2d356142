// Package walk implements the argument tokenizing state machine.
// It decomposes a raw argument list into classified items: bare words,
// individual short flags out of clusters such as -xvf, long flags, and
// the values attached to them. It imposes no schema of known flags; the
// caller decides per flag whether a parameter is expected.
package walk

import (
	"strings"
	"unicode/utf8"
)

type stateKind int

const (
	// stateFinished is terminal: no arguments remain.
	stateFinished stateKind = iota

	// stateBeforeDouble: the next raw argument begins with "--" and is
	// unprocessed.
	stateBeforeDouble

	// stateBeforeSingle: the next raw argument begins with a single dash,
	// is longer than one byte, and is unprocessed.
	stateBeforeSingle

	// stateBeforeWord: the next raw argument has no leading dash (or is
	// exactly "-") and is unprocessed.
	stateBeforeWord

	// stateSplitting: mid-cluster. One or more letters of a -xvf style
	// argument have been emitted as flags; the buffer holds the rest,
	// dash stripped.
	stateSplitting

	// stateLongArg: a --name=value argument has had its name emitted;
	// the buffer holds the value, pending explicit consumption as a
	// parameter or implicit emission as a word.
	stateLongArg
)

// Walker is a sequential cursor over a raw argument list. Every call to
// TakeItem or TakeItemRaw doles out another classified item; parameter
// methods claim the value bound to the flag just emitted.
//
// The argument slice is borrowed and never mutated. The buffer is
// non-empty only in the splitting and long-arg states; the cursor plus
// the buffer always reconstruct the exact remaining unconsumed input.
type Walker struct {
	args     []string
	index    int
	state    stateKind
	buffer   string
	lastFlag string
}

// New returns a Walker over args, typically os.Args[1:].
func New(args []string) *Walker {
	w := &Walker{args: args}
	w.recompute()
	return w
}

// recompute classifies the next unconsumed argument. The buffer is empty
// afterward.
func (w *Walker) recompute() {
	w.buffer = ""
	if w.index >= len(w.args) {
		w.state = stateFinished
		return
	}
	arg := w.args[w.index]
	switch {
	case strings.HasPrefix(arg, "--"):
		w.state = stateBeforeDouble
	case len(arg) > 1 && arg[0] == '-':
		w.state = stateBeforeSingle
	default:
		w.state = stateBeforeWord
	}
}

func (w *Walker) pop() string {
	arg := w.args[w.index]
	w.index++
	return arg
}

// splitCluster chops the leading letter off a dashless cluster remainder
// and returns it as a flag. An invalid UTF-8 byte counts as a one-byte
// letter so the raw stream stays lossless.
func splitCluster(letters string) (flag, rest string) {
	_, size := utf8.DecodeRuneInString(letters)
	return "-" + letters[:size], letters[size:]
}

// TakeItemRaw returns the next classified item without text validation
// and advances. ok is false once the input is exhausted, and stays false.
// The raw path never fails and never loses bytes; the error return exists
// for symmetry with TakeItem.
//
// An argument of exactly "-" or "--" is emitted as a word, never split.
// A value attached with = that was never claimed with a parameter method
// is emitted as a plain word.
func (w *Walker) TakeItemRaw() (Item, bool, error) {
	switch w.state {
	case stateBeforeWord:
		word := w.pop()
		w.recompute()
		w.lastFlag = ""
		return Item{Kind: KindWord, Text: word}, true, nil

	case stateBeforeDouble:
		arg := w.pop()
		if arg == "--" {
			// "end of options" is the caller's interpretation, not ours
			w.recompute()
			w.lastFlag = ""
			return Item{Kind: KindWord, Text: arg}, true, nil
		}
		if idx := strings.IndexByte(arg, '='); idx >= 0 {
			name := arg[:idx]
			w.state = stateLongArg
			w.buffer = arg[idx+1:]
			w.lastFlag = name
			return Item{Kind: KindFlag, Text: name}, true, nil
		}
		w.recompute()
		w.lastFlag = arg
		return Item{Kind: KindFlag, Text: arg}, true, nil

	case stateBeforeSingle:
		arg := w.pop()
		flag, rest := splitCluster(arg[1:])
		if rest == "" {
			w.recompute()
		} else {
			w.state = stateSplitting
			w.buffer = rest
		}
		w.lastFlag = flag
		return Item{Kind: KindFlag, Text: flag}, true, nil

	case stateSplitting:
		flag, rest := splitCluster(w.buffer)
		if rest == "" {
			w.recompute()
		} else {
			w.buffer = rest
		}
		w.lastFlag = flag
		return Item{Kind: KindFlag, Text: flag}, true, nil

	case stateLongArg:
		word := w.buffer
		w.recompute()
		w.lastFlag = ""
		return Item{Kind: KindWord, Text: word}, true, nil

	default: // stateFinished
		w.lastFlag = ""
		return Item{}, false, nil
	}
}

// TakeItem is TakeItemRaw with the emitted fragment validated as UTF-8
// text. It fails with InvalidTextError exactly when validation fails; the
// item is consumed either way.
func (w *Walker) TakeItem() (Item, bool, error) {
	item, ok, err := w.TakeItemRaw()
	if err != nil || !ok {
		return item, ok, err
	}
	if !utf8.ValidString(item.Text) {
		return Item{}, false, InvalidTextError{Text: item.Text}
	}
	return item, true, nil
}

// PeekItemRaw returns the item the next TakeItemRaw would emit, without
// advancing.
func (w *Walker) PeekItemRaw() (Item, bool, error) {
	switch w.state {
	case stateBeforeWord:
		return Item{Kind: KindWord, Text: w.args[w.index]}, true, nil
	case stateBeforeDouble:
		arg := w.args[w.index]
		if arg == "--" {
			return Item{Kind: KindWord, Text: arg}, true, nil
		}
		if idx := strings.IndexByte(arg, '='); idx >= 0 {
			return Item{Kind: KindFlag, Text: arg[:idx]}, true, nil
		}
		return Item{Kind: KindFlag, Text: arg}, true, nil
	case stateBeforeSingle:
		flag, _ := splitCluster(w.args[w.index][1:])
		return Item{Kind: KindFlag, Text: flag}, true, nil
	case stateSplitting:
		flag, _ := splitCluster(w.buffer)
		return Item{Kind: KindFlag, Text: flag}, true, nil
	case stateLongArg:
		return Item{Kind: KindWord, Text: w.buffer}, true, nil
	default: // stateFinished
		return Item{}, false, nil
	}
}

// PeekItem is PeekItemRaw with text validation.
func (w *Walker) PeekItem() (Item, bool, error) {
	item, ok, err := w.PeekItemRaw()
	if err != nil || !ok {
		return item, ok, err
	}
	if !utf8.ValidString(item.Text) {
		return Item{}, false, InvalidTextError{Text: item.Text}
	}
	return item, true, nil
}

// HasParameter reports whether a parameter claim with this attachedOK
// would return a value for the flag just emitted.
func (w *Walker) HasParameter(attachedOK bool) bool {
	switch w.state {
	case stateLongArg, stateSplitting:
		return attachedOK
	case stateFinished:
		return false
	default:
		return w.lastFlag != "" && w.index < len(w.args)
	}
}

// ParameterRaw claims the value bound to the flag just emitted, without
// text validation. attachedOK declares whether a value physically joined
// to the flag (-fbanana, --fruit=banana) is acceptable; a separate
// following argument is always consumed greedily, even when it looks
// like a flag itself. ok is false when the input is exhausted.
//
// With an attached value present and attachedOK false, the call fails
// with UnexpectedValueError. An =-attached value is discarded so the
// stream does not desynchronize; a cluster remainder is preserved, since
// its letters are still individually valid flags.
//
// Calling any parameter method when the item just taken was not a flag
// fails with ErrNoFlag and leaves the queue untouched.
func (w *Walker) ParameterRaw(attachedOK bool) (string, bool, error) {
	if w.lastFlag == "" {
		return "", false, ErrNoFlag
	}
	switch w.state {
	case stateLongArg:
		value := w.buffer
		flag := w.lastFlag
		w.lastFlag = ""
		w.recompute()
		if !attachedOK {
			return "", false, UnexpectedValueError{Flag: flag, Value: value}
		}
		return value, true, nil

	case stateSplitting:
		if !attachedOK {
			return "", false, UnexpectedValueError{Flag: w.lastFlag, Value: w.buffer}
		}
		value := w.buffer
		w.lastFlag = ""
		w.recompute()
		return value, true, nil

	case stateFinished:
		return "", false, nil

	default:
		value := w.pop()
		w.lastFlag = ""
		w.recompute()
		return value, true, nil
	}
}

// Parameter is ParameterRaw with the value validated as UTF-8 text.
func (w *Walker) Parameter(attachedOK bool) (string, bool, error) {
	value, ok, err := w.ParameterRaw(attachedOK)
	if err != nil || !ok {
		return "", ok, err
	}
	if !utf8.ValidString(value) {
		return "", false, InvalidTextError{Text: value}
	}
	return value, true, nil
}

// RequiredParameterRaw is ParameterRaw with exhaustion reported as
// MissingParameterError instead of ok=false.
func (w *Walker) RequiredParameterRaw(attachedOK bool) (string, error) {
	value, ok, err := w.ParameterRaw(attachedOK)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", MissingParameterError{Flag: w.lastFlag}
	}
	return value, nil
}

// RequiredParameter is RequiredParameterRaw with text validation.
func (w *Walker) RequiredParameter(attachedOK bool) (string, error) {
	value, err := w.RequiredParameterRaw(attachedOK)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(value) {
		return "", InvalidTextError{Text: value}
	}
	return value, nil
}

// TakeFlag advances to the next flag, appending any words skipped over
// to skipped. ok is false when the input ends first.
func (w *Walker) TakeFlag(skipped *[]string) (string, bool, error) {
	for {
		item, ok, err := w.TakeItem()
		if err != nil || !ok {
			return "", ok, err
		}
		if item.Kind == KindFlag {
			return item.Text, true, nil
		}
		*skipped = append(*skipped, item.Text)
	}
}
