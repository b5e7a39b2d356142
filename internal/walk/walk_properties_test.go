package walk_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	walk "github.com/toejough/argwalk/internal/walk"
)

// genArg pairs a raw argument with the items it must tokenize into when
// no parameters are claimed.
type genArg struct {
	arg   string
	items []walk.Item
}

func genWord() *rapid.Generator[genArg] {
	return rapid.Custom(func(rt *rapid.T) genArg {
		text := rapid.StringMatching(`[a-z0-9_./]{1,10}`).Draw(rt, "word")
		return genArg{
			arg:   text,
			items: []walk.Item{{Kind: walk.KindWord, Text: text}},
		}
	})
}

func genLongFlag() *rapid.Generator[genArg] {
	return rapid.Custom(func(rt *rapid.T) genArg {
		name := "--" + rapid.StringMatching(`[a-z][a-z0-9-]{0,8}`).Draw(rt, "name")
		return genArg{
			arg:   name,
			items: []walk.Item{{Kind: walk.KindFlag, Text: name}},
		}
	})
}

func genLongFlagWithValue() *rapid.Generator[genArg] {
	return rapid.Custom(func(rt *rapid.T) genArg {
		name := "--" + rapid.StringMatching(`[a-z][a-z0-9-]{0,8}`).Draw(rt, "name")
		value := rapid.StringMatching(`[a-z0-9=]{0,8}`).Draw(rt, "value")
		return genArg{
			arg: name + "=" + value,
			// an unclaimed attached value is reclassified as a word
			items: []walk.Item{
				{Kind: walk.KindFlag, Text: name},
				{Kind: walk.KindWord, Text: value},
			},
		}
	})
}

func genCluster() *rapid.Generator[genArg] {
	return rapid.Custom(func(rt *rapid.T) genArg {
		letters := rapid.StringMatching(`[a-z]{1,6}`).Draw(rt, "letters")
		items := make([]walk.Item, 0, len(letters))
		for _, c := range letters {
			items = append(items, walk.Item{Kind: walk.KindFlag, Text: "-" + string(c)})
		}
		return genArg{arg: "-" + letters, items: items}
	})
}

func genDashWord() *rapid.Generator[genArg] {
	return rapid.Custom(func(rt *rapid.T) genArg {
		text := rapid.SampledFrom([]string{"-", "--"}).Draw(rt, "dashes")
		return genArg{
			arg:   text,
			items: []walk.Item{{Kind: walk.KindWord, Text: text}},
		}
	})
}

// Property: every generated command line tokenizes into exactly the items
// its arguments were built from, in order, with nothing dropped and
// nothing invented.
func TestProperty_Tokenizing_StreamIsLossless(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		script := rapid.SliceOfN(
			rapid.OneOf(genWord(), genLongFlag(), genLongFlagWithValue(), genCluster(), genDashWord()),
			0, 8,
		).Draw(rt, "script")

		args := make([]string, 0, len(script))
		var expected []walk.Item
		for _, ga := range script {
			args = append(args, ga.arg)
			expected = append(expected, ga.items...)
		}

		w := walk.New(args)
		var got []walk.Item
		for {
			item, ok, err := w.TakeItemRaw()
			g.Expect(err).NotTo(HaveOccurred())
			if !ok {
				break
			}
			got = append(got, item)
		}

		g.Expect(got).To(Equal(expected))
	})
}

// Property: a cluster of n letters yields n single-letter flags.
func TestProperty_Tokenizing_ClusterYieldsOneFlagPerLetter(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		letters := rapid.StringMatching(`[a-z]{1,8}`).Draw(rt, "letters")

		w := walk.New([]string{"-" + letters})
		for _, c := range letters {
			item, ok, err := w.TakeItem()
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(ok).To(BeTrue())
			g.Expect(item).To(Equal(walk.Item{Kind: walk.KindFlag, Text: "-" + string(c)}))
		}

		_, ok, err := w.TakeItem()
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(ok).To(BeFalse())
	})
}

// Property: attached and separate spellings of a value are claimed
// identically.
func TestProperty_Tokenizing_AttachedAndSeparateValuesAgree(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		letter := rapid.StringMatching(`[a-z]`).Draw(rt, "letter")
		value := rapid.StringMatching(`[a-z0-9]{1,10}`).Draw(rt, "value")

		attached := walk.New([]string{"-" + letter + value})
		_, _, err := attached.TakeItem()
		g.Expect(err).NotTo(HaveOccurred())
		got, err := attached.RequiredParameter(true)
		g.Expect(err).NotTo(HaveOccurred())

		separate := walk.New([]string{"-" + letter, value})
		_, _, err = separate.TakeItem()
		g.Expect(err).NotTo(HaveOccurred())
		want, err := separate.RequiredParameter(false)
		g.Expect(err).NotTo(HaveOccurred())

		g.Expect(got).To(Equal(want))
		g.Expect(got).To(Equal(value))

		long := walk.New([]string{"--" + letter + "=" + value})
		_, _, err = long.TakeItem()
		g.Expect(err).NotTo(HaveOccurred())
		got, err = long.RequiredParameter(true)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(got).To(Equal(value))
	})
}

// Property: peeking always agrees with the take that follows, over
// arbitrary argument lists.
func TestProperty_Tokenizing_PeekAgreesWithTake(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		args := rapid.SliceOfN(rapid.String(), 0, 10).Draw(rt, "args")

		w := walk.New(args)
		for {
			peeked, peekOK, err := w.PeekItemRaw()
			g.Expect(err).NotTo(HaveOccurred())

			taken, takeOK, err := w.TakeItemRaw()
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(peekOK).To(Equal(takeOK))
			if !takeOK {
				break
			}
			g.Expect(peeked).To(Equal(taken))
		}
	})
}
