// Package argwalk tokenizes command lines without imposing a flag schema.
//
// A Walker doles out classified items from a raw argument list: bare
// words, individual short flags split out of clusters such as -xvf, and
// long flags. Values attached to a flag (-fbanana, --fruit=banana) or
// supplied as the following argument (-f banana) are claimed with the
// parameter methods; whether a flag takes a value at all is declared by
// the caller at the moment it asks, not by any registry.
//
// The typical caller is a pattern-matching loop:
//
//	w := argwalk.New([]string{"eat", "file1", "-vfbanana", "file2", "file3"})
//
//	var verbose bool
//	var fruit string
//	var words []string
//	for {
//		item, ok, err := w.TakeItem()
//		if err != nil {
//			log.Fatal(err)
//		}
//		if !ok {
//			break
//		}
//		switch {
//		case item.Text == "-v":
//			verbose = true
//		case item.Text == "-f":
//			fruit, err = w.RequiredParameter(true)
//			if err != nil {
//				log.Fatal(err)
//			}
//		case item.Kind == argwalk.KindWord:
//			words = append(words, item.Text)
//		default:
//			log.Fatalf("unexpected flag %s", item)
//		}
//	}
//
// Arguments are not always valid text: on Unix they are arbitrary byte
// sequences. Every accessor therefore comes in two forms sharing one
// underlying machine: the Raw form never fails and never loses bytes,
// while the plain form validates the fragment as UTF-8 and fails with
// InvalidTextError when it is not.
package argwalk
