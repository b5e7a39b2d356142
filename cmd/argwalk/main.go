// Package main provides the argwalk CLI for inspecting how a command
// line tokenizes. Everything after the first "--" is walked and printed
// as one classified line per item; the walker itself parses the tool's
// own leading options.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/toejough/argwalk"
	"github.com/toejough/argwalk/internal/display"
)

const usage = `usage: argwalk [-q|--quiet] [-p|--param FLAG]... -- args...

Tokenizes args and prints one classified line per item.

  -q, --quiet       plain output, no styling
  -p, --param FLAG  claim a parameter for FLAG (repeatable)`

func main() {
	os.Exit(runMain())
}

func runMain() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, out, errOut io.Writer) int {
	w := argwalk.New(args)

	quiet := false
	claim := map[string]bool{}

	// tool options end at the first "--" word
	for {
		item, ok, err := w.TakeItem()
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return 1
		}
		if !ok {
			fmt.Fprintln(errOut, usage)
			return 2
		}
		if item.Kind == argwalk.KindWord {
			if item.Text == "--" {
				break
			}
			fmt.Fprintln(errOut, "unexpected argument:", item.Text)
			fmt.Fprintln(errOut, usage)
			return 2
		}
		switch item.Text {
		case "-q", "--quiet":
			quiet = true
		case "-p", "--param":
			name, err := w.RequiredParameter(true)
			if err != nil {
				fmt.Fprintln(errOut, "error:", err)
				return 2
			}
			claim[name] = true
		default:
			fmt.Fprintln(errOut, "unknown flag:", item.Text)
			fmt.Fprintln(errOut, usage)
			return 2
		}
	}

	r := display.NewRenderer(quiet)
	for {
		item, ok, err := w.TakeItemRaw()
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return 1
		}
		if !ok {
			return 0
		}
		fmt.Fprintln(out, r.Line(item))
		if item.Kind == argwalk.KindFlag && claim[item.Text] {
			value, err := w.RequiredParameterRaw(true)
			if err != nil {
				fmt.Fprintln(errOut, "error:", err)
				return 1
			}
			fmt.Fprintln(out, r.ValueLine(item.Text, value))
		}
	}
}
