package display

import (
	"fmt"

	"github.com/toejough/argwalk/internal/walk"
)

// Renderer formats classified items as one aligned line each.
type Renderer struct {
	styles Styles
	plain  bool
}

// NewRenderer returns a Renderer. With plain set, no styling is applied.
func NewRenderer(plain bool) Renderer {
	return Renderer{styles: DefaultStyles(), plain: plain}
}

// Line renders one item as "kind  text".
func (r Renderer) Line(item walk.Item) string {
	label := fmt.Sprintf("%-5s", item.Kind)
	if r.plain {
		return label + " " + item.Text
	}
	style := r.styles.Word
	if item.Kind == walk.KindFlag {
		style = r.styles.Flag
	}
	return r.styles.Label.Render(label) + " " + style.Render(item.Text)
}

// ValueLine renders a parameter value claimed for flag.
func (r Renderer) ValueLine(flag, value string) string {
	label := fmt.Sprintf("%-5s", "value")
	if r.plain {
		return fmt.Sprintf("%s %s = %s", label, flag, value)
	}
	return fmt.Sprintf("%s %s = %s",
		r.styles.Label.Render(label),
		r.styles.Flag.Render(flag),
		r.styles.Value.Render(value),
	)
}
