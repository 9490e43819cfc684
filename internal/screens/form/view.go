package form

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/linerhc/linerhc/internal/ui/theme"
)

// groupHeadings precede the field at the given index.
var groupHeadings = map[int]string{
	0: "Mix Composition",
	3: "Consistency & Swell",
	6: "Compaction & Strength",
}

func (s *FormScreen) View(width, height int) string {
	var lines []string

	for i, in := range s.inputs {
		if h, ok := groupHeadings[i]; ok {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, theme.Subtitle.Bold(true).Render(h))
		}

		marker := "  "
		if in.Focused() {
			marker = theme.Selected.Render("▸ ")
		}
		label := theme.Label.Render(fmt.Sprintf("%s (%s)", in.Param.Label, in.Param.Unit))
		rng := theme.Hint.Render("[" + in.Param.RangeLabel() + "]")
		lines = append(lines, marker+label+in.View()+"  "+rng)
	}

	if ws := s.Warnings(); len(ws) > 0 {
		lines = append(lines, "")
		for _, w := range ws {
			lines = append(lines, theme.WarningBanner.Render("⚠ "+w.Message))
		}
	}

	lines = append(lines, "", s.button.View())

	switch {
	case s.pending:
		lines = append(lines, "", theme.Hint.Render("Predicting..."))
	case s.errMsg != "":
		lines = append(lines, "", theme.ErrorBanner.Render("✗ "+s.errMsg))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, card)
}
