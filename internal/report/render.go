package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sysfetch/internal/logger"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const arrow = "=>"

var arrowColor = color.RGB(112, 112, 112)

// Write renders lines for a terminal: colored labels, a gray arrow and raw
// palette escapes. fatih/color drops the label colors when NO_COLOR is set
// or stdout is not a terminal.
func Write(w io.Writer, lines []Line) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		var text string
		switch l.Kind {
		case KindHeader:
			text = color.New(l.Color).Sprint(l.Value)
		case KindField:
			text = color.New(l.Color).Sprint(l.Label) + "\t" + arrowColor.Sprint(arrow) + "\t" + l.Value
		default:
			text = l.Value
		}
		if _, err := fmt.Fprintln(bw, text); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logger.Report.Debug().Int("lines", len(lines)).Msg("Report written")
	return nil
}

// Plain renders lines without escape sequences, labels padded to a common
// display width. Palette lines are dropped.
func Plain(lines []Line) string {
	width := 0
	for _, l := range lines {
		if l.Kind == KindField {
			width = max(width, runewidth.StringWidth(l.Label))
		}
	}

	var b strings.Builder
	for _, l := range lines {
		switch l.Kind {
		case KindPalette:
			continue
		case KindField:
			b.WriteString(runewidth.FillRight(l.Label, width))
			b.WriteString(" " + arrow + " ")
			b.WriteString(l.Value)
		default:
			b.WriteString(l.Value)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
