package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/tracescope/tracescope/app/logging"
	"github.com/tracescope/tracescope/app/theme"
	"github.com/tracescope/tracescope/app/ui/widgets"
)

// PageLogID is the unique identifier for the log console page.
const PageLogID = "log_page"

// LogPage renders the aggregated log. Refresh, called once per UI tick
// from the owner goroutine, drains buffered background messages and
// appends the new lines to the view.
type LogPage struct {
	*widgets.TitleFrame
	view     *tview.TextView
	log      *logging.Aggregator
	colors   *theme.Registry
	rendered int
}

// NewLogPage creates the log console page.
func NewLogPage(log *logging.Aggregator, colors *theme.Registry) *LogPage {
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)

	p := &LogPage{
		TitleFrame: widgets.NewTitleFrame(view, "Log", colors),
		view:       view,
		log:        log,
		colors:     colors,
	}

	view.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'c' {
			p.Clear()
			return nil
		}
		return event
	})

	return p
}

// Refresh flushes the aggregator and renders any lines that arrived
// since the last call. Owner goroutine only.
func (p *LogPage) Refresh() {
	p.log.Flush()

	lines := p.log.Snapshot()
	if len(lines) < p.rendered {
		// The log was cleared; start over.
		p.view.Clear()
		p.rendered = 0
	}
	if len(lines) == p.rendered {
		return
	}

	var b strings.Builder
	for _, line := range lines[p.rendered:] {
		b.WriteString(p.lineTag(line))
		b.WriteString(tview.Escape(line))
		b.WriteString("[-]\n")
	}
	p.rendered = len(lines)

	fmt.Fprint(p.view, b.String())
	p.view.ScrollToEnd()
}

// lineTag picks a color tag by conventional level prefix.
func (p *LogPage) lineTag(line string) string {
	switch {
	case strings.HasPrefix(line, "ERROR:"):
		return p.colors.Get(theme.RoleLogErrorText).MarkupTag()
	case strings.HasPrefix(line, "WARN:"):
		return p.colors.Get(theme.RoleLogWarnText).MarkupTag()
	default:
		return p.colors.Get(theme.RoleLogInfoText).MarkupTag()
	}
}

// Clear empties both the aggregator and the view.
func (p *LogPage) Clear() {
	p.log.Clear()
	p.view.Clear()
	p.rendered = 0
}
