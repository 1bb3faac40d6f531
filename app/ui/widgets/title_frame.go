package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/tracescope/tracescope/app/theme"
)

// TitleFrame wraps another primitive and draws a horizontal rule with a
// title above it. Rule and title colors come from the theme registry on
// every draw, so theme edits take effect on the next frame.
type TitleFrame struct {
	*tview.Box
	content tview.Primitive
	title   string
	colors  *theme.Registry
}

// NewTitleFrame creates a frame around content, titled title.
func NewTitleFrame(content tview.Primitive, title string, colors *theme.Registry) *TitleFrame {
	return &TitleFrame{
		Box:     tview.NewBox().SetBorder(false),
		content: content,
		title:   title,
		colors:  colors,
	}
}

// SetTitle updates the frame title.
func (f *TitleFrame) SetTitle(title string) {
	f.title = title
}

// Draw draws the rule, the title and the wrapped content.
func (f *TitleFrame) Draw(screen tcell.Screen) {
	f.Box.Draw(screen)

	x, y, width, height := f.GetRect()

	lineRune := tview.BoxDrawingsLightHorizontal
	if f.HasFocus() {
		lineRune = tview.BoxDrawingsHeavyHorizontal
	}

	style := tcell.StyleDefault.
		Background(f.colors.Get(theme.RoleWindowBg).Tcell()).
		Foreground(f.colors.Get(theme.RoleBorder).Tcell())
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, lineRune, nil, style)
	}

	if f.title != "" {
		titleText := " " + tview.Escape(f.title) + " "
		tview.Print(screen, titleText, x+1, y, width-2, tview.AlignLeft,
			f.colors.Get(theme.RoleTitleText).Tcell())
	}

	// Content starts one row below the rule.
	if height <= 1 {
		return
	}
	f.content.SetRect(x, y+1, width, height-1)
	f.content.Draw(screen)
}

// Focus delegates focus to the wrapped content.
func (f *TitleFrame) Focus(delegate func(p tview.Primitive)) {
	if f.content != nil {
		delegate(f.content)
		return
	}
	f.Box.Focus(delegate)
}

// HasFocus reports whether the wrapped content has focus.
func (f *TitleFrame) HasFocus() bool {
	if f.content == nil {
		return f.Box.HasFocus()
	}
	return f.content.HasFocus()
}

// InputHandler forwards input to the wrapped content.
func (f *TitleFrame) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return f.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if f.content == nil {
			return
		}
		if handler := f.content.InputHandler(); handler != nil {
			handler(event, setFocus)
		}
	})
}
