package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/tracescope/tracescope/app/theme"
	"github.com/tracescope/tracescope/app/ui/widgets"
)

// PageThemeID is the unique identifier for the theme browser page.
const PageThemeID = "theme_page"

// ThemePage lists every theme entry with a swatch, its current value
// and its description, and lets the user edit or reset entries. It is
// the picker-widget collaborator of the registry: every edit goes
// through Set/Reset so the modified-flag machinery stays in charge of
// what gets persisted.
type ThemePage struct {
	*widgets.TitleFrame
	table  *tview.Table
	colors *theme.Registry
}

// NewThemePage creates the theme browser page.
func NewThemePage(colors *theme.Registry) *ThemePage {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)

	p := &ThemePage{
		TitleFrame: widgets.NewTitleFrame(table, "Theme", colors),
		table:      table,
		colors:     colors,
	}

	table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		role, ok := p.selectedRole()
		if !ok {
			return event
		}
		switch event.Rune() {
		case 'r':
			p.colors.Reset(role)
		case '[':
			p.adjustAlpha(role, -16)
		case ']':
			p.adjustAlpha(role, +16)
		case 'c':
			p.colors.Set(role, theme.Complement(p.colors.Get(role)))
		default:
			return event
		}
		p.Rebuild()
		return nil
	})

	p.Rebuild()
	return p
}

func (p *ThemePage) selectedRole() (theme.Role, bool) {
	row, _ := p.table.GetSelection()
	roles := theme.Roles()
	// Row 0 is the header.
	if row < 1 || row > len(roles) {
		return 0, false
	}
	return roles[row-1], true
}

// adjustAlpha nudges the editable opacity of an entry. Alpha-only
// entries keep all four channels in lockstep, matching how they are
// stored; for everything else only the alpha channel moves.
func (p *ThemePage) adjustAlpha(role theme.Role, delta int) {
	cur := p.colors.Get(role)

	a := int(cur.A()) + delta
	if a < 0 {
		a = 0
	}
	if a > 255 {
		a = 255
	}

	if p.colors.IsAlphaOnly(role) {
		v := uint8(a)
		p.colors.Set(role, theme.Pack(v, v, v, v))
		return
	}
	p.colors.Set(role, cur.WithAlpha(uint8(a)))
}

// Rebuild repopulates the table from the registry.
func (p *ThemePage) Rebuild() {
	headerStyle := tcell.StyleDefault.
		Foreground(p.colors.Get(theme.RoleTitleText).Tcell()).
		Bold(true)
	for col, label := range []string{"", "Name", "Value", "", "Description"} {
		p.table.SetCell(0, col, tview.NewTableCell(label).
			SetStyle(headerStyle).
			SetSelectable(false))
	}

	textColor := p.colors.Get(theme.RoleText).Tcell()
	for i, role := range theme.Roles() {
		row := i + 1
		c := p.colors.Get(role)

		value := c.Hex()
		if p.colors.IsAlphaOnly(role) {
			value = fmt.Sprintf("%.2f", p.colors.AlphaFraction(role))
		}

		marker := " "
		if !p.colors.IsDefault(role) {
			marker = "*"
		}

		p.table.SetCell(row, 0, tview.NewTableCell("██").
			SetTextColor(c.Tcell()))
		p.table.SetCell(row, 1, tview.NewTableCell(p.colors.Name(role)).
			SetTextColor(textColor))
		p.table.SetCell(row, 2, tview.NewTableCell(value).
			SetTextColor(textColor))
		p.table.SetCell(row, 3, tview.NewTableCell(marker).
			SetTextColor(p.colors.Get(theme.RoleBrightText).Tcell()))
		p.table.SetCell(row, 4, tview.NewTableCell(p.colors.Desc(role)).
			SetTextColor(p.colors.Get(theme.RoleStatusBarText).Tcell()))
	}
}
