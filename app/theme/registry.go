package theme

import "math"

// Role identifies one named color slot in the registry. The set of
// roles is closed: entries are never added or removed at runtime.
type Role int

const (
	RoleText Role = iota
	RoleBrightText
	RoleSelectedTextBg
	RoleWindowBg
	RoleBorder
	RoleTitleText
	RoleStatusBarBg
	RoleStatusBarText
	RoleLogInfoText
	RoleLogWarnText
	RoleLogErrorText

	RoleGraphBg
	RoleGraphRowBg
	RoleGraphRowBgAlt
	RoleGraphAxis
	RoleGraphTick
	RoleGraphCursor
	RoleGraphSelection
	RoleGraphHoveredEvent
	RoleGraphMarkerA
	RoleGraphMarkerB
	RoleGraphPrintText

	RoleThemeAlpha
	RoleGraphPrintLabelSat
	RoleGraphPrintLabelAlpha
	RoleGraphTimelineLabelSat
	RoleGraphTimelineLabelAlpha

	roleCount
)

// Section is the settings-store section that holds color overrides.
const Section = "$imgui_colors$"

// alphaValue packs a 0.0-1.0 fraction into every channel, the storage
// convention for alpha-only entries.
func alphaValue(f float32) Color {
	v := uint8(f*255.0 + 0.5)
	return Pack(v, v, v, v)
}

type entry struct {
	name     string
	def      Color
	current  Color
	modified bool
	desc     string
}

// defaults is indexed by Role; NewRegistry checks at start time that
// every role has exactly one row.
var defaults = [roleCount]struct {
	name string
	def  Color
	desc string
}{
	RoleText:           {"text", Pack(0xcd, 0xd6, 0xf4, 0xff), "Regular text"},
	RoleBrightText:     {"bright_text", Pack(0xf9, 0xe2, 0xaf, 0xff), "Highlighted text"},
	RoleSelectedTextBg: {"selected_text_bg", Pack(0x58, 0x5b, 0x70, 0xff), "Selected text background"},
	RoleWindowBg:       {"window_bg", Pack(0x1e, 0x1e, 0x2e, 0xff), "Window background"},
	RoleBorder:         {"border", Pack(0x45, 0x47, 0x5a, 0xff), "Pane borders and separators"},
	RoleTitleText:      {"title_text", Pack(0x89, 0xb4, 0xfa, 0xff), "Pane title text"},
	RoleStatusBarBg:    {"status_bar_bg", Pack(0x18, 0x18, 0x25, 0xff), "Status bar background"},
	RoleStatusBarText:  {"status_bar_text", Pack(0xa6, 0xad, 0xc8, 0xff), "Status bar text"},
	RoleLogInfoText:    {"log_info_text", Pack(0x94, 0xe2, 0xd5, 0xff), "Log console info lines"},
	RoleLogWarnText:    {"log_warn_text", Pack(0xfa, 0xb3, 0x87, 0xff), "Log console warning lines"},
	RoleLogErrorText:   {"log_error_text", Pack(0xf3, 0x8b, 0xa8, 0xff), "Log console error lines"},

	RoleGraphBg:           {"graph_bg", Pack(0x11, 0x11, 0x1b, 0xff), "Event graph background"},
	RoleGraphRowBg:        {"graph_row_bg", Pack(0x1e, 0x1e, 0x2e, 0xff), "Event graph row background"},
	RoleGraphRowBgAlt:     {"graph_row_bg_alt", Pack(0x24, 0x24, 0x36, 0xff), "Alternate event graph row background"},
	RoleGraphAxis:         {"graph_axis", Pack(0x6c, 0x70, 0x86, 0xff), "Time axis lines and labels"},
	RoleGraphTick:         {"graph_tick", Pack(0x74, 0xc7, 0xec, 0xb0), "Frame boundary tick marks"},
	RoleGraphCursor:       {"graph_cursor", Pack(0xf5, 0xe0, 0xdc, 0xff), "Time cursor line"},
	RoleGraphSelection:    {"graph_selection", Pack(0x89, 0xb4, 0xfa, 0x40), "Selected time range fill"},
	RoleGraphHoveredEvent: {"graph_hovered_event", Pack(0xf9, 0xe2, 0xaf, 0xff), "Event under the cursor"},
	RoleGraphMarkerA:      {"graph_marker_a", Pack(0xa6, 0xe3, 0xa1, 0xff), "Marker A line"},
	RoleGraphMarkerB:      {"graph_marker_b", Pack(0xeb, 0xa0, 0xac, 0xff), "Marker B line"},
	RoleGraphPrintText:    {"graph_print_text", Pack(0xcb, 0xa6, 0xf7, 0xff), "Trace print event text"},

	RoleThemeAlpha:              {"theme_alpha", alphaValue(1.0), "Global theme opacity"},
	RoleGraphPrintLabelSat:      {"graph_print_label_sat", alphaValue(0.9), "Print label color saturation"},
	RoleGraphPrintLabelAlpha:    {"graph_print_label_alpha", alphaValue(1.0), "Print label opacity"},
	RoleGraphTimelineLabelSat:   {"graph_timeline_label_sat", alphaValue(0.9), "Timeline label color saturation"},
	RoleGraphTimelineLabelAlpha: {"graph_timeline_label_alpha", alphaValue(1.0), "Timeline label opacity"},
}

// Store is the persistent key/value collaborator the registry loads
// overrides from and saves them to. Keys are addressed as
// (key, section) pairs; a miss yields the supplied default.
type Store interface {
	GetUint64(key string, def uint64, section string) uint64
	PutUint64(key string, val uint64, section string)
	PutStr(key, val, section string)
}

// Registry holds the fixed table of named UI colors: a current value,
// a compiled-in default and a modified flag per entry. It is meant to
// be owned by the application state and accessed from the UI goroutine
// only; it has no internal locking.
type Registry struct {
	entries [roleCount]entry
}

// NewRegistry builds a registry populated with the compiled-in
// defaults. It panics if the defaults table has a gap, which can only
// happen when a newly added Role has no row.
func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.entries {
		d := defaults[i]
		if d.name == "" {
			panic("theme: defaults table is missing a role entry")
		}
		r.entries[i] = entry{
			name:    d.name,
			def:     d.def,
			current: d.def,
			desc:    d.desc,
		}
	}
	return r
}

// Load overwrites entries with overrides found in the store. Loaded
// overrides are the persisted baseline and are not flagged modified.
func (r *Registry) Load(store Store) {
	for i := range r.entries {
		val := store.GetUint64(r.entries[i].name, math.MaxUint64, Section)
		if val != math.MaxUint64 {
			r.entries[i].current = Color(val)
		}
	}
}

// Save writes every entry touched since Load back to the store. An
// entry that was modified but currently matches its default gets its
// stored override blanked instead, so the store never accumulates
// redundant defaults. Entries never modified are left alone.
func (r *Registry) Save(store Store) {
	for i := range r.entries {
		if !r.entries[i].modified {
			continue
		}
		if r.IsDefault(Role(i)) {
			store.PutStr(r.entries[i].name, "", Section)
		} else {
			store.PutUint64(r.entries[i].name, uint64(r.entries[i].current), Section)
		}
	}
}

// clampRole guards against out-of-range roles. The enumeration is
// closed, so an invalid role is a programming error; a running UI
// clamps to RoleText rather than panic mid-draw.
func clampRole(role Role) Role {
	if role < 0 || role >= roleCount {
		return RoleText
	}
	return role
}

// Get returns the current color for role.
func (r *Registry) Get(role Role) Color {
	return r.entries[clampRole(role)].current
}

// GetWithAlpha returns the current color with its alpha channel
// replaced, without mutating the entry. Alpha-only roles ignore the
// override since their stored alpha is the whole point of the entry.
func (r *Registry) GetWithAlpha(role Role, alpha uint8) Color {
	role = clampRole(role)
	if r.IsAlphaOnly(role) {
		return r.entries[role].current
	}
	return r.entries[role].current.WithAlpha(alpha)
}

// Vec4 returns the current color as normalized floats. A non-negative
// alphaOverride replaces only the alpha channel.
func (r *Registry) Vec4(role Role, alphaOverride float32) [4]float32 {
	v := r.entries[clampRole(role)].current.Vec4()
	if alphaOverride >= 0.0 {
		v[3] = alphaOverride
	}
	return v
}

// AlphaFraction returns the stored alpha for role as a 0.0-1.0 float.
func (r *Registry) AlphaFraction(role Role) float32 {
	return r.entries[clampRole(role)].current.AlphaFraction()
}

// Set updates the current color for role and flags the entry modified.
// Setting the value already stored changes nothing, including the flag.
func (r *Registry) Set(role Role, c Color) {
	role = clampRole(role)
	if r.entries[role].current != c {
		r.entries[role].current = c
		r.entries[role].modified = true
	}
}

// Reset restores the compiled-in default for role. The modified flag is
// deliberately left as is: Save spots a reset entry via IsDefault and
// blanks its stored override.
func (r *Registry) Reset(role Role) {
	role = clampRole(role)
	r.entries[role].current = r.entries[role].def
}

// Default returns the compiled-in default color for role.
func (r *Registry) Default(role Role) Color {
	return r.entries[clampRole(role)].def
}

// IsDefault reports whether the current color equals the default.
func (r *Registry) IsDefault(role Role) bool {
	role = clampRole(role)
	return r.entries[role].current == r.entries[role].def
}

// IsModified reports whether the entry was changed since Load.
func (r *Registry) IsModified(role Role) bool {
	return r.entries[clampRole(role)].modified
}

// IsAlphaOnly reports whether only the alpha channel of role is
// semantically editable.
func (r *Registry) IsAlphaOnly(role Role) bool {
	switch clampRole(role) {
	case RoleThemeAlpha,
		RoleGraphPrintLabelSat,
		RoleGraphPrintLabelAlpha,
		RoleGraphTimelineLabelSat,
		RoleGraphTimelineLabelAlpha:
		return true
	}
	return false
}

// Name returns the stable store key for role.
func (r *Registry) Name(role Role) string {
	return r.entries[clampRole(role)].name
}

// Desc returns the human-readable description for role.
func (r *Registry) Desc(role Role) string {
	return r.entries[clampRole(role)].desc
}

// Roles returns every role in table order, for UI iteration.
func Roles() []Role {
	roles := make([]Role, roleCount)
	for i := range roles {
		roles[i] = Role(i)
	}
	return roles
}
