package theme

import (
	"fmt"
	"os"

	"github.com/titanous/json5"
)

// Preset is a named palette loaded from a user-authored JSON5 file.
// JSON5 so preset files can carry comments and trailing commas:
//
//	{
//	    name: "midnight",
//	    colors: {
//	        // entry name -> #rrggbb or #rrggbbaa
//	        text: "#e8e8e8",
//	        graph_bg: "#10101bff",
//	    },
//	}
type Preset struct {
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors"`
}

// LoadPreset reads and parses a preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}

	var p Preset
	if err := json5.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("preset %s: missing name", path)
	}
	return &p, nil
}

var roleByName = func() map[string]Role {
	m := make(map[string]Role, roleCount)
	for i := Role(0); i < roleCount; i++ {
		m[defaults[i].name] = i
	}
	return m
}()

// Apply writes every color in the preset into the registry through
// Set, so preset application participates in the normal modified-flag
// and save machinery. Entries that do not name a known role or do not
// parse are skipped and reported, not fatal: a stale preset must never
// take the UI down.
func (p *Preset) Apply(r *Registry) (skipped []string) {
	for name, hex := range p.Colors {
		role, ok := roleByName[name]
		if !ok {
			skipped = append(skipped, fmt.Sprintf("%s: unknown entry", name))
			continue
		}
		c, err := ParseHex(hex)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		r.Set(role, c)
	}
	return skipped
}
