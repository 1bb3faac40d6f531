package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.json5")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestLoadPreset(t *testing.T) {
	path := writePreset(t, `{
	// A dark preset with trailing commas, as users actually write them.
	name: "midnight",
	colors: {
		text: "#e8e8e8",
		graph_bg: "#10101bff",
	},
}`)

	p, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if p.Name != "midnight" {
		t.Errorf("name = %q, want midnight", p.Name)
	}
	if len(p.Colors) != 2 {
		t.Errorf("colors = %v, want 2 entries", p.Colors)
	}
}

func TestLoadPresetRejectsMissingName(t *testing.T) {
	path := writePreset(t, `{ colors: { text: "#ffffff" } }`)
	if _, err := LoadPreset(path); err == nil {
		t.Fatal("preset without a name accepted")
	}
}

func TestApplyFlowsThroughSet(t *testing.T) {
	p := &Preset{
		Name: "test",
		Colors: map[string]string{
			"text":     "#e8e8e8",
			"graph_bg": "#10101b",
		},
	}

	r := NewRegistry()
	if skipped := p.Apply(r); len(skipped) != 0 {
		t.Fatalf("skipped: %v", skipped)
	}

	if r.Get(RoleText) != Pack(0xe8, 0xe8, 0xe8, 0xff) {
		t.Errorf("text = %s", r.Get(RoleText).Hex())
	}
	if !r.IsModified(RoleText) || !r.IsModified(RoleGraphBg) {
		t.Error("applied entries not flagged modified")
	}
	// Entries the preset does not name stay untouched.
	if r.IsModified(RoleBorder) {
		t.Error("unrelated entry flagged modified")
	}
}

func TestApplyReportsBadEntries(t *testing.T) {
	p := &Preset{
		Name: "test",
		Colors: map[string]string{
			"no_such_entry": "#ffffff",
			"text":          "not-a-color",
			"border":        "#123456",
		},
	}

	r := NewRegistry()
	skipped := p.Apply(r)
	if len(skipped) != 2 {
		t.Fatalf("skipped = %v, want 2 entries", skipped)
	}
	joined := strings.Join(skipped, "\n")
	if !strings.Contains(joined, "no_such_entry") || !strings.Contains(joined, "text") {
		t.Fatalf("skipped = %v", skipped)
	}

	// The valid entry still lands.
	if r.Get(RoleBorder) != Pack(0x12, 0x34, 0x56, 0xff) {
		t.Errorf("border = %s", r.Get(RoleBorder).Hex())
	}
}
