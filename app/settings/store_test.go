package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tracescope/tracescope/app/theme"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tracescope.ini"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s := tempStore(t)
	if got := s.GetStr("font", "fallback", "display"); got != "fallback" {
		t.Fatalf("missing key = %q, want fallback", got)
	}
}

func TestTypedRoundTrip(t *testing.T) {
	s := tempStore(t)

	s.PutStr("font", "Roboto", "display")
	s.PutInt("rows", -42, "display")
	s.PutFloat("scale", 1.5, "display")
	s.PutUint64("color", 0xdeadbeefcafe, "colors")

	if got := s.GetStr("font", "", "display"); got != "Roboto" {
		t.Errorf("GetStr = %q", got)
	}
	if got := s.GetInt("rows", 0, "display"); got != -42 {
		t.Errorf("GetInt = %d", got)
	}
	if got := s.GetFloat("scale", 0, "display"); got != 1.5 {
		t.Errorf("GetFloat = %v", got)
	}
	if got := s.GetUint64("color", 0, "colors"); got != 0xdeadbeefcafe {
		t.Errorf("GetUint64 = %#x", got)
	}
}

func TestSectionsAreIndependent(t *testing.T) {
	s := tempStore(t)

	s.PutInt("size", 1, "fonts")
	s.PutInt("size", 2, "graph")

	if got := s.GetInt("size", 0, "fonts"); got != 1 {
		t.Errorf("fonts.size = %d", got)
	}
	if got := s.GetInt("size", 0, "graph"); got != 2 {
		t.Errorf("graph.size = %d", got)
	}
}

func TestBlankValueReadsAsAbsent(t *testing.T) {
	s := tempStore(t)

	s.PutUint64("color", 123, "colors")
	s.PutStr("color", "", "colors")

	if got := s.GetUint64("color", 999, "colors"); got != 999 {
		t.Fatalf("blanked key = %d, want default 999", got)
	}
	if got := s.GetStr("color", "gone", "colors"); got != "gone" {
		t.Fatalf("blanked key = %q, want default", got)
	}
}

func TestOpenHandWrittenFile(t *testing.T) {
	// Settings files are plain ini and users edit them by hand; the
	// store must decode files it did not write itself.
	path := filepath.Join(t.TempDir(), "tracescope.ini")
	content := "[display]\nfont = Roboto\nscale = 1.25\n\n[" + theme.Section + "]\ntext = 4291679988\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write settings file: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open hand-written file: %v", err)
	}
	if got := s.GetStr("font", "", "display"); got != "Roboto" {
		t.Errorf("font = %q, want Roboto", got)
	}
	if got := s.GetFloat("scale", 0, "display"); got != 1.25 {
		t.Errorf("scale = %v, want 1.25", got)
	}
	if got := s.GetUint64("text", 0, theme.Section); got != 4291679988 {
		t.Errorf("text = %d, want 4291679988", got)
	}
}

func TestSaveAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tracescope.ini")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s.PutStr("font", "Droid Sans", "display")
	s.PutUint64("text", 0xffcdd6f4, theme.Section)
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := s2.GetStr("font", "", "display"); got != "Droid Sans" {
		t.Errorf("font after reopen = %q", got)
	}
	if got := s2.GetUint64("text", 0, theme.Section); got != 0xffcdd6f4 {
		t.Errorf("color after reopen = %#x", got)
	}
}

func TestRegistryPersistsThroughStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracescope.ini")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	custom := theme.Pack(0x11, 0x22, 0x33, 0xff)
	r := theme.NewRegistry()
	r.Set(theme.RoleBrightText, custom)
	r.Save(s)
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	r2 := theme.NewRegistry()
	r2.Load(s2)
	if r2.Get(theme.RoleBrightText) != custom {
		t.Fatalf("override lost across sessions: %s", r2.Get(theme.RoleBrightText).Hex())
	}
	if !r2.IsDefault(theme.RoleText) {
		t.Fatal("untouched entry no longer default after reopen")
	}
}
