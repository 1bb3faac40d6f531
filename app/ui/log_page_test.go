package ui

import (
	"strings"
	"sync"
	"testing"

	"github.com/tracescope/tracescope/app/logging"
	"github.com/tracescope/tracescope/app/theme"
)

func TestLogPageRefreshRendersBackgroundLines(t *testing.T) {
	log := logging.New()
	page := NewLogPage(log, theme.NewRegistry())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Logf("WARN: worker warning")
	}()
	wg.Wait()

	page.Refresh()
	if got := page.view.GetText(true); !strings.Contains(got, "worker warning") {
		t.Fatalf("view text = %q, want worker line", got)
	}
}

func TestLogPageClearResetsConsole(t *testing.T) {
	log := logging.New()
	page := NewLogPage(log, theme.NewRegistry())

	log.Logf("first line")
	page.Refresh()

	page.Clear()
	if log.Len() != 0 {
		t.Fatalf("aggregator still holds %d lines after clear", log.Len())
	}
	if got := strings.TrimSpace(page.view.GetText(true)); got != "" {
		t.Fatalf("view text after clear = %q", got)
	}

	// The console must keep working after a clear, rendering from a
	// reset line counter.
	log.Logf("after clear")
	page.Refresh()
	got := page.view.GetText(true)
	if !strings.Contains(got, "after clear") || strings.Contains(got, "first line") {
		t.Fatalf("view text after clear+append = %q", got)
	}
	if page.rendered != 1 {
		t.Fatalf("rendered counter = %d, want 1", page.rendered)
	}
}
