package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/prep-tracker/internal/models"
	"github.com/akyairhashvil/prep-tracker/internal/testutil"
)

func TestRenderPlainFreshState(t *testing.T) {
	out := RenderPlain(models.NewProgress())
	for _, want := range []string{
		"Day 1 - Quantitative Aptitude (0/3 topics)",
		"  [ ] Time and Work",
		"Overall progress: 0% (0/75 topics)",
		"Days completed: 0/25",
		"  1●",
		"  2·",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in\n%s", want, out)
		}
	}
	if strings.Contains(out, "Recent achievements") {
		t.Fatalf("no achievements expected")
	}
}

func TestRenderPlainStatuses(t *testing.T) {
	p := testutil.NewProgress().OnDay(7).WithCompletedDays(1, 2, 3, 4, 5).Build()
	out := RenderPlain(p)
	for _, want := range []string{
		"Overall progress: 20% (15/75 topics)",
		"Days completed: 5/25",
		"  5✓",
		"  6✗",
		"  7●",
		"  8·",
		"Recent achievements: Day 1, Day 2, Day 3, Day 4, Day 5",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in\n%s", want, out)
		}
	}
}
