package layout

import (
	"strings"
	"testing"
)

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Quiz", "Q 2/10  Score 1", 100)
	for _, want := range []string{AppName, "Quiz", "Q 2/10  Score 1"} {
		if !strings.Contains(h, want) {
			t.Errorf("expected %q in header", want)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)
	if !strings.Contains(f, "Esc") || !strings.Contains(f, "Back") {
		t.Error("expected key hint in footer")
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected narrow terminal to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected minimum size to fit")
	}
}
