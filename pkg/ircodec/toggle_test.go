package ircodec

import "testing"

func TestNextToggleAlternates(t *testing.T) {
	first := nextToggle()
	second := nextToggle()
	if first == second {
		t.Fatalf("expected toggle to flip, got %d then %d", first, second)
	}
	if first > 1 || second > 1 {
		t.Fatalf("toggle must be 0 or 1, got %d then %d", first, second)
	}
	third := nextToggle()
	if third != first {
		t.Fatalf("toggle should return to %d on the third call, got %d", first, third)
	}
}
