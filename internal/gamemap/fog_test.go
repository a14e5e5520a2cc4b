package gamemap

import "testing"

func TestFogMarkSetsBothFlags(t *testing.T) {
	f := NewFogLayer(5, 5)
	f.Mark(2, 3)
	if !f.IsVisible(2, 3) || !f.IsExplored(2, 3) {
		t.Error("Mark should set visible and explored")
	}
}

func TestFogResetKeepsExplored(t *testing.T) {
	f := NewFogLayer(5, 5)
	f.Mark(1, 1)
	f.Reset()
	if f.IsVisible(1, 1) {
		t.Error("Reset should clear visibility")
	}
	if !f.IsExplored(1, 1) {
		t.Error("Reset must not clear explored")
	}
}

func TestFogOutOfBoundsIgnored(t *testing.T) {
	f := NewFogLayer(3, 3)
	f.Mark(-1, 0) // must not panic
	f.Mark(3, 3)
	if f.IsVisible(-1, 0) || f.IsExplored(5, 5) {
		t.Error("out-of-bounds queries should be false")
	}
	if f.VisibleCount() != 0 {
		t.Errorf("VisibleCount = %d; want 0", f.VisibleCount())
	}
}

func TestFogCloneIsDeep(t *testing.T) {
	f := NewFogLayer(4, 4)
	f.Mark(0, 0)
	c := f.Clone()
	f.Mark(3, 3)
	if c.IsVisible(3, 3) {
		t.Error("clone should not see later marks")
	}
	if !c.IsExplored(0, 0) {
		t.Error("clone should carry earlier marks")
	}
}
