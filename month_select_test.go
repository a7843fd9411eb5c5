package main

import "testing"

func TestMonthSelectSetValue(t *testing.T) {
	m := NewMonthSelect(maMonthOptions, 6)
	if m.Value() != 6 {
		t.Fatalf("Value = %d, want 6", m.Value())
	}
	m.SetValue(99)
	if m.Value() != maMonthOptions[0] {
		t.Fatalf("unknown value should fall back to the first option, got %d", m.Value())
	}
}

func TestMonthSelectClickBeforeFirstRender(t *testing.T) {
	m := NewMonthSelect(maMonthOptions, 3)
	// No view has been scanned yet, so none of this control's zones exist.
	if m.Update(release(5, 5)) {
		t.Fatalf("click with no rendered zones should change nothing")
	}
	if m.Open() {
		t.Fatalf("click with no rendered zones should not open the list")
	}
	m.open = true
	if m.Update(release(5, 5)) {
		t.Fatalf("click on unscanned option zones should change nothing")
	}
	if m.Value() != 3 {
		t.Fatalf("value changed without a hit: %d", m.Value())
	}
}

func TestMonthSelectCycleWraps(t *testing.T) {
	m := NewMonthSelect(maMonthOptions, maMonthOptions[0])
	for range maMonthOptions {
		m.Cycle()
	}
	if m.Value() != maMonthOptions[0] {
		t.Fatalf("cycling through every option should wrap, got %d", m.Value())
	}
}
