package validation

import "testing"

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  Juan   Dela\tCruz "); got != "Juan Dela Cruz" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestStripUnsafe(t *testing.T) {
	if got := StripUnsafe(`<script>alert('x');</script>`); got != "scriptalert(x)/script" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestMaskID(t *testing.T) {
	if got := MaskID("34-1234567-8"); got != "********67-8" {
		t.Fatalf("unexpected mask: %q", got)
	}
	if got := MaskID("123"); got != "***" {
		t.Fatalf("short IDs must be fully masked: %q", got)
	}
	if got := MaskID("  "); got != "" {
		t.Fatalf("blank IDs mask to empty: %q", got)
	}
}
