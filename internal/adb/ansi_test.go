package adb

import "testing"

func TestStripANSIRemovesColorSequences(t *testing.T) {
	in := "\x1b[1;31merror\x1b[0m plain \x1b[32mgreen\x1b[39;49m"
	got := StripANSI(in)
	want := "error plain green"
	if got != want {
		t.Fatalf("unexpected result: %q want %q", got, want)
	}
}

func TestStripANSILeavesCleanTextUntouched(t *testing.T) {
	in := "ro.product.model=[Pixel 6]\nro.build.version.release=[14]"
	if got := StripANSI(in); got != in {
		t.Fatalf("clean text must be byte-identical: %q", got)
	}
}
