package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLineTrimsInput(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  hello world  \n"), &out)
	got, err := p.Line("Summary: ")
	if err != nil {
		t.Fatalf("line: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("unexpected input: %q", got)
	}
	if !strings.Contains(out.String(), "Summary: ") {
		t.Fatalf("label not printed: %q", out.String())
	}
}

func TestLineEOF(t *testing.T) {
	p := New(strings.NewReader(""), io.Discard)
	if _, err := p.Line("x: "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestChooseRepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("abc\n9\n0\n2\n"), &out)
	idx, err := p.Choose("Multiple devices detected:", []string{"emulator-5554", "R58M123ABC"})
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if n := strings.Count(out.String(), "Invalid choice"); n != 3 {
		t.Fatalf("expected 3 re-prompts, got %d\n%s", n, out.String())
	}
}
