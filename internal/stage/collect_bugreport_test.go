package stage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCollectBugreportWritesBundle(t *testing.T) {
	fb := &fakeBridge{}
	h := newHarness(t, fb, "")
	out, err := collectBugreportRunner(context.Background(), testEnvelope("dev1"), h.deps)
	if err != nil {
		t.Fatalf("bugreport: %v", err)
	}
	dest := filepath.Join(h.report.Dir, "bugreport_"+h.report.Timestamp+".zip")
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("bundle missing: %v", err)
	}
	if len(out.Artifacts) != 1 || out.Artifacts[0].Category != "bugreport" {
		t.Fatalf("unexpected artifacts: %+v", out.Artifacts)
	}
}
