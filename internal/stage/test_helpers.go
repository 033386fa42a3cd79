package stage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/config"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/prompt"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/report"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/route"
)

// fakeBridge is an in-memory adb.Bridge. Shell and Command outputs are keyed
// by the exact command text; Pull materializes a small local file so
// packaging paths stay realistic.
type fakeBridge struct {
	devices    []string
	devicesErr error

	shellOut map[string]string
	shellErr map[string]error
	cmdOut   map[string]string
	cmdErr   map[string]error
	pullErr  map[string]error

	shellCalls []string
	pulled     []string
}

func (f *fakeBridge) Devices(ctx context.Context) ([]string, error) {
	return f.devices, f.devicesErr
}

func (f *fakeBridge) Shell(ctx context.Context, device, script string) (string, error) {
	f.shellCalls = append(f.shellCalls, script)
	if err := f.shellErr[script]; err != nil {
		return "", err
	}
	return f.shellOut[script], nil
}

func (f *fakeBridge) Command(ctx context.Context, device string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	if err := f.cmdErr[key]; err != nil {
		return "", err
	}
	return f.cmdOut[key], nil
}

func (f *fakeBridge) Pull(ctx context.Context, device, remote, local string) error {
	if err := f.pullErr[remote]; err != nil {
		return err
	}
	f.pulled = append(f.pulled, remote)
	if info, err := os.Stat(local); err == nil && info.IsDir() {
		local = filepath.Join(local, path.Base(remote))
	}
	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return err
	}
	return os.WriteFile(local, []byte("pulled:"+remote), 0o644)
}

func (f *fakeBridge) Bugreport(ctx context.Context, device, dest string) error {
	return os.WriteFile(dest, []byte("bugreport"), 0o644)
}

type testHarness struct {
	deps   Deps
	report *report.Context
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

// newHarness builds stage deps over a temp report tree, with stdin content
// for interactive stages.
func newHarness(t *testing.T, fb *fakeBridge, stdin string) *testHarness {
	t.Helper()
	rep, err := report.NewContext(filepath.Join(t.TempDir(), "incident_reports"), time.Now())
	if err != nil {
		t.Fatalf("new report context: %v", err)
	}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &testHarness{
		deps: Deps{
			Bridge: fb,
			Prompt: prompt.New(strings.NewReader(stdin), out),
			Report: rep,
			Routes: route.ForReport(rep),
			Out:    out,
			Err:    errOut,
		},
		report: rep,
		out:    out,
		errOut: errOut,
	}
}

func testEnvelope(device string) Envelope {
	p := config.Default()
	return Envelope{
		Meta:    &Meta{Profile: p, NumRecent: 5, Device: device},
		Sources: p.RecentSources,
	}
}

func probeScript(dir string) string {
	return fmt.Sprintf("test -d %s && echo exists", dir)
}
