package adb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

const (
	defaultProgram        = "adb"
	defaultCommandTimeout = 60 * time.Second
	defaultPullTimeout    = 10 * time.Minute
	termGrace             = 2 * time.Second
)

// Runner executes adb commands as subprocesses. The zero value is usable and
// runs `adb` from PATH with default timeouts.
type Runner struct {
	// Program is the bridge executable (default "adb").
	Program string
	// CommandTimeout bounds short introspection commands.
	CommandTimeout time.Duration
	// PullTimeout bounds file transfers and bugreport generation.
	PullTimeout time.Duration
	// Trace receives one line per executed command when non-nil.
	Trace io.Writer
}

func (r *Runner) program() string {
	if r.Program != "" {
		return r.Program
	}
	return defaultProgram
}

func (r *Runner) commandTimeout() time.Duration {
	if r.CommandTimeout > 0 {
		return r.CommandTimeout
	}
	return defaultCommandTimeout
}

func (r *Runner) pullTimeout() time.Duration {
	if r.PullTimeout > 0 {
		return r.PullTimeout
	}
	return defaultPullTimeout
}

// Devices lists attached device serials.
func (r *Runner) Devices(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, r.commandTimeout(), "devices")
	if err != nil {
		return nil, err
	}
	return ParseDevices(out), nil
}

// Command runs an adb command against a device and returns cleaned stdout.
func (r *Runner) Command(ctx context.Context, device string, args ...string) (string, error) {
	return r.run(ctx, r.commandTimeout(), append([]string{"-s", device}, args...)...)
}

// Shell runs a shell script on the device. The script is passed as a single
// argument; the device-side shell interprets pipes and redirections.
func (r *Runner) Shell(ctx context.Context, device, script string) (string, error) {
	return r.Command(ctx, device, "shell", script)
}

// Pull copies a remote file or directory to a local path.
func (r *Runner) Pull(ctx context.Context, device, remote, local string) error {
	_, err := r.run(ctx, r.pullTimeout(), "-s", device, "pull", remote, local)
	return err
}

// Bugreport writes the vendor bugreport bundle to dest.
func (r *Runner) Bugreport(ctx context.Context, device, dest string) error {
	_, err := r.run(ctx, r.pullTimeout(), "-s", device, "bugreport", dest)
	return err
}

// run executes the bridge program with timeout and SIGTERM/SIGKILL
// termination, returning trimmed, ANSI-stripped stdout. Errors carry the
// offending command line.
func (r *Runner) run(ctx context.Context, timeout time.Duration, args ...string) (string, error) {
	line := r.program() + " " + strings.Join(args, " ")
	if r.Trace != nil {
		_, _ = fmt.Fprintf(r.Trace, "executing: %s\n", line)
	}

	cmd := exec.Command(r.program(), args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Start(); err != nil {
		var ee *exec.Error
		if errors.As(err, &ee) {
			return "", fmt.Errorf("%s: program %s not found", line, r.program())
		}
		return "", fmt.Errorf("%s: %w", line, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var runErr error
	select {
	case runErr = <-done:
	case <-ctx.Done():
		r.terminate(cmd, done)
		return "", fmt.Errorf("%s: %w", line, ctx.Err())
	case <-timer.C:
		r.terminate(cmd, done)
		return "", fmt.Errorf("%s: timeout after %s", line, timeout)
	}

	if runErr != nil {
		detail := strings.TrimSpace(errBuf.String())
		if detail != "" {
			return "", fmt.Errorf("%s: %w: %s", line, runErr, detail)
		}
		return "", fmt.Errorf("%s: %w", line, runErr)
	}
	return strings.TrimSpace(StripANSI(outBuf.String())), nil
}

// terminate sends SIGTERM to the process group, escalating to SIGKILL after
// a grace period.
func (r *Runner) terminate(cmd *exec.Cmd, done <-chan error) {
	signalProcess(cmd, syscall.SIGTERM)
	grace := time.NewTimer(termGrace)
	defer grace.Stop()
	select {
	case <-done:
	case <-grace.C:
		signalProcess(cmd, syscall.SIGKILL)
		<-done
	}
}

func signalProcess(cmd *exec.Cmd, sig syscall.Signal) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	pid := cmd.Process.Pid
	if pid > 0 {
		if err := syscall.Kill(-pid, sig); err == nil {
			return
		}
	}
	_ = cmd.Process.Signal(sig)
}
