package adb

import "context"

// Bridge is the sole boundary with the external adb tool. Every component
// that talks to the device goes through this interface rather than invoking
// adb directly.
type Bridge interface {
	// Devices lists the serials of attached devices in listing order.
	Devices(ctx context.Context) ([]string, error)
	// Command runs `adb -s <device> <args...>` and returns cleaned stdout.
	Command(ctx context.Context, device string, args ...string) (string, error)
	// Shell runs a shell script on the device and returns cleaned stdout.
	Shell(ctx context.Context, device, script string) (string, error)
	// Pull copies a remote file or directory to a local path.
	Pull(ctx context.Context, device, remote, local string) error
	// Bugreport writes the vendor bugreport bundle to dest.
	Bugreport(ctx context.Context, device, dest string) error
}
