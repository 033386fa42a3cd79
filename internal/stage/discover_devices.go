package stage

import (
	"context"
	"errors"
	"fmt"
)

const discoverStage = "discover-devices"

// errNoDevices aborts the run before any collection happens.
var errNoDevices = errors.New("no devices connected, please connect a device and try again")

func discoverDevicesRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	out := in
	devices, err := deps.Bridge.Devices(ctx)
	if err != nil {
		// A failed listing is indistinguishable from an empty one.
		accumulate(&out, deps, discoverStage, "devices", err)
		devices = nil
	}
	switch len(devices) {
	case 0:
		return Envelope{}, errNoDevices
	case 1:
		fmt.Fprintf(deps.Out, "Using the only connected device: %s\n", devices[0])
		out.Meta.Device = devices[0]
	default:
		idx, err := deps.Prompt.Choose("Multiple devices detected:", devices)
		if err != nil {
			return Envelope{}, fmt.Errorf("device selection aborted: %w", err)
		}
		out.Meta.Device = devices[idx]
	}
	fmt.Fprintf(deps.Out, "Selected device: %s\n", out.Meta.Device)
	return out, nil
}

func init() { Register(discoverStage, discoverDevicesRunner) }
