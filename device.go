package qkernel

// Device tags the execution target a pool runs its kernels on. Only the CPU
// path exists; requesting anything else is rejected explicitly rather than
// silently falling back.
type Device int

const (
	DeviceCPU Device = iota
	DeviceGPU
)

func (d Device) String() string {
	switch d {
	case DeviceCPU:
		return "CPU"
	case DeviceGPU:
		return "GPU"
	default:
		return "unknown"
	}
}

// supported returns an Unimplemented error when the named operator cannot
// run on this device.
func (d Device) supported(op string) error {
	if d != DeviceCPU {
		return unimplementedf("%s operator not implemented for %s", op, d)
	}
	return nil
}
