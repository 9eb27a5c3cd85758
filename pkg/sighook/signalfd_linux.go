package sighook

import "golang.org/x/sys/unix"

// FromSignalfd converts a record read from a signalfd descriptor into a
// SignalInfo view. signalfd is the usual way a Go program gets at
// si_code and the sender identity, since os/signal does not expose them.
func FromSignalfd(si *unix.SignalfdSiginfo) SignalInfo {
	return SignalInfo{
		Signo: int32(si.Signo),
		Code:  si.Code,
		PID:   int32(si.Pid),
		UID:   si.Uid,
	}
}
