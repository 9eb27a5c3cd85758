// Package sighook classifies the origin of delivered POSIX signals.
//
// The kernel attaches a signal-information record to every delivered
// signal. Its si_code field says how the signal came to be: sent by
// another process via kill(2) or sigqueue(3), raised by the kernel
// itself, or one of the many hardware and timer sources. Classify
// reduces that platform-specific value space to three stable categories
// and, for process-sent signals, surfaces the sender's pid and uid.
//
// Classification never fails. A code the platform table does not
// recognize is OriginUnknown, not an error.
package sighook

// OriginKind is the coarse origin category of a delivered signal.
//
// The numeric values are stable and safe to carry across process or
// language boundaries: 0 unknown, 1 process, 2 kernel.
type OriginKind uint8

const (
	OriginUnknown OriginKind = 0
	OriginProcess OriginKind = 1
	OriginKernel  OriginKind = 2
)

func (k OriginKind) String() string {
	switch k {
	case OriginProcess:
		return "process"
	case OriginKernel:
		return "kernel"
	}
	return "unknown"
}

// Cause is the finer-grained reason behind an origin: which mechanism a
// process-sent signal used, or what a child did to raise SIGCHLD.
type Cause uint8

const (
	CauseUnknown Cause = iota

	// Process-sent mechanisms.
	CauseUser  // kill(2) or raise(3)
	CauseQueue // sigqueue(3)
	CauseMesgq // mq_notify(2)

	// SIGCHLD child-status causes, reported by ChildCause.
	CauseExited
	CauseKilled
	CauseDumped
	CauseTrapped
	CauseStopped
	CauseContinued
)

func (c Cause) String() string {
	switch c {
	case CauseUser:
		return "user"
	case CauseQueue:
		return "queue"
	case CauseMesgq:
		return "mesgq"
	case CauseExited:
		return "exited"
	case CauseKilled:
		return "killed"
	case CauseDumped:
		return "dumped"
	case CauseTrapped:
		return "trapped"
	case CauseStopped:
		return "stopped"
	case CauseContinued:
		return "continued"
	}
	return "unknown"
}

// Origin is the classification result for one signal-information record.
//
// PID and UID identify the sending process and are meaningful only when
// Kind is OriginProcess; they are copied from the input record verbatim,
// unvalidated. The zero Origin is OriginUnknown.
type Origin struct {
	Kind  OriginKind
	Cause Cause
	PID   int32
	UID   uint32
}

// Classify maps a signal-information record to its origin using the
// code table compiled in for this platform.
//
// It is pure and total: no I/O, no allocation, no global mutable state,
// and no failure mode. It may be called concurrently and from restricted
// contexts such as signal handlers.
func Classify(info SignalInfo) Origin {
	return defaultCodeSet.Classify(info)
}

// CLD_* child status codes. The values are identical on every platform
// this package ships a table for.
const (
	cldExited    int32 = 1
	cldKilled    int32 = 2
	cldDumped    int32 = 3
	cldTrapped   int32 = 4
	cldStopped   int32 = 5
	cldContinued int32 = 6
)

// ChildCause interprets a SIGCHLD record, whose si_code carries the
// child's fate rather than a sender mechanism. It reports false when the
// record is not a SIGCHLD delivery or the status code is unrecognized.
// For SIGCHLD the PID and UID fields of the record identify the child,
// not a sender, which is why Classify leaves them alone.
func ChildCause(info SignalInfo) (Cause, bool) {
	if sigChld == 0 || info.Signo != sigChld {
		return CauseUnknown, false
	}
	switch info.Code {
	case cldExited:
		return CauseExited, true
	case cldKilled:
		return CauseKilled, true
	case cldDumped:
		return CauseDumped, true
	case cldTrapped:
		return CauseTrapped, true
	case cldStopped:
		return CauseStopped, true
	case cldContinued:
		return CauseContinued, true
	}
	return CauseUnknown, false
}
