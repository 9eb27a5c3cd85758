package sighook

// CodeSet is the set of si_code values a platform uses to mark signal
// origins. The set for the compilation target is generated into this
// package (codes_*.go, produced by `sighook generate`); alternative sets
// can be supplied for unported targets or cross-platform tooling, see
// package codetable.
type CodeSet struct {
	// Process holds the codes meaning "sent by a user-space process",
	// in the POSIX order SI_USER, SI_QUEUE, SI_MESGQ. The position of
	// the matching code names the cause in the result; codes past the
	// third position classify as process-sent with an unknown cause.
	Process []int32

	// Kernel is the code meaning "raised by the kernel", on platforms
	// that define one (SI_KERNEL). Nil where the platform does not, in
	// which case the kernel branch simply never matches.
	Kernel *int32
}

// Classify runs origin classification against this code set. Same
// contract as the package-level Classify.
func (cs CodeSet) Classify(info SignalInfo) Origin {
	for i, code := range cs.Process {
		if info.Code == code {
			return Origin{
				Kind:  OriginProcess,
				Cause: processCause(i),
				PID:   info.PID,
				UID:   info.UID,
			}
		}
	}
	if cs.Kernel != nil && info.Code == *cs.Kernel {
		return Origin{Kind: OriginKernel}
	}
	return Origin{}
}

// processCause names the i-th process-origin code per the order
// convention of CodeSet.Process.
func processCause(i int) Cause {
	switch i {
	case 0:
		return CauseUser
	case 1:
		return CauseQueue
	case 2:
		return CauseMesgq
	}
	return CauseUnknown
}

// DefaultCodeSet returns a copy of the code table compiled in for this
// platform. On targets without a generated table the set is empty and
// every record classifies as OriginUnknown.
func DefaultCodeSet() CodeSet {
	cs := CodeSet{Process: append([]int32(nil), defaultCodeSet.Process...)}
	if defaultCodeSet.Kernel != nil {
		k := *defaultCodeSet.Kernel
		cs.Kernel = &k
	}
	return cs
}

func int32Ptr(v int32) *int32 {
	return &v
}
