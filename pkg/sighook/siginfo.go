package sighook

// SignalInfo is a read-only view of the fields of the operating system's
// signal-information record that origin classification needs. The native
// record's layout differs per platform and per delivery path; boundary
// constructors such as FromSignalfd pin the mapping once, so consuming
// code never touches the raw structure.
type SignalInfo struct {
	// Signo is the delivered signal number.
	Signo int32

	// Code is the si_code value identifying the delivery mechanism.
	Code int32

	// PID is the sending process id. Valid only when Code is one of the
	// process-origin codes (or, for SIGCHLD, the child's pid).
	PID int32

	// UID is the real user id of the sender, with the same validity
	// rules as PID.
	UID uint32
}
