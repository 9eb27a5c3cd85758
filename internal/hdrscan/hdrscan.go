// Package hdrscan extracts the signal-origin constants from the C
// headers of the build host. It backs `sighook generate`; the library
// only ever consumes the generated tables, never the headers.
package hdrscan

// Codes holds the raw values found in <signal.h>. Optional fields are
// nil where the header does not define the constant.
type Codes struct {
	User    int32  // SI_USER
	Queue   int32  // SI_QUEUE
	Mesgq   *int32 // SI_MESGQ, absent on e.g. OpenBSD
	Kernel  *int32 // SI_KERNEL, absent outside Linux and FreeBSD
	SigChld int32  // SIGCHLD signal number
}
