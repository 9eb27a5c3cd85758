//go:build cgo && unix

package hdrscan

/*
#include <signal.h>

static int si_user(void)  { return SI_USER; }
static int si_queue(void) { return SI_QUEUE; }

#ifdef SI_MESGQ
static int have_si_mesgq(void) { return 1; }
static int si_mesgq(void)      { return SI_MESGQ; }
#else
static int have_si_mesgq(void) { return 0; }
static int si_mesgq(void)      { return 0; }
#endif

#ifdef SI_KERNEL
static int have_si_kernel(void) { return 1; }
static int si_kernel(void)      { return SI_KERNEL; }
#else
static int have_si_kernel(void) { return 0; }
static int si_kernel(void)      { return 0; }
#endif
*/
import "C"

// Scan reads the origin-related si_code values out of the host's
// <signal.h>. Constant presence is resolved by the C preprocessor, so a
// header that never defines SI_KERNEL yields a nil Kernel rather than a
// wrong value.
func Scan() (Codes, error) {
	codes := Codes{
		User:    int32(C.si_user()),
		Queue:   int32(C.si_queue()),
		SigChld: int32(C.SIGCHLD),
	}
	if C.have_si_mesgq() != 0 {
		v := int32(C.si_mesgq())
		codes.Mesgq = &v
	}
	if C.have_si_kernel() != 0 {
		v := int32(C.si_kernel())
		codes.Kernel = &v
	}
	return codes, nil
}
