//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !solaris

package sighook

// No code table has been generated for this target: every record
// classifies as OriginUnknown and ChildCause never matches. Run
// `sighook generate` on the target to produce a table, or load one at
// runtime with package codetable.
const sigChld int32 = 0

var defaultCodeSet = CodeSet{}
