package sighook

import "sync/atomic"

// Slot states. A writer moves empty or ready to busy, fills the record,
// then publishes ready. A reader moves ready to busy, copies the record
// out, then resets to empty. Losing a CAS means the slot is momentarily
// owned by the other side; the caller gives up instead of spinning,
// which keeps both operations wait-free.
const (
	slotEmpty uint32 = iota
	slotBusy
	slotReady
)

// Slot is a single-record, lock-free mailbox for moving a signal
// snapshot out of a restricted context such as a signal handler. Store
// never blocks or allocates, and the latest stored record wins.
//
// The zero Slot is empty and ready for use. A Slot must not be copied
// after first use.
type Slot struct {
	state atomic.Uint32
	info  SignalInfo
}

// Store publishes a snapshot of info, replacing any record not yet
// taken. It reports false when the slot was momentarily owned by a
// concurrent Store or Take and the record was dropped.
func (s *Slot) Store(info SignalInfo) bool {
	if !s.state.CompareAndSwap(slotEmpty, slotBusy) &&
		!s.state.CompareAndSwap(slotReady, slotBusy) {
		return false
	}
	s.info = info
	s.state.Store(slotReady)
	return true
}

// Take removes and returns the stored record, if any.
func (s *Slot) Take() (SignalInfo, bool) {
	if !s.state.CompareAndSwap(slotReady, slotBusy) {
		return SignalInfo{}, false
	}
	info := s.info
	s.state.Store(slotEmpty)
	return info, true
}
