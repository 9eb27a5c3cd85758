package sighook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCodeSetIsACopy(t *testing.T) {
	set := DefaultCodeSet()
	if len(set.Process) == 0 {
		t.Skip("no generated code table for this platform")
	}

	siUser := set.Process[0]

	// Vandalize the copy; the package-level classifier must not notice.
	set.Process[0] = -424242
	if set.Kernel != nil {
		*set.Kernel = -424243
	}

	origin := Classify(SignalInfo{Code: siUser, PID: 1, UID: 2})
	assert.Equal(t, OriginProcess, origin.Kind)

	fresh := DefaultCodeSet()
	require.NotEmpty(t, fresh.Process)
	assert.Equal(t, siUser, fresh.Process[0])
}

func TestEmptyCodeSet(t *testing.T) {
	var set CodeSet

	for _, code := range []int32{-3, -1, 0, 1, 128, 65537} {
		assert.Equal(t, Origin{}, set.Classify(SignalInfo{Code: code, PID: 9, UID: 9}))
	}
}

func TestProcessCauseOrder(t *testing.T) {
	// A table with more process codes than the POSIX three still
	// classifies, just without a cause name.
	set := CodeSet{Process: []int32{10, 20, 30, 40}}

	tests := []struct {
		code     int32
		expected Cause
	}{
		{10, CauseUser},
		{20, CauseQueue},
		{30, CauseMesgq},
		{40, CauseUnknown},
	}
	for _, tt := range tests {
		origin := set.Classify(SignalInfo{Code: tt.code})
		require.Equal(t, OriginProcess, origin.Kind)
		assert.Equal(t, tt.expected, origin.Cause)
	}
}
