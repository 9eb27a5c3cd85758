package codetable

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigtools/sighook/pkg/sighook"
)

const sampleTable = `
platform "linux" {
  process = [0, -1, -3]
  kernel  = 128
}

platform "openbsd" {
  process = [0, -2]
}
`

func TestParse(t *testing.T) {
	table, err := Parse([]byte(sampleTable), "sample.hcl")
	require.NoError(t, err)
	require.Len(t, table, 2)

	linux, ok := table["linux"]
	require.True(t, ok)
	assert.Equal(t, []int32{0, -1, -3}, linux.Process)
	require.NotNil(t, linux.Kernel)
	assert.Equal(t, int32(128), *linux.Kernel)

	openbsd, ok := table["openbsd"]
	require.True(t, ok)
	assert.Equal(t, []int32{0, -2}, openbsd.Process)
	assert.Nil(t, openbsd.Kernel, "kernel is optional")
}

func TestParsedTableClassifies(t *testing.T) {
	table, err := Parse([]byte(sampleTable), "sample.hcl")
	require.NoError(t, err)

	origin := table["linux"].Classify(sighook.SignalInfo{Code: -3, PID: 5, UID: 5})
	assert.Equal(t, sighook.OriginProcess, origin.Kind)
	assert.Equal(t, sighook.CauseMesgq, origin.Cause)

	origin = table["openbsd"].Classify(sighook.SignalInfo{Code: 128})
	assert.Equal(t, sighook.OriginUnknown, origin.Kind)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "syntax error",
			src:  `platform "linux" {`,
		},
		{
			name: "missing process list",
			src:  `platform "linux" { kernel = 128 }`,
		},
		{
			name: "duplicate platform",
			src: `
platform "linux" { process = [0] }
platform "linux" { process = [1] }
`,
		},
		{
			name: "unknown attribute",
			src:  `platform "linux" { process = [0], extra = 1 }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), tt.name+".hcl")
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, table, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestCurrent(t *testing.T) {
	table := Table{
		runtime.GOOS: sighook.CodeSet{Process: []int32{0}},
		"not-an-os":  sighook.CodeSet{},
	}

	cs, ok := table.Current()
	require.True(t, ok)
	assert.Equal(t, []int32{0}, cs.Process)

	_, ok = Table{}.Current()
	assert.False(t, ok)
}
