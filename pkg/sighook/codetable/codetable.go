// Package codetable loads signal-origin code tables from HCL. It serves
// targets whose table is not compiled into package sighook and tooling
// that needs another platform's values, for example:
//
//	platform "linux" {
//	  process = [0, -1, -3]
//	  kernel  = 128
//	}
//
//	platform "openbsd" {
//	  process = [0, -2]
//	}
//
// The process list follows the POSIX order SI_USER, SI_QUEUE, SI_MESGQ;
// kernel is omitted on platforms without a kernel-origin code.
package codetable

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/sigtools/sighook/pkg/sighook"
)

type platformBlock struct {
	Name    string  `hcl:"name,label"`
	Process []int32 `hcl:"process"`
	Kernel  *int32  `hcl:"kernel,optional"`
}

type tableFile struct {
	Platforms []platformBlock `hcl:"platform,block"`
}

// Table holds per-platform code sets keyed by GOOS name.
type Table map[string]sighook.CodeSet

// Load reads a table from an HCL file on disk.
func Load(path string) (Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}
	return decode(file.Body)
}

// Parse reads a table from HCL source. The filename is used only in
// diagnostics.
func Parse(src []byte, filename string) (Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (Table, error) {
	var tf tableFile
	if diags := gohcl.DecodeBody(body, nil, &tf); diags.HasErrors() {
		return nil, diags
	}

	table := make(Table, len(tf.Platforms))
	for _, p := range tf.Platforms {
		if _, ok := table[p.Name]; ok {
			return nil, fmt.Errorf("platform %q defined twice", p.Name)
		}
		table[p.Name] = sighook.CodeSet{
			Process: p.Process,
			Kernel:  p.Kernel,
		}
	}
	return table, nil
}

// Current returns the code set for the running platform.
func (t Table) Current() (sighook.CodeSet, bool) {
	cs, ok := t[runtime.GOOS]
	return cs, ok
}
