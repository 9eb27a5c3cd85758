package cmd

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"runtime"
	"text/template"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sigtools/sighook/internal/hdrscan"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Extract si_code origin constants from the host's C headers",
	Long: `Extract the signal-origin si_code constants (SI_USER, SI_QUEUE,
SI_MESGQ and, where defined, SI_KERNEL) from the build host's <signal.h>
and render the code table that pkg/sighook compiles in.

Run this on the target platform; it requires cgo. Output formats:

  go   a codes_<goos>.go file for pkg/sighook (default)
  hcl  a platform block for use with classify --codes

Examples:
  sighook generate -o pkg/sighook/codes_linux.go
  sighook generate --format hcl`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var (
	generateOut    string
	generateFormat string
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "write to file instead of stdout")
	generateCmd.Flags().StringVar(&generateFormat, "format", "go", "output format (go or hcl)")
}

// tableData is the flattened template input; the Has* fields stand in
// for constants the header may not define.
type tableData struct {
	GOOS      string
	User      int32
	Queue     int32
	HasMesgq  bool
	Mesgq     int32
	HasKernel bool
	Kernel    int32
	SigChld   int32
}

var goTableTemplate = template.Must(template.New("go").Parse(
	`// Code generated by sighook generate; DO NOT EDIT.

package sighook

// si_code origin values from <signal.h> ({{.GOOS}}).
const (
	siUser int32 = {{.User}} // SI_USER: kill(2), raise(3)
	siQueue int32 = {{.Queue}} // SI_QUEUE: sigqueue(3)
{{- if .HasMesgq}}
	siMesgq int32 = {{.Mesgq}} // SI_MESGQ: mq_notify(2)
{{- end}}
{{- if .HasKernel}}
	siKernel int32 = {{.Kernel}} // SI_KERNEL
{{- end}}
)

const sigChld int32 = {{.SigChld}}

var defaultCodeSet = CodeSet{
	Process: []int32{siUser, siQueue{{if .HasMesgq}}, siMesgq{{end}}},
{{- if .HasKernel}}
	Kernel: int32Ptr(siKernel),
{{- end}}
}
`))

var hclTableTemplate = template.Must(template.New("hcl").Parse(
	`platform "{{.GOOS}}" {
  process = [{{.User}}, {{.Queue}}{{if .HasMesgq}}, {{.Mesgq}}{{end}}]
{{- if .HasKernel}}
  kernel  = {{.Kernel}}
{{- end}}
}
`))

func runGenerate(cmd *cobra.Command, args []string) error {
	logger, err := setupLogger()
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	defer logger.Sync()

	codes, err := hdrscan.Scan()
	if err != nil {
		return err
	}

	data := tableData{
		GOOS:    runtime.GOOS,
		User:    codes.User,
		Queue:   codes.Queue,
		SigChld: codes.SigChld,
	}
	if codes.Mesgq != nil {
		data.HasMesgq, data.Mesgq = true, *codes.Mesgq
	}
	if codes.Kernel != nil {
		data.HasKernel, data.Kernel = true, *codes.Kernel
	}

	logger.Debug("scanned signal.h",
		zap.Int32("si_user", data.User),
		zap.Int32("si_queue", data.Queue),
		zap.Bool("has_si_mesgq", data.HasMesgq),
		zap.Bool("has_si_kernel", data.HasKernel),
		zap.Int32("sigchld", data.SigChld),
	)

	var out []byte
	switch generateFormat {
	case "go":
		out, err = renderGoTable(data)
	case "hcl":
		out, err = renderHCLTable(data)
	default:
		return fmt.Errorf("unknown format %q (want go or hcl)", generateFormat)
	}
	if err != nil {
		return err
	}

	if generateOut == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(generateOut, out, 0o644); err != nil {
		return fmt.Errorf("failed to write code table: %w", err)
	}

	logger.Info("wrote code table",
		zap.String("path", generateOut),
		zap.String("format", generateFormat),
	)
	return nil
}

func renderGoTable(data tableData) ([]byte, error) {
	var buf bytes.Buffer
	if err := goTableTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated table does not parse: %w", err)
	}
	return src, nil
}

func renderHCLTable(data tableData) ([]byte, error) {
	var buf bytes.Buffer
	if err := hclTableTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
