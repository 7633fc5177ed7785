package csrhdr

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const csr_sv = `// Generated by PeakRDL-regblock
` + "`" + `include "csr_pkg.svh"

module csr (
        input wire clk,
        input wire rst,
        input wire s_cpuif_req
    );
    logic [31:0] cpuif_rd_data;
endmodule
`

func TestExtract(t *testing.T) {
	hdr, err := Extract(strings.NewReader(csr_sv))
	require.NoError(t, err)
	require.Equal(t, 3, hdr.ModuleLine)
	require.Equal(t, 7, hdr.PortEndLine)
	require.Equal(t, "extern module csr (", hdr.Lines[3])
	require.Len(t, hdr.Lines, 8)
	require.Equal(t, "    );", hdr.Lines[7])
}

func TestExtractSkipsCloseBeforeModule(t *testing.T) {
	src := "function f(\n);\nendfunction\nmodule top(\n  input a\n);\n"
	hdr, err := Extract(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, hdr.ModuleLine)
	require.Equal(t, 5, hdr.PortEndLine)
	require.Equal(t, ");", hdr.Lines[1])
}

func TestExtractNoModule(t *testing.T) {
	_, err := Extract(strings.NewReader("package p;\nendpackage\n"))
	require.ErrorIs(t, err, ErrNoModule)
}

func TestExtractNoPortEnd(t *testing.T) {
	_, err := Extract(strings.NewReader("module top(\n  input a\n"))
	require.ErrorIs(t, err, ErrNoPortEnd)
}

func TestHeaderPath(t *testing.T) {
	require.Equal(t, "hw/csr.svh", HeaderPath("hw/csr.sv", ""))
	require.Equal(t, "hw/csr.vh", HeaderPath("hw/csr.sv", ".vh"))
	require.Equal(t, "hw/csr.v.svh", HeaderPath("hw/csr.v", ""))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "csr.sv")
	require.NoError(t, os.WriteFile(src, []byte(csr_sv), 0644))

	out, err := Run(Args{File: src})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "csr.svh"), out)

	buf, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(buf), "\n"), "\n")
	require.Len(t, lines, 8)
	require.Equal(t, "extern module csr (", lines[3])
	require.Equal(t, "    );", lines[7])
}

func TestRunOutputFlag(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "csr.sv")
	require.NoError(t, os.WriteFile(src, []byte(csr_sv), 0644))
	out, err := Run(Args{File: src, Output: filepath.Join(dir, "inc", "hdr.svh")})
	require.Error(t, err) // inc/ does not exist
	require.Empty(t, out)

	out, err = Run(Args{File: src, Output: filepath.Join(dir, "hdr.svh")})
	require.NoError(t, err)
	require.FileExists(t, out)
}

func TestRunRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "csr.svh")
	require.NoError(t, os.WriteFile(src, []byte(csr_sv), 0644))
	_, err := Run(Args{File: src, Output: src})
	require.Error(t, err)
}

func TestRunMissing(t *testing.T) {
	_, err := Run(Args{File: filepath.Join(t.TempDir(), "none.sv")})
	require.ErrorIs(t, err, os.ErrNotExist)
}
