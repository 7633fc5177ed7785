package cmd

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/motchy869/code-fractions/cmdhist"
	"github.com/motchy869/code-fractions/cpnewer"
	"github.com/motchy869/code-fractions/csrhdr"
	"github.com/motchy869/code-fractions/invcolor"
	"github.com/motchy869/code-fractions/metrics"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FRACTIONS_CONFIG", "")
	cfg_path = ""
	cmdhist_args = cmdhist.Args{}
	csrhdr_args = csrhdr.Args{}
	cpnewer_args = cpnewer.Args{}
	invcolor_args = invcolor.Args{}
	counters = metrics.New()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCmdhist(t *testing.T) {
	dir := t.TempDir()
	blob := make([]byte, cmdhist.HistorySize)
	rec := blob[2+5*8:]
	binary.LittleEndian.PutUint16(rec[0:], 0x0B34)
	binary.LittleEndian.PutUint16(rec[6:], 0x2A7F)
	path := filepath.Join(dir, "hist.bin")
	require.NoError(t, os.WriteFile(path, blob, 0644))

	prom := filepath.Join(dir, "fractions.prom")
	conf := filepath.Join(dir, "fractions.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("metrics: { textfile: "+prom+" }\n"), 0644))

	out, err := run(t, "--config", conf, "cmdhist", path)
	require.NoError(t, err)
	require.Equal(t, "sys=0 reg=0x2A val=0x7F\n", out)

	buf, err := os.ReadFile(prom)
	require.NoError(t, err)
	require.Contains(t, string(buf), "fractions_cmdhist_records_matched_total 1")
	require.Contains(t, string(buf), "fractions_cmdhist_records_scanned_total 200")
}

func TestCmdhistYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, cmdhist.HistorySize), 0644))
	out, err := run(t, "cmdhist", "-f", "yaml", path)
	require.NoError(t, err)
	require.Equal(t, "[]\n", out)
}

func TestCmdhistVerbose(t *testing.T) {
	blob := make([]byte, cmdhist.HistorySize)
	binary.LittleEndian.PutUint16(blob[0:], 7)
	path := filepath.Join(t.TempDir(), "hist.bin")
	require.NoError(t, os.WriteFile(path, blob, 0644))

	hook := test.NewGlobal()
	defer hook.Reset()
	_, err := run(t, "cmdhist", "-v", path)
	require.NoError(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.InfoLevel, entry.Level)
	require.Equal(t, "command history decoded", entry.Message)
	require.Equal(t, uint16(7), entry.Data["numEntry"])
	require.Equal(t, 0, entry.Data["matched"])

	hook.Reset()
	_, err = run(t, "cmdhist", path)
	require.NoError(t, err)
	require.Nil(t, hook.LastEntry()) // debug entry filtered at info level
}

func TestCmdhistErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "cmdhist", filepath.Join(dir, "none.bin"))
	require.ErrorIs(t, err, cmdhist.ErrNotFound)

	short := filepath.Join(dir, "short.bin")
	require.NoError(t, os.WriteFile(short, make([]byte, 1000), 0644))
	_, err = run(t, "cmdhist", short)
	require.ErrorIs(t, err, cmdhist.ErrTruncated)

	_, err = run(t, "cmdhist")
	require.Error(t, err)
}

func TestCsrhdr(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "csr.sv")
	require.NoError(t, os.WriteFile(src, []byte("module csr(\n input clk\n);\nendmodule\n"), 0644))
	conf := filepath.Join(dir, "fractions.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("csrhdr: { ext: .vh }\n"), 0644))

	_, err := run(t, "--config", conf, "csrhdr", src)
	require.NoError(t, err)
	buf, err := os.ReadFile(filepath.Join(dir, "csr.vh"))
	require.NoError(t, err)
	require.Equal(t, "extern module csr(\n input clk\n);\n", string(buf))
}

func TestCpnewer(t *testing.T) {
	dir := t.TempDir()
	src, dst := filepath.Join(dir, "a"), filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(src, []byte("a"), 0644))

	_, err := run(t, "cpnewer", src)
	require.Error(t, err)
	_, err = run(t, "cpnewer", "--manifest", "x.yaml", src, dst)
	require.Error(t, err)

	_, err = run(t, "cpnewer", src, dst)
	require.NoError(t, err)
	require.FileExists(t, dst)
}

func TestInvcolor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.ini")
	require.NoError(t, os.WriteFile(path, []byte("color=rgb(0, 0, 0)\nx=1\n"), 0644))
	out, err := run(t, "invcolor", path)
	require.NoError(t, err)
	require.Equal(t, "color=rgb(255, 255, 255)\nx=1\n", out)
}

func TestBadConfig(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "invcolor")
	require.ErrorIs(t, err, os.ErrNotExist)
}
