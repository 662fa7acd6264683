package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/atomlevels/internal/cli"
	"github.com/katalvlaran/atomlevels/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with an empty config file and returns stdout and
// stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgFile := filepath.Join(t.TempDir(), "atomlevels.toml")
	require.NoError(t, os.WriteFile(cfgFile, nil, 0o644))

	root := cli.NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfgFile, "--color=false"}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRoot_Subcommands(t *testing.T) {
	root := cli.NewRootCommand()
	var got []string
	for _, c := range root.Commands() {
		got = append(got, c.Name())
	}
	for _, want := range []string{"terms", "intermediate", "couplings", "excite", "spin", "batch"} {
		assert.Contains(t, got, want)
	}
}

func TestTerms(t *testing.T) {
	out, _, err := execute(t, "terms", "1s2 2s 2p")
	require.NoError(t, err)
	assert.Equal(t, []string{"1s2 2s 2p: 2 terms", "  1Po", "  3Po"}, lines(out))

	out, _, err = execute(t, "terms", "3d3")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"3d3: 8 terms", "  2P", "  2D ×2", "  2F", "  2G", "  2H", "  4P", "  4F",
	}, lines(out))
}

func TestTerms_Relativistic(t *testing.T) {
	out, _, err := execute(t, "terms", "-r", "2p- 2p")
	require.NoError(t, err)
	assert.Equal(t, []string{"2p- 2p: 2 J values", "  1", "  2"}, lines(out))
}

func TestIntermediateAndCouplings(t *testing.T) {
	out, _, err := execute(t, "intermediate", "2p2 3s")
	require.NoError(t, err)
	assert.Equal(t, []string{"2p2 3s", "  2p2: 1S_0 1D_2 3P_2", "  3s: 2S_1"}, lines(out))

	out, _, err = execute(t, "couplings", "2p 3s")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2p 3s: 2 coupling chains",
		"  1S -[2Po_1]-> 2Po -[2S_1]-> 1Po",
		"  1S -[2Po_1]-> 2Po -[2S_1]-> 3Po",
	}, lines(out))
}

func TestExcite(t *testing.T) {
	out, _, err := execute(t, "excite", "1s2", "--to", "2s,2p")
	require.NoError(t, err)
	assert.Equal(t, []string{"1s2: 4 configurations", "  1s2", "  1s 2s", "  2s2", "  2p2"}, lines(out))

	out, _, err = execute(t, "excite", "1s2", "--to", "2[s-p]", "--max", "1", "--min", "1", "--keep-parity=false")
	require.NoError(t, err)
	assert.Equal(t, []string{"1s2: 2 configurations", "  1s 2s", "  1s 2p"}, lines(out))

	_, _, err = execute(t, "excite", "1s2")
	assert.Error(t, err)
}

func TestExcite_CommaListsInsideBrackets(t *testing.T) {
	want := []string{"1s2: 2 configurations", "  1s 2s", "  1s 2p"}
	for _, to := range [][]string{
		{"--to", "2[s,p]"},
		{"--to", "2s", "--to", "2p"},
		{"--to", "2[s],2p"},
	} {
		args := append([]string{"excite", "1s2", "--max", "1", "--min", "1", "--keep-parity=false"}, to...)
		out, _, err := execute(t, args...)
		require.NoError(t, err, "%v", to)
		assert.Equal(t, want, lines(out), "%v", to)
	}
}

func TestSpin(t *testing.T) {
	out, _, err := execute(t, "spin", "2s2 3s")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2s2 3s: 2 spin configurations",
		"  2s(0,α) 2s(0,β) 3s(0,α)",
		"  2s(0,α) 2s(0,β) 3s(0,β)",
	}, lines(out))
}

func TestErrors(t *testing.T) {
	_, _, err := execute(t, "terms", "1s3")
	assert.Error(t, err)
	_, _, err = execute(t, "terms", "1q")
	assert.Error(t, err)
	_, _, err = execute(t, "terms")
	assert.Error(t, err)
	_, _, err = execute(t, "terms", "1s", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := execute(t, "terms", "2p2", "--log-level", "debug", "--log-format", "json", "--cache-size", "64")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"command start"`)
	assert.Contains(t, errOut, `"msg":"command done"`)
	assert.Contains(t, errOut, `"memoized"`)
}

func TestBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[job]]
name = "neon-like"
command = "terms"
configuration = "[He] 2s2 2p5"

[[job]]
command = "excite"
configuration = "1s2"
to = ["2s", "2p"]
max_excitations = 1
keep_parity = false

[[job]]
name = "jj"
command = "terms"
relativistic = true
configuration = "2p-2 2p"
`), 0o644))

	out, _, err := execute(t, "batch", path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"# neon-like",
		"[He] 2s2 2p5: 1 terms",
		"  2Po",
		"",
		"# job 2",
		"1s2: 3 configurations",
		"  1s2",
		"  1s 2s",
		"  1s 2p",
		"",
		"# jj",
		"2p-2 2p: 1 J values",
		"  3/2",
	}, lines(out))

	_, _, err = execute(t, "batch", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
