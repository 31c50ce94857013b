package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldsa/internal/config"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	for _, l := range lessons() {
		assert.Contains(t, out, l.name)
	}
}

func TestRun_EveryLesson(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "lvldsa.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[search]\narray_size = 500\nmax_value = 100\n"), 0o644))

	for _, l := range lessons() {
		t.Run(l.name, func(t *testing.T) {
			out, logs, err := execute(t, "--config", cfg, "run", l.name)
			require.NoError(t, err)
			assert.Contains(t, out, l.title)
			assert.Contains(t, logs, "Ran lesson "+l.name)
		})
	}
}

func TestRun_Outputs(t *testing.T) {
	out, _, err := execute(t, "run", "graphs", "problems", "dp")
	require.NoError(t, err)
	assert.Contains(t, out, "A to D: ")
	assert.Contains(t, out, "all-pairs distances from A match Dijkstra")
	assert.Contains(t, out, "EditDistance(intention, execution) = ")
	assert.Contains(t, out, "order from 3: [3 1 2 4 0]")
	assert.Contains(t, out, "course order: [L4 L1 L5 L6 L2 L7]")
	assert.Contains(t, out, "islands: ")
	assert.Contains(t, out, "1 -> 2 -> 3 -> 4 -> 9 -> 10 -> 12 -> nil")
}

func TestRun_UnknownLesson(t *testing.T) {
	_, _, err := execute(t, "run", "search", "quantum")
	assert.ErrorIs(t, err, ErrUnknownLesson)

	_, _, err = execute(t, "run")
	assert.Error(t, err, "at least one lesson is required")
}

func TestRun_BadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[bench]\nsearches = 0\n"), 0o644))
	_, _, err := execute(t, "--config", cfg, "list")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSelectLessons_All(t *testing.T) {
	got, err := selectLessons([]string{"all"})
	require.NoError(t, err)
	assert.Len(t, got, len(lessons()))
}

func TestBench(t *testing.T) {
	out, logs, err := execute(t, "bench", "--sizes", "10,50", "--searches", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Dataset Size: 10 users")
	assert.Contains(t, out, "Dataset Size: 50 users")
	assert.Contains(t, out, "SEARCH PERFORMANCE (10 searches)")
	assert.Contains(t, out, "SEARCH PERFORMANCE (20 searches)")
	assert.Contains(t, out, "THEORETICAL COMPLEXITY")
	assert.Contains(t, logs, "Benchmarked 50 users")
}

func TestBench_RejectsBadFlags(t *testing.T) {
	_, _, err := execute(t, "bench", "--sizes", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg := filepath.Join(t.TempDir(), "short.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[bench]\nusername_length = 1\n"), 0o644))
	_, _, err = execute(t, "--config", cfg, "bench", "--sizes", "27")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSpeedup(t *testing.T) {
	ratio, winner := speedup(10*time.Millisecond, 2*time.Millisecond)
	assert.InDelta(t, 5.0, ratio, 1e-9)
	assert.Equal(t, "BST faster", winner)

	ratio, winner = speedup(time.Millisecond, 4*time.Millisecond)
	assert.InDelta(t, 4.0, ratio, 1e-9)
	assert.Equal(t, "Linear faster", winner)

	_, winner = speedup(0, 0)
	assert.Equal(t, "BST faster", winner)
}

func TestTheoreticalComparisons(t *testing.T) {
	lin, tree := theoreticalComparisons(1000)
	assert.Equal(t, 500, lin)
	assert.Equal(t, 10, tree)

	lin, tree = theoreticalComparisons(1)
	assert.Equal(t, 1, lin)
	assert.Equal(t, 1, tree)
}

func TestRandomUsers_Distinct(t *testing.T) {
	e, err := newEnv(config.Default())
	require.NoError(t, err)
	users := randomUsers(e.rng, 500, 3)
	seen := map[string]bool{}
	for _, u := range users {
		assert.Len(t, u.Username, 3)
		assert.False(t, seen[u.Username], "duplicate %s", u.Username)
		seen[u.Username] = true
	}
	assert.True(t, enoughUsernames(26, 1))
	assert.False(t, enoughUsernames(27, 1))
}

func TestTree(t *testing.T) {
	out, _, err := execute(t, "tree", "((1,3,None),2,((None,3,4),5,(6,7,8)))")
	require.NoError(t, err)
	assert.Contains(t, out, "Height:")
	assert.Contains(t, out, "Root: 2")
	assert.Contains(t, out, "+-- [R]")

	out, _, err = execute(t, "tree", "--dot", "(1,2,3)")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph"), out)

	_, _, err = execute(t, "tree", "(1,2")
	assert.Error(t, err)
}

func TestTree_SVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.svg")
	_, _, err := execute(t, "tree", "--svg", path, "(1,2,3)")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestGraph(t *testing.T) {
	out, _, err := execute(t, "graph", "weighted cities")
	require.NoError(t, err)
	assert.Contains(t, out, "6 vertices, 9 edges")

	out, _, err = execute(t, "graph", "--dot", "course prerequisites")
	require.NoError(t, err)
	assert.Contains(t, out, "->")

	_, _, err = execute(t, "graph", "nowhere")
	assert.ErrorIs(t, err, ErrUnknownGraph)
}

func TestLoggerFromContext(t *testing.T) {
	assert.NotNil(t, loggerFromContext(context.Background()))

	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)
	ctx := withLogger(context.Background(), l)
	assert.Same(t, l, loggerFromContext(ctx))

	newProgress(l).done("finished")
	assert.Contains(t, buf.String(), "finished (")
}

func TestConfigFromContext(t *testing.T) {
	assert.Equal(t, config.Default(), configFromContext(context.Background()))

	cfg := config.Default()
	cfg.Seed = 7
	assert.Equal(t, int64(7), configFromContext(withConfig(context.Background(), cfg)).Seed)
}

func TestVerboseLogsDebug(t *testing.T) {
	_, logs, err := execute(t, "-v", "--seed", "3", "list")
	require.NoError(t, err)
	assert.Contains(t, logs, "seed=3")
}
