package cli

import (
	"context"
	"fmt"
	"io"
	"math/bits"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvldsa/bst"
	"github.com/katalvlaran/lvldsa/internal/config"
)

func newBenchCmd() *cobra.Command {
	var (
		sizes    []int
		searches int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the linear and BST user databases",
		Long: `Bench inserts random users into a slice-backed database and a BST-backed
database, then times lookups of existing usernames in both.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			if cmd.Flags().Changed("sizes") {
				cfg.Bench.Sizes = sizes
			}
			if cmd.Flags().Changed("searches") {
				cfg.Bench.Searches = searches
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runBench(ctx, cmd.OutOrStdout(), loggerFromContext(ctx), cfg)
		},
	}

	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "dataset sizes (overrides config)")
	cmd.Flags().IntVar(&searches, "searches", 0, "maximum lookups per size (overrides config)")

	return cmd
}

// benchResult holds the timings for one dataset size.
type benchResult struct {
	size         int
	searches     int
	linearInsert time.Duration
	treeInsert   time.Duration
	linearSearch time.Duration
	treeSearch   time.Duration
	treeHeight   int
}

func runBench(ctx context.Context, w io.Writer, logger *log.Logger, cfg config.Config) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	printTitle(w, "User Database: Linear vs Binary Search Tree")

	for _, size := range cfg.Bench.Sizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !enoughUsernames(size, cfg.Bench.UsernameLength) {
			return fmt.Errorf("%w: %d users do not fit in usernames of length %d",
				config.ErrInvalidConfig, size, cfg.Bench.UsernameLength)
		}
		prog := newProgress(logger)
		users := randomUsers(rng, size, cfg.Bench.UsernameLength)
		res, err := benchSize(rng, users, min(cfg.Bench.Searches, size))
		if err != nil {
			return fmt.Errorf("bench size %d: %w", size, err)
		}
		printBenchResult(w, res)
		prog.done(fmt.Sprintf("Benchmarked %d users", size))
	}

	return nil
}

// randomUsers generates n users with distinct random lowercase usernames.
func randomUsers(rng *rand.Rand, n, length int) []*bst.User {
	seen := make(map[string]bool, n)
	users := make([]*bst.User, 0, n)
	buf := make([]byte, length)
	for len(users) < n {
		for i := range buf {
			buf[i] = byte('a' + rng.Intn(26))
		}
		name := string(buf)
		if seen[name] {
			continue
		}
		seen[name] = true
		i := len(users)
		users = append(users, &bst.User{
			Username: name,
			Name:     fmt.Sprintf("Name%d", i),
			Email:    fmt.Sprintf("email%d@test.com", i),
		})
	}

	return users
}

// enoughUsernames reports whether 26^length >= n.
func enoughUsernames(n, length int) bool {
	space := 1
	for i := 0; i < length && space < n; i++ {
		space *= 26
	}

	return space >= n
}

func benchSize(rng *rand.Rand, users []*bst.User, searches int) (benchResult, error) {
	res := benchResult{size: len(users), searches: searches}
	linear := bst.NewLinearUserDB()
	tree := bst.NewTreeUserDB()

	var err error
	if res.linearInsert, err = timeInserts(linear, users); err != nil {
		return res, err
	}
	if res.treeInsert, err = timeInserts(tree, users); err != nil {
		return res, err
	}
	res.treeHeight = tree.Height()

	queries := make([]string, searches)
	for i, j := range rng.Perm(len(users))[:searches] {
		queries[i] = users[j].Username
	}
	if res.linearSearch, err = timeFinds(linear, queries); err != nil {
		return res, err
	}
	if res.treeSearch, err = timeFinds(tree, queries); err != nil {
		return res, err
	}

	return res, nil
}

func timeInserts(db bst.UserDB, users []*bst.User) (time.Duration, error) {
	start := time.Now()
	for _, u := range users {
		if err := db.Insert(u); err != nil {
			return 0, err
		}
	}

	return time.Since(start), nil
}

func timeFinds(db bst.UserDB, usernames []string) (time.Duration, error) {
	start := time.Now()
	for _, name := range usernames {
		if _, err := db.Find(name); err != nil {
			return 0, err
		}
	}

	return time.Since(start), nil
}

func printBenchResult(w io.Writer, r benchResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Dataset Size: %d users", r.size)))

	printSection(w, "INSERTION PERFORMANCE")
	printComparison(w, r.linearInsert, r.treeInsert)

	printSection(w, fmt.Sprintf("SEARCH PERFORMANCE (%d searches)", r.searches))
	printComparison(w, r.linearSearch, r.treeSearch)

	printSection(w, "THEORETICAL COMPLEXITY")
	linearOps, treeOps := theoreticalComparisons(r.size)
	fmt.Fprintf(w, "Linear search: ~%s comparisons\n", num(linearOps))
	fmt.Fprintf(w, "BST search:    ~%s comparisons (height %d)\n", num(treeOps), r.treeHeight)
	fmt.Fprintf(w, "BST is %.1fx more efficient\n", float64(linearOps)/float64(treeOps))
}

func printComparison(w io.Writer, linear, tree time.Duration) {
	fmt.Fprintf(w, "Linear: %s ms\n", num(fmt.Sprintf("%.2f", ms(linear))))
	fmt.Fprintf(w, "BST:    %s ms\n", num(fmt.Sprintf("%.2f", ms(tree))))
	ratio, winner := speedup(linear, tree)
	printDetail(w, "Speedup: %.2fx (%s)", ratio, winner)
}

// speedup returns how many times faster the quicker database was.
func speedup(linear, tree time.Duration) (float64, string) {
	linear, tree = max(linear, time.Nanosecond), max(tree, time.Nanosecond)
	if tree <= linear {
		return float64(linear) / float64(tree), "BST faster"
	}

	return float64(tree) / float64(linear), "Linear faster"
}

// theoreticalComparisons returns the average linear scan length and the
// comparisons of a balanced tree lookup for n users.
func theoreticalComparisons(n int) (linear, tree int) {
	return max(n/2, 1), max(bits.Len(uint(n)), 1)
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
