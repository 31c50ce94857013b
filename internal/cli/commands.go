package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, l := range lessons() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", l.name, l.title, l.summary)
			}

			return tw.Flush()
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <lesson>... | all",
		Short: "Run lesson demonstrations",
		Long:  `Run prints the demonstrations of the named lessons in order. "all" runs every lesson.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			selected, err := selectLessons(args)
			if err != nil {
				return err
			}
			e, err := newEnv(configFromContext(ctx))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, l := range selected {
				if err := ctx.Err(); err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(w)
				}
				logger.Debug("running lesson", "name", l.name)
				prog := newProgress(logger)
				printTitle(w, l.title)
				if err := l.run(ctx, w, e); err != nil {
					return fmt.Errorf("run lesson %s: %w", l.name, err)
				}
				prog.done("Ran lesson " + l.name)
			}

			return nil
		},
	}
}

// selectLessons resolves names against the registry, expanding "all".
func selectLessons(names []string) ([]lesson, error) {
	var out []lesson
	for _, name := range names {
		if name == "all" {
			out = append(out, lessons()...)
			continue
		}
		l, ok := findLesson(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q (see lvldsa list)", ErrUnknownLesson, name)
		}
		out = append(out, l)
	}

	return out, nil
}
