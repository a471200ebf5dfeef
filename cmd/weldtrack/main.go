package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"weldtrack/internal/bootstrap"
	"weldtrack/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "weldtrack",
		Short:         "Personal welding study tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", config.DefaultDataPath(), "data directory")

	root.AddCommand(newTUICmd(&dataPath))
	root.AddCommand(newListCmd(&dataPath))
	root.AddCommand(newAddCmd(&dataPath))
	root.AddCommand(newRemoveCmd(&dataPath))
	root.AddCommand(newClearCustomCmd(&dataPath))
	root.AddCommand(newDoneCmd(&dataPath, true))
	root.AddCommand(newDoneCmd(&dataPath, false))
	root.AddCommand(newResetReadingsCmd(&dataPath))
	root.AddCommand(newNoteCmd(&dataPath))
	root.AddCommand(newStatsCmd(&dataPath))
	root.AddCommand(newStreakCmd(&dataPath))
	root.AddCommand(newExportCmd(&dataPath))
	root.AddCommand(newImportCmd(&dataPath))
	root.AddCommand(newReindexCmd(&dataPath))
	return root
}

func loadApp(dataPath string) (*bootstrap.App, error) {
	cfg, err := config.New(dataPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the weldtrack terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newListCmd(dataPath *string) *cobra.Command {
	var filter string
	list := &cobra.Command{
		Use:   "list [readings|practice]",
		Short: "List checklist items with completion marks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			which := "readings"
			if len(args) == 1 {
				which = args[0]
			}
			ctx := context.Background()
			switch which {
			case "readings":
				items, err := app.CatalogCLI.ListReadingsFiltered(ctx, filter)
				if err != nil {
					return err
				}
				done, err := app.ProgressCLI.Completion(ctx, "reading")
				if err != nil {
					return err
				}
				for _, item := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\t%s\n", mark(done[item.ID]), item.ID, item.Title, item.Link)
				}
			case "practice":
				items, err := app.CatalogCLI.ListPractice(ctx)
				if err != nil {
					return err
				}
				done, err := app.ProgressCLI.Completion(ctx, "practice")
				if err != nil {
					return err
				}
				for _, item := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\t%s\n", mark(done[item.ID]), item.ID, item.Title, item.Focus)
				}
			default:
				return fmt.Errorf("unknown list %q, want readings or practice", which)
			}
			return nil
		},
	}
	list.Flags().StringVar(&filter, "filter", "all", "reading filter: all|custom|a category or tag")
	return list
}

func mark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func newAddCmd(dataPath *string) *cobra.Command {
	var title, link, description, category string
	add := &cobra.Command{
		Use:   "add --title <title> --link <url>",
		Short: "Add a custom reading",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.AddCustomReading(context.Background(), title, link, description, category)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) %s\n", out.Title, out.ID, out.Link)
			return nil
		},
	}
	add.Flags().StringVar(&title, "title", "", "reading title")
	add.Flags().StringVar(&link, "link", "", "reading link")
	add.Flags().StringVar(&description, "description", "", "short description (optional)")
	add.Flags().StringVar(&category, "category", "", "category (optional)")
	return add
}

func newRemoveCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a custom reading and its completion entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.CatalogCLI.RemoveCustomReading(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
}

func newClearCustomCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-custom",
		Short: "Remove every custom reading",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.CatalogCLI.ClearCustomReadings(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "custom readings cleared")
			return nil
		},
	}
}

func newDoneCmd(dataPath *string, done bool) *cobra.Command {
	use, short := "done", "Mark a checklist item complete"
	if !done {
		use, short = "undone", "Mark a checklist item incomplete"
	}
	return &cobra.Command{
		Use:   use + " <reading|practice> <id>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.SetDone(context.Background(), args[0], args[1], done); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", args[0], args[1], map[bool]string{true: "done", false: "not done"}[done])
			return nil
		},
	}
}

func newResetReadingsCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-readings",
		Short: "Clear all reading completion state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.ResetReadings(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reading progress reset")
			return nil
		},
	}
}

func newNoteCmd(dataPath *string) *cobra.Command {
	note := &cobra.Command{Use: "note", Short: "Reflection notes"}

	var source, relatedID string
	var tags []string
	add := &cobra.Command{
		Use:   "add <body>",
		Short: "Record a reflection note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.NotesCLI.AddNote(context.Background(), args[0], source, relatedID, tags)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "noted %s at %s\n", out.ID, out.CreatedAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
	add.Flags().StringVar(&source, "source", "general", "note source: general|reading|practice")
	add.Flags().StringVar(&relatedID, "related", "", "related item id (optional)")
	add.Flags().StringSliceVar(&tags, "tags", nil, "extra tags")

	note.AddCommand(add)
	note.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			notes, err := app.NotesCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notes yet")
				return nil
			}
			for _, n := range notes {
				related := ""
				if n.RelatedTitle != "" {
					related = " re: " + n.RelatedTitle
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s [%s]%s\n\t%s\n", n.ID, n.CreatedAt.Format("2006-01-02 15:04"), n.Source, related, strings.ReplaceAll(n.Body, "\n", "\n\t"))
			}
			return nil
		},
	})
	note.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Delete one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.NotesCLI.RemoveNote(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	})
	note.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.NotesCLI.ClearNotes(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "notes cleared")
			return nil
		},
	})
	return note
}

func newStatsCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completion percentages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			stats, err := app.ProgressCLI.Stats(ctx)
			if err != nil {
				return err
			}
			for _, s := range stats {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d/%d\t%.0f%%\n", s.Kind, s.Done, s.Total, s.Percent*100)
			}
			overall, err := app.ProgressCLI.OverallPercent(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "overall\t\t%.0f%%\n", overall*100)
			return nil
		},
	}
}

func newStreakCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the daily study streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			streak, err := app.StreakCLI.Current(context.Background())
			if err != nil {
				return err
			}
			if streak.Count == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no streak yet")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d day streak, last active %s (%s)\n", streak.Count, streak.Date, strings.Join(streak.Types, ", "))
			return nil
		},
	}
}

func newExportCmd(dataPath *string) *cobra.Command {
	var outPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Export all tracker state as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.BackupCLI.Export(context.Background())
			if err != nil {
				return err
			}
			if outPath == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out.Payload))
				return nil
			}
			if err := os.WriteFile(outPath, out.Payload, 0o644); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", outPath)
			return nil
		},
	}
	export.Flags().StringVar(&outPath, "out", "", "write to file instead of stdout")
	return export
}

func newImportCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all tracker state from an exported backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.BackupCLI.Import(context.Background(), payload); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "backup imported")
			return nil
		},
	}
}

func newReindexCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite item index from state files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.CatalogCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}
