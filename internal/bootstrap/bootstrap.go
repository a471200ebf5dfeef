package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	backupinadapter "weldtrack/internal/modules/backup/adapter/in"
	backupusecase "weldtrack/internal/modules/backup/usecase"
	cataloginadapter "weldtrack/internal/modules/catalog/adapter/in"
	catalogoutadapter "weldtrack/internal/modules/catalog/adapter/out"
	catalogservice "weldtrack/internal/modules/catalog/service"
	catalogusecase "weldtrack/internal/modules/catalog/usecase"
	notesinadapter "weldtrack/internal/modules/notes/adapter/in"
	notesoutadapter "weldtrack/internal/modules/notes/adapter/out"
	notesservice "weldtrack/internal/modules/notes/service"
	notesusecase "weldtrack/internal/modules/notes/usecase"
	progressinadapter "weldtrack/internal/modules/progress/adapter/in"
	progressoutadapter "weldtrack/internal/modules/progress/adapter/out"
	progressdomain "weldtrack/internal/modules/progress/domain"
	progressservice "weldtrack/internal/modules/progress/service"
	progressusecase "weldtrack/internal/modules/progress/usecase"
	streakinadapter "weldtrack/internal/modules/streak/adapter/in"
	streakoutadapter "weldtrack/internal/modules/streak/adapter/out"
	streakservice "weldtrack/internal/modules/streak/service"
	streakusecase "weldtrack/internal/modules/streak/usecase"
	"weldtrack/internal/platform/clock"
	"weldtrack/internal/platform/config"
	"weldtrack/internal/platform/id"
	"weldtrack/internal/platform/logging"
	"weldtrack/internal/platform/notify"
	uiapp "weldtrack/internal/ui/app"
)

type App struct {
	CatalogCLI  cataloginadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler
	NotesCLI    notesinadapter.CLIHandler
	StreakCLI   streakinadapter.CLIHandler
	BackupCLI   backupinadapter.CLIHandler
	Hub         *notify.Hub
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	log := logging.New("weldtrack")
	hub := notify.NewHub()

	streakStore := streakoutadapter.NewFileStreakStore(cfg.StatePath, log)
	streakUC := streakusecase.NewInteractor(streakservice.NewStreakService(clk, streakStore), hub)

	readingStore := progressoutadapter.NewFileCompletionStore(cfg.StatePath, progressdomain.KindReading, log)
	practiceStore := progressoutadapter.NewFileCompletionStore(cfg.StatePath, progressdomain.KindPractice, log)

	customStore := catalogoutadapter.NewFileCustomReadingStore(cfg.StatePath, log)
	itemProjector, err := catalogoutadapter.NewSQLiteItemProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new item projector: %w", err)
	}
	catalogSvc := catalogservice.NewCatalogService(id.Prefixed{Prefix: "custom-", Gen: id.UUID{}}, customStore)
	catalogUC := catalogusecase.NewInteractor(
		catalogSvc,
		itemProjector,
		catalogoutadapter.NewCompletionCascadeAdapter(readingStore),
		hub,
		log,
	)
	// The item index is rebuildable state; refreshing it at startup keeps
	// the stats read model populated without a manual reindex.
	if err := catalogUC.Reindex(context.Background()); err != nil {
		return nil, fmt.Errorf("reindex catalog: %w", err)
	}

	completionProjector, err := progressoutadapter.NewSQLiteCompletionProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new completion projector: %w", err)
	}
	progressSvc := progressservice.NewProgressService(readingStore, practiceStore)
	progressUC := progressusecase.NewInteractor(progressSvc, catalogUC, streakUC, completionProjector, hub, log)

	noteStore := notesoutadapter.NewFileNoteStore(cfg.StatePath, clk, log)
	if err := noteStore.MigrateLegacy(context.Background()); err != nil {
		return nil, fmt.Errorf("migrate legacy notes: %w", err)
	}
	notesSvc := notesservice.NewNotesService(clk, id.Prefixed{Prefix: "note-", Gen: id.UUID{}}, noteStore, notesoutadapter.NewMarkdownJournalWriter(cfg.JournalPath, log))
	notesUC := notesusecase.NewInteractor(notesSvc, catalogUC, streakUC, hub)

	backupUC := backupusecase.NewInteractor(catalogUC, progressUC, notesUC, streakUC, clk, hub)

	return &App{
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalogUC),
		ProgressCLI: progressinadapter.NewCLIHandler(progressUC),
		NotesCLI:    notesinadapter.NewCLIHandler(notesUC),
		StreakCLI:   streakinadapter.NewCLIHandler(streakUC),
		BackupCLI:   backupinadapter.NewCLIHandler(backupUC),
		Hub:         hub,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.CatalogCLI, app.ProgressCLI, app.NotesCLI, app.StreakCLI, app.Hub)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
