package bootstrap

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	gameinadapter "pickpack/internal/modules/game/adapter/in"
	gameoutadapter "pickpack/internal/modules/game/adapter/out"
	gameservice "pickpack/internal/modules/game/service"
	gameusecase "pickpack/internal/modules/game/usecase"
	"pickpack/internal/platform/clock"
	"pickpack/internal/platform/config"
	"pickpack/internal/platform/id"
	"pickpack/internal/platform/logging"
	uiapp "pickpack/internal/ui/app"
)

type App struct {
	Config  config.Config
	Logger  hclog.Logger
	GameCLI gameinadapter.CLIHandler
	GameTUI gameinadapter.TUIHandler

	closer io.Closer
}

func New(cfg config.Config) (*App, error) {
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}

	gameSvc := gameservice.NewGameService(
		clock.SystemClock{},
		id.UUID{},
		gameoutadapter.NewSeededRandom(cfg.Seed),
	)
	gameUC := gameusecase.NewInteractor(gameSvc, gameoutadapter.NewHCLogEventSink(logger))

	return &App{
		Config:  cfg,
		Logger:  logger,
		GameCLI: gameinadapter.NewCLIHandler(gameUC),
		GameTUI: gameinadapter.NewTUIHandler(gameUC),
		closer:  closer,
	}, nil
}

// Close releases the log file.
func (a *App) Close() error {
	return a.closer.Close()
}

func RunTUI(app *App) error {
	opts := []tea.ProgramOption{}
	if app.Config.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if app.Config.UI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	app.Logger.Debug("starting tui", "seed", app.Config.Seed, "alt_screen", app.Config.UI.AltScreen, "mouse", app.Config.UI.Mouse)
	model := uiapp.NewModel(app.GameTUI)
	program := tea.NewProgram(model, opts...)
	_, err := program.Run()
	if err != nil {
		app.Logger.Error("tui exited", "error", err)
	}
	return err
}
