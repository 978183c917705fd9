package core

import (
	"io"
	"log/slog"

	"github.com/inovacc/stockfolio/internal/store"
)

// App wires the store, the controllers and a rendering surface together.
type App struct {
	store     *store.Store
	surface   Surface
	users     *UserListRenderer
	portfolio *PortfolioRenderer
	selection *SelectionController
	editor    *EditController
	onResult  func(action Action, applied bool)
	logger    *slog.Logger
}

// New creates an App over a store and a surface. Nothing is rendered until Start.
func New(st *store.Store, surface Surface) *App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	a := &App{
		store:   st,
		surface: surface,
		logger:  logger,
	}

	a.selection = &SelectionController{
		store:   st,
		form:    surface,
		detail:  surface,
		logoDir: DefaultLogoDir,
		logoExt: DefaultLogoExt,
		logger:  logger,
	}
	a.portfolio = &PortfolioRenderer{
		surface: surface,
		onView:  a.selection.ViewStock,
		logger:  logger,
	}
	a.selection.portfolio = a.portfolio
	a.users = &UserListRenderer{
		surface:  surface,
		onSelect: a.selection.SelectUser,
		logger:   logger,
	}
	a.editor = &EditController{
		store:     st,
		form:      surface,
		users:     a.users,
		selection: a.selection,
		logger:    logger,
	}

	return a
}

// WithLogger sets the logger for the app and its controllers
func (a *App) WithLogger(logger *slog.Logger) *App {
	a.logger = logger
	a.users.logger = logger
	a.portfolio.logger = logger
	a.selection.logger = logger
	a.editor.logger = logger

	return a
}

// WithLogo sets the directory and extension used for stock logo references
func (a *App) WithLogo(dir, ext string) *App {
	a.selection.logoDir = dir
	a.selection.logoExt = ext

	return a
}

// OnResult sets a callback invoked after every save or delete attempt
func (a *App) OnResult(fn func(action Action, applied bool)) *App {
	a.onResult = fn
	return a
}

// Start renders the initial user list and binds the save and delete actions.
func (a *App) Start() {
	a.logger.Info("starting", "users", a.store.Len(), "stocks", len(a.store.Stocks()))

	a.users.Render(a.store.Users())
	a.surface.BindAction(ActionSave, func() { a.report(ActionSave, a.editor.Save()) })
	a.surface.BindAction(ActionDelete, func() { a.report(ActionDelete, a.editor.Delete()) })
}

// Selection returns the selection controller.
func (a *App) Selection() *SelectionController {
	return a.selection
}

// Editor returns the edit controller.
func (a *App) Editor() *EditController {
	return a.editor
}

// Store returns the data store the app operates on.
func (a *App) Store() *store.Store {
	return a.store
}

func (a *App) report(action Action, applied bool) {
	if a.onResult != nil {
		a.onResult(action, applied)
	}
}
