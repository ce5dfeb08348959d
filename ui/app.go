// Package ui is the playground HTTP surface: a small server for rolling the
// built-in dice, inspecting exact distributions, and reading the library
// docs. It consumes only the public contract of the core packages.
package ui

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"manydice/dice"
	"manydice/domain/randvar"
	"manydice/internal"
	"manydice/internal/config"
)

// App represents the playground application
type App struct {
	router *chi.Mux
	log    *internal.Logger
	cfg    config.ServerConfig

	variables map[string]randvar.Variable[int]
	names     []string
}

// NewApp creates a playground app with the standard set of dice registered.
func NewApp(cfg config.ServerConfig, logger *internal.Logger) (*App, error) {
	app := &App{
		router:    chi.NewRouter(),
		log:       logger,
		cfg:       cfg,
		variables: make(map[string]randvar.Variable[int]),
	}

	for _, sides := range []int{4, 6, 8, 10, 12, 20} {
		die, err := dice.Fair(sides)
		if err != nil {
			return nil, fmt.Errorf("failed to build d%d: %w", sides, err)
		}
		app.register(die)
	}
	for _, n := range []int{2, 3} {
		sum, err := dice.FairSum(n, 6)
		if err != nil {
			return nil, fmt.Errorf("failed to build %dd6: %w", n, err)
		}
		app.register(sum)
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

func (a *App) register(v randvar.Variable[int]) {
	a.variables[v.Name()] = v
	a.names = append(a.names, v.Name())
	sort.Strings(a.names)
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleDocs)

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/dice", a.handleListDice)
		r.Get("/dice/{name}/roll", a.handleRoll)
		r.Get("/dice/{name}/pmf", a.handlePMF)
		r.Get("/dice/{name}/pmf.xlsx", a.handlePMFExport)
		r.Post("/rolls", a.handleRollTogether)
	})
}

// Router returns the configured HTTP handler.
func (a *App) Router() http.Handler {
	return a.router
}

// Serve starts the HTTP server on the configured port.
func (a *App) Serve() error {
	addr := ":" + a.cfg.Port
	a.log.Info("playground listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

func (a *App) lookup(name string) (randvar.Variable[int], bool) {
	v, ok := a.variables[name]
	return v, ok
}
