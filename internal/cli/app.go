// Package cli implements the interactive terminal client of the Thesis
// Ledger platform.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"thesisledger/internal/api"
	"thesisledger/internal/config"
	"thesisledger/internal/logging"
	"thesisledger/internal/models"
	"thesisledger/internal/services"
	"thesisledger/internal/session"
)

// App wires the session store, the API client, and the view services behind
// a read–eval–print loop.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	api    api.Client

	sessions     *session.Store
	submissions  *services.SubmissionService
	review       *services.ReviewService
	catalog      *services.CatalogService
	verification *services.VerificationService
	ledger       *services.LedgerService

	reader *bufio.Reader

	// identity mirrors the session store through its subscription; the REPL
	// is single-threaded, so plain fields suffice.
	identity      models.Session
	authenticated bool

	// pending holds a command deferred by the access gate until the user
	// authenticates.
	pending func(ctx context.Context) error
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := logging.NewCLILogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}

	dir := cfg.DataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "thesisledger")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	db, err := session.InitDatabase(ctx, filepath.Join(dir, "session.db"))
	if err != nil {
		return nil, fmt.Errorf("error initializing local database: %w", err)
	}

	store := session.NewStore(session.NewSQLiteRepository(db), log)
	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, store.Token, log)
	store.Bind(client)

	a := &App{
		config:       cfg,
		log:          log,
		db:           db,
		api:          client,
		sessions:     store,
		submissions:  services.NewSubmissionService(client, log),
		review:       services.NewReviewService(client, log),
		catalog:      services.NewCatalogService(client, cfg.PageSize, log),
		verification: services.NewVerificationService(client, cfg.MaxUploadSize, log),
		ledger:       services.NewLedgerService(client, cfg.PageSize, log),
		reader:       bufio.NewReader(os.Stdin),
	}

	store.Subscribe(func(s models.Session, active bool) {
		a.identity = s
		a.authenticated = active
	})
	return a, nil
}

// Run restores any persisted session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if s, ok := a.sessions.Restore(ctx); ok {
		printlnFn(fmt.Sprintf("Welcome back, %s", displayName(s)))
	}
	printlnFn("Thesis Ledger CLI (type 'help' for commands)")

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.authenticated
}

// status renders the prompt suffix, e.g. "(alice@uni.edu admin)".
func (a *App) status() string {
	if !a.authenticated {
		return ""
	}
	s := a.identity.Email
	if a.identity.IsAdmin() {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}

func displayName(s models.Session) string {
	if s.Name != "" {
		return s.Name
	}
	return s.Email
}
