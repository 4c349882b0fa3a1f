package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/dmitrijs2005/mymoney/internal/client/api"
	"github.com/dmitrijs2005/mymoney/internal/client/config"
	"github.com/dmitrijs2005/mymoney/internal/client/localdb"
	"github.com/dmitrijs2005/mymoney/internal/client/services"
	"github.com/dmitrijs2005/mymoney/internal/client/session"
	"github.com/dmitrijs2005/mymoney/internal/logging"
)

// App bundles the services behind the REPL together with the session and
// interactive input state.
type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	session *session.Manager

	auth         services.AuthService
	transactions *services.TransactionService
	budgets      *services.BudgetService
	dashboard    *services.DashboardService

	reader *bufio.Reader
}

// NewApp opens the local database, restores any persisted login, and wires
// the application services against the configured remote store.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, c.LocalDBPath)
	if err != nil {
		logger.Error(ctx, "cannot initialize local database", "path", c.LocalDBPath, "error", err)
		return nil, err
	}

	sess := session.NewManager(session.NewSQLiteRepository(db))
	if err := sess.Restore(ctx); err != nil {
		// A corrupt slot should not brick the client; start logged out.
		logger.Warn(ctx, "cannot restore session, starting logged out", "error", err)
		if err := sess.Clear(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	store := api.NewHTTPStore(c.StoreAddr, c.RequestTimeout)

	return &App{
		config:       c,
		logger:       logger,
		db:           db,
		session:      sess,
		auth:         services.NewAuthService(store, sess),
		transactions: services.NewTransactionService(store),
		budgets:      services.NewBudgetService(store),
		dashboard:    services.NewDashboardService(store),
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.logger.Info(ctx, "client started", "store", a.config.StoreAddr)
	if u, ok := a.session.Current(); ok {
		printlnFn("Welcome back, " + u.Username + "!")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// currentUserID returns the logged-in user's id, or "" when logged out.
func (a *App) currentUserID() string {
	u, ok := a.session.Current()
	if !ok {
		return ""
	}
	return u.ID
}

func (a *App) status() string {
	u, ok := a.session.Current()
	if !ok {
		return ""
	}
	return "(" + u.Username + ")"
}
