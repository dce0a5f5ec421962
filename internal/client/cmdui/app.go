package cmdui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/api"
	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/config"
	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/repositories/metadata"
	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/session"
	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/storage"
	"github.com/mahendrakumawat2208/medium-blog-platform/internal/logging"

	_ "modernc.org/sqlite"
)

// App glues the gateway, the session manager, and the interactive screens
// together.
type App struct {
	config  *config.Config
	api     api.Client
	session *session.Manager
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local state database and wires the full client stack.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local state: %w", err)
	}

	tokens := session.NewTokenStore(metadata.NewSQLiteRepository(db))
	apiClient := api.New(cfg.BaseURL, tokens, api.WithTimeout(cfg.HTTPTimeout))

	a := &App{
		config: cfg,
		api:    apiClient,
		log:    logging.NewSlogLogger(slog.Default()),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.session = session.NewManager(apiClient, tokens,
		session.WithNavigator(a.navigate),
		session.WithLogger(a.log),
	)
	return a, nil
}

// Run resolves the stored session and enters the REPL. It blocks until the
// user exits or the scanner hits EOF.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Resolve(ctx); err != nil {
		return fmt.Errorf("resolving session: %w", err)
	}

	fmt.Fprintln(a.out, "Medium CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	return nil
}

// status renders the prompt suffix: the signed-in user's name, if any.
func (a *App) status() string {
	if user := a.session.User(); user != nil {
		return fmt.Sprintf("(%s)", user.Name())
	}
	return ""
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

// navigate is the session manager's navigation hook. The landing view is
// the feed.
func (a *App) navigate(route string) {
	if route != session.RouteLanding {
		return
	}
	_ = a.Feed(context.Background())
}
