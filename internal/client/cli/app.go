package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/nbassil/campuslink/internal/client/api"
	"github.com/nbassil/campuslink/internal/client/config"
	"github.com/nbassil/campuslink/internal/client/gateway"
	"github.com/nbassil/campuslink/internal/client/notifications"
	"github.com/nbassil/campuslink/internal/client/repositories/credentials"
	"github.com/nbassil/campuslink/internal/client/session"
	"github.com/nbassil/campuslink/internal/logging"
)

// App wires the session manager and the resource clients behind the REPL.
type App struct {
	config   *config.Config
	sessions *session.Manager
	events   *api.EventsClient
	clubs    *api.ClubsClient
	rsvps    *api.UserEventsClient
	board    *api.DashboardClient
	uploads  *api.UploadClient

	db     *sql.DB
	reader *bufio.Reader
	log    logging.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := credentials.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential database: %w", err)
	}

	key, err := credentials.LoadOrCreateKey(cfg.KeyPath)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	store := credentials.NewSecureRepository(credentials.NewSQLiteRepository(db), key)

	gw := gateway.NewHTTPGateway(cfg.ServerURL, cfg.RequestTimeout)
	mgr := session.NewManager(gw, store, log,
		session.WithPushTokenSource(notifications.NewDeviceTokenSource(store)))

	client := api.NewClient(cfg.ServerURL, cfg.RequestTimeout, api.TokenFunc(func() string {
		if cred := mgr.Current().Credential; cred != nil {
			return cred.AccessToken
		}
		return ""
	}))

	return &App{
		config:   cfg,
		sessions: mgr,
		events:   api.NewEventsClient(client),
		clubs:    api.NewClubsClient(client),
		rsvps:    api.NewUserEventsClient(client),
		board:    api.NewDashboardClient(client),
		uploads:  api.NewUploadClient(client),
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		log:      log,
	}, nil
}

// Run restores the persisted session, watches process lifecycle for
// foreground refreshes, and enters the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := a.sessions.Bootstrap(ctx)
	switch s.Status {
	case session.StatusAuthenticated:
		printlnFn("Welcome back,", s.Credential.Email)
	case session.StatusPendingVerification:
		printlnFn("Your account is awaiting email verification; use 'verify'.")
	}

	sig := session.NewResumeSignal()
	defer sig.Close()
	a.sessions.WatchLifecycle(ctx, sig)

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current().Authenticated()
}

func (a *App) status() string {
	s := a.sessions.Current()
	switch s.Status {
	case session.StatusAuthenticated:
		return s.Credential.Email
	case session.StatusPendingVerification:
		return "unverified"
	default:
		return ""
	}
}
