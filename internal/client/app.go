package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blushrz/salon-admin/internal/adapter"
	"github.com/blushrz/salon-admin/internal/auth"
	"github.com/blushrz/salon-admin/internal/config"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/realtime"
	"github.com/blushrz/salon-admin/internal/token"
	"github.com/blushrz/salon-admin/models"
)

var errUsage = errors.New(`usage: admin <command>

commands:
  login <email> <password>  authenticate and store the token pair
  logout                    end the session and clear stored tokens
  me                        print the authenticated admin
  salons                    list salons
  bookings <YYYY-MM-DD>     list bookings for a date
  watch [salon-id]          stream real-time events until interrupted`)

// App bundles the client-side components behind the command dispatcher.
type App struct {
	session  *auth.Session
	api      adapter.AdminAPI
	realtime *realtime.Client

	logger *logger.Logger
}

// NewApp builds the full client stack from configuration: dual-medium token
// store, HTTP adapter with session-expiry hook, session manager, and the
// real-time client.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	cookie, err := token.NewCookieMedium(cfg.Tokens.CookiePath)
	if err != nil {
		return nil, fmt.Errorf("create cookie medium: %w", err)
	}
	durable, err := token.NewSQLiteMedium(cfg.Tokens.DBPath)
	if err != nil {
		return nil, fmt.Errorf("create sqlite medium: %w", err)
	}
	tokens := token.NewStore(cookie, durable, log)

	// the expiry hook fires from inside the adapter after a failed refresh;
	// session is assigned right below, before any request can run
	var session *auth.Session
	api, err := adapter.NewClient(cfg.Adapter, tokens, log, adapter.WithSessionExpiredHook(func() {
		if session != nil {
			session.Expire()
		}
	}))
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	session = auth.NewSession(api, log)

	rt, err := realtime.NewClient(cfg.Adapter, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("create realtime client: %w", err)
	}

	return &App{session: session, api: api, realtime: rt, logger: log}, nil
}

// Run dispatches one command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return errUsage
		}
		return a.login(ctx, args[1], args[2])
	case "logout":
		return a.session.Logout(ctx)
	case "me":
		return a.me(ctx)
	case "salons":
		return a.salons(ctx)
	case "bookings":
		if len(args) != 2 {
			return errUsage
		}
		return a.bookings(ctx, args[1])
	case "watch":
		var salonID string
		if len(args) > 1 {
			salonID = args[1]
		}
		return a.watch(ctx, salonID)
	default:
		return errUsage
	}
}

func (a *App) login(ctx context.Context, email, password string) error {
	admin, err := a.session.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("logged in as %s (%s)\n", admin.Name, admin.Role)
	return nil
}

func (a *App) me(ctx context.Context) error {
	admin, err := a.session.CurrentUser(ctx)
	if err != nil {
		return err
	}
	return printJSON(admin)
}

func (a *App) salons(ctx context.Context) error {
	salons, err := a.api.ListSalons(ctx)
	if err != nil {
		return err
	}
	return printJSON(salons)
}

func (a *App) bookings(ctx context.Context, date string) error {
	day, err := parseDay(date)
	if err != nil {
		return err
	}

	bookings, err := a.api.BookingsByDate(ctx, day)
	if err != nil {
		return err
	}
	return printJSON(bookings)
}

// watch connects to the push endpoint and prints every event until the
// process is interrupted. With a salon ID it narrows the stream to that
// salon's room.
func (a *App) watch(ctx context.Context, salonID string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := a.realtime.Connect(ctx); err != nil {
		return err
	}
	defer a.realtime.Disconnect()

	if salonID != "" {
		a.realtime.LeaveAdminRoom()
		a.realtime.JoinSalonRoom(salonID)
	}

	for _, event := range models.AllEvents() {
		unsubscribe := a.realtime.On(event, func(ev models.Event) {
			fmt.Printf("%s  %s  salon=%s\n", ev.Timestamp.Format("15:04:05"), ev.Type, ev.SalonID)
		})
		defer unsubscribe()
	}

	a.logger.Info().Msg("watching events, press Ctrl+C to stop")
	<-ctx.Done()

	return nil
}

func parseDay(date string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	return day, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}
