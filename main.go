package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/tokenpoll/cliparse"
	"github.com/danielhkuo/tokenpoll/db"
	"github.com/danielhkuo/tokenpoll/events"
	"github.com/danielhkuo/tokenpoll/identity"
	"github.com/danielhkuo/tokenpoll/ledger"
	"github.com/danielhkuo/tokenpoll/router"
	"github.com/danielhkuo/tokenpoll/token"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect the event log database
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (event table)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Event log schema ready", "driver", cfg.DriverName())

	// The ledger burns credentials under its own spender identity; voters
	// approve this address before voting. Ledger state is in-memory, so a
	// fresh identity per process is consistent.
	spender, err := identity.Generate()
	if err != nil {
		slog.Error("failed to generate ledger spender address", "error", err)
		os.Exit(1)
	}

	store := token.NewStore()
	led := ledger.New(store.Bind(spender), events.NewStore(dbConn))
	slog.Info("Ledger ready", "spender", spender)

	// Pre-set authority from config, if given; otherwise POST /authority
	if !cfg.Authority.IsZero() {
		if err := led.Bootstrap(cfg.Authority); err != nil {
			slog.Error("authority bootstrap failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Authority bootstrapped from config", "authority", cfg.Authority)
	}

	// Create router
	mux := router.NewRouter(led, store, spender, events.NewStore(dbConn))

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
