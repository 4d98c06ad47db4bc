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

	"github.com/sahithyareddy1/facevote/cliparse"
	"github.com/sahithyareddy1/facevote/db"
	"github.com/sahithyareddy1/facevote/face"
	"github.com/sahithyareddy1/facevote/middleware"
	"github.com/sahithyareddy1/facevote/party"
	"github.com/sahithyareddy1/facevote/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL (one pool serves both the registry and the ballot box)
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
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

	// Create schema (registry + ballotbox)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Load the party directory
	parties := party.Default()
	if cfg.PartiesFile != "" {
		parties, err = party.LoadFile(cfg.PartiesFile)
		if err != nil {
			slog.Error("party directory load failed", "error", err, "path", cfg.PartiesFile)
			os.Exit(1)
		}
	}
	slog.Info("Party directory loaded", "parties", len(parties.All()))

	// Embedding oracle client
	extractor := face.NewHTTPExtractor(cfg.EmbedderURL)

	// Create router
	mux := router.NewRouter(dbConn, cfg, parties, extractor)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
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
