package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvarga/shoplist/internal/database"
	"github.com/dvarga/shoplist/internal/logging"
	"github.com/dvarga/shoplist/internal/rates"
	"github.com/dvarga/shoplist/internal/server"
)

func main() {
	logger := logging.Setup(os.Getenv("SHOPLIST_LOG_LEVEL"))

	port := os.Getenv("SHOPLIST_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("SHOPLIST_DB_PATH")
	if dbPath == "" {
		dbPath = "shoplist.db"
	}

	db, err := database.Open(dbPath)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ratesClient := rates.NewClient(os.Getenv("SHOPLIST_RATES_URL"))

	srv, err := server.New(db, ratesClient, os.Getenv("SHOPLIST_BASE_CURRENCY"), logger)
	if err != nil {
		logger.Error("start server", "error", err)
		os.Exit(1)
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("shoplist running", "addr", "http://localhost:"+port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
