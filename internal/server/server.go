package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/dvarga/shoplist/internal/handler"
	"github.com/dvarga/shoplist/internal/middleware"
	"github.com/dvarga/shoplist/internal/rates"
	"github.com/dvarga/shoplist/internal/store"
	ws "github.com/dvarga/shoplist/internal/websocket"
)

// Server wires the item store, rate client, handlers, and the WebSocket
// hub. The hub is fed from a store subscription, so every committed
// mutation reaches connected UI clients as a fresh snapshot.
type Server struct {
	db     *sql.DB
	hub    *ws.Hub
	itemH  *handler.ItemHandler
	sub    *store.Subscription
	logger *slog.Logger
}

// New builds a Server over an open database handle. The store instance
// lives here, scoped to the server, and is handed to whatever needs it.
func New(db *sql.DB, ratesClient *rates.Client, baseCurrency string, logger *slog.Logger) (*Server, error) {
	itemStore := store.NewItemStore(db)
	hub := ws.NewHub(logger.With("component", "websocket"))

	sub, err := itemStore.Subscribe()
	if err != nil {
		return nil, err
	}

	// Seed the hub synchronously so clients connecting before the first
	// mutation still receive the current list.
	if items, ok := <-sub.Items(); ok {
		hub.Broadcast(ws.SnapshotMessage(items))
	}
	go func() {
		for items := range sub.Items() {
			hub.Broadcast(ws.SnapshotMessage(items))
		}
	}()

	return &Server{
		db:     db,
		hub:    hub,
		itemH:  handler.NewItemHandler(itemStore, ratesClient, baseCurrency, logger.With("component", "items")),
		sub:    sub,
		logger: logger,
	}, nil
}

// Close detaches the snapshot bridge. The database handle belongs to the
// caller and stays open.
func (s *Server) Close() {
	s.sub.Close()
}

// Router returns the full HTTP handler with request logging applied.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/items", s.itemH.Create)
	mux.HandleFunc("GET /api/items", s.itemH.List)
	mux.HandleFunc("DELETE /api/items", s.itemH.DeleteAll)
	mux.HandleFunc("GET /api/items/{id}", s.itemH.Get)
	mux.HandleFunc("PUT /api/items/{id}", s.itemH.Update)
	mux.HandleFunc("DELETE /api/items/{id}", s.itemH.Delete)
	mux.HandleFunc("POST /api/items/{id}/toggle", s.itemH.ToggleBought)
	mux.HandleFunc("GET /api/items/{id}/detail", s.itemH.Detail)

	mux.HandleFunc("GET /ws", ws.Handle(s.hub, s.logger.With("component", "websocket")))
	mux.HandleFunc("GET /health", s.healthHandler)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(); err != nil {
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
