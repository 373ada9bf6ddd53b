package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dvarga/shoplist/internal/model"
	"github.com/dvarga/shoplist/internal/rates"
	"github.com/dvarga/shoplist/internal/store"
)

// ItemHandler serves the JSON API over the item store and the rate
// client. All business validation lives here; the store only checks
// structural integrity.
type ItemHandler struct {
	store        *store.ItemStore
	rates        *rates.Client
	baseCurrency string
	logger       *slog.Logger
}

func NewItemHandler(s *store.ItemStore, rc *rates.Client, baseCurrency string, logger *slog.Logger) *ItemHandler {
	if baseCurrency == "" {
		baseCurrency = "HUF"
	}
	return &ItemHandler{store: s, rates: rc, baseCurrency: baseCurrency, logger: logger}
}

type itemRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	EstimatedPriceHUF *int64 `json:"estimated_price_huf"`
	Category          string `json:"category"`
	IsBought          bool   `json:"is_bought"`
}

// validate normalizes the request in place and returns a user-facing
// message when the input is structurally invalid.
func (req *itemRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)

	if req.Name == "" {
		return "name is required"
	}
	if req.Description == "" {
		return "description is required"
	}
	if req.EstimatedPriceHUF == nil {
		return "estimated_price_huf is required"
	}
	if *req.EstimatedPriceHUF < 0 {
		return "estimated_price_huf must not be negative"
	}
	if !model.ValidCategory(req.Category) {
		return "category must be one of " + strings.Join(model.Categories, ", ")
	}
	return ""
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	item, err := h.store.Insert(req.Name, req.Description, *req.EstimatedPriceHUF, req.Category, req.IsBought)
	if err != nil {
		h.logger.Error("create item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create item"})
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var (
		items []model.ShoppingItem
		err   error
	)
	if category == "" {
		items, err = h.store.List(r.Context())
	} else {
		items, err = h.store.ListByCategory(r.Context(), category)
	}
	if err != nil {
		h.logger.Error("list items", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list items"})
		return
	}

	if items == nil {
		items = []model.ShoppingItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	item, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("get item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get item"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	item, err := h.store.Update(id, req.Name, req.Description, *req.EstimatedPriceHUF, req.Category, req.IsBought)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}
	if err != nil {
		h.logger.Error("update item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update item"})
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete removes one item. Deleting an id that no longer exists still
// returns 204: the delete-by-id contract is idempotent.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.store.DeleteByID(id); err != nil {
		h.logger.Error("delete item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete item"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteAll(); err != nil {
		h.logger.Error("delete all items", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete items"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) ToggleBought(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	item, err := h.store.ToggleBought(id)
	if err != nil {
		h.logger.Error("toggle bought", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to toggle item"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
