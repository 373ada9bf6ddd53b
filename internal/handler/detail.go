package handler

import (
	"net/http"
	"sync"

	"github.com/dvarga/shoplist/internal/model"
	"github.com/dvarga/shoplist/internal/rates"
)

// targetCurrencies is the fixed set the detail view converts into.
var targetCurrencies = []string{"USD", "EUR", "GBP"}

type itemDetailResponse struct {
	Item         *model.ShoppingItem `json:"item"`
	BaseCurrency string              `json:"base_currency"`
	Converted    map[string]string   `json:"converted,omitempty"`
	RatesError   string              `json:"rates_error,omitempty"`
}

// Detail serves the item detail view: the item itself plus its price
// converted into the target currencies. The store read and the rate
// lookup run concurrently with no ordering between them; the response is
// assembled only once both are done. A failed lookup degrades to the
// item fields plus an error string, never a failed request. Navigating
// away cancels both in-flight tasks through the request context.
func (h *ItemHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var (
		item     *model.ShoppingItem
		itemErr  error
		snapshot map[string]float64
		ratesErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		item, itemErr = h.store.GetByID(r.Context(), id)
	}()
	go func() {
		defer wg.Done()
		snapshot, ratesErr = h.rates.FetchRates(r.Context(), h.baseCurrency, targetCurrencies)
	}()
	wg.Wait()

	if itemErr != nil {
		h.logger.Error("get item for detail", "error", itemErr)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get item"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	resp := itemDetailResponse{
		Item:         item,
		BaseCurrency: h.baseCurrency,
	}

	if ratesErr != nil {
		h.logger.Warn("fetch rates", "error", ratesErr)
		resp.RatesError = ratesErr.Error()
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp.Converted = make(map[string]string, len(targetCurrencies))
	for _, code := range targetCurrencies {
		factor := rates.Factor(snapshot, code)
		resp.Converted[code] = rates.FormatAmount(rates.Convert(item.EstimatedPriceHUF, factor))
	}

	writeJSON(w, http.StatusOK, resp)
}
