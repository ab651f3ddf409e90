package handler

import (
	"net/http"

	"shopfront/internal/model"
	"shopfront/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles /api/orders requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Handle dispatches on the HTTP method.
func (h *OrderHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		writeMethodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, err, "Invalid order data", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var in model.OrderInput
	if err := decodeJSON(r.Body, &in); err != nil {
		respondError(w, err, "Invalid order data", h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), &in)
	if err != nil {
		respondError(w, err, "Invalid order data", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}
