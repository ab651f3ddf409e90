package handler

import (
	"net/http"
	"strconv"

	"shopfront/internal/model"
	"shopfront/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles /api/products requests. Individual products
// are addressed with the ?id= query parameter.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Handle dispatches on the HTTP method.
func (h *ProductHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPost:
		h.create(w, r)
	case http.MethodPut:
		h.update(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		writeMethodNotAllowed(w, r, http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete)
	}
}

// get serves the full catalogue, or a single product when ?id= is
// present.
func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		products, err := h.service.List(r.Context())
		if err != nil {
			respondError(w, err, "Invalid data", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, products)
		return
	}

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err, "Invalid data", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var in model.ProductInput
	if err := decodeJSON(r.Body, &in); err != nil {
		respondError(w, err, "Invalid data", h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), &in)
	if err != nil {
		respondError(w, err, "Invalid data", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		writeMessage(w, http.StatusBadRequest, "Product ID is required")
		return
	}
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var in model.ProductUpdate
	if err := decodeJSON(r.Body, &in); err != nil {
		respondError(w, err, "Invalid data", h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, &in)
	if err != nil {
		respondError(w, err, "Invalid data", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		writeMessage(w, http.StatusBadRequest, "Product ID is required")
		return
	}
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, err, "Invalid data", h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Product deleted successfully")
}
