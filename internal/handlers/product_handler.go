package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"crop-exchange/internal/middleware"
	"crop-exchange/internal/models"
	"crop-exchange/internal/services"
)

type ProductHandler struct {
	productService *services.ProductService
	logger         zerolog.Logger
}

func NewProductHandler(db *sql.DB, logger zerolog.Logger) *ProductHandler {
	userService := services.NewUserService(db, logger)
	return &ProductHandler{
		productService: services.NewProductService(db, logger, userService),
		logger:         logger,
	}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	product, err := h.productService.Create(userID, &req)
	if err != nil {
		respondServiceError(w, err, "User not found")
		return
	}

	respondWithJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListAll()
	if err != nil {
		respondServiceError(w, err, "Products not found")
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseIDParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "not_found", "Product not found")
		return
	}

	product, err := h.productService.GetByID(productID)
	if err != nil {
		respondServiceError(w, err, "Product not found")
		return
	}

	respondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	productID, ok := parseIDParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "not_found", "Product not found")
		return
	}

	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	product, err := h.productService.Update(productID, userID, &req)
	if err != nil {
		respondServiceError(w, err, "Product not found")
		return
	}

	respondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	productID, ok := parseIDParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "not_found", "Product not found")
		return
	}

	if err := h.productService.Delete(productID, userID); err != nil {
		respondServiceError(w, err, "Product not found")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Product removed"})
}

func (h *ProductHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	products, err := h.productService.ListBySeller(userID)
	if err != nil {
		respondServiceError(w, err, "Products not found")
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}

// parseIDParam reads the {id} route variable. Malformed ids are reported
// by callers as not-found, matching how unresolvable ids behave.
func parseIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
