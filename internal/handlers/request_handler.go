package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"crop-exchange/internal/middleware"
	"crop-exchange/internal/models"
	"crop-exchange/internal/services"
)

type RequestHandler struct {
	requestService *services.RequestService
	logger         zerolog.Logger
}

func NewRequestHandler(db *sql.DB, logger zerolog.Logger) *RequestHandler {
	userService := services.NewUserService(db, logger)
	resourceService := services.NewResourceService(db, logger, userService)
	return &RequestHandler{
		requestService: services.NewRequestService(db, logger, userService, resourceService),
		logger:         logger,
	}
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	var input models.CreateResourceRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	request, err := h.requestService.Create(userID, &input)
	if err != nil {
		respondServiceError(w, err, "Resource not found")
		return
	}

	respondWithJSON(w, http.StatusCreated, request)
}

func (h *RequestHandler) GetReceived(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	requests, err := h.requestService.ListReceived(userID)
	if err != nil {
		respondServiceError(w, err, "Requests not found")
		return
	}

	respondWithJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) GetSent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	requests, err := h.requestService.ListSent(userID)
	if err != nil {
		respondServiceError(w, err, "Requests not found")
		return
	}

	respondWithJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	requestID, ok := parseIDParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "not_found", "Request not found")
		return
	}

	var input models.UpdateRequestStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	request, err := h.requestService.UpdateStatus(requestID, userID, input.Status)
	if err != nil {
		respondServiceError(w, err, "Request not found")
		return
	}

	respondWithJSON(w, http.StatusOK, request)
}
