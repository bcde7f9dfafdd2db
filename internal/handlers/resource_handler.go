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

type ResourceHandler struct {
	resourceService *services.ResourceService
	logger          zerolog.Logger
}

func NewResourceHandler(db *sql.DB, logger zerolog.Logger) *ResourceHandler {
	userService := services.NewUserService(db, logger)
	return &ResourceHandler{
		resourceService: services.NewResourceService(db, logger, userService),
		logger:          logger,
	}
}

func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	var req models.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	resource, err := h.resourceService.Create(userID, &req)
	if err != nil {
		respondServiceError(w, err, "User not found")
		return
	}

	respondWithJSON(w, http.StatusCreated, resource)
}

func (h *ResourceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	resources, err := h.resourceService.ListAll()
	if err != nil {
		respondServiceError(w, err, "Resources not found")
		return
	}

	respondWithJSON(w, http.StatusOK, resources)
}

func (h *ResourceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	resourceID, ok := parseIDParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "not_found", "Resource not found")
		return
	}

	resource, err := h.resourceService.GetByID(resourceID)
	if err != nil {
		respondServiceError(w, err, "Resource not found")
		return
	}

	respondWithJSON(w, http.StatusOK, resource)
}

func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	resourceID, ok := parseIDParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "not_found", "Resource not found")
		return
	}

	var req models.UpdateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	resource, err := h.resourceService.Update(resourceID, userID, &req)
	if err != nil {
		respondServiceError(w, err, "Resource not found")
		return
	}

	respondWithJSON(w, http.StatusOK, resource)
}

func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	resourceID, ok := parseIDParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, "not_found", "Resource not found")
		return
	}

	if err := h.resourceService.Delete(resourceID, userID); err != nil {
		respondServiceError(w, err, "Resource not found")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Resource removed"})
}

func (h *ResourceHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	resources, err := h.resourceService.ListByOwner(userID)
	if err != nil {
		respondServiceError(w, err, "Resources not found")
		return
	}

	respondWithJSON(w, http.StatusOK, resources)
}
