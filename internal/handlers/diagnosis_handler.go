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

// maxUploadSize caps diagnosis image uploads at 10 MB.
const maxUploadSize = 10 << 20

type DiagnosisHandler struct {
	diagnosisService *services.DiagnosisService
	logger           zerolog.Logger
}

func NewDiagnosisHandler(db *sql.DB, classifierURL string, logger zerolog.Logger) *DiagnosisHandler {
	classifier := services.NewClassifierClient(classifierURL, logger)
	return &DiagnosisHandler{
		diagnosisService: services.NewDiagnosisService(db, logger, classifier),
		logger:           logger,
	}
}

func (h *DiagnosisHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Could not parse uploaded image")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "An image file is required")
		return
	}
	defer file.Close()

	result, err := h.diagnosisService.Diagnose(userID, header.Filename, file)
	if err != nil {
		h.logger.Error().Err(err).Int("user_id", userID).Msg("Diagnosis failed")
		respondServiceError(w, err, "Diagnosis not found")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (h *DiagnosisHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req models.DiagnosisReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if err := h.diagnosisService.Report(&req); err != nil {
		respondServiceError(w, err, "Diagnosis not found")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Report submitted"})
}
