package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"crop-exchange/internal/models"
)

// ClassifierClient talks to the external leaf-classification service. It
// is deliberately thin: one image in, one label out, no retries.
type ClassifierClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

type ClassifierResult struct {
	DiseaseName string  `json:"disease_name"`
	Confidence  float64 `json:"confidence_score"`
	Output      string  `json:"output"`
	Error       string  `json:"error"`
}

func NewClassifierClient(baseURL string, logger zerolog.Logger) *ClassifierClient {
	return &ClassifierClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (c *ClassifierClient) Classify(filename string, image io.Reader) (*ClassifierResult, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, image); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/classify", pr)
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Classifier request failed")
		return nil, fmt.Errorf("classifier unreachable: %w", err)
	}
	defer resp.Body.Close()

	var result ClassifierResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != "" {
			return nil, fmt.Errorf("classifier error: %s", result.Error)
		}
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	return &result, nil
}

type DiagnosisService struct {
	db         *sql.DB
	logger     zerolog.Logger
	classifier *ClassifierClient
}

func NewDiagnosisService(db *sql.DB, logger zerolog.Logger, classifier *ClassifierClient) *DiagnosisService {
	return &DiagnosisService{
		db:         db,
		logger:     logger,
		classifier: classifier,
	}
}

// Diagnose runs one classification round-trip and records the outcome so
// the caller can file a report against it later.
func (s *DiagnosisService) Diagnose(userID int, filename string, image io.Reader) (*models.DiagnosisResult, error) {
	classified, err := s.classifier.Classify(filename, image)
	if err != nil {
		return nil, err
	}

	diagnosis := &models.Diagnosis{
		ID:          uuid.NewString(),
		UserID:      userID,
		DiseaseName: classified.DiseaseName,
		Confidence:  classified.Confidence,
		Output:      classified.Output,
	}

	_, err = s.db.Exec(
		"INSERT INTO diagnoses (id, user_id, disease_name, confidence, output) VALUES (?, ?, ?, ?, ?)",
		diagnosis.ID, diagnosis.UserID, diagnosis.DiseaseName, diagnosis.Confidence, diagnosis.Output,
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error storing diagnosis")
		return nil, fmt.Errorf("failed to store diagnosis: %w", err)
	}

	result := &models.DiagnosisResult{
		DiagnosisID: diagnosis.ID,
		DiseaseName: diagnosis.DiseaseName,
		Confidence:  diagnosis.Confidence,
		Output:      diagnosis.Output,
		DiseaseInfo: LookupDisease(diagnosis.DiseaseName),
	}

	s.logger.Info().
		Str("diagnosis_id", diagnosis.ID).
		Int("user_id", userID).
		Str("disease", classified.DiseaseName).
		Float64("confidence", classified.Confidence).
		Msg("Diagnosis completed")

	return result, nil
}

func (s *DiagnosisService) Report(req *models.DiagnosisReportRequest) error {
	if req.DiagnosisID == "" {
		return invalidInput("diagnosisId is required")
	}
	if req.Comment == "" {
		return invalidInput("comment is required")
	}

	var existingID string
	err := s.db.QueryRow("SELECT id FROM diagnoses WHERE id = ?", req.DiagnosisID).Scan(&existingID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str("diagnosis_id", req.DiagnosisID).Msg("Error fetching diagnosis")
		return fmt.Errorf("database error: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO diagnosis_reports (diagnosis_id, comment) VALUES (?, ?)",
		req.DiagnosisID, req.Comment,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("diagnosis_id", req.DiagnosisID).Msg("Error storing diagnosis report")
		return fmt.Errorf("failed to store report: %w", err)
	}

	s.logger.Info().Str("diagnosis_id", req.DiagnosisID).Msg("Diagnosis report submitted")
	return nil
}
