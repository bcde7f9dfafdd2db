package models

import "time"

// Diagnosis is one classification round-trip against the external leaf
// classifier. The ID is an opaque token handed back to the client so a
// follow-up report can reference it.
type Diagnosis struct {
	ID          string    `json:"diagnosisId"`
	UserID      int       `json:"userId"`
	DiseaseName string    `json:"diseaseName"`
	Confidence  float64   `json:"confidence"`
	Output      string    `json:"output"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DiagnosisResult struct {
	DiagnosisID string       `json:"diagnosisId,omitempty"`
	DiseaseName string       `json:"disease_name,omitempty"`
	Confidence  float64      `json:"confidence_score,omitempty"`
	Output      string       `json:"output"`
	DiseaseInfo *DiseaseInfo `json:"disease_info,omitempty"`
}

// DiseaseInfo is static catalog metadata keyed by classifier label.
type DiseaseInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Treatment   string `json:"treatment"`
}

type DiagnosisReportRequest struct {
	DiagnosisID string `json:"diagnosisId"`
	Comment     string `json:"comment"`
}
