package services

import (
	"strings"

	"crop-exchange/internal/models"
)

// diseaseCatalog maps classifier labels to display metadata. Labels come
// back in the PlantVillage style, e.g. "Tomato___Late_blight".
var diseaseCatalog = map[string]*catalogEntry{
	"tomato late blight": {
		name:        "Tomato Late Blight",
		description: "Caused by Phytophthora infestans. Dark, water-soaked lesions spread rapidly across leaves and stems in cool, wet weather.",
		treatment:   "Remove and destroy infected plants, improve air circulation, and apply a copper-based fungicide at the first sign of infection.",
	},
	"tomato early blight": {
		name:        "Tomato Early Blight",
		description: "Caused by Alternaria solani. Concentric brown rings on older leaves, usually starting near the base of the plant.",
		treatment:   "Prune lower foliage, mulch to prevent soil splash, rotate crops, and treat with chlorothalonil or copper fungicide.",
	},
	"tomato leaf mold": {
		name:        "Tomato Leaf Mold",
		description: "Caused by Passalora fulva. Pale yellow spots on the upper leaf surface with olive-green mold underneath, common in humid greenhouses.",
		treatment:   "Lower humidity, space plants for airflow, remove infected leaves, and use resistant varieties where possible.",
	},
	"potato late blight": {
		name:        "Potato Late Blight",
		description: "Caused by Phytophthora infestans. Irregular dark blotches on leaves and tubers; the disease behind historical potato famines.",
		treatment:   "Destroy infected foliage before harvest, avoid overhead irrigation, and apply protectant fungicide during wet spells.",
	},
	"potato early blight": {
		name:        "Potato Early Blight",
		description: "Caused by Alternaria solani. Target-like leaf spots that weaken the plant and reduce tuber yield.",
		treatment:   "Maintain plant vigor with balanced fertilization, rotate away from solanaceous crops, and apply fungicide if spots spread.",
	},
	"corn common rust": {
		name:        "Corn Common Rust",
		description: "Caused by Puccinia sorghi. Cinnamon-brown pustules on both leaf surfaces, favored by cool, moist conditions.",
		treatment:   "Plant resistant hybrids; fungicide is rarely economical except on sweet corn under heavy pressure.",
	},
	"apple scab": {
		name:        "Apple Scab",
		description: "Caused by Venturia inaequalis. Olive-green to black velvety spots on leaves and fruit.",
		treatment:   "Rake and destroy fallen leaves, prune for airflow, and follow a spring fungicide schedule from green tip onward.",
	},
	"healthy": {
		name:        "Healthy",
		description: "No disease symptoms detected on the leaf.",
		treatment:   "No treatment needed. Keep monitoring the crop regularly.",
	},
}

type catalogEntry struct {
	name        string
	description string
	treatment   string
}

// LookupDisease returns catalog metadata for a classifier label, or nil
// when the label is unknown.
func LookupDisease(label string) *models.DiseaseInfo {
	key := normalizeLabel(label)
	entry, ok := diseaseCatalog[key]
	if !ok {
		return nil
	}
	return &models.DiseaseInfo{
		Name:        entry.name,
		Description: entry.description,
		Treatment:   entry.treatment,
	}
}

func normalizeLabel(label string) string {
	s := strings.ToLower(label)
	s = strings.ReplaceAll(s, "___", " ")
	s = strings.ReplaceAll(s, "__", " ")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}
