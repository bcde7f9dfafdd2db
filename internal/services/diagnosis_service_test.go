package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifierClientClassify(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/classify", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		err := r.ParseMultipartForm(5 << 20)
		require.NoError(t, err)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "leaf.jpg", header.Filename)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"disease_name":     "Tomato___Late_blight",
			"confidence_score": 0.9312,
			"output":           "Plant Disease: Tomato___Late_blight, Confidence Score: 0.9312",
		})
	}))
	defer backend.Close()

	client := NewClassifierClient(backend.URL, zerolog.Nop())

	result, err := client.Classify("leaf.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "Tomato___Late_blight", result.DiseaseName)
	assert.InDelta(t, 0.9312, result.Confidence, 1e-9)
	assert.Contains(t, result.Output, "Tomato___Late_blight")
}

func TestClassifierClientNotALeaf(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"output": "Not a leaf"})
	}))
	defer backend.Close()

	client := NewClassifierClient(backend.URL, zerolog.Nop())

	result, err := client.Classify("wall.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "Not a leaf", result.Output)
	assert.Empty(t, result.DiseaseName)
}

func TestClassifierClientBackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Model not loaded"})
	}))
	defer backend.Close()

	client := NewClassifierClient(backend.URL, zerolog.Nop())

	_, err := client.Classify("leaf.jpg", strings.NewReader("fake image bytes"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Model not loaded")
}

func TestClassifierClientUnreachable(t *testing.T) {
	client := NewClassifierClient("http://127.0.0.1:1", zerolog.Nop())

	_, err := client.Classify("leaf.jpg", strings.NewReader("fake image bytes"))
	assert.Error(t, err)
}

func TestLookupDisease(t *testing.T) {
	t.Run("plantvillage label", func(t *testing.T) {
		info := LookupDisease("Tomato___Late_blight")
		require.NotNil(t, info)
		assert.Equal(t, "Tomato Late Blight", info.Name)
		assert.NotEmpty(t, info.Treatment)
	})

	t.Run("case and separators do not matter", func(t *testing.T) {
		assert.NotNil(t, LookupDisease("potato early blight"))
		assert.NotNil(t, LookupDisease("Potato__Early_Blight"))
		assert.NotNil(t, LookupDisease("APPLE-SCAB"))
	})

	t.Run("unknown label", func(t *testing.T) {
		assert.Nil(t, LookupDisease("Martian___Rust"))
		assert.Nil(t, LookupDisease(""))
	})
}
