package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Conceptual-Machines/scales-api/internal/catalog"
	"github.com/Conceptual-Machines/scales-api/internal/models"
	"github.com/Conceptual-Machines/scales-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupScaleTestRouter creates a minimal test router with the scale endpoints
func setupScaleTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	h := NewScaleHandler(services.NewScaleService(cat, nil, 4))
	router.GET("/api/v1/scales", h.List)
	router.GET("/api/v1/scales/:root/:type", h.Get)
	router.POST("/api/v1/scales", h.Generate)
	router.POST("/api/v1/scales/custom", h.GenerateCustom)
	router.POST("/api/v1/scales/parse", h.ParseDisplay)
	router.GET("/health", HealthCheck)

	metricsHandler := NewMetricsHandler("test")
	router.GET("/api/metrics", metricsHandler.GetMetrics)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestScaleHandler_Get(t *testing.T) {
	router := setupScaleTestRouter(t)

	tests := []struct {
		name            string
		path            string
		expectedDisplay string
		expectedFirst   string
	}{
		{"C major", "/api/v1/scales/C/major", "C major is: C, D, E, F, G, A, B", "C4"},
		{"A natural minor", "/api/v1/scales/A/naturalMinor", "A natural minor is: A, B, C, D, E, F, G", "A4"},
		{"D dorian lowercase", "/api/v1/scales/d/dorian", "D dorian is: D, E, F, G, A, B, C", "D4"},
		{"sharp root escaped", "/api/v1/scales/F%23/lydian", "F# lydian is: F#, G#, A#, C, C#, D#, F", "F#4"},
		{"octave query", "/api/v1/scales/Bb/major?octave=2", "Bb major is: Bb, C, D, Eb, F, G, A", "Bb2"},
		{"start query", "/api/v1/scales/Bb/major?start=bb3", "Bb major is: Bb, C, D, Eb, F, G, A", "Bb3"},
		{"direction any case", "/api/v1/scales/C/major?direction=Down", "C major is: C, D, E, F, G, A, B", "C4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			resp := decode[models.ScaleResponse](t, w)
			assert.Equal(t, tt.expectedDisplay, resp.Display)
			require.NotEmpty(t, resp.Pitches)
			assert.Equal(t, tt.expectedFirst, resp.Pitches[0].Scientific)
			assert.Len(t, resp.Notes, len(resp.Steps))
		})
	}
}

func TestScaleHandler_GetErrors(t *testing.T) {
	router := setupScaleTestRouter(t)

	tests := []struct {
		name         string
		path         string
		expectedKind string
	}{
		{"unknown pitch", "/api/v1/scales/H/major", errorKindUnknownPitch},
		{"unknown type", "/api/v1/scales/C/bebop", errorKindUnknownScaleType},
		{"bad octave", "/api/v1/scales/C/major?octave=high", errorKindInvalidRequest},
		{"octave out of range", "/api/v1/scales/C/major?octave=11", errorKindOctaveOutOfRange},
		{"bad direction", "/api/v1/scales/C/major?direction=sideways", errorKindInvalidDirection},
		{"start without octave", "/api/v1/scales/C/major?start=C", errorKindInvalidRequest},
		{"start on another note", "/api/v1/scales/C/major?start=D4", errorKindInvalidRequest},
		{"start out of range", "/api/v1/scales/C/major?start=C10", errorKindOctaveOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodGet, tt.path, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			resp := decode[models.ErrorResponse](t, w)
			assert.Equal(t, tt.expectedKind, resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestScaleHandler_Generate(t *testing.T) {
	router := setupScaleTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/scales", models.ScaleRequest{
		Root:      "E",
		Type:      "phrygian",
		Direction: "down",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[models.ScaleResponse](t, w)
	assert.Equal(t, "E phrygian is: E, F, G, A, B, C, D", resp.Display)
	assert.Equal(t, "mode", resp.Family)
	require.Len(t, resp.Events, 7)
	assert.Greater(t, resp.Events[0].MidiNoteNumber, resp.Events[6].MidiNoteNumber)
}

func TestScaleHandler_GenerateInvalidBody(t *testing.T) {
	router := setupScaleTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/scales", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errorKindInvalidRequest, decode[models.ErrorResponse](t, w).Error)
}

func TestScaleHandler_GenerateCustom(t *testing.T) {
	router := setupScaleTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/scales/custom", models.CustomScaleRequest{
		Root:  "A",
		Name:  "minor pentatonic",
		Steps: []int{3, 2, 2, 3, 2},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "A minor pentatonic is: A, C, D, E, G", decode[models.ScaleResponse](t, w).Display)

	w = doRequest(t, router, http.MethodPost, "/api/v1/scales/custom", models.CustomScaleRequest{
		Root:  "A",
		Steps: []int{3, 0, 9},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errorKindInvalidPattern, decode[models.ErrorResponse](t, w).Error)

	// steps whose int64 sum wraps around to 12
	w = doRequest(t, router, http.MethodPost, "/api/v1/scales/custom",
		`{"root":"C","steps":[4611686018427387912,4611686018427387912,4611686018427387912,4611686018427387892]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errorKindInvalidPattern, decode[models.ErrorResponse](t, w).Error)
}

func TestScaleHandler_ParseDisplay(t *testing.T) {
	router := setupScaleTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/scales/parse", models.ParseDisplayRequest{
		Display: "C major is: C, D, E, F, G, A, B",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.ParseDisplayResponse](t, w)
	assert.Equal(t, "C major", resp.Header)
	assert.Len(t, resp.Notes, 7)

	w = doRequest(t, router, http.MethodPost, "/api/v1/scales/parse", models.ParseDisplayRequest{Display: "C major"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errorKindMalformedDisplay, decode[models.ErrorResponse](t, w).Error)
}

func TestScaleHandler_List(t *testing.T) {
	router := setupScaleTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/scales", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.ScaleListResponse](t, w)
	assert.Equal(t, 10, resp.Count)
	types := make([]string, 0, resp.Count)
	for _, s := range resp.Scales {
		types = append(types, s.Type)
	}
	assert.Contains(t, types, "harmonicMinor")
	assert.Contains(t, types, "mixolydian")
}

func TestHealthAndMetrics(t *testing.T) {
	router := setupScaleTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode[map[string]any](t, w)["status"])

	w = doRequest(t, router, http.MethodGet, "/api/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	m := decode[MetricsResponse](t, w)
	assert.Equal(t, "test", m.Version)
	assert.Equal(t, 120, m.API.ScaleCount)
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "5.00s", formatUptime(5e9))
	assert.Equal(t, "2m3.00s", formatUptime(123e9))
	assert.Equal(t, "1h1m1.00s", formatUptime(3661e9))
}
