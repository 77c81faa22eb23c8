package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/immunika/server/adapters/memory"
	"github.com/immunika/server/internal/auth"
	"github.com/immunika/server/usecase"
)

func newTestServer(t *testing.T) (*echo.Echo, string) {
	t.Helper()
	logger := zap.NewNop()
	uploadDir := t.TempDir()

	userRepo := memory.NewUserRepository()
	vaccineRepo := memory.NewVaccineRepository()
	calendarRepo := memory.NewCalendarRepository()
	vaccinationRepo := memory.NewVaccinationRepository()
	reservationRepo := memory.NewReservationRepository()

	tokens := auth.NewJWT([]byte("test-secret"))

	userService := usecase.NewUserService(userRepo, tokens, logger)
	vaccineService := usecase.NewVaccineService(vaccineRepo, logger)
	calendarService := usecase.NewCalendarService(calendarRepo, vaccineRepo, logger)
	vaccinationService := usecase.NewVaccinationService(vaccinationRepo, userRepo, vaccineRepo, logger)
	reservationService := usecase.NewReservationService(reservationRepo, userRepo, calendarRepo, logger)

	e := echo.New()
	InitRoutes(e, Handlers{
		Users:        NewUserHandler(userService, uploadDir, logger),
		Vaccines:     NewVaccineHandler(vaccineService, logger),
		Calendar:     NewCalendarHandler(calendarService, logger),
		Vaccinations: NewVaccinationHandler(vaccinationService, logger),
		Reservations: NewReservationHandler(reservationService, logger),
	}, tokens, uploadDir, logger)

	return e, uploadDir
}

func doJSON(e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, e *echo.Echo) (id, token string) {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/user", "", map[string]any{
		"name":            "Maria",
		"password":        "secret",
		"confirmPassword": "secret",
		"email":           "maria@example.com",
		"telefone":        "11999990000",
		"latitude":        -23.55,
		"longitude":       -46.63,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	id, _ = decodeBody(t, rec)["id"].(string)

	rec = doJSON(e, http.MethodPost, "/user/authentication", "", map[string]any{
		"name":            "Maria",
		"password":        "secret",
		"confirmPassword": "secret",
		"email":           "maria@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, _ = decodeBody(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return id, token
}

func createVaccine(t *testing.T, e *echo.Echo, name string) {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/vaccine", "", map[string]any{
		"name":             name,
		"type":             "Inactivated virus",
		"manufacturer":     "Sinovac",
		"description":      "Two-dose primary scheme",
		"contraIndication": "Allergy to vaccine components",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAuthGate(t *testing.T) {
	e, _ := newTestServer(t)

	t.Run("missing token", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/register", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Restricted access", decodeBody(t, rec)["message"])
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/register", "not.a.token", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", decodeBody(t, rec)["error"])
	})
}

func TestUserLifecycle(t *testing.T) {
	e, _ := newTestServer(t)
	id, token := registerUser(t, e)

	t.Run("registration hides the password", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/user", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("fetches the profile", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/user/"+id, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Maria", body["name"])
		assert.Equal(t, "Image not registered", body["image"])
	})

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/user", "", map[string]any{
			"name":            "Maria",
			"password":        "secret",
			"confirmPassword": "secret",
			"email":           "maria@example.com",
			"telefone":        "11888880000",
			"latitude":        -23.55,
			"longitude":       -46.63,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Existing user with this e-mail or with this telefone", decodeBody(t, rec)["error"])
	})

	t.Run("updates the account", func(t *testing.T) {
		rec := doJSON(e, http.MethodPut, "/user/update/"+id, token, map[string]any{
			"name":            "Maria Souza",
			"password":        "secret",
			"confirmPassword": "secret",
			"email":           "maria@example.com",
			"telefone":        "11999990000",
			"latitude":        -23.55,
			"longitude":       -46.63,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, "Updated User", body["message"])
		updated, ok := body["updateUser"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Maria Souza", updated["name"])
	})

	t.Run("removes the account", func(t *testing.T) {
		rec := doJSON(e, http.MethodDelete, "/user/remove/"+id, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User removed", decodeBody(t, rec)["message"])
	})
}

func TestUserUpload(t *testing.T) {
	e, uploadDir := newTestServer(t)
	id, token := registerUser(t, e)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPatch, "/user/upload/"+id, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Imagem adicionada", decodeBody(t, rec)["massage"])

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".png", filepath.Ext(entries[0].Name()))

	stored, err := os.ReadFile(filepath.Join(uploadDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(stored))
}

func TestEventEndpoints(t *testing.T) {
	e, _ := newTestServer(t)
	createVaccine(t, e, "Coronavac")

	event := map[string]any{
		"local":       "UBS Centro",
		"date":        "2026-09-10",
		"places":      50,
		"responsible": "Ana",
		"vaccine":     "Coronavac",
		"status":      "Confirmed",
		"observation": "Bring documents",
	}

	t.Run("creates an event with forced defaults", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/event", "", event)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, "Registered event", body["message"])
		created, ok := body["createEventInCalendar"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Status not informed", created["status"])
		assert.Equal(t, "Observation not informed", created["observation"])
	})

	t.Run("rejects the occupied slot", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/event", "", event)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Event with venue and date already registered", decodeBody(t, rec)["message"])
	})

	t.Run("rejects an unknown vaccine name", func(t *testing.T) {
		bad := map[string]any{}
		for k, v := range event {
			bad[k] = v
		}
		bad["date"] = "2026-09-11"
		bad["vaccine"] = "Unknown"
		rec := doJSON(e, http.MethodPost, "/event", "", bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Vaccine not found", decodeBody(t, rec)["error"])
	})
}

func TestVaccinationEndpoints(t *testing.T) {
	e, _ := newTestServer(t)
	createVaccine(t, e, "Coronavac")
	_, token := registerUser(t, e)

	t.Run("registers a vaccination", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/register", token, map[string]any{
			"date":    "2026-08-01",
			"applied": 3,
			"vaccine": "Coronavac",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, "Registered vaccination", body["message"])
		record, ok := body["newRegisterVaccination"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(1), record["quantityApplied"])
	})

	t.Run("rejects the duplicate", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/register", token, map[string]any{
			"date":    "2026-08-01",
			"vaccine": "Coronavac",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Vaccination registration already done", decodeBody(t, rec)["message"])
	})

	t.Run("lists the records", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/register", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var records []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		assert.Len(t, records, 1)
	})
}

func TestReservationEndpoints(t *testing.T) {
	e, _ := newTestServer(t)
	createVaccine(t, e, "Coronavac")
	_, token := registerUser(t, e)

	rec := doJSON(e, http.MethodPost, "/event", "", map[string]any{
		"local":       "UBS Centro",
		"date":        "2026-09-10",
		"places":      50,
		"responsible": "Ana",
		"vaccine":     "Coronavac",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeBody(t, rec)["createEventInCalendar"].(map[string]any)
	eventID, _ := created["id"].(string)
	require.NotEmpty(t, eventID)

	t.Run("requests a reservation", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/reservation", token, map[string]any{
			"date":       "2026-09-10",
			"idCalendar": eventID,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, "Reservation requested", body["message"])
		reservation, ok := body["newRequestReservation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Reservation requested", reservation["status"])
	})

	t.Run("rejects the duplicate request", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/reservation", token, map[string]any{
			"date":       "2026-09-10",
			"idCalendar": eventID,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Request reservation registration already done", decodeBody(t, rec)["message"])
	})

	t.Run("removes the request", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/reservation", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var reservations []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reservations))
		require.Len(t, reservations, 1)
		reservationID, _ := reservations[0]["id"].(string)

		rec = doJSON(e, http.MethodDelete, "/reservation/remove/"+reservationID, token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, "Reservation request removed", body["message"])
		removed, ok := body["updateRemoveReservation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Maria", removed["name"])
		assert.Empty(t, removed["reservations"])
	})
}

func TestVaccineNotFoundUsesMessageKey(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/vaccine/6f1f64a7-3f6e-4a18-9b0f-0d6f3f8f8f8f", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "vaccine not found", decodeBody(t, rec)["message"])
}

func TestHealthCheck(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "ok"))
}
