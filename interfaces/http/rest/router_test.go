package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"presidia-backend/application/queries"
	querybus "presidia-backend/application/queries/bus"
	queryhandlers "presidia-backend/application/queries/handlers"
	"presidia-backend/domain/model"
	"presidia-backend/infrastructure/persistence/sqlite"
	"presidia-backend/pkg/auth"
)

const testSecret = "router-test-secret"

type testEnv struct {
	router    http.Handler
	token     string
	meetingID int64
	contactID int64
	orgID     int64
}

// newTestEnv stands up the full request path over a real embedded database:
// seeded store, query bus, JWT middleware, chi router.
func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "router_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(ctx))

	org := model.Organization{Name: "Acme Capital"}
	require.NoError(t, store.CreateOrganization(ctx, &org))

	role := "Partner"
	contact := model.Contact{Name: "Alice Moran", Role: &role, OrganizationID: &org.ID}
	require.NoError(t, store.CreateContact(ctx, &contact))

	briefing := model.Briefing{ID: "2026-02-09", Date: "Monday, February 9, 2026", Title: "Daily Briefing"}
	require.NoError(t, store.CreateBriefing(ctx, &briefing))

	points := `["fund II close","hiring plans"]`
	meeting := model.Meeting{BriefingID: briefing.ID, ContactID: contact.ID,
		Time: "10:30 AM", Hour: 10.5, TalkingPoints: &points}
	require.NoError(t, store.CreateMeeting(ctx, &meeting))

	bus := querybus.NewQueryBus()
	registrations := []struct {
		query   querybus.Query
		handler querybus.QueryHandler
	}{
		{queries.GetBriefingQuery{}, queryhandlers.NewGetBriefingHandler(store, logger)},
		{queries.ListBriefingsQuery{}, queryhandlers.NewListBriefingsHandler(store, logger)},
		{queries.GetMeetingQuery{}, queryhandlers.NewGetMeetingHandler(store, logger)},
		{queries.GetContactQuery{}, queryhandlers.NewGetContactHandler(store, logger)},
		{queries.GetOrganizationQuery{}, queryhandlers.NewGetOrganizationHandler(store, logger)},
	}
	for _, reg := range registrations {
		require.NoError(t, bus.Register(reg.query, reg.handler))
	}

	validator, err := auth.NewJWTValidator(auth.JWTConfig{SecretKey: testSecret})
	require.NoError(t, err)
	generator, err := auth.NewJWTGenerator(auth.JWTGeneratorConfig{
		SecretKey:  testSecret,
		ExpiryTime: time.Hour,
	})
	require.NoError(t, err)
	token, err := generator.GenerateToken("test-user", "test@presidia.local", []string{"authenticated"})
	require.NoError(t, err)

	router := NewRouter(bus, store, validator, logger, false)
	return testEnv{
		router:    router.Setup(),
		token:     token,
		meetingID: meeting.ID,
		contactID: contact.ID,
		orgID:     org.ID,
	}
}

func (e testEnv) get(t *testing.T, path string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthAndReadiness(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/health", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	rec = env.get(t, "/ready", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}

func TestAPIRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/v1/briefings", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Missing authentication token", decodeBody(t, rec)["message"])
}

func TestAPIRejectsExpiredToken(t *testing.T) {
	env := newTestEnv(t)

	generator, err := auth.NewJWTGenerator(auth.JWTGeneratorConfig{
		SecretKey:  testSecret,
		ExpiryTime: -time.Minute,
	})
	require.NoError(t, err)
	expired, err := generator.GenerateToken("test-user", "", nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/briefings", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token has expired", decodeBody(t, rec)["message"])
}

func TestListBriefings(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/v1/briefings", true)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	briefings, ok := body["briefings"].([]interface{})
	require.True(t, ok)
	require.Len(t, briefings, 1)
}

func TestGetBriefing(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/v1/briefings/2026-02-09", true)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "2026-02-09", body["id"])

	meetings, ok := body["meetings"].([]interface{})
	require.True(t, ok)
	assert.Len(t, meetings, 1)

	// One meeting plus the five fixed schedule markers.
	timeline, ok := body["timeline"].([]interface{})
	require.True(t, ok)
	assert.Len(t, timeline, 6)

	stats, ok := body["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), stats["meetings"])
}

func TestGetBriefing_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/v1/briefings/1999-01-01", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMeeting(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/v1/meetings/1", true)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Alice Moran", body["contactName"])
	points, ok := body["talkingPoints"].([]interface{})
	require.True(t, ok)
	assert.Len(t, points, 2)

	// Empty collections render as [], never null.
	career, ok := body["career"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, career)
}

func TestGetMeeting_BadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/v1/meetings/abc", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Meeting ID must be an integer", decodeBody(t, rec)["message"])
}

func TestGetMeeting_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/v1/meetings/9999", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetContact(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/v1/contacts/1", true)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Alice Moran", body["name"])
	assert.Equal(t, "Acme Capital", body["organizationName"])

	meetings, ok := body["meetings"].([]interface{})
	require.True(t, ok)
	assert.Len(t, meetings, 1)
}

func TestGetOrganization(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/v1/organizations/1", true)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Acme Capital", body["name"])

	contacts, ok := body["contacts"].([]interface{})
	require.True(t, ok)
	assert.Len(t, contacts, 1)

	rec = env.get(t, "/api/v1/organizations/9999", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
