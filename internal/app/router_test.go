package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"internhub_backend/database"
	"internhub_backend/internal/auth"
	"internhub_backend/internal/config"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services/dto"
)

const testJWTSecret = "router-test-secret-0123456789"

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
	issuer *auth.TokenIssuer
}

// newTestEnv stands up the full HTTP stack against an in-memory database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// The in-memory database lives and dies with a single connection.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db), "migration failed")

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.TTL = 60

	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	container := initializeServices(cfg, db)
	router := SetupRouter(db, issuer, container)

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		sqlDB.Close()
	})

	return &testEnv{server: server, db: db, issuer: issuer}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err, "failed to encode request body")
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := e.server.Client().Do(req)
	require.NoError(t, err, "request failed")
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, data
}

func (e *testEnv) registerIndustry(t *testing.T, email, company string) dto.AuthResponse {
	t.Helper()
	res, body := e.request(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email:       email,
		Password:    "Sup3rSecret!",
		Role:        models.UserRoleIndustry,
		CompanyName: company,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "register failed: %s", body)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

// seedAdmin creates an active admin directly and mints a token for it.
func (e *testEnv) seedAdmin(t *testing.T) string {
	t.Helper()
	admin := &models.User{
		Email:        "admin@internhub.kz",
		PasswordHash: "not-used-in-tests",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	require.NoError(t, e.db.Create(admin).Error)

	token, err := e.issuer.Generate(admin)
	require.NoError(t, err)
	return token
}

func TestRouter_Health(t *testing.T) {
	env := newTestEnv(t)

	res, _ := env.request(t, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestRouter_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	reg := env.registerIndustry(t, "hr@steelworks.kz", "Steelworks LLP")
	assert.NotEmpty(t, reg.AccessToken)
	assert.NotEmpty(t, reg.RefreshToken)
	assert.Equal(t, models.UserRoleIndustry, reg.Role)

	res, body := env.request(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "hr@steelworks.kz",
		Password: "Sup3rSecret!",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login failed: %s", body)

	res, _ = env.request(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "hr@steelworks.kz",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRouter_ProtectedRoutesRejectAnonymous(t *testing.T) {
	env := newTestEnv(t)

	res, _ := env.request(t, http.MethodGet, "/api/v1/opportunities", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRouter_AdminRoutesRejectNonAdmins(t *testing.T) {
	env := newTestEnv(t)
	reg := env.registerIndustry(t, "hr@steelworks.kz", "Steelworks LLP")

	res, _ := env.request(t, http.MethodGet, "/api/v1/admin/users", reg.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// A new posting must pass moderation before the public listing shows it, and
// the public listing must not expose the company's real name.
func TestRouter_OpportunityModerationFlow(t *testing.T) {
	env := newTestEnv(t)
	industry := env.registerIndustry(t, "hr@steelworks.kz", "Steelworks LLP")
	adminToken := env.seedAdmin(t)

	res, body := env.request(t, http.MethodPost, "/api/v1/opportunities", industry.AccessToken, dto.CreateOpportunityRequest{
		Title: "Summer metallurgy internship",
		Type:  models.OpportunityTypeInternship,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "create failed: %s", body)

	var created dto.OpportunityResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.False(t, created.IsActive, "a new posting must start pending")

	// Invisible to the public until approved.
	res, body = env.request(t, http.MethodGet, "/api/v1/opportunities", industry.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var listing dto.OpportunityListResponse
	require.NoError(t, json.Unmarshal(body, &listing))
	assert.Empty(t, listing.Opportunities)

	res, _ = env.request(t, http.MethodPost, "/api/v1/admin/moderation/opportunities/"+created.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = env.request(t, http.MethodGet, "/api/v1/opportunities", industry.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal(body, &listing))
	require.Len(t, listing.Opportunities, 1)

	got := listing.Opportunities[0]
	assert.True(t, strings.HasPrefix(got.CompanyName, "Company #"), "expected anonymized name, got %q", got.CompanyName)
	assert.NotContains(t, got.CompanyName, "Steelworks")
}

func TestRouter_QuotaEnforced(t *testing.T) {
	env := newTestEnv(t)
	industry := env.registerIndustry(t, "hr@steelworks.kz", "Steelworks LLP")

	for i := 0; i < 3; i++ {
		res, body := env.request(t, http.MethodPost, "/api/v1/opportunities", industry.AccessToken, dto.CreateOpportunityRequest{
			Title: fmt.Sprintf("Internship opening %d", i+1),
			Type:  models.OpportunityTypeInternship,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, "create %d failed: %s", i+1, body)
	}

	res, body := env.request(t, http.MethodPost, "/api/v1/opportunities", industry.AccessToken, dto.CreateOpportunityRequest{
		Title: "One internship too many",
		Type:  models.OpportunityTypeInternship,
	})
	require.Equal(t, http.StatusForbidden, res.StatusCode)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "QUOTA_EXCEEDED", envelope.Error.Code)
}
