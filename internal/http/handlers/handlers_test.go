package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"tokrecharge_api/internal/config"
	"tokrecharge_api/internal/domain"
	apihttp "tokrecharge_api/internal/http"
	"tokrecharge_api/internal/service"
	"tokrecharge_api/internal/storage"
	"tokrecharge_api/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	router *gin.Engine
	store  *storage.Memory
	auth   *service.AuthService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewSeededMemory()
	auth := service.NewAuthService(store, "test-secret", 1, 4)
	cfg := &config.Config{
		APIRateLimit:   100,
		APIRateWindow:  60,
		AuthRateLimit:  5,
		AuthRateWindow: 60,
	}

	r := gin.New()
	apihttp.RegisterRoutes(r, store, auth, ws.NewHub(), cfg)

	return &testAPI{router: r, store: store, auth: auth}
}

// tokenFor creates a fresh user with a known password and logs it in.
func (a *testAPI) tokenFor(t *testing.T, username, role string) string {
	t.Helper()
	hash, err := a.auth.HashPassword("password1")
	require.NoError(t, err)

	_, err = a.store.CreateAdminUser(context.Background(), domain.AdminUser{
		Username:     username,
		Email:        username + "@tokrecharge.com",
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	})
	require.NoError(t, err)

	token, _, err := a.auth.Login(context.Background(), username, "password1")
	require.NoError(t, err)
	return token
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestPublicCatalogEndpoints(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/tools", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tools []domain.Tool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tools))
	assert.Len(t, tools, 6)

	// country lookup is case-insensitive
	w = api.do(http.MethodGet, "/api/countries/us", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var country domain.Country
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &country))
	assert.Equal(t, "US", country.Code)

	w = api.do(http.MethodGet, "/api/countries/XX", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/api/gifts?category=Premium", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var gifts []domain.Gift
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gifts))
	assert.Len(t, gifts, 3)
}

func TestSiteSettingsFlattened(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/site-settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var flat map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &flat))
	assert.NotEmpty(t, flat["title"])
	assert.NotEmpty(t, flat["metaTitle"])
	assert.NotEmpty(t, flat["metaDescription"])
}

func TestPublicBlogHidesDrafts(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/blog", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var posts []domain.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	assert.Len(t, posts, 2)

	// the seeded recharge guide is still a draft
	w = api.do(http.MethodGet, "/api/blog/how-to-recharge-tiktok-coins-guide", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/api/blog/how-much-is-1000-tiktok-coins", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTrackValidatesAndRecords(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/track", "", gin.H{"country": "US"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/api/track", "", gin.H{"page": "/coin-calculator", "country": "US"})
	require.Equal(t, http.StatusCreated, w.Code)

	logs, err := api.store.GetVisitorLogs(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "/coin-calculator", logs[0].Page)
}

func TestLoginFlow(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "editor", domain.RoleAdmin)

	w := api.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "editor", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "x", "password": "y"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/api/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"editor"`)
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestAdminRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/admin/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodGet, "/api/admin/blog", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserManagementIsSuperAdminOnly(t *testing.T) {
	api := newTestAPI(t)
	admin := api.tokenFor(t, "editor", domain.RoleAdmin)
	super := api.tokenFor(t, "owner", domain.RoleSuperAdmin)

	w := api.do(http.MethodGet, "/api/admin/users", admin, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodGet, "/api/admin/users", super, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "passwordHash")

	w = api.do(http.MethodPost, "/api/admin/users", super, gin.H{
		"username": "newbie",
		"email":    "newbie@tokrecharge.com",
		"password": "longenough",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// the stored hash is bcrypt, never the raw password
	user, err := api.store.GetAdminUserByUsername(context.Background(), "newbie")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$2"))
}

func TestAdminToolCRUD(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "editor", domain.RoleAdmin)

	w := api.do(http.MethodPost, "/api/admin/tools", token, gin.H{"slug": "missing-name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/api/admin/tools", token, gin.H{"name": "Dup", "slug": "coin-calculator"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPost, "/api/admin/tools", token, gin.H{"name": "Tip Calculator", "slug": "tip-calculator"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Tool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.IsActive)

	w = api.do(http.MethodPut, "/api/admin/tools/999", token, gin.H{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodDelete, "/api/admin/tools/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlogStatusValidation(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "editor", domain.RoleAdmin)

	w := api.do(http.MethodPost, "/api/admin/blog", token, gin.H{
		"title": "t", "slug": "bad-status", "content": "c", "status": "archived",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/api/admin/blog", token, gin.H{
		"title": "t", "slug": "ok-status", "content": "c",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var post domain.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, domain.BlogStatusDraft, post.Status)
}

func TestUpdateSettingUnknownKey(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "editor", domain.RoleAdmin)

	w := api.do(http.MethodPut, "/api/admin/settings/no-such-key", token, gin.H{"value": "v"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodPut, "/api/admin/settings/title", token, gin.H{"value": "New Title"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New Title")

	// empty string is a legal value, absence is not
	w = api.do(http.MethodPut, "/api/admin/settings/title", token, gin.H{"value": ""})
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPut, "/api/admin/settings/title", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCoinRateAdminUpdate(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "editor", domain.RoleAdmin)

	w := api.do(http.MethodPut, "/api/admin/coin-rates/USD", token, gin.H{"rate": "0.017000"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "0.017000")

	w = api.do(http.MethodPut, "/api/admin/coin-rates/JPY", token, gin.H{"rate": "2.000000"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func uploadRequest(t *testing.T, field, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return buf, mw.FormDataContentType()
}

func TestUploadValidation(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "editor", domain.RoleAdmin)

	send := func(body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		api.router.ServeHTTP(w, req)
		return w
	}

	body, ct := uploadRequest(t, "image", "notes.txt", "text/plain", []byte("hello"))
	w := send(body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, ct = uploadRequest(t, "image", "big.png", "image/png", bytes.Repeat([]byte{0xFF}, (5<<20)+1))
	w = send(body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, ct = uploadRequest(t, "image", "pixel.png", "image/png", []byte{0x89, 0x50, 0x4E, 0x47})
	w = send(body, ct)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		URL      string `json:"url"`
		Filename string `json:"filename"`
		MimeType string `json:"mimeType"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.URL, "data:image/png;base64,"))
	assert.True(t, strings.HasSuffix(resp.Filename, "-pixel.png"))
	assert.Equal(t, "image/png", resp.MimeType)
}

func TestDashboardPayload(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "editor", domain.RoleAdmin)

	for i := 0; i < 3; i++ {
		w := api.do(http.MethodPost, "/api/track", "", gin.H{"page": "/coin-calculator", "country": "IN"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := api.do(http.MethodGet, "/api/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Stats struct {
			TotalTools     int `json:"totalTools"`
			TotalCountries int `json:"totalCountries"`
			TotalBlogPosts int `json:"totalBlogPosts"`
			TotalVisitors  int `json:"totalVisitors"`
		} `json:"stats"`
		RecentVisitors []domain.VisitorLog `json:"recentVisitors"`
		Analytics      struct {
			TopCountries []domain.CountryStat `json:"topCountries"`
		} `json:"analytics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, 6, payload.Stats.TotalTools)
	assert.Equal(t, 5, payload.Stats.TotalCountries)
	assert.Equal(t, 3, payload.Stats.TotalBlogPosts)
	assert.Equal(t, 3, payload.Stats.TotalVisitors)
	assert.Len(t, payload.RecentVisitors, 3)
	require.Len(t, payload.Analytics.TopCountries, 1)
	assert.Equal(t, "IN", payload.Analytics.TopCountries[0].Country)
}

func TestAnalyticsLimit(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "editor", domain.RoleAdmin)

	for i := 0; i < 4; i++ {
		w := api.do(http.MethodPost, "/api/track", "", gin.H{"page": "/gift-value"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := api.do(http.MethodGet, "/api/admin/analytics/visitors?limit=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []domain.VisitorLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	assert.Len(t, logs, 2)

	w = api.do(http.MethodGet, "/api/admin/analytics/visitors?limit=bogus", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
