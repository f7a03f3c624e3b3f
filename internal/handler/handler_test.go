package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kedai/config"
	"kedai/internal/database"
	"kedai/internal/editor"
	"kedai/internal/models"
	"kedai/internal/repository"
	"kedai/internal/service"
	"kedai/internal/testutil"
	"kedai/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

var jwtCfg = &config.JWTConfig{AccessSecret: "test-secret", AccessExpiry: time.Hour, Issuer: "kedai-ja"}

type fixture struct {
	r   *gin.Engine
	svc *service.AboutUsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	require.NoError(t, database.SeedAdmin(db, &config.AdminConfig{Email: "admin@kedaija.local", Password: "rahasia123"}))

	svc := service.NewAboutUsService(repository.NewAboutUsRepository(db))
	authSvc := service.NewAuthService(jwtCfg, repository.NewAdminRepository(db))
	engine, err := web.NewTemplateEngine()
	require.NoError(t, err)

	about := NewAboutUsHandler(svc)
	admin := NewAdminHandler(authSvc)
	pages := NewPageHandler(StaticStore(svc), engine, authSvc, time.Hour, false)
	health := NewHealthHandler(db)

	r := gin.New()
	r.GET("/health", health.Health)
	r.GET("/api/about-us", about.Get)
	r.PUT("/api/about-us", about.Put)
	r.POST("/api/admin/login", admin.AdminLogin)
	r.GET("/", pages.About)
	r.GET("/admin/about-us", pages.AdminAbout)
	r.POST("/admin/about-us", pages.AdminAboutSubmit)
	r.GET("/admin/login", pages.AdminLoginPage)
	r.POST("/admin/login", pages.AdminLoginSubmit)
	r.POST("/admin/logout", pages.AdminLogout)
	return &fixture{r: r, svc: svc}
}

func (f *fixture) do(method, path string, body []byte, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	f.r.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"title":             "Tentang Kami",
		"subtitle":          "Selamat datang",
		"description":       "Deskripsi",
		"secondDescription": "Deskripsi kedua",
		"yearsOfExperience": 10,
		"masterChefs":       4,
		"images": map[string]any{
			"image1":          "data:image/png;base64,AAAA",
			"lingkunganKedai": []string{"data:image/png;base64,BBBB"},
		},
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestGetAboutUsNull(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodGet, "/api/about-us", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"aboutUs":null}`, w.Body.String())
}

func TestPutThenGet(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodPut, "/api/about-us", mustJSON(t, validBody()), "application/json")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var put struct {
		AboutUs models.AboutUs `json:"aboutUs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &put))
	assert.Equal(t, "Tentang Kami", put.AboutUs.Title)
	assert.NotZero(t, put.AboutUs.ID)

	w = f.do(http.MethodGet, "/api/about-us", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	got := raw["aboutUs"]
	assert.Equal(t, float64(10), got["yearsOfExperience"])
	images := got["images"].(map[string]any)
	assert.Equal(t, "data:image/png;base64,AAAA", images["image1"])
	assert.Equal(t, []any{}, images["spotTempatDuduk"])
	assert.Equal(t, []any{"data:image/png;base64,BBBB"}, images["lingkunganKedai"])
}

func TestPutValidationMessages(t *testing.T) {
	cases := []struct {
		name string
		edit func(map[string]any)
		want string
	}{
		{"negative years", func(b map[string]any) { b["yearsOfExperience"] = -1 }, "Years must be positive"},
		{"negative chefs", func(b map[string]any) { b["masterChefs"] = -3 }, "Master chefs must be positive"},
		{"missing chefs", func(b map[string]any) { delete(b, "masterChefs") }, "Master chefs count is required"},
		{"missing title", func(b map[string]any) { delete(b, "title") }, "Title is required"},
		{"blank subtitle", func(b map[string]any) { b["subtitle"] = "   " }, "Subtitle is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			body := validBody()
			tc.edit(body)
			w := f.do(http.MethodPut, "/api/about-us", mustJSON(t, body), "application/json")
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"`+tc.want+`"}`, w.Body.String())

			w = f.do(http.MethodGet, "/api/about-us", nil, "")
			assert.JSONEq(t, `{"aboutUs":null}`, w.Body.String())
		})
	}
}

func TestPutZeroCountsAccepted(t *testing.T) {
	f := newFixture(t)
	body := validBody()
	body["yearsOfExperience"] = 0
	body["masterChefs"] = 0
	w := f.do(http.MethodPut, "/api/about-us", mustJSON(t, body), "application/json")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"yearsOfExperience":0`)
}

func TestPutMalformedJSON(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodPut, "/api/about-us", []byte(`{"title":`), "application/json")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
}

func TestAdminLoginAPI(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodPost, "/api/admin/login", mustJSON(t, map[string]string{
		"email": "ADMIN@kedaija.local", "password": "rahasia123",
	}), "application/json")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out struct {
		AccessToken string       `json:"access_token"`
		Admin       models.Admin `json:"admin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "admin@kedaija.local", out.Admin.Email)
	assert.NotContains(t, w.Body.String(), "password")

	w = f.do(http.MethodPost, "/api/admin/login", mustJSON(t, map[string]string{
		"email": "admin@kedaija.local", "password": "salah",
	}), "application/json")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublicPageFallback(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Welcome to Kedai J.A")
	assert.Contains(t, body, `<strong class="years">7</strong>`)
	assert.Contains(t, body, `<strong class="chefs">25</strong>`)
	assert.NotContains(t, body, "<img")
}

type formFile struct {
	field, name string
	data        []byte
}

func multipartBody(t *testing.T, fields [][2]string, files []formFile) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, kv := range fields {
		require.NoError(t, mw.WriteField(kv[0], kv[1]))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = fw.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf.Bytes(), mw.FormDataContentType()
}

func formFields(years string) [][2]string {
	return [][2]string{
		{"title", "Tentang Kami"},
		{"subtitle", "Selamat datang"},
		{"description", "Deskripsi"},
		{"secondDescription", "Deskripsi kedua"},
		{"yearsOfExperience", years},
		{"masterChefs", "5"},
	}
}

func TestAdminFormSubmit(t *testing.T) {
	f := newFixture(t)
	seed := models.DefaultAboutUs()
	seed.Images.Image2 = "data:image/png;base64,OLD2"
	seed.Images.Image4 = "data:image/png;base64,OLD4"
	seed.Images.SpotTempatDuduk = []string{"a", "b", "c"}
	_, err := f.svc.Replace(t.Context(), seed)
	require.NoError(t, err)

	fields := append(formFields("12"),
		[2]string{"remove", "slot:image4"},
		[2]string{"remove", "gallery:spotTempatDuduk:0"},
		[2]string{"remove", "gallery:spotTempatDuduk:2"},
	)
	body, ct := multipartBody(t, fields, []formFile{
		{"image1", "hero.png", pngPixel},
		{"add_spotTempatDuduk", "new.png", pngPixel},
	})
	w := f.do(http.MethodPost, "/admin/about-us", body, ct)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Data tentang kami berhasil disimpan")

	got, err := f.svc.Fetch(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 12, got.YearsOfExperience)
	assert.True(t, strings.HasPrefix(got.Images.Image1, "data:image/png;base64,"))
	assert.Equal(t, "data:image/png;base64,OLD2", got.Images.Image2)
	assert.Equal(t, "", got.Images.Image4)
	require.Len(t, got.Images.SpotTempatDuduk, 2)
	assert.Equal(t, "b", got.Images.SpotTempatDuduk[0])
	assert.True(t, strings.HasPrefix(got.Images.SpotTempatDuduk[1], "data:image/png;base64,"))
}

func TestAdminFormRejectsNegative(t *testing.T) {
	f := newFixture(t)
	body, ct := multipartBody(t, formFields("-1"), nil)
	w := f.do(http.MethodPost, "/admin/about-us", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Years must be positive")
	assert.Contains(t, w.Body.String(), `value="Tentang Kami"`)

	got, err := f.svc.Fetch(t.Context())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAdminFormBadGalleryImage(t *testing.T) {
	f := newFixture(t)
	body, ct := multipartBody(t, formFields("3"), []formFile{
		{"add_lingkunganKedai", "notes.txt", []byte("not an image")},
	})
	w := f.do(http.MethodPost, "/admin/about-us", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed to add image")
}

func TestAdminFormBadRemoveRef(t *testing.T) {
	f := newFixture(t)
	fields := append(formFields("3"), [2]string{"remove", "lingkunganKedai-0"})
	body, ct := multipartBody(t, fields, nil)
	w := f.do(http.MethodPost, "/admin/about-us", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminLoginPageSetsCookie(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodPost, "/admin/login", []byte("email=admin%40kedaija.local&password=rahasia123"), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/about-us", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "admin_token=")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")

	w = f.do(http.MethodPost, "/admin/login", []byte("email=admin%40kedaija.local&password=nope"), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAdminFormFailedPostRendersStoredGallery(t *testing.T) {
	f := newFixture(t)
	a, b, c := "data:image/png;base64,QQ==", "data:image/png;base64,Qg==", "data:image/png;base64,Qw=="
	seed := models.DefaultAboutUs()
	seed.Images.LingkunganKedai = []string{a, b, c}
	_, err := f.svc.Replace(t.Context(), seed)
	require.NoError(t, err)

	fields := append(formFields("9"), [2]string{"remove", "gallery:lingkunganKedai:0"})
	body, ct := multipartBody(t, fields, []formFile{
		{"add_lingkunganKedai", "notes.txt", []byte("not an image")},
	})
	w := f.do(http.MethodPost, "/admin/about-us", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
	page := w.Body.String()
	assert.Contains(t, page, "failed to add image")
	assert.Contains(t, page, `value="gallery:lingkunganKedai:2"`)
	assert.Contains(t, page, `src="`+a+`"`)
	assert.Contains(t, page, `name="yearsOfExperience" value="9"`)

	got, err := f.svc.Fetch(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{a, b, c}, []string(got.Images.LingkunganKedai))

	// the admin now removes the item rendered at position 1
	fields = append(formFields("9"), [2]string{"remove", "gallery:lingkunganKedai:1"})
	body, ct = multipartBody(t, fields, nil)
	w = f.do(http.MethodPost, "/admin/about-us", body, ct)
	require.Equal(t, http.StatusOK, w.Code)

	got, err = f.svc.Fetch(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{a, c}, []string(got.Images.LingkunganKedai))
}

type unreadableStore struct {
	editor.Store
}

func (unreadableStore) Fetch(context.Context) (*models.AboutUs, error) {
	return nil, errors.New("read timeout")
}

func TestAdminFormReadFailureSavesNothing(t *testing.T) {
	f := newFixture(t)
	seed := models.DefaultAboutUs()
	seed.Images.Image1 = "data:image/png;base64,QQ=="
	seed.Images.SpotTempatDuduk = []string{"data:image/png;base64,Qg=="}
	_, err := f.svc.Replace(t.Context(), seed)
	require.NoError(t, err)

	engine, err := web.NewTemplateEngine()
	require.NoError(t, err)
	pages := NewPageHandler(StaticStore(unreadableStore{f.svc}), engine, nil, time.Hour, false)
	r := gin.New()
	r.POST("/admin/about-us", pages.AdminAboutSubmit)

	body, ct := multipartBody(t, formFields("4"), nil)
	req := httptest.NewRequest(http.MethodPost, "/admin/about-us", bytes.NewReader(body))
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Terjadi kesalahan")
	assert.NotContains(t, w.Body.String(), "berhasil disimpan")
	assert.Contains(t, w.Body.String(), `value="Tentang Kami"`)

	got, err := f.svc.Fetch(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,QQ==", got.Images.Image1)
	assert.Len(t, got.Images.SpotTempatDuduk, 1)
	assert.Equal(t, seed.Title, got.Title)
}
