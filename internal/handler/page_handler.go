package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"kedai/internal/client"
	"kedai/internal/display"
	"kedai/internal/domain"
	"kedai/internal/editor"
	"kedai/internal/middleware"
	"kedai/internal/service"
	"kedai/internal/web"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

const maxFormMemory = 32 << 20

var numberFields = []struct{ name, required string }{
	{"yearsOfExperience", "Years of experience is required"},
	{"masterChefs", "Master chefs count is required"},
}

// StoreFunc picks the document store for a request.
type StoreFunc func(c *gin.Context) editor.Store

// StaticStore serves every request from one store.
func StaticStore(s editor.Store) StoreFunc {
	return func(*gin.Context) editor.Store { return s }
}

// RemoteStore reads and writes through another server's API. The admin's
// cookie token is forwarded when present, else the client's own token is used.
func RemoteStore(cl *client.Client) StoreFunc {
	return func(c *gin.Context) editor.Store {
		if tok, err := c.Cookie(middleware.TokenCookie); err == nil && tok != "" {
			return cl.WithToken(tok)
		}
		return cl
	}
}

// PageHandler serves the public page and the admin HTML pages.
type PageHandler struct {
	store        StoreFunc
	engine       *web.TemplateEngine
	authSvc      *service.AuthService
	cookieTTL    time.Duration
	secureCookie bool
}

func NewPageHandler(store StoreFunc, engine *web.TemplateEngine, authSvc *service.AuthService, cookieTTL time.Duration, secureCookie bool) *PageHandler {
	return &PageHandler{
		store:        store,
		engine:       engine,
		authSvc:      authSvc,
		cookieTTL:    cookieTTL,
		secureCookie: secureCookie,
	}
}

func (h *PageHandler) render(c *gin.Context, status int, page string, data any) {
	c.Status(status)
	if err := h.engine.Render(c.Writer, page, data); err != nil {
		log.Error("render page", "page", page, "err", err)
	}
}

// About handles GET /.
func (h *PageHandler) About(c *gin.Context) {
	v := display.Load(c.Request.Context(), h.store(c))
	h.render(c, http.StatusOK, web.PageAbout, web.AboutPageData{Title: v.Title, View: v})
}

// AdminAbout handles GET /admin/about-us.
func (h *PageHandler) AdminAbout(c *gin.Context) {
	s, _ := editor.Load(c.Request.Context(), h.store(c))
	h.render(c, http.StatusOK, web.PageAdminAbout, web.NewAdminAboutData(s, "", ""))
}

// AdminAboutSubmit handles POST /admin/about-us. Removals refer to gallery
// positions as rendered, so they are applied before new gallery images are added.
// A post is only applied on top of a record that was read successfully.
func (h *PageHandler) AdminAboutSubmit(c *gin.Context) {
	ctx := c.Request.Context()
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.renderFailure(c, http.StatusBadRequest, domain.MsgGenericFailure)
		return
	}
	s, err := editor.Load(ctx, h.store(c))
	if err != nil {
		h.renderFailure(c, http.StatusServiceUnavailable, domain.MsgGenericFailure)
		return
	}
	if status, msg := applyForm(c, s); msg != "" {
		h.renderFailure(c, status, msg)
		return
	}
	if _, err := s.Submit(ctx); err != nil {
		msg := domain.MsgGenericFailure
		var se *editor.SubmitError
		if errors.As(err, &se) && se.Message != "" {
			msg = se.Message
		}
		h.renderFailure(c, http.StatusBadRequest, msg)
		return
	}
	h.render(c, http.StatusOK, web.PageAdminAbout, web.NewAdminAboutData(s, domain.MsgSaved, ""))
}

// applyForm copies the posted form into s. It returns a status and message
// for the first problem, or an empty message.
func applyForm(c *gin.Context, s *editor.Session) (int, string) {
	applyText(c, s)
	for _, f := range numberFields {
		n, err := strconv.Atoi(strings.TrimSpace(c.PostForm(f.name)))
		if err != nil {
			return http.StatusBadRequest, f.required
		}
		_ = s.SetNumber(f.name, n)
	}

	var refs []editor.ImageRef
	for _, v := range c.PostFormArray("remove") {
		ref, err := editor.ParseImageRef(v)
		if err != nil {
			return http.StatusBadRequest, err.Error()
		}
		refs = append(refs, ref)
	}
	if err := s.RemoveAll(refs...); err != nil {
		return http.StatusBadRequest, err.Error()
	}

	form := c.Request.MultipartForm
	if form == nil {
		return 0, ""
	}
	for _, slot := range domain.ImageSlots {
		if files := form.File[slot]; len(files) > 0 {
			_ = s.StageImage(slot, editor.FileFromHeader(files[0]))
		}
	}
	for _, category := range domain.GalleryCategories {
		for _, fh := range form.File["add_"+category] {
			if err := s.AddGalleryImage(category, editor.FileFromHeader(fh)); err != nil {
				return http.StatusBadRequest, domain.MsgAddImageFailed
			}
		}
	}
	return 0, ""
}

// applyText copies text fields, and counts that parse, into s.
func applyText(c *gin.Context, s *editor.Session) {
	for _, f := range []string{"title", "subtitle", "description", "secondDescription", "companyDescription"} {
		_ = s.SetText(f, c.PostForm(f))
	}
	for _, f := range numberFields {
		if n, err := strconv.Atoi(strings.TrimSpace(c.PostForm(f.name))); err == nil {
			_ = s.SetNumber(f.name, n)
		}
	}
}

// renderFailure shows the form again from a fresh read of the stored record
// with only the posted text kept. Removals, additions and staged files were
// not saved, so image positions on the page match storage again. When the
// read fails too, no images are offered for removal.
func (h *PageHandler) renderFailure(c *gin.Context, status int, msg string) {
	s, _ := editor.Load(c.Request.Context(), h.store(c))
	applyText(c, s)
	h.render(c, status, web.PageAdminAbout, web.NewAdminAboutData(s, "", msg))
}

// AdminLoginPage handles GET /admin/login.
func (h *PageHandler) AdminLoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, web.PageAdminLogin, web.AdminLoginData{Title: "Admin Login"})
}

// AdminLoginSubmit handles POST /admin/login and stores the token in a cookie.
func (h *PageHandler) AdminLoginSubmit(c *gin.Context) {
	email := c.PostForm("email")
	a, token, err := h.authSvc.Login(c.Request.Context(), email, c.PostForm("password"))
	if err != nil || a.Role != domain.RoleAdmin {
		if err != nil && !errors.Is(err, service.ErrInvalidCreds) {
			log.Error("admin login", "err", err)
		}
		h.render(c, http.StatusUnauthorized, web.PageAdminLogin, web.AdminLoginData{
			Title: "Admin Login",
			Email: email,
			Error: "invalid credentials",
		})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(h.cookieTTL.Seconds()), "/", "", h.secureCookie, true)
	c.Redirect(http.StatusSeeOther, "/admin/about-us")
}

// AdminLogout handles POST /admin/logout.
func (h *PageHandler) AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.secureCookie, true)
	c.Redirect(http.StatusSeeOther, "/admin/login")
}
