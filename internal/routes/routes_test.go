package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/CreatorLink/creatorlink_backend/internal/middlewares"
	"github.com/CreatorLink/creatorlink_backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return SetupRouter(testutil.NewTestConfig(), testutil.NewTestDB(t))
}

// postForm フォームをPOSTしてレスポンスを返す
func postForm(router *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// register テスト用ユーザーを登録する
func register(t *testing.T, router *gin.Engine, username, email, password string) {
	t.Helper()
	w := postForm(router, "/register", url.Values{
		"username":         {username},
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
		"display_name":     {username},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}

// login ログインしてセッションクッキーを返す
func login(t *testing.T, router *gin.Engine, username, password string) *http.Cookie {
	t.Helper()
	w := postForm(router, "/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))

	for _, c := range w.Result().Cookies() {
		if c.Name == middlewares.SessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("セッションクッキーが設定されていません")
	return nil
}

func TestPublicPages(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/", "/login", "/register", "/search", "/health"} {
		w := get(router, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestDashboardRequiresSession(t *testing.T) {
	router := newTestRouter(t)

	w := get(router, "/dashboard", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/update_profile", "/update_profile_picture", "/update_banner", "/add_social_link"} {
		w := postForm(router, path, url.Values{}, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}

	w := get(router, "/logout", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRegisterLoginDashboardFlow(t *testing.T) {
	router := newTestRouter(t)

	register(t, router, "alice", "a@x.com", "password123")
	session := login(t, router, "alice", "password123")

	w := get(router, "/dashboard", []*http.Cookie{session})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "alice")
	// 新規ユーザーはSNSリンクなし
	assert.Contains(t, body, "まだリンクがありません")
}

func TestRegisterRejectionsRedirectBack(t *testing.T) {
	router := newTestRouter(t)

	// パスワード不一致
	w := postForm(router, "/register", url.Values{
		"username":         {"alice"},
		"email":            {"a@x.com"},
		"password":         {"password123"},
		"confirm_password": {"password124"},
	}, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/register", w.Header().Get("Location"))

	// 8文字未満
	w = postForm(router, "/register", url.Values{
		"username":         {"alice"},
		"email":            {"a@x.com"},
		"password":         {"pass123"},
		"confirm_password": {"pass123"},
	}, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/register", w.Header().Get("Location"))

	// 拒否されたのでログインもできない
	w = postForm(router, "/login", url.Values{
		"username": {"alice"},
		"password": {"password123"},
	}, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoginFailureRedirectsToLogin(t *testing.T) {
	router := newTestRouter(t)

	register(t, router, "alice", "a@x.com", "password123")

	w := postForm(router, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrongpassword"},
	}, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestProfileUpdateFlow(t *testing.T) {
	router := newTestRouter(t)

	register(t, router, "alice", "a@x.com", "password123")
	session := login(t, router, "alice", "password123")
	cookies := []*http.Cookie{session}

	w := postForm(router, "/update_profile", url.Values{
		"display_name": {"アリス"},
		"bio":          {"よろしくお願いします"},
	}, cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	w = get(router, "/dashboard", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "アリス")
	assert.Contains(t, w.Body.String(), "よろしくお願いします")
}

func TestSocialLinkFlow(t *testing.T) {
	router := newTestRouter(t)

	register(t, router, "alice", "a@x.com", "password123")
	session := login(t, router, "alice", "password123")
	cookies := []*http.Cookie{session}

	w := postForm(router, "/add_social_link", url.Values{
		"platform": {"twitter"},
		"url":      {"https://twitter.com/alice"},
	}, cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	w = get(router, "/dashboard", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://twitter.com/alice")
	assert.NotContains(t, w.Body.String(), "まだリンクがありません")
}

func TestLogoutClearsSession(t *testing.T) {
	router := newTestRouter(t)

	register(t, router, "alice", "a@x.com", "password123")
	session := login(t, router, "alice", "password123")

	w := get(router, "/logout", []*http.Cookie{session})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	// ログアウト後のクッキーでは保護ページに入れない
	var cleared *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middlewares.SessionCookieName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)

	w = get(router, "/dashboard", []*http.Cookie{cleared})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
