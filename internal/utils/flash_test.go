package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// メッセージをセット
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	SetFlash(ctx, FlashWarning, "ログインしてください")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	// 次のリクエストで取り出す
	w2 := httptest.NewRecorder()
	ctx2, _ := gin.CreateTestContext(w2)
	ctx2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx2.Request.AddCookie(cookies[0])

	flash := PopFlash(ctx2)
	require.NotNil(t, flash)
	assert.Equal(t, FlashWarning, flash.Category)
	assert.Equal(t, "ログインしてください", flash.Message)

	// 取り出すとクッキーは破棄される
	popped := false
	for _, c := range w2.Result().Cookies() {
		if c.Name == flashCookieName {
			popped = true
			assert.Less(t, c.MaxAge, 0)
		}
	}
	assert.True(t, popped)
}

func TestPopFlashWithoutCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Nil(t, PopFlash(ctx))
}

func TestPopFlashIgnoresGarbage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Request.AddCookie(&http.Cookie{Name: flashCookieName, Value: "%%%not-base64%%%"})

	assert.Nil(t, PopFlash(ctx))
}
