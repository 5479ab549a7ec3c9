package middlewares

import (
	"net/http"

	"github.com/CreatorLink/creatorlink_backend/internal/services"
	"github.com/CreatorLink/creatorlink_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookieName セッショントークンを格納するクッキー名
const SessionCookieName = "session"

// SessionRequired ログイン必須ページ用ミドルウェア。セッションクッキーの
// トークンを検証し、有効ならユーザーをコンテキストに載せて続行する。
// 無効ならハンドラーを実行せず、警告を添えてログインページへリダイレクトする
func SessionRequired(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(SessionCookieName)
		if err != nil || token == "" {
			redirectToLogin(ctx)
			return
		}

		user, err := authService.GetUserFromToken(token)
		if err != nil {
			redirectToLogin(ctx)
			return
		}

		// ユーザーをコンテキストに保存
		ctx.Set("user", user)
		ctx.Next()
	}
}

func redirectToLogin(ctx *gin.Context) {
	utils.SetFlash(ctx, utils.FlashWarning, "ログインしてください")
	ctx.Redirect(http.StatusFound, "/login")
	ctx.Abort()
}
