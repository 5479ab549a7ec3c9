package controllers

import (
	"errors"
	"net/http"

	"github.com/CreatorLink/creatorlink_backend/internal/middlewares"
	"github.com/CreatorLink/creatorlink_backend/internal/services"
	"github.com/CreatorLink/creatorlink_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthController 認証に関するコントローラー
type AuthController struct {
	authService services.AuthService
}

// NewAuthController AuthControllerを作成
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ShowLogin ログインフォームを表示
func (c *AuthController) ShowLogin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", gin.H{
		"Flash": utils.PopFlash(ctx),
	})
}

// Login ログイン処理。成功時はセッションクッキーを設定してダッシュボードへ
func (c *AuthController) Login(ctx *gin.Context) {
	username := ctx.PostForm("username")
	password := ctx.PostForm("password")

	_, token, err := c.authService.Login(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.SetFlash(ctx, utils.FlashDanger, err.Error())
		} else {
			utils.SetFlash(ctx, utils.FlashDanger, "ログイン処理に失敗しました")
		}
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	ctx.SetCookie(middlewares.SessionCookieName, token, 0, "/", "", false, true)
	utils.SetFlash(ctx, utils.FlashSuccess, "ログインしました")
	ctx.Redirect(http.StatusFound, "/dashboard")
}

// ShowRegister 登録フォームを表示
func (c *AuthController) ShowRegister(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "register.html", gin.H{
		"Flash": utils.PopFlash(ctx),
	})
}

// Register ユーザー登録処理。検証エラーはフォームに戻し、成功したら
// ログインページへ誘導する
func (c *AuthController) Register(ctx *gin.Context) {
	username := ctx.PostForm("username")
	email := ctx.PostForm("email")
	password := ctx.PostForm("password")
	confirmPassword := ctx.PostForm("confirm_password")
	displayName := ctx.PostForm("display_name")
	bio := ctx.PostForm("bio")

	_, err := c.authService.Register(username, email, password, confirmPassword, displayName, bio)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordMismatch),
			errors.Is(err, services.ErrPasswordTooShort),
			errors.Is(err, services.ErrDuplicateUser):
			utils.SetFlash(ctx, utils.FlashDanger, err.Error())
		default:
			utils.SetFlash(ctx, utils.FlashDanger, "アカウントの作成に失敗しました")
		}
		ctx.Redirect(http.StatusFound, "/register")
		return
	}

	utils.SetFlash(ctx, utils.FlashSuccess, "アカウントを作成しました。ログインしてください")
	ctx.Redirect(http.StatusFound, "/login")
}

// Logout セッションクッキーを破棄してログインページへ
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(middlewares.SessionCookieName, "", -1, "/", "", false, true)
	utils.SetFlash(ctx, utils.FlashInfo, "ログアウトしました")
	ctx.Redirect(http.StatusFound, "/login")
}
