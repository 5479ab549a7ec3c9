package controllers

import (
	"errors"
	"net/http"

	"github.com/CreatorLink/creatorlink_backend/internal/models"
	"github.com/CreatorLink/creatorlink_backend/internal/services"
	"github.com/CreatorLink/creatorlink_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserController ユーザーに関するコントローラー
type UserController struct {
	userService services.UserService
}

// NewUserController UserControllerを作成
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// currentUser 認証ミドルウェアがコンテキストに載せたユーザーを取り出す
func currentUser(ctx *gin.Context) (*models.User, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	u, ok := user.(*models.User)
	return u, ok
}

// Dashboard 自分のプロフィールとSNSリンク一覧を表示
func (c *UserController) Dashboard(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	profile, err := c.userService.GetProfile(user.ID)
	if err != nil {
		utils.SetFlash(ctx, utils.FlashDanger, "プロフィールの取得に失敗しました")
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	ctx.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":        profile.User,
		"SocialLinks": profile.SocialLinks,
		"Flash":       utils.PopFlash(ctx),
	})
}

// UpdateProfile 表示名と自己紹介を更新
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	displayName := ctx.PostForm("display_name")
	bio := ctx.PostForm("bio")

	if _, err := c.userService.UpdateProfile(user.ID, displayName, bio); err != nil {
		utils.SetFlash(ctx, utils.FlashDanger, "プロフィールの更新に失敗しました")
		ctx.Redirect(http.StatusFound, "/dashboard")
		return
	}

	utils.SetFlash(ctx, utils.FlashSuccess, "プロフィールを更新しました")
	ctx.Redirect(http.StatusFound, "/dashboard")
}

// UpdatePicture プロフィール画像URLを更新
func (c *UserController) UpdatePicture(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	url := ctx.PostForm("profile_picture_url")

	if err := c.userService.UpdatePicture(user.ID, url); err != nil {
		if errors.Is(err, services.ErrEmptyURL) {
			utils.SetFlash(ctx, utils.FlashWarning, err.Error())
		} else {
			utils.SetFlash(ctx, utils.FlashDanger, "プロフィール画像の更新に失敗しました")
		}
		ctx.Redirect(http.StatusFound, "/dashboard")
		return
	}

	utils.SetFlash(ctx, utils.FlashSuccess, "プロフィール画像を更新しました")
	ctx.Redirect(http.StatusFound, "/dashboard")
}

// UpdateBanner バナーURLを更新
func (c *UserController) UpdateBanner(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	url := ctx.PostForm("banner_url")

	if err := c.userService.UpdateBanner(user.ID, url); err != nil {
		if errors.Is(err, services.ErrEmptyURL) {
			utils.SetFlash(ctx, utils.FlashWarning, err.Error())
		} else {
			utils.SetFlash(ctx, utils.FlashDanger, "バナーの更新に失敗しました")
		}
		ctx.Redirect(http.StatusFound, "/dashboard")
		return
	}

	utils.SetFlash(ctx, utils.FlashSuccess, "バナーを更新しました")
	ctx.Redirect(http.StatusFound, "/dashboard")
}

// AddSocialLink SNSリンクを追加または更新
func (c *UserController) AddSocialLink(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	platform := ctx.PostForm("platform")
	url := ctx.PostForm("url")

	created, err := c.userService.UpsertSocialLink(user.ID, platform, url)
	if err != nil {
		if errors.Is(err, services.ErrEmptySocialLink) {
			utils.SetFlash(ctx, utils.FlashWarning, err.Error())
		} else {
			utils.SetFlash(ctx, utils.FlashDanger, "SNSリンクの保存に失敗しました")
		}
		ctx.Redirect(http.StatusFound, "/dashboard")
		return
	}

	if created {
		utils.SetFlash(ctx, utils.FlashSuccess, "SNSリンクを追加しました")
	} else {
		utils.SetFlash(ctx, utils.FlashSuccess, "SNSリンクを更新しました")
	}
	ctx.Redirect(http.StatusFound, "/dashboard")
}
