package controllers

import (
	"net/http"

	"github.com/CreatorLink/creatorlink_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// HomeController トップページと検索ページのコントローラー
type HomeController struct{}

// NewHomeController HomeControllerを作成
func NewHomeController() *HomeController {
	return &HomeController{}
}

// Index トップページを表示
func (c *HomeController) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"Flash": utils.PopFlash(ctx),
	})
}

// Search 検索フォームを表示。検索ロジックは未実装
func (c *HomeController) Search(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "search.html", gin.H{
		"Flash": utils.PopFlash(ctx),
	})
}
