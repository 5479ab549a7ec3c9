package utils

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"
)

// フラッシュメッセージのカテゴリ
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

const flashCookieName = "flash"

// Flash 1回だけ表示するユーザー向けメッセージ
type Flash struct {
	Category string
	Message  string
}

// SetFlash 次のページ表示で1回だけ見せるメッセージをクッキーに積む
func SetFlash(ctx *gin.Context, category, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(category + "|" + message))
	ctx.SetCookie(flashCookieName, value, 300, "/", "", false, true)
}

// PopFlash フラッシュメッセージを取り出してクッキーを消す。なければnil
func PopFlash(ctx *gin.Context) *Flash {
	value, err := ctx.Cookie(flashCookieName)
	if err != nil || value == "" {
		return nil
	}

	// 読んだら即削除
	ctx.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}

	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 {
		return nil
	}

	return &Flash{Category: parts[0], Message: parts[1]}
}
