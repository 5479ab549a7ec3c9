package routes

import (
	"github.com/CreatorLink/creatorlink_backend/internal/config"
	"github.com/CreatorLink/creatorlink_backend/internal/controllers"
	"github.com/CreatorLink/creatorlink_backend/internal/middlewares"
	"github.com/CreatorLink/creatorlink_backend/internal/repository"
	"github.com/CreatorLink/creatorlink_backend/internal/services"
	"github.com/CreatorLink/creatorlink_backend/web"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// テンプレートとミドルウェアを設定
	r.SetHTMLTemplate(web.Templates())
	r.Use(middlewares.ErrorMiddleware())

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	linkRepo := repository.NewSocialLinkRepository(db)

	// サービスを作成
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo, linkRepo)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	homeController := controllers.NewHomeController()
	healthController := controllers.NewHealthController()

	// 認証ミドルウェア
	sessionRequired := middlewares.SessionRequired(authService)

	// 認証不要ルート
	r.GET("/", homeController.Index)
	r.GET("/health", healthController.Check)
	r.GET("/login", authController.ShowLogin)
	r.POST("/login", authController.Login)
	r.GET("/register", authController.ShowRegister)
	r.POST("/register", authController.Register)
	r.GET("/search", homeController.Search)
	r.POST("/search", homeController.Search)

	// ログイン必須ルート
	auth := r.Group("/", sessionRequired)
	{
		auth.GET("/dashboard", userController.Dashboard)
		auth.POST("/update_profile", userController.UpdateProfile)
		auth.POST("/update_profile_picture", userController.UpdatePicture)
		auth.POST("/update_banner", userController.UpdateBanner)
		auth.POST("/add_social_link", userController.AddSocialLink)
		auth.GET("/logout", authController.Logout)
	}

	return r
}
