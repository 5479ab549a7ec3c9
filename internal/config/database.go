package config

import (
	"fmt"
	"log"
	"time"

	"github.com/CreatorLink/creatorlink_backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// カスタムロガー
type customLogger struct {
	logger.Interface
}

func newCustomLogger() logger.Interface {
	return logger.New(
		log.New(log.Writer(), "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second, // 1秒以上のクエリを遅いと判断
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

// InitDB データベース接続を初期化し、スキーマを最新化
func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName)

	log.Printf("データベースに接続中: %s:%s/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// GORM設定
	gormConfig := &gorm.Config{
		Logger: newCustomLogger(),
	}

	// データベースに接続
	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, err
	}

	// 接続プールの設定
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 接続テスト
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("データベース接続テストに失敗: %v", err)
	}

	// スキーマを最新化
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("マイグレーションに失敗: %v", err)
	}

	log.Println("データベース接続に成功しました")

	return db, nil
}

// Migrate 全モデルのマイグレーションを実行（冪等）
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Follower{},
		&models.BlockedUser{},
		&models.Like{},
		&models.SocialLink{},
		&models.PostComment{},
	); err != nil {
		return err
	}

	if err := ensureProfileColumns(db); err != nil {
		return err
	}

	return ensureBinaryCollation(db)
}

// ensureBinaryCollation MySQLの既定照合順序は大文字小文字を区別しないため、
// ユーザー名・メールアドレス・プラットフォーム名の比較と一意制約が
// バイト単位になるようバイナリ照合順序に固定する。SQLiteは元々バイト単位で
// 比較するので何もしない
func ensureBinaryCollation(db *gorm.DB) error {
	if db.Dialector.Name() != "mysql" {
		return nil
	}

	statements := []string{
		"ALTER TABLE users MODIFY username VARCHAR(50) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL",
		"ALTER TABLE users MODIFY email VARCHAR(100) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL",
		"ALTER TABLE social_links MODIFY platform VARCHAR(50) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL",
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}

// ensureProfileColumns 旧バージョンで作成されたusersテーブルに
// プロフィール画像・バナー列がなければ追加する。既にあれば何もしない
func ensureProfileColumns(db *gorm.DB) error {
	m := db.Migrator()

	if !m.HasTable(&models.User{}) {
		return nil
	}

	for _, column := range []string{"ProfilePictureURL", "BannerURL"} {
		if m.HasColumn(&models.User{}, column) {
			continue
		}
		if err := m.AddColumn(&models.User{}, column); err != nil {
			return err
		}
	}

	return nil
}
