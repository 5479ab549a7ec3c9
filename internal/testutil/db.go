package testutil

import (
	"testing"
	"time"

	"github.com/CreatorLink/creatorlink_backend/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB テスト用にインメモリSQLiteデータベースを作成し、
// 全テーブルをマイグレーションして返す
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("テスト用データベースの作成に失敗しました: %v", err)
	}

	// インメモリSQLiteは接続ごとに別のデータベースになるため、
	// コネクションプールを1本に固定する
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("テスト用データベースの取得に失敗しました: %v", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("テスト用データベースのマイグレーションに失敗しました: %v", err)
	}

	return db
}

// NewTestConfig テスト用の設定を作成
func NewTestConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			SessionSecret: "test-secret",
			TokenExpiry:   time.Hour,
		},
	}
}
