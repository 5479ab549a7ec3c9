package main

import (
	"fmt"
	"log"
	"os"

	"github.com/CreatorLink/creatorlink_backend/internal/config"
	"github.com/CreatorLink/creatorlink_backend/internal/models"
)

func main() {
	// 引数をチェック
	if len(os.Args) < 2 {
		log.Fatal("使用方法: migrate [up|down]")
	}

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "up":
		// マイグレーションを実行（InitDBでも実行されるが明示的にも実行できる）
		if err := config.Migrate(db); err != nil {
			log.Fatalf("マイグレーションに失敗しました: %v", err)
		}
		fmt.Println("マイグレーションが成功しました")

	case "down":
		// テーブルを削除（子テーブルから順に）
		err = db.Migrator().DropTable(
			&models.PostComment{},
			&models.Like{},
			&models.BlockedUser{},
			&models.Follower{},
			&models.SocialLink{},
			&models.Post{},
			&models.User{},
		)
		if err != nil {
			log.Fatalf("テーブル削除に失敗しました: %v", err)
		}
		fmt.Println("テーブルの削除が成功しました")

	default:
		log.Fatalf("不明なコマンドです: %s", command)
	}
}
