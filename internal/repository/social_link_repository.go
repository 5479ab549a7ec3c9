package repository

import (
	"github.com/CreatorLink/creatorlink_backend/internal/models"

	"gorm.io/gorm"
)

// SocialLinkRepository SNSリンクに関するデータベース操作を行うインターフェース
type SocialLinkRepository interface {
	Create(link *models.SocialLink) error
	Update(link *models.SocialLink) error
	FindByUserAndPlatform(userID uint, platform string) (*models.SocialLink, error)
	ListByUser(userID uint) ([]models.SocialLink, error)
}

// socialLinkRepository SocialLinkRepositoryの実装
type socialLinkRepository struct {
	db *gorm.DB
}

// NewSocialLinkRepository SocialLinkRepositoryを作成
func NewSocialLinkRepository(db *gorm.DB) SocialLinkRepository {
	return &socialLinkRepository{db: db}
}

// Create 新しいSNSリンクを作成
func (r *socialLinkRepository) Create(link *models.SocialLink) error {
	return r.db.Create(link).Error
}

// Update SNSリンクを更新
func (r *socialLinkRepository) Update(link *models.SocialLink) error {
	return r.db.Save(link).Error
}

// FindByUserAndPlatform ユーザーとプラットフォームの組でSNSリンクを検索
func (r *socialLinkRepository) FindByUserAndPlatform(userID uint, platform string) (*models.SocialLink, error) {
	var link models.SocialLink
	if err := r.db.Where("user_id = ? AND platform = ?", userID, platform).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// ListByUser ユーザーのSNSリンク一覧を追加が新しい順に取得
func (r *socialLinkRepository) ListByUser(userID uint) ([]models.SocialLink, error) {
	var links []models.SocialLink
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
