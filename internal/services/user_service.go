package services

import (
	"errors"
	"strings"

	"github.com/CreatorLink/creatorlink_backend/internal/models"
	"github.com/CreatorLink/creatorlink_backend/internal/repository"

	"gorm.io/gorm"
)

var (
	// ErrEmptyURL URLが空（空白のみを含む）
	ErrEmptyURL = errors.New("URLを入力してください")
	// ErrEmptySocialLink プラットフォームまたはURLが空
	ErrEmptySocialLink = errors.New("プラットフォームとURLを入力してください")
)

// Profile ダッシュボードに表示するプロフィール情報
type Profile struct {
	User        *models.User
	SocialLinks []models.SocialLink
}

// UserService ユーザーに関するサービスインターフェース
type UserService interface {
	GetProfile(userID uint) (*Profile, error)
	UpdateProfile(userID uint, displayName, bio string) (*models.User, error)
	UpdatePicture(userID uint, url string) error
	UpdateBanner(userID uint, url string) error
	UpsertSocialLink(userID uint, platform, url string) (created bool, err error)
}

// userService UserServiceの実装
type userService struct {
	userRepo repository.UserRepository
	linkRepo repository.SocialLinkRepository
}

// NewUserService UserServiceを作成
func NewUserService(userRepo repository.UserRepository, linkRepo repository.SocialLinkRepository) UserService {
	return &userService{
		userRepo: userRepo,
		linkRepo: linkRepo,
	}
}

// GetProfile ユーザーのプロフィールとSNSリンク一覧（新しい順）を取得
func (s *userService) GetProfile(userID uint) (*Profile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	links, err := s.linkRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	return &Profile{User: user, SocialLinks: links}, nil
}

// UpdateProfile 表示名と自己紹介を更新する。空文字でも上書きする
func (s *userService) UpdateProfile(userID uint, displayName, bio string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	user.DisplayName = displayName
	user.Bio = bio

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdatePicture プロフィール画像URLを更新する。空白のみのURLは拒否し、何も変更しない
func (s *userService) UpdatePicture(userID uint, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptyURL
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	user.ProfilePictureURL = url
	return s.userRepo.Update(user)
}

// UpdateBanner バナーURLを更新する。空白のみのURLは拒否し、何も変更しない
func (s *userService) UpdateBanner(userID uint, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptyURL
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	user.BannerURL = url
	return s.userRepo.Update(user)
}

// UpsertSocialLink SNSリンクを追加または更新する。同じ(ユーザー, プラットフォーム)の
// リンクが既にあればURLを差し替え、なければ新規追加する。プラットフォーム名は
// バイト単位の完全一致で比較する。新規追加した場合はcreated=trueを返す
func (s *userService) UpsertSocialLink(userID uint, platform, url string) (bool, error) {
	platform = strings.TrimSpace(platform)
	url = strings.TrimSpace(url)
	if platform == "" || url == "" {
		return false, ErrEmptySocialLink
	}

	existing, err := s.linkRepo.FindByUserAndPlatform(userID, platform)
	if err == nil {
		existing.URL = url
		return false, s.linkRepo.Update(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	link := &models.SocialLink{
		UserID:   userID,
		Platform: platform,
		URL:      url,
	}
	return true, s.linkRepo.Create(link)
}
