package repository

import (
	"errors"

	"github.com/CreatorLink/creatorlink_backend/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateUser ユーザー名またはメールアドレスが既に登録されている
var ErrDuplicateUser = errors.New("ユーザー名またはメールアドレスは既に使用されています")

// UserRepository ユーザーに関するデータベース操作を行うインターフェース
type UserRepository interface {
	CreateUnique(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
}

// userRepository UserRepositoryの実装
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository UserRepositoryを作成
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUnique 新しいユーザーを作成する。ユーザー名またはメールアドレスが
// 既に存在する場合はErrDuplicateUserを返す。存在確認と挿入は同一
// トランザクション内で行い、同時登録はユーザー名・メールの一意インデックスが
// 最終的に弾く
func (r *userRepository) CreateUnique(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("username = ? OR email = ?", user.Username, user.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateUser
		}
		return tx.Create(user).Error
	})
}

// FindByID IDでユーザーを検索
func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername ユーザー名でユーザーを検索（完全一致）
func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update ユーザー情報を更新
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete ユーザーを削除
func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}
