package models

import (
	"time"
)

// User ユーザーモデル
type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Username          string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	DisplayName       string    `json:"display_name" gorm:"size:100"`
	Email             string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash      string    `json:"-" gorm:"size:255;not null"`
	Bio               string    `json:"bio"`
	ProfilePictureURL string    `json:"profile_picture_url"`
	BannerURL         string    `json:"banner_url"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// リレーション
	Posts       []Post        `json:"-" gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
	SocialLinks []SocialLink  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Likes       []Like        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Comments    []PostComment `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// SocialLink ユーザーのSNSリンクモデル
// (user_id, platform) の組につき1件のみ。一意性はDB制約ではなく
// アプリケーション側のupsertロジックで保証する
type SocialLink struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Platform  string    `json:"platform" gorm:"size:50;not null"`
	URL       string    `json:"url" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`

	// リレーション
	User User `json:"-"`
}

// Post 投稿モデル
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatorID uint      `json:"creator_id" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text"`
	IsPrivate bool      `json:"is_private" gorm:"default:false"` // false = 公開, true = フォロワー限定
	CreatedAt time.Time `json:"created_at"`

	// リレーション
	Creator  *User         `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Likes    []Like        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Comments []PostComment `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Follower フォロー関係モデル
type Follower struct {
	FollowerID  uint      `json:"follower_id" gorm:"primaryKey;autoIncrement:false"`
	FollowingID uint      `json:"following_id" gorm:"primaryKey;autoIncrement:false"` // フォローされる側
	FollowedAt  time.Time `json:"followed_at" gorm:"autoCreateTime"`

	// リレーション
	FollowerUser  User `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	FollowingUser User `json:"-" gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}

// BlockedUser ブロック関係モデル
type BlockedUser struct {
	CreatorID uint      `json:"creator_id" gorm:"primaryKey;autoIncrement:false"`
	BlockedID uint      `json:"blocked_id" gorm:"primaryKey;autoIncrement:false"`
	BlockedAt time.Time `json:"blocked_at" gorm:"autoCreateTime"`

	// リレーション
	Creator User `json:"-" gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
	Blocked User `json:"-" gorm:"foreignKey:BlockedID;constraint:OnDelete:CASCADE"`
}

// Like いいねモデル
type Like struct {
	UserID  uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	PostID  uint      `json:"post_id" gorm:"primaryKey;autoIncrement:false;index:idx_likes_post"`
	LikedAt time.Time `json:"liked_at" gorm:"autoCreateTime;index:idx_likes_liked_at"`

	// リレーション
	User User `json:"-"`
	Post Post `json:"-"`
}

// PostComment 投稿コメントモデル（parent_idでスレッド化）
type PostComment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;index:idx_post_comments_post"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	ParentID  *uint     `json:"parent_id" gorm:"index:idx_post_comments_parent"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_post_comments_created"`
	UpdatedAt time.Time `json:"updated_at"`

	// リレーション
	Post    Post          `json:"-"`
	User    User          `json:"-"`
	Parent  *PostComment  `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
	Replies []PostComment `json:"-" gorm:"foreignKey:ParentID"`
}
