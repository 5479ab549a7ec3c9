package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/CreatorLink/creatorlink_backend/internal/config"
	"github.com/CreatorLink/creatorlink_backend/internal/models"
	"github.com/CreatorLink/creatorlink_backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrPasswordMismatch パスワードと確認用パスワードが一致しない
	ErrPasswordMismatch = errors.New("パスワードが一致しません")
	// ErrPasswordTooShort パスワードが8文字未満
	ErrPasswordTooShort = errors.New("パスワードは8文字以上で入力してください")
	// ErrDuplicateUser ユーザー名またはメールアドレスが登録済み
	ErrDuplicateUser = repository.ErrDuplicateUser
	// ErrInvalidCredentials ログイン失敗。ユーザー名不明とパスワード誤りを
	// 区別させないため、両方ともこの1つのエラーにまとめる
	ErrInvalidCredentials = errors.New("ユーザー名またはパスワードが正しくありません")
)

// AuthService 認証に関するサービスインターフェース
type AuthService interface {
	Register(username, email, password, confirmPassword, displayName, bio string) (*models.User, error)
	Login(username, password string) (*models.User, string, error)
	ValidateToken(tokenString string) (*Claims, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

// authService AuthServiceの実装
type authService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthService AuthServiceを作成
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Claims セッショントークンのペイロード
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// hashPassword パスワードのダイジェストを計算する。
// ソルトなしのSHA-256一発という弱い方式だが、既存データベースの
// password_hash列と互換を保つため意図的にこの方式を維持している
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// verifyPassword パスワードが保存済みダイジェストと一致するか検証
func verifyPassword(password, digest string) bool {
	computed := hashPassword(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// Register ユーザー登録。検証は (1)パスワード一致 (2)長さ (3)重複 の順で行い、
// どの検証に失敗してもデータベースには何も書き込まない
func (s *authService) Register(username, email, password, confirmPassword, displayName, bio string) (*models.User, error) {
	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}
	// 長さはバイト数ではなく文字数で数える
	if utf8.RuneCountInString(password) < 8 {
		return nil, ErrPasswordTooShort
	}

	user := &models.User{
		Username:     username,
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: hashPassword(password),
		Bio:          bio,
	}

	if err := s.userRepo.CreateUnique(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login ログイン。成功時はユーザーとセッショントークンを返す。
// ユーザーが存在しない場合もパスワードが誤っている場合も同じエラーを返す
func (s *authService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !verifyPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ValidateToken セッショントークンを検証
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.config.Auth.SessionSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("無効なトークンです")
	}

	return claims, nil
}

// GetUserFromToken セッショントークンからユーザーを取得
func (s *authService) GetUserFromToken(tokenString string) (*models.User, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, errors.New("セッションがありません")
	}

	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// generateToken セッショントークンを生成
func (s *authService) generateToken(userID uint) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Auth.SessionSecret))
}
