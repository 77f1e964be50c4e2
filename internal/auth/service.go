package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/insightjournal/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingFields      = errors.New("username and password are required")
	ErrInvalidRole        = errors.New("unknown role")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Service 负责账号注册与登录，用户表存放在 publication 库。
type Service struct {
	db     *gorm.DB
	tokens *TokenIssuer
}

// NewService creates a Service instance.
func NewService(gdb *gorm.DB, tokens *TokenIssuer) *Service {
	return &Service{db: gdb, tokens: tokens}
}

// Signup creates a user with a bcrypt-hashed password. An empty role
// defaults to user; plaintext passwords are never stored.
func (s *Service) Signup(username, password, role string) (*db.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	if role == "" {
		role = db.RoleUser
	}
	if !db.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := db.User{Username: username, Password: string(hashed), Role: role}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials and issues a capability token on success.
func (s *Service) Login(username, password string) (string, string, error) {
	var user db.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.Role, time.Now())
	if err != nil {
		return "", "", err
	}
	return token, user.Role, nil
}

// EnsureUser 存在性检查：若提供的用户名与密码均非空且不存在对应账号，则创建一个该角色的用户。
func (s *Service) EnsureUser(username, password, role string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil
	}

	var existing db.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	_, err = s.Signup(username, password, role)
	return err
}
