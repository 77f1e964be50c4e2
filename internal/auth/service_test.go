package auth

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/insightjournal/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:auth-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&db.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	tokens := NewTokenIssuer(TokenConfig{Secret: "test-secret", TTL: time.Hour})
	return NewService(setupAuthTestDB(t), tokens)
}

func TestSignupHashesPassword(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Signup("amira", "sup3r-secret", "")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.Role != db.RoleUser {
		t.Fatalf("expected default role user, got %q", user.Role)
	}
	if user.Password == "sup3r-secret" {
		t.Fatal("plaintext password was persisted")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("sup3r-secret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Signup("", "pw", ""); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Signup("amira", "", ""); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Signup("amira", "pw", "owner"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Signup("amira", "pw-one", ""); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.Signup("amira", "pw-two", ""); err == nil {
		t.Fatal("expected duplicate username to fail")
	}
}

func TestLoginIssuesRoleBoundToken(t *testing.T) {
	tokens := NewTokenIssuer(TokenConfig{Secret: "test-secret", TTL: time.Hour})
	svc := NewService(setupAuthTestDB(t), tokens)

	if _, err := svc.Signup("mod", "pw", db.RoleModerator); err != nil {
		t.Fatalf("signup: %v", err)
	}

	token, role, err := svc.Login("mod", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if role != db.RoleModerator {
		t.Fatalf("expected role moderator, got %q", role)
	}

	claims, err := tokens.Parse(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Username != "mod" || claims.Role != db.RoleModerator {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Fatalf("unexpected expiry %v", claims.ExpiresAt)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Signup("amira", "right-pw", ""); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, _, err := svc.Login("amira", "wrong-pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login("nobody", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestEnsureUserIsIdempotent(t *testing.T) {
	svc := newTestService(t)

	if err := svc.EnsureUser("root", "root-pw", db.RoleAdmin); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if err := svc.EnsureUser("root", "other-pw", db.RoleAdmin); err != nil {
		t.Fatalf("second ensure: %v", err)
	}

	// Blank credentials are a no-op, not an error.
	if err := svc.EnsureUser("", "", db.RoleAdmin); err != nil {
		t.Fatalf("blank ensure: %v", err)
	}

	var count int64
	if err := svc.db.Model(&db.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one user, got %d", count)
	}
}
