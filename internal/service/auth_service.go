package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusconnect/backend/internal/config"
)

// Role distinguishes student vs admin sessions.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Claims extends JWT standard claims with the session role.
type Claims struct {
	jwt.RegisteredClaims
	Role        Role   `json:"role"`
	StudentName string `json:"student_name,omitempty"` // Student only
}

// Identity is the request-scoped view of who is calling. The zero value is anonymous.
type Identity struct {
	TokenID     string
	StudentID   string
	StudentName string
	IsAdmin     bool
}

func (i Identity) IsStudent() bool { return i.StudentID != "" }

// Session is an issued token with its expiry.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Identity  Identity
}

// AuthService handles admin credentials, session tokens, and revocation.
type AuthService struct {
	cfg       *config.Config
	sessions  SessionStore
	adminHash []byte
}

// NewAuthService creates a new AuthService. When no admin password hash is
// configured, the plain admin password is hashed once here.
func NewAuthService(cfg *config.Config, sessions SessionStore) (*AuthService, error) {
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 {
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		hash = h
	}
	return &AuthService{cfg: cfg, sessions: sessions, adminHash: hash}, nil
}

// AuthenticateAdmin checks the shared administrator credential.
func (s *AuthService) AuthenticateAdmin(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueStudentSession creates a session token carrying only the student identity.
func (s *AuthService) IssueStudentSession(ctx context.Context, studentID, name string) (*Session, error) {
	return s.issue(ctx, Identity{StudentID: studentID, StudentName: name}, RoleStudent)
}

// IssueAdminSession creates a session token carrying only the admin flag.
func (s *AuthService) IssueAdminSession(ctx context.Context) (*Session, error) {
	return s.issue(ctx, Identity{IsAdmin: true}, RoleAdmin)
}

func (s *AuthService) issue(ctx context.Context, id Identity, role Role) (*Session, error) {
	jti := uuid.New().String()
	now := time.Now()
	expires := now.Add(s.cfg.SessionTTL)

	subject := id.StudentID
	if role == RoleAdmin {
		subject = s.cfg.AdminUsername
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Role:        role,
		StudentName: id.StudentName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	if err := s.sessions.Save(ctx, jti, subject, s.cfg.SessionTTL); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	id.TokenID = jti
	return &Session{Token: signed, ExpiresAt: expires, Identity: id}, nil
}

// ValidateSession parses a token and confirms it has not been revoked.
func (s *AuthService) ValidateSession(ctx context.Context, tokenStr string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return Identity{}, ErrInvalidSession
	}

	live, err := s.sessions.Exists(ctx, claims.ID)
	if err != nil {
		return Identity{}, fmt.Errorf("check session: %w", err)
	}
	if !live {
		return Identity{}, ErrInvalidSession
	}

	switch claims.Role {
	case RoleAdmin:
		return Identity{TokenID: claims.ID, IsAdmin: true}, nil
	case RoleStudent:
		if claims.Subject == "" {
			return Identity{}, ErrInvalidSession
		}
		return Identity{TokenID: claims.ID, StudentID: claims.Subject, StudentName: claims.StudentName}, nil
	default:
		return Identity{}, fmt.Errorf("%w: unknown role %q", ErrInvalidSession, claims.Role)
	}
}

// Revoke ends a session before its token expires.
func (s *AuthService) Revoke(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, tokenID)
}
