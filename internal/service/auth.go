package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"mindlift/internal/apperr"
	"mindlift/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthService owns user records and signed session tokens. Storage is
// process-local; everything is lost on restart.
type AuthService struct {
	mu      sync.RWMutex
	users   map[string]*model.User // by id
	byEmail map[string]string      // lower-cased email -> id
	secret  []byte
}

func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		users:   make(map[string]*model.User),
		byEmail: make(map[string]string),
		secret:  []byte(jwtSecret),
	}
}

func (s *AuthService) Register(email, password, name string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" || name == "" {
		return nil, apperr.Validation("email, password, and name are required")
	}
	if !strings.Contains(email, "@") {
		return nil, apperr.Validation("invalid email address")
	}
	if len(password) < 6 {
		return nil, apperr.Validation("password must be at least 6 characters")
	}

	key := strings.ToLower(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[key]; exists {
		return nil, apperr.Conflict("user already exists with this email")
	}
	u := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	s.users[u.ID] = u
	s.byEmail[key] = u.ID
	return u, nil
}

func (s *AuthService) Authenticate(email, password string) (*model.User, error) {
	s.mu.RLock()
	id, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	var u *model.User
	if ok {
		u = s.users[id]
	}
	s.mu.RUnlock()

	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("%w: invalid email or password", apperr.ErrAuth)
	}
	return u, nil
}

func (s *AuthService) UserByID(id string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[id]
}

func (s *AuthService) IssueToken(u *model.User) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   u.ID,
		"email": u.Email,
		"name":  u.Name,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}).SignedString(s.secret)
}

// ResolveToken fails closed: any parse, signature, or expiry problem yields
// nil, never an error the caller could mistake for something recoverable.
func (s *AuthService) ResolveToken(tokenString string) *model.User {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	uid, _ := claims["uid"].(string)
	return s.UserByID(uid)
}

func (s *AuthService) TokenTTL() time.Duration { return tokenTTL }
