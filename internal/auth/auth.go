package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pautadigital/noticias-api/internal/db"
	"github.com/pautadigital/noticias-api/internal/noticias"
)

const bcryptCost = 10

// Resolver turns a credential token into an authenticated identity. The
// domain core never sees tokens; handlers resolve first and pass the
// identity in.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*noticias.Identity, error)
}

// UserStore is the slice of the repository the auth service needs.
type UserStore interface {
	UserByID(ctx context.Context, userID int) (*db.User, error)
	UserByUsername(ctx context.Context, username string) (*db.User, error)
	UserByEmail(ctx context.Context, email string) (*db.User, error)
	InsertUser(ctx context.Context, user *db.User) error
}

type Service struct {
	store  UserStore
	secret []byte
	ttl    time.Duration
	log    *slog.Logger
}

func NewService(store UserStore, secret string, ttl time.Duration, log *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Service{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		log:    log,
	}
}

// Login verifies a username/password pair and issues a signed token. A
// missing user and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("username or password missing: %w", noticias.ErrValidation)
	}

	user, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("db get user by username: %w", err)
	}
	if user == nil {
		return "", fmt.Errorf("invalid username or password: %w", noticias.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid username or password: %w", noticias.ErrUnauthorized)
	}

	s.log.Info("user logged in", "username", username)
	return s.issueToken(user.ID)
}

// Register creates a user with a bcrypt password hash and issues a token.
func (s *Service) Register(ctx context.Context, username, email, password string) (string, error) {
	if username == "" || email == "" || password == "" {
		return "", fmt.Errorf("username, email or password missing: %w", noticias.ErrValidation)
	}
	if len(username) < 3 {
		return "", fmt.Errorf("username must be at least 3 characters: %w", noticias.ErrValidation)
	}

	existing, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("db get user by username: %w", err)
	}
	if existing != nil {
		return "", fmt.Errorf("username already taken: %w", noticias.ErrValidation)
	}

	existing, err = s.store.UserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("db get user by email: %w", err)
	}
	if existing != nil {
		return "", fmt.Errorf("email already taken: %w", noticias.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &db.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.store.InsertUser(ctx, user); err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}

	s.log.Info("user registered", "username", username)
	return s.issueToken(user.ID)
}

// Resolve verifies a token and loads the identity fresh from the store, so
// an isAdmin change or a deleted account takes effect on the next request.
func (s *Service) Resolve(ctx context.Context, token string) (*noticias.Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("token missing or invalid: %w", noticias.ErrUnauthorized)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, fmt.Errorf("token missing or invalid: %w", noticias.ErrUnauthorized)
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("token missing or invalid: %w", noticias.ErrUnauthorized)
	}

	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("db get user by id: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("token missing or invalid: %w", noticias.ErrUnauthorized)
	}

	return &noticias.Identity{ID: user.ID, IsAdmin: user.IsAdmin}, nil
}

func (s *Service) issueToken(userID int) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}
