package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gin-pantry/models"
	"gin-pantry/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IAuthService interface {
	Signup(ctx context.Context, email string, password string, name string) (*models.User, string, error)
	Login(ctx context.Context, email string, password string) (*models.User, string, error)
	GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error)
	CurrentUser(ctx context.Context, userID uint) (*models.User, error)
	Logout(tokenString string) error
	RequestPasswordReset(ctx context.Context, email string) error
}

type AuthService struct {
	repository      repositories.IAuthRepository
	tokenRepository repositories.ITokenRepository
	secretKey       []byte
	tokenTTL        time.Duration
}

func NewAuthService(repository repositories.IAuthRepository, tokenRepository repositories.ITokenRepository, secretKey string, tokenTTL time.Duration) IAuthService {
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
		secretKey:       []byte(secretKey),
		tokenTTL:        tokenTTL,
	}
}

func (s *AuthService) Signup(ctx context.Context, email string, password string, name string) (*models.User, string, error) {
	email = normalizeEmail(email)
	if _, err := s.repository.FindUser(ctx, email); err == nil {
		return nil, "", ErrEmailInUse
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     strings.TrimSpace(name),
	}
	if err := s.repository.CreateUser(ctx, &user, models.DefaultPreference(0)); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailInUse
		}
		return nil, "", err
	}

	token, err := s.CreateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (*models.User, string, error) {
	foundUser, err := s.repository.FindUser(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.CreateToken(foundUser.ID, foundUser.Email)
	if err != nil {
		return nil, "", err
	}
	return foundUser, token, nil
}

func (s *AuthService) CreateToken(userID uint, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   fmt.Sprint(userID),
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.secretKey)
}

func (s *AuthService) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(tokenString)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, ErrTokenBlacklisted
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrInvalidToken
	}
	var userID uint
	if _, err := fmt.Sscan(subject, &userID); err != nil {
		return nil, ErrInvalidToken
	}

	// the account may have been deleted after the token was issued
	return s.repository.FindUserByID(ctx, userID)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.repository.FindUserByID(ctx, userID)
}

func (s *AuthService) Logout(tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(s.tokenTTL).Unix()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Unix()
	}

	return s.tokenRepository.AddBlacklistedToken(tokenString, expiresAt)
}

// RequestPasswordReset only confirms the account exists; no reset mail is sent.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := s.repository.FindUser(ctx, normalizeEmail(email))
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
