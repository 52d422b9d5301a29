package identity

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"yatrasetu/src/models"
	"yatrasetu/src/types"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrStore              = errors.New("identity store error")
)

const tokenTTL = 7 * 24 * time.Hour

// Service maps callers to user ids: registration, login, and bearer-token
// verification. Passwords are stored as bcrypt hashes, never plaintext.
type Service struct {
	db     *gorm.DB
	secret []byte
}

func New(db *gorm.DB, secret []byte) *Service {
	return &Service{db: db, secret: secret}
}

func (s *Service) Register(params *types.RegisterUserRequestBody) (uint, error) {
	role := types.UserRole(params.Role)
	if params.Role == "" {
		role = types.ROLE_PASSENGER
	}
	if !role.Valid() {
		return 0, fmt.Errorf("%w: unknown role %q", ErrInvalidCredentials, params.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStore, err)
	}

	user := models.User{
		Name:     params.Name,
		Email:    params.Email,
		Password: string(hash),
		Phone:    params.Phone,
		Role:     role,
		Rating:   5.0,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.User{}).
			Where("email = ?", params.Email).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return 0, ErrEmailTaken
		}
		log.Printf("Error registering user: %s\n", err.Error())
		return 0, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return user.ID, nil
}

func (s *Service) Login(email, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.
		Model(&models.User{}).
		Where("email = ?", email).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *Service) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := types.Claims{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStore, err)
	}
	return signed, nil
}

// Verify parses a bearer token and resolves the user id in its subject.
func (s *Service) Verify(tokenString string) (*types.Claims, uint, error) {
	claims := &types.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, 0, ErrInvalidToken
	}
	uid, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, 0, ErrInvalidToken
	}
	return claims, uint(uid), nil
}

// GetUser is the middleware's existence check for the resolved subject.
func (s *Service) GetUser(id uint) (*models.User, error) {
	var user models.User
	err := s.db.
		Model(&models.User{}).
		Where(&models.User{ID: id}).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return &user, nil
}
