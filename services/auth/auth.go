package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/samber/mo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/archanap13u/track-back/core"
	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/models"
)

// AdminsRepository is the storage AuthService reads admins from
type AdminsRepository interface {
	GetAdminByID(ctx context.Context, id string) (mo.Option[*models.Admin], error)
	GetAdminByUsername(ctx context.Context, username string) (mo.Option[*models.Admin], error)
}

// dummyHash is compared against when the username does not exist
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("track-back-dummy-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to generate dummy bcrypt hash: %v", err))
	}
	return hash
})

type AuthService struct {
	adminsRepo AdminsRepository
	jwtSecret  []byte
	now        func() time.Time
}

func NewAuthService(adminsRepo AdminsRepository, jwtSecret string) *AuthService {
	return &AuthService{
		adminsRepo: adminsRepo,
		jwtSecret:  []byte(jwtSecret),
		now:        time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	log.Info(ctx, "📋 Starting admin login", zap.String("username", username))

	maybeAdmin, err := s.adminsRepo.GetAdminByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}

	admin, ok := maybeAdmin.Get()
	if !ok {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		log.Warn(ctx, "❌ Login rejected, unknown username", zap.String("username", username))
		return nil, core.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		log.Warn(ctx, "❌ Login rejected, wrong password", zap.String("username", username))
		return nil, core.ErrInvalidCredentials
	}

	token, expiresAt, err := s.issueToken(admin.ID)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, "📋 Completed successfully - admin logged in", zap.String("admin_id", admin.ID))
	return &models.LoginResult{Token: token, ExpiresAt: expiresAt, Admin: admin}, nil
}

func (s *AuthService) VerifyToken(ctx context.Context, token string) (*models.Admin, error) {
	adminID, err := s.parseToken(token)
	if err != nil {
		return nil, err
	}

	maybeAdmin, err := s.adminsRepo.GetAdminByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by id: %w", err)
	}

	admin, ok := maybeAdmin.Get()
	if !ok {
		log.Warn(ctx, "❌ Token refers to a missing admin", zap.String("admin_id", adminID))
		return nil, core.ErrTokenInvalid
	}

	return admin, nil
}
