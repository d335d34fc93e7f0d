// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing/refreshing JWTs
// plus server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fitprogress/internal/common"
	"fitprogress/internal/dbx"
	"fitprogress/internal/server/auth"
	"fitprogress/internal/server/config"
	"fitprogress/internal/server/models"
	"fitprogress/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides account and authentication operations:
// - RegisterProfessor / RegisterStudent: create accounts
// - Login: verify credentials and mint tokens
// - RefreshToken: rotate refresh tokens and mint new access tokens
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// RegisterProfessor creates a professor account. Duplicate emails yield
// common.ErrEmailAlreadyRegistered.
func (s *UserService) RegisterProfessor(ctx context.Context, name, email, password string) (*models.User, error) {
	return s.register(ctx, name, email, password, models.RoleProfessor, "")
}

// RegisterStudent creates a student account supervised by professorID.
func (s *UserService) RegisterStudent(ctx context.Context, professorID, name, email, password string) (*models.User, error) {
	return s.register(ctx, name, email, password, models.RoleStudent, professorID)
}

func (s *UserService) register(ctx context.Context, name, email, password string, role models.Role, professorID string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		ProfessorID:  professorID,
		NotificationSettings: models.NotificationSettings{
			Measurements: true,
			Photos:       true,
			Reminders:    true,
		},
	}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyRegistered) {
			return nil, common.ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the email/password pair and, on success, returns the user
// and a new TokenPair. Bad credentials yield common.ErrorUnauthorized
// without distinguishing unknown emails from wrong passwords.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, nil, common.ErrorUnauthorized
	}
	pair, err := s.generateTokenPair(ctx, user, s.db)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading token owner: %w", err)
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.RefreshTokens(tx)
		if err := repoTx.Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, user, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// GetByID loads a user by id.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// ListStudents returns the students supervised by professorID.
func (s *UserService) ListStudents(ctx context.Context, professorID string) ([]*models.User, error) {
	return s.repomanager.Users(s.db).ListStudents(ctx, professorID)
}

// CheckStudentAccess verifies that professorID supervises studentID and
// returns the student. Any other pairing yields common.ErrorForbidden.
func (s *UserService) CheckStudentAccess(ctx context.Context, professorID, studentID string) (*models.User, error) {
	student, err := s.repomanager.Users(s.db).GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.Role != models.RoleStudent || student.ProfessorID != professorID {
		return nil, common.ErrorForbidden
	}
	return student, nil
}

// UpdateFCMToken stores the user's push-notification device token.
func (s *UserService) UpdateFCMToken(ctx context.Context, userID, token string) error {
	return s.repomanager.Users(s.db).UpdateFCMToken(ctx, userID, token)
}

// UpdateNotificationSettings replaces the user's notification preferences.
func (s *UserService) UpdateNotificationSettings(ctx context.Context, userID string, settings models.NotificationSettings) error {
	return s.repomanager.Users(s.db).UpdateNotificationSettings(ctx, userID, settings)
}

// --- helpers below ---

func (s *UserService) generateAccessToken(user *models.User) (string, error) {
	return auth.GenerateToken(user, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, user *models.User, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(user)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	refreshRepo := s.repomanager.RefreshTokens(tx)
	if err := refreshRepo.Create(ctx, user.ID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
