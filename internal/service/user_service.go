package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hallohallo/internal/model"
	"hallohallo/internal/pkg"
	"hallohallo/internal/repository/mysql"
)

// TokenStore holds the single live access token per user. The redis
// repository implements it in production; tests plug in a map.
type TokenStore interface {
	Save(ctx context.Context, userID uint64, token string) error
	Get(ctx context.Context, userID uint64) (string, error)
	Extend(ctx context.Context, userID uint64) error
	Delete(ctx context.Context, userID uint64) error
}

type UserService struct {
	repo   *mysql.UserRepository
	tokens TokenStore
	tm     *pkg.TokenManager
}

func NewUserService(db *gorm.DB, tokens TokenStore, tm *pkg.TokenManager) *UserService {
	return &UserService{
		repo:   &mysql.UserRepository{DB: db},
		tokens: tokens,
		tm:     tm,
	}
}

func (s *UserService) Register(ctx context.Context, username, password, email string) (*model.User, error) {
	if username == "" || password == "" || email == "" {
		return nil, errors.New("username, password and email required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username: username,
		Password: string(hash),
		Email:    email,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, errors.New("user not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errors.New("invalid password")
	}
	pair, err := s.tm.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Save(ctx, user.ID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *UserService) Logout(ctx context.Context, userID uint64) error {
	return s.tokens.Delete(ctx, userID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return s.tm.Refresh(refreshToken)
}

func (s *UserService) ChangePassword(ctx context.Context, userID uint64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return errors.New("old password is incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(user, string(hash)); err != nil {
		return err
	}
	// Force re-login everywhere.
	return s.tokens.Delete(ctx, userID)
}

// Profile returns the public identity used across the app.
func (s *UserService) Profile(ctx context.Context, userID uint64) (*model.User, error) {
	user, err := s.repo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	return user, err
}
