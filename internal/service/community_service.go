package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"hallohallo/internal/model"
	"hallohallo/internal/pkg"
	"hallohallo/internal/repository/mysql"
)

type CommunityService struct {
	repo       *mysql.CommunityRepository
	memberRepo *mysql.CommunityMemberRepository
	userRepo   *mysql.UserRepository
	cascade    *mysql.CascadeRepository
	mailer     *pkg.Mailer // nil disables invite notifications
}

func NewCommunityService(db *gorm.DB, mailer *pkg.Mailer) *CommunityService {
	return &CommunityService{
		repo:       &mysql.CommunityRepository{DB: db},
		memberRepo: &mysql.CommunityMemberRepository{DB: db},
		userRepo:   &mysql.UserRepository{DB: db},
		cascade:    &mysql.CascadeRepository{DB: db},
		mailer:     mailer,
	}
}

func (s *CommunityService) Create(ctx context.Context, ident *Identity, name, description, privacy string) (*model.Community, error) {
	if err := Authenticated(ident); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.New("community name required")
	}
	if privacy == "" {
		privacy = model.PrivacyPublic
	}
	if !model.ValidPrivacy(privacy) {
		return nil, fmt.Errorf("invalid privacy mode %q", privacy)
	}

	authorName, err := s.authorName(ident.ID)
	if err != nil {
		return nil, err
	}

	community := &model.Community{
		Name:        name,
		Slug:        pkg.Slugify(name),
		Description: description,
		Privacy:     privacy,
		AuthorID:    ident.ID,
		SearchText:  pkg.BuildSearchText(name, description, authorName),
	}

	if _, err := s.repo.Create(community); err != nil {
		return nil, err
	}
	return community, nil
}

// Update rewrites name/description/privacy and the search projection. Author
// only.
func (s *CommunityService) Update(ctx context.Context, ident *Identity, id uint64, name, description, privacy string) error {
	community, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound
		}
		return err
	}
	if err := Authorize(ident, community.AuthorID); err != nil {
		return err
	}
	if name == "" {
		name = community.Name
	}
	if privacy == "" {
		privacy = community.Privacy
	}
	if !model.ValidPrivacy(privacy) {
		return fmt.Errorf("invalid privacy mode %q", privacy)
	}

	authorName, err := s.authorName(community.AuthorID)
	if err != nil {
		return err
	}

	return s.repo.Update(id, map[string]any{
		"name":        name,
		"description": description,
		"privacy":     privacy,
		"search_text": pkg.BuildSearchText(name, description, authorName),
	})
}

// Delete cascades over every post, comment, reply, like and membership under
// the community before removing the community row itself. Re-invoking on an
// already-deleted community is a no-op.
func (s *CommunityService) Delete(ctx context.Context, ident *Identity, id uint64) error {
	if err := Authenticated(ident); err != nil {
		return err
	}
	community, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := Authorize(ident, community.AuthorID); err != nil {
		return err
	}
	return s.cascade.DeleteCommunityTree(ctx, ident.ID, community)
}

func (s *CommunityService) Join(ctx context.Context, ident *Identity, communityID uint64) error {
	if err := Authenticated(ident); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound
		}
		return err
	}
	return s.memberRepo.Join(&model.CommunityMember{
		CommunityID: communityID,
		UserID:      ident.ID,
		Role:        model.RoleMember,
	})
}

func (s *CommunityService) Leave(ctx context.Context, ident *Identity, communityID uint64) error {
	if err := Authenticated(ident); err != nil {
		return err
	}
	return s.memberRepo.Leave(communityID, ident.ID)
}

// Invite adds a user to a community. The caller must hold the admin or
// moderator role there. The invited user gets a best-effort notification
// mail.
func (s *CommunityService) Invite(ctx context.Context, ident *Identity, communityID, userID uint64) error {
	if err := Authenticated(ident); err != nil {
		return err
	}
	community, err := s.repo.FindByID(communityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound
		}
		return err
	}
	role, err := s.memberRepo.RoleOf(communityID, ident.ID)
	if err != nil {
		return err
	}
	if role != model.RoleAdmin && role != model.RoleModerator {
		return pkg.ErrNotAuthorized
	}

	invitee, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound
		}
		return err
	}

	if err := s.memberRepo.Join(&model.CommunityMember{
		CommunityID: communityID,
		UserID:      userID,
		Role:        model.RoleMember,
	}); err != nil {
		return err
	}

	if s.mailer != nil {
		inviterName, _ := s.authorName(ident.ID)
		if err := s.mailer.Send(invitee.Email, "Community invitation",
			pkg.InviteHTML(community.Name, inviterName)); err != nil {
			slog.Warn("invite mail failed", "community_id", communityID,
				"user_id", userID, "err", err)
		}
	}
	return nil
}

func (s *CommunityService) Get(ctx context.Context, id uint64) (*model.Community, error) {
	community, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	return community, err
}

func (s *CommunityService) GetBySlug(ctx context.Context, slug string) (*model.Community, error) {
	community, err := s.repo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	return community, err
}

func (s *CommunityService) List(ctx context.Context, page, size int) ([]model.Community, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	return s.repo.List((page-1)*size, size)
}

func (s *CommunityService) Search(ctx context.Context, query string, limit int) ([]model.Community, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.repo.Search(query, limit)
}

func (s *CommunityService) authorName(userID uint64) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}
