package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hallohallo/internal/model"
	"hallohallo/internal/pkg"
	"hallohallo/internal/repository/mysql"
)

type PostService struct {
	repo       *mysql.PostRepository
	memberRepo *mysql.CommunityMemberRepository
	userRepo   *mysql.UserRepository
	cascade    *mysql.CascadeRepository
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		repo:       &mysql.PostRepository{DB: db},
		memberRepo: &mysql.CommunityMemberRepository{DB: db},
		userRepo:   &mysql.UserRepository{DB: db},
		cascade:    &mysql.CascadeRepository{DB: db},
	}
}

func (s *PostService) Create(ctx context.Context, ident *Identity, communityID uint64, title, content string) (*model.Post, error) {
	if err := Authenticated(ident); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errors.New("title required")
	}

	ok, err := s.memberRepo.IsMember(communityID, ident.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: not a community member", pkg.ErrNotAuthorized)
	}

	authorName, err := s.authorName(ident.ID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		CommunityID: communityID,
		AuthorID:    ident.ID,
		Slug:        pkg.SlugWithSuffix(title),
		Title:       title,
		Content:     content,
		SearchText:  pkg.BuildSearchText(title, content, authorName),
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update rewrites title/content and recomputes the search projection. Author
// only.
func (s *PostService) Update(ctx context.Context, ident *Identity, id uint64, title, content string) error {
	post, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound
		}
		return err
	}
	if err := Authorize(ident, post.AuthorID); err != nil {
		return err
	}
	if title == "" {
		title = post.Title
	}

	authorName, err := s.authorName(post.AuthorID)
	if err != nil {
		return err
	}

	return s.repo.Update(id, map[string]any{
		"title":       title,
		"content":     content,
		"search_text": pkg.BuildSearchText(title, content, authorName),
	})
}

// Delete cascades from the post level: comments, replies and every like row
// under them go first. Deleting a post that is already gone (for instance via
// its community's cascade) is a no-op, which makes retries safe.
func (s *PostService) Delete(ctx context.Context, ident *Identity, id uint64) error {
	if err := Authenticated(ident); err != nil {
		return err
	}
	post, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := Authorize(ident, post.AuthorID); err != nil {
		return err
	}
	return s.cascade.DeletePostTree(ctx, ident.ID, post)
}

func (s *PostService) Get(ctx context.Context, id uint64) (*model.Post, error) {
	post, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	return post, err
}

func (s *PostService) ListByCommunity(ctx context.Context, communityID uint64, page, size int) ([]model.Post, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	return s.repo.ListByCommunity(communityID, (page-1)*size, size)
}

// ListByCommunityCursor pages with a (created_at, id) cursor; zero values mean
// first page. Returns the cursor for the next page.
func (s *PostService) ListByCommunityCursor(ctx context.Context, communityID uint64, lastID uint64, lastCreatedAt int64, size int) ([]model.Post, uint64, int64, error) {
	if size <= 0 || size > 50 {
		size = 20
	}
	list, err := s.repo.ListByCommunityCursor(communityID, lastID, lastCreatedAt, size)
	if err != nil {
		return nil, 0, 0, err
	}
	var nextID uint64
	var nextTS int64
	if len(list) > 0 {
		last := list[len(list)-1]
		nextID = last.ID
		nextTS = last.CreatedAt.Unix()
	}
	return list, nextID, nextTS, nil
}

func (s *PostService) Search(ctx context.Context, query string, limit int) ([]model.Post, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.repo.Search(query, limit)
}

func (s *PostService) authorName(userID uint64) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}
