package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hallohallo/internal/model"
	"hallohallo/internal/repository/mysql"
)

type BookmarkService struct {
	bookmarks  *mysql.BookmarkRepository
	jobs       *mysql.JobRepository
	realEstate *mysql.RealEstateRepository
}

func NewBookmarkService(db *gorm.DB) *BookmarkService {
	return &BookmarkService{
		bookmarks:  &mysql.BookmarkRepository{DB: db},
		jobs:       &mysql.JobRepository{DB: db},
		realEstate: &mysql.RealEstateRepository{DB: db},
	}
}

// ResolvedBookmark carries the bookmark row plus whichever target it points
// at. Exactly one of Job/RealEstate is set unless the target has vanished, in
// which case Gone is true.
type ResolvedBookmark struct {
	Bookmark   model.Bookmark           `json:"bookmark"`
	Job        *model.JobOffer          `json:"job,omitempty"`
	RealEstate *model.RealEstateListing `json:"real_estate,omitempty"`
	Gone       bool                     `json:"gone,omitempty"`
}

func (s *BookmarkService) Toggle(ctx context.Context, ident *Identity, resourceID uint64, resourceType string) (bool, error) {
	if err := Authenticated(ident); err != nil {
		return false, err
	}
	if !model.ValidResourceType(resourceType) {
		return false, fmt.Errorf("invalid resource type %q", resourceType)
	}
	return s.bookmarks.Toggle(ctx, ident.ID, resourceID, resourceType)
}

// List resolves the caller's bookmarks polymorphically, branching on the
// resource type tag.
func (s *BookmarkService) List(ctx context.Context, ident *Identity) ([]ResolvedBookmark, error) {
	if err := Authenticated(ident); err != nil {
		return nil, err
	}
	rows, err := s.bookmarks.ListByUser(ctx, ident.ID)
	if err != nil {
		return nil, err
	}

	out := make([]ResolvedBookmark, 0, len(rows))
	for _, row := range rows {
		resolved := ResolvedBookmark{Bookmark: row}
		switch row.ResourceType {
		case model.ResourceJob:
			job, err := s.jobs.FindByID(row.ResourceID)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, err
				}
				resolved.Gone = true
			} else {
				resolved.Job = job
			}
		case model.ResourceRealEstate:
			listing, err := s.realEstate.FindByID(row.ResourceID)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, err
				}
				resolved.Gone = true
			} else {
				resolved.RealEstate = listing
			}
		default:
			resolved.Gone = true
		}
		out = append(out, resolved)
	}
	return out, nil
}
