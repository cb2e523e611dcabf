package service

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"hallohallo/internal/model"
	"hallohallo/internal/pkg"
	"hallohallo/internal/repository/mysql"
)

// ListingService covers the two root listing types: job offers and
// real-estate listings. Listings are create-only; there is deliberately no
// delete cascade for them.
type ListingService struct {
	jobs       *mysql.JobRepository
	realEstate *mysql.RealEstateRepository
	userRepo   *mysql.UserRepository
	outbox     *mysql.OutboxRepository
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{
		jobs:       &mysql.JobRepository{DB: db},
		realEstate: &mysql.RealEstateRepository{DB: db},
		userRepo:   &mysql.UserRepository{DB: db},
		outbox:     &mysql.OutboxRepository{DB: db},
	}
}

type JobInput struct {
	Title        string
	Company      string
	Location     string
	Content      string
	ContactEmail string
	ContactPhone string
}

func (s *ListingService) CreateJob(ctx context.Context, ident *Identity, in JobInput) (*model.JobOffer, error) {
	if err := Authenticated(ident); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, errors.New("title required")
	}
	authorName, err := s.authorName(ident.ID)
	if err != nil {
		return nil, err
	}

	job := &model.JobOffer{
		AuthorID:   ident.ID,
		Slug:       pkg.SlugWithSuffix(in.Title),
		Title:      in.Title,
		Company:    in.Company,
		Location:   in.Location,
		Content:    in.Content,
		SearchText: pkg.BuildSearchText(in.Title, in.Company, in.Location, in.Content, authorName),
	}
	var contact *model.JobContact
	if in.ContactEmail != "" || in.ContactPhone != "" {
		contact = &model.JobContact{Email: in.ContactEmail, Phone: in.ContactPhone}
	}
	if err := s.jobs.Create(job, contact); err != nil {
		return nil, err
	}
	s.publish(ctx, "job.published", ident.ID, model.ResourceJob, job.ID)
	return job, nil
}

type RealEstateInput struct {
	Title        string
	Address      string
	Price        int64
	Content      string
	ContactEmail string
	ContactPhone string
}

func (s *ListingService) CreateRealEstate(ctx context.Context, ident *Identity, in RealEstateInput) (*model.RealEstateListing, error) {
	if err := Authenticated(ident); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, errors.New("title required")
	}
	authorName, err := s.authorName(ident.ID)
	if err != nil {
		return nil, err
	}

	listing := &model.RealEstateListing{
		AuthorID:   ident.ID,
		Slug:       pkg.SlugWithSuffix(in.Title),
		Title:      in.Title,
		Address:    in.Address,
		Price:      in.Price,
		Content:    in.Content,
		SearchText: pkg.BuildSearchText(in.Title, in.Address, in.Content, authorName),
	}
	var contact *model.RealEstateContact
	if in.ContactEmail != "" || in.ContactPhone != "" {
		contact = &model.RealEstateContact{Email: in.ContactEmail, Phone: in.ContactPhone}
	}
	if err := s.realEstate.Create(listing, contact); err != nil {
		return nil, err
	}
	s.publish(ctx, "realestate.published", ident.ID, model.ResourceRealEstate, listing.ID)
	return listing, nil
}

// UpdateJobContact replaces the single contact row. Author only.
func (s *ListingService) UpdateJobContact(ctx context.Context, ident *Identity, jobID uint64, email, phone string) error {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound
		}
		return err
	}
	if err := Authorize(ident, job.AuthorID); err != nil {
		return err
	}
	return s.jobs.UpsertContact(&model.JobContact{JobID: jobID, Email: email, Phone: phone})
}

func (s *ListingService) UpdateRealEstateContact(ctx context.Context, ident *Identity, listingID uint64, email, phone string) error {
	listing, err := s.realEstate.FindByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound
		}
		return err
	}
	if err := Authorize(ident, listing.AuthorID); err != nil {
		return err
	}
	return s.realEstate.UpsertContact(&model.RealEstateContact{ListingID: listingID, Email: email, Phone: phone})
}

func (s *ListingService) GetJob(ctx context.Context, id uint64) (*model.JobOffer, *model.JobContact, error) {
	job, err := s.jobs.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, pkg.ErrNotFound
		}
		return nil, nil, err
	}
	contact, err := s.jobs.ContactOf(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return job, nil, nil
	}
	return job, contact, err
}

func (s *ListingService) GetRealEstate(ctx context.Context, id uint64) (*model.RealEstateListing, *model.RealEstateContact, error) {
	listing, err := s.realEstate.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, pkg.ErrNotFound
		}
		return nil, nil, err
	}
	contact, err := s.realEstate.ContactOf(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return listing, nil, nil
	}
	return listing, contact, err
}

func (s *ListingService) ListJobs(ctx context.Context, page, size int) ([]model.JobOffer, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	return s.jobs.List((page-1)*size, size)
}

func (s *ListingService) ListRealEstate(ctx context.Context, page, size int) ([]model.RealEstateListing, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	return s.realEstate.List((page-1)*size, size)
}

func (s *ListingService) SearchJobs(ctx context.Context, query string, limit int) ([]model.JobOffer, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.jobs.Search(query, limit)
}

func (s *ListingService) SearchRealEstate(ctx context.Context, query string, limit int) ([]model.RealEstateListing, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.realEstate.Search(query, limit)
}

func (s *ListingService) publish(ctx context.Context, event string, actorID uint64, resourceType string, resourceID uint64) {
	payload, _ := json.Marshal(map[string]any{"resource_id": resourceID})
	// Best effort: a lost publication event never blocks the listing itself.
	_ = s.outbox.Insert(ctx, &model.ContentOutbox{
		EventType:    event,
		ActorID:      actorID,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Payload:      string(payload),
	})
}

func (s *ListingService) authorName(userID uint64) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}
