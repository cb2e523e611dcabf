package mysql

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hallohallo/internal/model"
)

type JobRepository struct {
	DB *gorm.DB
}

// Create inserts the offer and its contact side row in one transaction.
func (r *JobRepository) Create(job *model.JobOffer, contact *model.JobContact) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		if contact == nil {
			return nil
		}
		contact.JobID = job.ID
		return tx.Create(contact).Error
	})
}

func (r *JobRepository) FindByID(id uint64) (*model.JobOffer, error) {
	var job model.JobOffer
	err := r.DB.First(&job, id).Error
	return &job, err
}

func (r *JobRepository) FindBySlug(slug string) (*model.JobOffer, error) {
	var job model.JobOffer
	err := r.DB.Where("slug = ?", slug).First(&job).Error
	return &job, err
}

func (r *JobRepository) List(offset, limit int) ([]model.JobOffer, error) {
	var list []model.JobOffer
	err := r.DB.Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *JobRepository) Search(query string, limit int) ([]model.JobOffer, error) {
	var list []model.JobOffer
	err := r.DB.Where("search_text LIKE ?", "%"+query+"%").
		Order("id desc").Limit(limit).Find(&list).Error
	return list, err
}

func (r *JobRepository) ContactOf(jobID uint64) (*model.JobContact, error) {
	var contact model.JobContact
	err := r.DB.Where("job_id = ?", jobID).First(&contact).Error
	return &contact, err
}

// UpsertContact replaces the single contact row for an offer.
func (r *JobRepository) UpsertContact(contact *model.JobContact) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "phone", "updated_at"}),
	}).Create(contact).Error
}

type RealEstateRepository struct {
	DB *gorm.DB
}

func (r *RealEstateRepository) Create(listing *model.RealEstateListing, contact *model.RealEstateContact) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(listing).Error; err != nil {
			return err
		}
		if contact == nil {
			return nil
		}
		contact.ListingID = listing.ID
		return tx.Create(contact).Error
	})
}

func (r *RealEstateRepository) FindByID(id uint64) (*model.RealEstateListing, error) {
	var listing model.RealEstateListing
	err := r.DB.First(&listing, id).Error
	return &listing, err
}

func (r *RealEstateRepository) FindBySlug(slug string) (*model.RealEstateListing, error) {
	var listing model.RealEstateListing
	err := r.DB.Where("slug = ?", slug).First(&listing).Error
	return &listing, err
}

func (r *RealEstateRepository) List(offset, limit int) ([]model.RealEstateListing, error) {
	var list []model.RealEstateListing
	err := r.DB.Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *RealEstateRepository) Search(query string, limit int) ([]model.RealEstateListing, error) {
	var list []model.RealEstateListing
	err := r.DB.Where("search_text LIKE ?", "%"+query+"%").
		Order("id desc").Limit(limit).Find(&list).Error
	return list, err
}

func (r *RealEstateRepository) ContactOf(listingID uint64) (*model.RealEstateContact, error) {
	var contact model.RealEstateContact
	err := r.DB.Where("listing_id = ?", listingID).First(&contact).Error
	return &contact, err
}

func (r *RealEstateRepository) UpsertContact(contact *model.RealEstateContact) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "listing_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "phone", "updated_at"}),
	}).Create(contact).Error
}
