package model

import "time"

type JobOffer struct {
	ID         uint64 `gorm:"primaryKey"`
	AuthorID   uint64 `gorm:"not null;index"`
	Slug       string `gorm:"uniqueIndex;size:220;not null"`
	Title      string `gorm:"size:200;not null"`
	Company    string `gorm:"size:120"`
	Location   string `gorm:"size:120"`
	Content    string `gorm:"type:text"`
	SearchText string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (JobOffer) TableName() string { return "job_offers" }

// JobContact is a single-row-per-offer side table.
type JobContact struct {
	ID        uint64 `gorm:"primaryKey"`
	JobID     uint64 `gorm:"not null;uniqueIndex"`
	Email     string `gorm:"size:64"`
	Phone     string `gorm:"size:32"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (JobContact) TableName() string { return "job_contacts" }

type RealEstateListing struct {
	ID         uint64 `gorm:"primaryKey"`
	AuthorID   uint64 `gorm:"not null;index"`
	Slug       string `gorm:"uniqueIndex;size:220;not null"`
	Title      string `gorm:"size:200;not null"`
	Address    string `gorm:"size:200"`
	Price      int64  `gorm:"not null;default:0"`
	Content    string `gorm:"type:text"`
	SearchText string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (RealEstateListing) TableName() string { return "real_estate_listings" }

type RealEstateContact struct {
	ID        uint64 `gorm:"primaryKey"`
	ListingID uint64 `gorm:"not null;uniqueIndex"`
	Email     string `gorm:"size:64"`
	Phone     string `gorm:"size:32"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RealEstateContact) TableName() string { return "real_estate_contacts" }
