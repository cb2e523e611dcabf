package model

import "time"

// ContentOutbox rows record content-graph events (cascade deletes, listing
// publications) inside the same transaction that mutates the graph. A relayer
// drains pending rows to the event bus.
type ContentOutbox struct {
	ID           uint64 `gorm:"primaryKey"`
	EventType    string `gorm:"size:32;not null"` // e.g. community.deleted, post.deleted
	ActorID      uint64 `gorm:"not null"`
	ResourceType string `gorm:"size:16;not null"`
	ResourceID   uint64 `gorm:"not null"`
	Payload      string `gorm:"type:text;not null"`
	Status       int8   `gorm:"not null;default:0"` // 0=pending 1=sent 2=failed
	Retry        int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ContentOutbox) TableName() string { return "content_outbox" }
