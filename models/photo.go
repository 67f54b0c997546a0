package models

import (
	"time"
)

// Photo belongs to exactly one creator, fixed at creation. IsPremium gates
// visibility to the owner and active subscribers of the owner.
type Photo struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatorID   uint      `json:"creatorId" gorm:"column:creator_id;not null;index"`
	URL         string    `json:"url" gorm:"not null"`
	Description string    `json:"description"`
	IsPremium   bool      `json:"isPremium" gorm:"default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Photo) TableName() string {
	return "photos"
}

type PhotoUpdate struct {
	Description *string `json:"description"`
	IsPremium   *bool   `json:"isPremium"`
}

// CreatorGallery is the creator-scoped listing with partial disclosure:
// non-subscribers get at most 3 public photos as a preview but still see
// the true totals.
type CreatorGallery struct {
	HasAccess     bool    `json:"hasAccess"`
	Photos        []Photo `json:"photos"`
	PublicPhotos  []Photo `json:"publicPhotos"`
	PremiumPhotos []Photo `json:"premiumPhotos"`
	TotalCount    int     `json:"totalCount"`
	PremiumCount  int     `json:"premiumCount"`
	PreviewCount  int     `json:"previewCount,omitempty"`
}
