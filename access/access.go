// Package access decides which photos a viewer may see. Every check
// re-queries the subscriptions table: subscription state changes out-of-band
// through the payment webhook, so nothing here is cached.
package access

import (
	"github.com/sumeetkoyande/myFans/db"
	"github.com/sumeetkoyande/myFans/models"
)

// AnonymousViewer is the viewer id used for unauthenticated requests.
const AnonymousViewer uint = 0

// PreviewLimit caps the public preview shown to non-subscribers on a
// creator gallery.
const PreviewLimit = 3

// SubscribedCreatorIDs returns every creator the subscriber has a ledger row
// for. A row's existence is what makes a subscription active in the read path.
func SubscribedCreatorIDs(subscriberID uint) ([]uint, error) {
	var ids []uint
	err := db.DB.Model(&models.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Pluck("creator_id", &ids).Error
	return ids, err
}

// IsSubscribed reports whether a ledger row exists for the pair.
func IsSubscribed(subscriberID, creatorID uint) (bool, error) {
	var count int64
	err := db.DB.Model(&models.Subscription{}).
		Where("subscriber_id = ? AND creator_id = ?", subscriberID, creatorID).
		Count(&count).Error
	return count > 0, err
}

// CanView applies the entitlement rules: public photos are visible to
// everyone, owners always see their own photos, and premium photos require
// an active subscription to the owner.
func CanView(viewerID uint, photo models.Photo) (bool, error) {
	if !photo.IsPremium {
		return true, nil
	}
	if viewerID == AnonymousViewer {
		return false, nil
	}
	if viewerID == photo.CreatorID {
		return true, nil
	}
	return IsSubscribed(viewerID, photo.CreatorID)
}

// AccessiblePhotos returns the union of all public photos, the viewer's own
// premium photos, and premium photos of creators the viewer subscribes to,
// in that order.
func AccessiblePhotos(viewerID uint) ([]models.Photo, error) {
	var public []models.Photo
	if err := db.DB.Where("is_premium = ?", false).Find(&public).Error; err != nil {
		return nil, err
	}

	if viewerID == AnonymousViewer {
		return public, nil
	}

	var ownPremium []models.Photo
	if err := db.DB.Where("creator_id = ? AND is_premium = ?", viewerID, true).
		Find(&ownPremium).Error; err != nil {
		return nil, err
	}

	creatorIDs, err := SubscribedCreatorIDs(viewerID)
	if err != nil {
		return nil, err
	}

	var subscribedPremium []models.Photo
	if len(creatorIDs) > 0 {
		if err := db.DB.Where("is_premium = ? AND creator_id IN ?", true, creatorIDs).
			Find(&subscribedPremium).Error; err != nil {
			return nil, err
		}
	}

	photos := make([]models.Photo, 0, len(public)+len(ownPremium)+len(subscribedPremium))
	photos = append(photos, public...)
	photos = append(photos, ownPremium...)
	photos = append(photos, subscribedPremium...)
	return photos, nil
}

// CreatorGallery builds the creator-scoped listing. Owners and subscribers
// get everything newest-first; everyone else gets the true counts but only a
// capped preview of public photos. The split is computed here, in one pass
// over a single creator-scoped query, so premium URLs never reach an
// untrusted caller.
func CreatorGallery(creatorID, viewerID uint) (models.CreatorGallery, error) {
	gallery := models.CreatorGallery{
		Photos:        []models.Photo{},
		PublicPhotos:  []models.Photo{},
		PremiumPhotos: []models.Photo{},
	}

	isOwner := viewerID != AnonymousViewer && viewerID == creatorID

	isSubscribed := false
	if !isOwner && viewerID != AnonymousViewer {
		var err error
		isSubscribed, err = IsSubscribed(viewerID, creatorID)
		if err != nil {
			return gallery, err
		}
	}

	allPhotos := []models.Photo{}
	if err := db.DB.Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&allPhotos).Error; err != nil {
		return gallery, err
	}

	publicPhotos := []models.Photo{}
	premiumPhotos := []models.Photo{}
	for _, photo := range allPhotos {
		if photo.IsPremium {
			premiumPhotos = append(premiumPhotos, photo)
		} else {
			publicPhotos = append(publicPhotos, photo)
		}
	}

	gallery.TotalCount = len(allPhotos)
	gallery.PremiumCount = len(premiumPhotos)

	if isOwner || isSubscribed {
		gallery.HasAccess = true
		gallery.Photos = allPhotos
		gallery.PublicPhotos = publicPhotos
		gallery.PremiumPhotos = premiumPhotos
		return gallery, nil
	}

	preview := publicPhotos
	if len(preview) > PreviewLimit {
		preview = preview[:PreviewLimit]
	}

	gallery.HasAccess = false
	gallery.Photos = preview
	gallery.PublicPhotos = preview
	gallery.PreviewCount = len(preview)
	return gallery, nil
}
