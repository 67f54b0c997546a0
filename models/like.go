package models

import (
	"time"
)

// Like is unique per (user, photo); a duplicate like is a conflict, not a
// silent success.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	PhotoID   uint      `json:"photoId" gorm:"column:photo_id;not null;uniqueIndex:idx_like_once"`
	UserID    uint      `json:"userId" gorm:"column:user_id;not null;uniqueIndex:idx_like_once"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
