package models

import (
	"time"
)

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	PhotoID   uint      `json:"photoId" gorm:"column:photo_id;not null;index"`
	UserID    uint      `json:"userId" gorm:"column:user_id;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

type CommentInput struct {
	Content string `json:"content" binding:"required"`
}
