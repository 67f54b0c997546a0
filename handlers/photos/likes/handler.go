package likes

import (
	"net/http"
	"strconv"

	"github.com/sumeetkoyande/myFans/db"
	"github.com/sumeetkoyande/myFans/models"

	"github.com/gin-gonic/gin"
)

// @Summary Like a photo
// @Description Add a like on a photo. A second like from the same account is a conflict.
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message: Photo liked successfully"
// @Failure 404 {object} map[string]string "error: Photo not found"
// @Failure 409 {object} map[string]string "error: Photo already liked"
// @Router /photos/{id}/like [post]
func LikePhoto(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	photoID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var photo models.Photo
	if err := db.DB.First(&photo, "id = ?", uint(photoID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	var existing models.Like
	if err := db.DB.Where("photo_id = ? AND user_id = ?", uint(photoID), userID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Photo already liked"})
		return
	}

	like := models.Like{
		PhotoID: uint(photoID),
		UserID:  userID,
	}

	if err := db.DB.Create(&like).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding like: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Photo liked successfully", "isLiked": true})
}

// @Summary Unlike a photo
// @Description Remove the caller's like from a photo
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Photo unliked successfully"
// @Failure 404 {object} map[string]string "error: Like not found"
// @Router /photos/{id}/like [delete]
func UnlikePhoto(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	photoID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var like models.Like
	if err := db.DB.Where("photo_id = ? AND user_id = ?", uint(photoID), userID).
		First(&like).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Like not found"})
		return
	}

	if err := db.DB.Delete(&like).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing like: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Photo unliked successfully", "isLiked": false})
}

type likeEntry struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"createdAt"`
}

// @Summary List likes on a photo
// @Description Return the like count and the accounts that liked the photo
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "count, likes"
// @Failure 404 {object} map[string]string "error: Photo not found"
// @Router /photos/{id}/likes [get]
func GetPhotoLikes(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var photo models.Photo
	if err := db.DB.First(&photo, "id = ?", uint(photoID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	likes := []likeEntry{}
	err = db.DB.Model(&models.Like{}).
		Select(`likes.id, likes.user_id, users.name, users.email, users.avatar, likes.created_at`).
		Joins("JOIN users ON users.id = likes.user_id").
		Where("likes.photo_id = ?", uint(photoID)).
		Scan(&likes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving likes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(likes), "likes": likes})
}
