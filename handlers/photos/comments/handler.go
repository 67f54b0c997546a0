package comments

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sumeetkoyande/myFans/db"
	"github.com/sumeetkoyande/myFans/models"

	"github.com/gin-gonic/gin"
)

// @Summary Comment on a photo
// @Description Create a comment. Content is trimmed; empty or whitespace-only content is rejected.
// @Tags photos
// @Accept json
// @Produce json
// @Param id path int true "Photo ID"
// @Param comment body models.CommentInput true "Comment content"
// @Security BearerAuth
// @Success 201 {object} models.Comment
// @Failure 400 {object} map[string]string "error: Comment content cannot be empty"
// @Failure 404 {object} map[string]string "error: Photo not found"
// @Router /photos/{id}/comments [post]
func CreateComment(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	photoID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var input models.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment data"})
		return
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment content cannot be empty"})
		return
	}

	var photo models.Photo
	if err := db.DB.First(&photo, "id = ?", uint(photoID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	comment := models.Comment{
		PhotoID: uint(photoID),
		UserID:  userID,
		Content: content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating comment: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

type commentEntry struct {
	ID        uint   `json:"id"`
	PhotoID   uint   `json:"photoId"`
	UserID    uint   `json:"userId"`
	Content   string `json:"content"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// @Summary List comments on a photo
// @Description Return the photo's comments newest first, with their authors
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Security BearerAuth
// @Success 200 {array} object
// @Failure 404 {object} map[string]string "error: Photo not found"
// @Router /photos/{id}/comments [get]
func GetComments(c *gin.Context) {
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

	comments := []commentEntry{}
	err = db.DB.Model(&models.Comment{}).
		Select(`comments.id, comments.photo_id, comments.user_id, comments.content,
			users.name, users.email, users.avatar, comments.created_at, comments.updated_at`).
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.photo_id = ?", uint(photoID)).
		Order("comments.created_at DESC").
		Scan(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving comments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// @Summary Delete a comment
// @Description Delete a comment. Allowed for the comment's author and for the owner of the commented photo.
// @Tags photos
// @Produce json
// @Param commentId path int true "Comment ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Comment deleted successfully"
// @Failure 403 {object} map[string]string "error: Not authorized"
// @Failure 404 {object} map[string]string "error: Comment not found"
// @Router /photos/comments/{commentId} [delete]
func DeleteComment(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	commentID, err := strconv.ParseUint(c.Param("commentId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var comment models.Comment
	if err := db.DB.First(&comment, "id = ?", uint(commentID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	var photo models.Photo
	if err := db.DB.First(&photo, "id = ?", comment.PhotoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	// Two independent authorizations, combined with OR: the comment's author
	// and the photo's owner may both delete.
	if comment.UserID != userID && photo.CreatorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own comments or comments on your photos"})
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting comment: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
