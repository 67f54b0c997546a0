package photos

import (
	"net/http"
	"strconv"

	"github.com/sumeetkoyande/myFans/access"
	"github.com/sumeetkoyande/myFans/db"
	"github.com/sumeetkoyande/myFans/models"
	"github.com/sumeetkoyande/myFans/utils"

	"github.com/gin-gonic/gin"
)

func photoIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// @Summary Upload a photo
// @Description Upload a new photo with an optional description and premium flag (creator only)
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Param picture formData file true "Photo file"
// @Param description formData string false "Description"
// @Param isPremium formData boolean false "Premium gated"
// @Security BearerAuth
// @Success 201 {object} models.Photo
// @Failure 400 {object} map[string]string "error: Picture is required"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Creator role required"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /photos [post]
func UploadPhoto(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	file, err := c.FormFile("picture")
	if err != nil || file == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Picture is required"})
		return
	}

	imageURL, err := utils.UploadImage(file, "photos", "photo")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading picture: " + err.Error()})
		return
	}

	photo := models.Photo{
		CreatorID:   userID,
		URL:         imageURL,
		Description: c.Request.FormValue("description"),
		IsPremium:   c.Request.FormValue("isPremium") == "true",
	}

	if err := db.DB.Create(&photo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating photo: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Photo uploaded in UploadPhoto")
	c.JSON(http.StatusCreated, photo)
}

// @Summary List accessible photos
// @Description Return all photos the caller may see: public ones, their own, and premium photos of subscribed creators
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Photo
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /photos [get]
func ListPhotos(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	photos, err := access.AccessiblePhotos(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving photos: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, photos)
}

// @Summary Get a photo
// @Description Return one photo if the caller may see it. Absence and denied access are indistinguishable.
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Security BearerAuth
// @Success 200 {object} models.Photo
// @Failure 404 {object} map[string]string "error: Photo not found or access denied"
// @Router /photos/{id} [get]
func GetPhoto(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	photoID, ok := photoIDParam(c, "id")
	if !ok {
		return
	}

	var photo models.Photo
	if err := db.DB.First(&photo, "id = ?", photoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found or access denied"})
		return
	}

	canView, err := access.CanView(userID, photo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking access: " + err.Error()})
		return
	}
	if !canView {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found or access denied"})
		return
	}

	c.JSON(http.StatusOK, photo)
}

// @Summary Update a photo
// @Description Change the description or premium flag of an owned photo
// @Tags photos
// @Accept json
// @Produce json
// @Param id path int true "Photo ID"
// @Param photo body models.PhotoUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Photo
// @Failure 403 {object} map[string]string "error: You can only update your own photos"
// @Failure 404 {object} map[string]string "error: Photo not found"
// @Router /photos/{id} [put]
func UpdatePhoto(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	photoID, ok := photoIDParam(c, "id")
	if !ok {
		return
	}

	var input models.PhotoUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var photo models.Photo
	if err := db.DB.First(&photo, "id = ?", photoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	if photo.CreatorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own photos"})
		return
	}

	updates := map[string]interface{}{}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.IsPremium != nil {
		updates["is_premium"] = *input.IsPremium
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&photo).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating photo: " + err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, photo)
}

// @Summary Delete a photo
// @Description Delete an owned photo and its stored asset
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Photo deleted successfully"
// @Failure 403 {object} map[string]string "error: You can only delete your own photos"
// @Failure 404 {object} map[string]string "error: Photo not found"
// @Router /photos/{id} [delete]
func DeletePhoto(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	photoID, ok := photoIDParam(c, "id")
	if !ok {
		return
	}

	var photo models.Photo
	if err := db.DB.First(&photo, "id = ?", photoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	if photo.CreatorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own photos"})
		return
	}

	if photo.URL != "" {
		if err := utils.DeleteImage(photo.URL); err != nil {
			utils.LogErrorWithUser(userID, err, "Error deleting asset in DeletePhoto")
		}
	}

	if err := db.DB.Delete(&photo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting photo: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Photo deleted in DeletePhoto")
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}

// @Summary Get a creator gallery
// @Description Return a creator's photos. Subscribers and the owner get everything newest first; other viewers get true counts but only a capped public preview.
// @Tags photos
// @Produce json
// @Param id path int true "Creator ID"
// @Security BearerAuth
// @Success 200 {object} models.CreatorGallery
// @Failure 400 {object} map[string]string "error: Invalid ID"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /photos/creator/{id} [get]
func GetCreatorGallery(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	creatorID, ok := photoIDParam(c, "id")
	if !ok {
		return
	}

	gallery, err := access.CreatorGallery(creatorID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving gallery: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gallery)
}
