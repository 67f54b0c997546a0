package users

import (
	"net/http"
	"strconv"

	"github.com/sumeetkoyande/myFans/db"
	"github.com/sumeetkoyande/myFans/models"
	"github.com/sumeetkoyande/myFans/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const creatorCountsSelect = `users.id, users.email, users.name, users.bio, users.avatar,
	users.subscription_price, users.is_active, users.created_at,
	(SELECT COUNT(*) FROM photos WHERE photos.creator_id = users.id) AS photo_count,
	(SELECT COUNT(*) FROM subscriptions WHERE subscriptions.creator_id = users.id) AS subscriber_count`

// @Summary Get own profile
// @Description Return the profile of the authenticated account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/profile [get]
func GetProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Update own profile
// @Description Update name, bio, avatar or profile image
// @Tags users
// @Accept json
// @Produce json
// @Param profile body models.ProfileUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/profile [put]
func UpdateProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input models.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Only profile fields can be touched here, never role, price or email.
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.Avatar != nil {
		updates["avatar"] = *input.Avatar
	}
	if input.ProfileImage != nil {
		updates["profile_image"] = *input.ProfileImage
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile: " + err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Change password
// @Description Verify the current password and store a new hash
// @Tags users
// @Accept json
// @Produce json
// @Param passwords body models.PasswordUpdate true "Current and new password"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Password updated successfully"
// @Failure 400 {object} map[string]string "error: Current password is incorrect"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/password [put]
func ChangePassword(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input models.PasswordUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if len(input.NewPassword) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The password must contain at least 6 characters"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		return
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error hashing the password"})
		return
	}

	if err := db.DB.Model(&user).Update("password", string(newHash)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating password: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Password changed in ChangePassword")
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// @Summary Become a creator
// @Description One-way transition of the account to creator status with a subscription price
// @Tags users
// @Accept json
// @Produce json
// @Param creator body models.BecomeCreatorInput true "Subscription price in cents"
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string "error: Invalid subscription price"
// @Failure 409 {object} map[string]string "error: User is already a creator"
// @Router /users/become-creator [put]
func BecomeCreator(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input models.BecomeCreatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.SubscriptionPrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription price"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.IsCreator {
		c.JSON(http.StatusConflict, gin.H{"error": "User is already a creator"})
		return
	}

	updates := map[string]interface{}{
		"is_creator":         true,
		"subscription_price": input.SubscriptionPrice,
	}
	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating user: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Account upgraded to creator in BecomeCreator")
	c.JSON(http.StatusOK, user)
}

// @Summary List active creators
// @Description Return every active creator with computed photo and subscriber counts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CreatorSummary
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /users/creators [get]
func GetCreators(c *gin.Context) {
	creators := []models.CreatorSummary{}

	err := db.DB.Model(&models.User{}).
		Select(creatorCountsSelect).
		Where("is_creator = ? AND is_active = ?", true, true).
		Scan(&creators).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving creators: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, creators)
}

// @Summary Get a creator profile
// @Description Return the public card of one active creator
// @Tags users
// @Produce json
// @Param id path int true "Creator ID"
// @Security BearerAuth
// @Success 200 {object} models.CreatorSummary
// @Failure 400 {object} map[string]string "error: Invalid creator ID"
// @Failure 404 {object} map[string]string "error: Creator not found"
// @Router /users/creator/{id} [get]
func GetCreatorProfile(c *gin.Context) {
	creatorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid creator ID"})
		return
	}

	var creator models.CreatorSummary
	result := db.DB.Model(&models.User{}).
		Select(creatorCountsSelect).
		Where("users.id = ? AND is_creator = ? AND is_active = ?", uint(creatorID), true, true).
		Scan(&creator)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving creator: " + result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Creator not found"})
		return
	}

	c.JSON(http.StatusOK, creator)
}
