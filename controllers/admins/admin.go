package admins

import (
	"errors"
	"net/http"

	"mogul/database"
	"mogul/middleware"
	"mogul/models"
	"mogul/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GET /admin/profile
func GetAdminProfile(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	adminID, ok := middleware.AdminID(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var admin models.Admin
	if err := db.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Admin not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load admin")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    admin,
	})
}

type updateAdminProfileRequest struct {
	Username string `json:"username" validate:"usermin"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"email"`
}

// PUT /admin/profile
func UpdateAdminProfile(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	adminID, ok := middleware.AdminID(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req updateAdminProfileRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var admin models.Admin
	if err := db.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Admin not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load admin")
		return
	}

	if req.Username != "" && req.Username != admin.Username {
		var existing models.Admin
		if err := db.Where("username = ? AND id != ?", req.Username, adminID).First(&existing).Error; err == nil {
			utils.WriteError(w, http.StatusBadRequest, "Username already in use")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to check username")
			return
		}
		admin.Username = req.Username
	}
	if req.Name != "" {
		admin.Name = req.Name
	}
	if req.Email != "" {
		admin.Email = req.Email
	}

	if err := db.Save(&admin).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Profile updated",
		Data:    admin,
	})
}

type updateAdminPasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,pwdmin"`
}

// PUT /admin/password
func UpdateAdminPassword(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	adminID, ok := middleware.AdminID(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req updateAdminPasswordRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var admin models.Admin
	if err := db.First(&admin, adminID).Error; err != nil {
		utils.WriteError(w, http.StatusNotFound, "Admin not found")
		return
	}

	if !admin.ValidatePassword(req.CurrentPassword) {
		utils.WriteError(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update password")
		return
	}
	admin.Password = string(hashed)

	if err := db.Save(&admin).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update password")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Password updated",
	})
}
