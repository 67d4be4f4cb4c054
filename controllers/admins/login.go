package admins

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"mogul/database"
	"mogul/models"
	"mogul/utils"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Error:   "Invalid JSON body",
		})
		return
	}

	admin, err := models.GetAdminByUsername(req.Username)
	if err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
			Success: false,
			Error:   "Invalid username or password",
		})
		return
	}

	if !admin.ValidatePassword(req.Password) {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
			Success: false,
			Error:   "Invalid username or password",
		})
		return
	}

	token, err := utils.GenerateJWT(admin.ID, admin.Username, "admin")
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Error:   "Failed to create token",
		})
		return
	}

	refreshToken, err := utils.GenerateRefreshToken(admin.ID)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Error:   "Failed to create refresh token",
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Logged in",
		Data: map[string]interface{}{
			"token":         token,
			"refresh_token": refreshToken,
			"admin":         admin,
		},
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh exchanges a valid refresh token for a fresh access token. The
// refresh token is rotated: the presented one is revoked and a new one issued.
func Refresh(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing refresh token")
		return
	}

	rt, err := utils.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		utils.WriteError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	var admin models.Admin
	if err := db.First(&admin, rt.AdminID).Error; err != nil {
		utils.WriteError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	token, err := utils.GenerateJWT(admin.ID, admin.Username, "admin")
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	newRefresh, err := utils.GenerateRefreshToken(admin.ID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to create refresh token")
		return
	}
	if err := db.Model(&models.RefreshToken{}).Where("id = ?", rt.ID).Update("revoked", true).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to rotate refresh token")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Token refreshed",
		Data: map[string]interface{}{
			"token":         token,
			"refresh_token": newRefresh,
		},
	})
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Logout revokes the access token's jti and, when provided, the refresh token.
func Logout(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	authHeader := r.Header.Get("Authorization")
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr != "" && tokenStr != authHeader {
		if _, claims, err := utils.ValidateAccessToken(tokenStr); err == nil {
			if jti, ok := claims["jti"].(string); ok && jti != "" {
				if err := utils.RevokeJTI(jti, 6*time.Hour); err != nil {
					utils.WriteError(w, http.StatusInternalServerError, "Failed to revoke token")
					return
				}
			}
		}
	}

	var req logoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.RefreshToken != "" {
		db.Model(&models.RefreshToken{}).Where("id = ?", req.RefreshToken).Update("revoked", true)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Logged out",
	})
}
