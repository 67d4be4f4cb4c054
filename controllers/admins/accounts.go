package admins

import (
	"errors"
	"net/http"
	"strconv"

	"mogul/database"
	"mogul/middleware"
	"mogul/models"
	"mogul/query"
	"mogul/utils"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var accountSpec = query.Spec{
	Table:       "accounts",
	DefaultSort: "accounts.created_at",
	SortColumns: map[string]string{
		"username":            "accounts.username",
		"created_at":          "accounts.created_at",
		"clicks":              "accounts.clicks",
		"business_earnings":   "accounts.business_earnings",
		"investment_earnings": "accounts.investment_earnings",
		"clicker_earnings":    "accounts.clicker_earnings",
	},
	SearchColumns: []query.Column{
		{Column: "accounts.username"},
		{Column: "accounts.email"},
	},
	Filters: map[string]query.Filter{
		"status":  {Column: "accounts.status", Kind: query.KindEquals},
		"type":    {Column: "accounts.account_type_id", Kind: query.KindEquals},
		"created": {Column: "accounts.created_at", Kind: query.KindRange},
		"clicks":  {Column: "accounts.clicks", Kind: query.KindRange},
	},
}

// GET /admin/accounts
func GetAccounts(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	list := db.Model(&models.Account{}).Preload("AccountType")

	// The acting admin's own play account is hidden from the list.
	if adminID, ok := middleware.AdminID(r); ok {
		var admin models.Admin
		if err := db.First(&admin, adminID).Error; err == nil && admin.AccountID != nil {
			list = list.Where("accounts.id != ?", *admin.AccountID)
		}
	}

	var accounts []models.Account
	meta, err := query.Run(list, accountSpec, query.ParseParams(r, accountSpec), &accounts)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load accounts")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    accounts,
		Meta:    &meta,
	})
}

// GET /admin/accounts/{id}
func GetAccountDetail(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	var account models.Account
	if err := db.Preload("AccountType").First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load account")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    account,
	})
}

type updateAccountRequest struct {
	Username string `json:"username" validate:"usermin"`
	Email    string `json:"email" validate:"email"`
}

// PUT /admin/accounts/{id}
func UpdateAccount(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	var req updateAccountRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var account models.Account
	if err := db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load account")
		return
	}

	if req.Username != "" && req.Username != account.Username {
		var existing models.Account
		if err := db.Where("username = ? AND id != ?", req.Username, id).First(&existing).Error; err == nil {
			utils.WriteError(w, http.StatusBadRequest, "Username already in use")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to check username")
			return
		}
		account.Username = req.Username
	}
	if req.Email != "" && req.Email != account.Email {
		var existing models.Account
		if err := db.Where("email = ? AND id != ?", req.Email, id).First(&existing).Error; err == nil {
			utils.WriteError(w, http.StatusBadRequest, "Email already in use")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to check email")
			return
		}
		account.Email = req.Email
	}

	if err := db.Save(&account).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update account")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Account updated",
		Data:    account,
	})
}

type updateAccountStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PUT /admin/accounts/{id}/status
func UpdateAccountStatus(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	var req updateAccountStatusRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.Status != "active" && req.Status != "inactive" {
		utils.WriteError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	var account models.Account
	if err := db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load account")
		return
	}

	account.Status = req.Status
	if err := db.Save(&account).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Status updated",
		Data: map[string]interface{}{
			"id":     account.ID,
			"status": account.Status,
		},
	})
}

type updateAccountTypeRequest struct {
	AccountTypeID uint `json:"account_type_id"`
}

// PUT /admin/accounts/{id}/type
func UpdateAccountType(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	var req updateAccountTypeRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var accountType models.AccountType
	if err := db.First(&accountType, req.AccountTypeID).Error; err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Unknown account type")
		return
	}

	var account models.Account
	if err := db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load account")
		return
	}

	account.AccountTypeID = accountType.ID
	if err := db.Save(&account).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update account type")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Account type updated",
		Data: map[string]interface{}{
			"id":              account.ID,
			"account_type_id": account.AccountTypeID,
		},
	})
}

type updateCredentialsRequest struct {
	Password string `json:"password" validate:"pwdmin"`
	Pin      string `json:"pin" validate:"pin6"`
}

// PUT /admin/accounts/{id}/credentials
func UpdateAccountCredentials(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	var req updateCredentialsRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.Password == "" && req.Pin == "" {
		utils.WriteError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	var account models.Account
	if err := db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load account")
		return
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to update credentials")
			return
		}
		account.Password = string(hashed)
	}
	if req.Pin != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Pin), bcrypt.DefaultCost)
		if err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to update credentials")
			return
		}
		account.Pin = string(hashed)
	}

	if err := db.Save(&account).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update credentials")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Credentials updated",
	})
}
