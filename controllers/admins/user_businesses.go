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
	"gorm.io/gorm"
)

var userBusinessSpec = query.Spec{
	Table:       "user_businesses",
	DefaultSort: "user_businesses.created_at",
	SortColumns: map[string]string{
		"worth":           "user_businesses.worth",
		"income_per_hour": "user_businesses.income_per_hour",
		"level":           "user_businesses.level",
		"created_at":      "user_businesses.created_at",
	},
	SearchColumns: []query.Column{
		{Column: "user_businesses.custom_name"},
		{Column: "accounts.username", Relation: "account"},
		{Column: "business_types.name", Relation: "business_type"},
	},
	Joins: []query.Join{
		{Name: "account", Clause: "JOIN accounts ON accounts.id = user_businesses.account_id"},
		{Name: "detail", Clause: "JOIN business_type_details ON business_type_details.id = user_businesses.business_type_detail_id"},
		{Name: "business_type", Clause: "JOIN business_types ON business_types.id = business_type_details.business_type_id", Parent: "detail"},
	},
	Filters: map[string]query.Filter{
		"status":   {Column: "user_businesses.status", Kind: query.KindEquals},
		"account":  {Column: "user_businesses.account_id", Kind: query.KindEquals},
		"type":     {Column: "business_type_details.business_type_id", Relation: "detail", Kind: query.KindEquals},
		"category": {Column: "business_type_details.business_category_id", Relation: "detail", Kind: query.KindEquals},
		"worth":    {Column: "user_businesses.worth", Kind: query.KindRange},
	},
}

// GET /admin/user-businesses
func GetUserBusinesses(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	db = db.Model(&models.UserBusiness{}).
		Preload("Account").
		Preload("BusinessTypeDetail").
		Preload("BusinessTypeDetail.BusinessType").
		Preload("BusinessTypeDetail.BusinessCategory")

	var rows []models.UserBusiness
	meta, err := query.Run(db, userBusinessSpec, query.ParseParams(r, userBusinessSpec), &rows)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load user businesses")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    rows,
		Meta:    &meta,
	})
}

// GET /admin/user-businesses/{id}
func GetUserBusinessDetail(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid user business ID")
		return
	}

	var row models.UserBusiness
	err = db.
		Preload("Account").
		Preload("BusinessTypeDetail").
		Preload("BusinessTypeDetail.BusinessType").
		Preload("BusinessTypeDetail.BusinessType.TaxType").
		Preload("BusinessTypeDetail.BusinessCategory").
		First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "User business not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load user business")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    row,
	})
}

type updateUserBusinessRequest struct {
	CustomName string   `json:"custom_name"`
	Status     string   `json:"status"`
	Worth      *float64 `json:"worth"`
}

// PUT /admin/user-businesses/{id}
func UpdateUserBusiness(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid user business ID")
		return
	}

	var req updateUserBusinessRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var row models.UserBusiness
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "User business not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load user business")
		return
	}

	if req.CustomName != "" {
		row.CustomName = req.CustomName
	}
	if req.Status != "" {
		if req.Status != "active" && req.Status != "inactive" {
			utils.WriteError(w, http.StatusBadRequest, "Invalid status")
			return
		}
		row.Status = req.Status
	}
	if req.Worth != nil {
		if *req.Worth < 0 {
			utils.WriteError(w, http.StatusBadRequest, "Worth must not be negative")
			return
		}
		row.Worth = *req.Worth
	}

	if err := db.Save(&row).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update user business")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "User business updated",
		Data:    row,
	})
}

// DELETE /admin/user-businesses/{id}
func DeleteUserBusiness(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid user business ID")
		return
	}

	var row models.UserBusiness
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "User business not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load user business")
		return
	}

	if err := db.Delete(&row).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete user business")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "User business deleted",
	})
}
