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
	"github.com/samber/lo"
	"gorm.io/gorm"
)

var userInvestmentSpec = query.Spec{
	Table:       "user_investments",
	DefaultSort: "user_investments.created_at",
	SortColumns: map[string]string{
		"units":      "user_investments.units",
		"created_at": "user_investments.created_at",
		"value":      "user_investments.units * investment_types.price_per_unit",
	},
	SortJoins: map[string][]string{
		"value": {"investment_type"},
	},
	SearchColumns: []query.Column{
		{Column: "accounts.username", Relation: "account"},
		{Column: "investment_types.name", Relation: "investment_type"},
	},
	Joins: []query.Join{
		{Name: "account", Clause: "JOIN accounts ON accounts.id = user_investments.account_id"},
		{Name: "detail", Clause: "JOIN investment_type_details ON investment_type_details.id = user_investments.investment_type_detail_id"},
		{Name: "investment_type", Clause: "JOIN investment_types ON investment_types.id = investment_type_details.investment_type_id", Parent: "detail"},
	},
	Filters: map[string]query.Filter{
		"status":   {Column: "user_investments.status", Kind: query.KindEquals},
		"account":  {Column: "user_investments.account_id", Kind: query.KindEquals},
		"type":     {Column: "investment_type_details.investment_type_id", Relation: "detail", Kind: query.KindEquals},
		"category": {Column: "investment_type_details.investment_category_id", Relation: "detail", Kind: query.KindEquals},
		"units":    {Column: "user_investments.units", Kind: query.KindRange},
	},
}

// userInvestmentView is a holding with its value computed from the type's
// live unit price at read time.
type userInvestmentView struct {
	models.UserInvestment
	Value float64 `json:"value"`
}

func holdingValue(row models.UserInvestment) float64 {
	if row.InvestmentTypeDetail == nil || row.InvestmentTypeDetail.InvestmentType == nil {
		return 0
	}
	return utils.RoundFloat(row.Units*row.InvestmentTypeDetail.InvestmentType.PricePerUnit, 2)
}

// GET /admin/user-investments
func GetUserInvestments(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	db = db.Model(&models.UserInvestment{}).
		Preload("Account").
		Preload("InvestmentTypeDetail").
		Preload("InvestmentTypeDetail.InvestmentType").
		Preload("InvestmentTypeDetail.InvestmentCategory")

	var rows []models.UserInvestment
	meta, err := query.Run(db, userInvestmentSpec, query.ParseParams(r, userInvestmentSpec), &rows)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load user investments")
		return
	}

	views := lo.Map(rows, func(row models.UserInvestment, _ int) userInvestmentView {
		return userInvestmentView{UserInvestment: row, Value: holdingValue(row)}
	})

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    views,
		Meta:    &meta,
	})
}

// GET /admin/user-investments/{id}
func GetUserInvestmentDetail(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid user investment ID")
		return
	}

	var row models.UserInvestment
	err = db.
		Preload("Account").
		Preload("InvestmentTypeDetail").
		Preload("InvestmentTypeDetail.InvestmentType").
		Preload("InvestmentTypeDetail.InvestmentType.TaxType").
		Preload("InvestmentTypeDetail.InvestmentCategory").
		First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "User investment not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load user investment")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    userInvestmentView{UserInvestment: row, Value: holdingValue(row)},
	})
}

type updateUserInvestmentRequest struct {
	Units  *float64 `json:"units"`
	Status string   `json:"status"`
}

// PUT /admin/user-investments/{id}
func UpdateUserInvestment(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid user investment ID")
		return
	}

	var req updateUserInvestmentRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var row models.UserInvestment
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "User investment not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load user investment")
		return
	}

	if req.Units != nil {
		if *req.Units < 0 {
			utils.WriteError(w, http.StatusBadRequest, "Units must not be negative")
			return
		}
		row.Units = *req.Units
	}
	if req.Status != "" {
		if req.Status != "active" && req.Status != "inactive" {
			utils.WriteError(w, http.StatusBadRequest, "Invalid status")
			return
		}
		row.Status = req.Status
	}

	if err := db.Save(&row).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update user investment")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "User investment updated",
		Data:    row,
	})
}

// DELETE /admin/user-investments/{id}
func DeleteUserInvestment(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid user investment ID")
		return
	}

	var row models.UserInvestment
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "User investment not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load user investment")
		return
	}

	if err := db.Delete(&row).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete user investment")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "User investment deleted",
	})
}
