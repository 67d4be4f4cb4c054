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

var taxTypeSpec = query.Spec{
	Table:       "tax_types",
	DefaultSort: "tax_types.id",
	SortColumns: map[string]string{
		"name":       "tax_types.name",
		"rate":       "tax_types.rate",
		"created_at": "tax_types.created_at",
	},
	SearchColumns: []query.Column{
		{Column: "tax_types.name"},
	},
	Filters: map[string]query.Filter{
		"rate": {Column: "tax_types.rate", Kind: query.KindRange},
	},
}

// GET /admin/tax-types
func GetTaxTypes(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	db = db.Model(&models.TaxType{})

	var taxTypes []models.TaxType
	meta, err := query.Run(db, taxTypeSpec, query.ParseParams(r, taxTypeSpec), &taxTypes)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load tax types")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    taxTypes,
		Meta:    &meta,
	})
}

type taxTypeRequest struct {
	Name      string  `json:"name" validate:"required"`
	Rate      float64 `json:"rate"`
	AutoApply bool    `json:"auto_apply"`
}

// POST /admin/tax-types
func CreateTaxType(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	var req taxTypeRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.Rate < 0 || req.Rate > 1 {
		utils.WriteError(w, http.StatusBadRequest, "Rate must be between 0 and 1")
		return
	}

	taxType := models.TaxType{Name: req.Name, Rate: req.Rate, AutoApply: req.AutoApply}
	if err := db.Create(&taxType).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to create tax type")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Tax type created",
		Data:    taxType,
	})
}

// PUT /admin/tax-types/{id}
func UpdateTaxType(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid tax type ID")
		return
	}

	var req taxTypeRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.Rate < 0 || req.Rate > 1 {
		utils.WriteError(w, http.StatusBadRequest, "Rate must be between 0 and 1")
		return
	}

	var taxType models.TaxType
	if err := db.First(&taxType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Tax type not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load tax type")
		return
	}

	taxType.Name = req.Name
	taxType.Rate = req.Rate
	taxType.AutoApply = req.AutoApply
	if err := db.Save(&taxType).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update tax type")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Tax type updated",
		Data:    taxType,
	})
}

// DELETE /admin/tax-types/{id}
func DeleteTaxType(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid tax type ID")
		return
	}

	var taxType models.TaxType
	if err := db.First(&taxType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Tax type not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load tax type")
		return
	}

	var refs int64
	if err := db.Model(&models.Asset{}).Where("tax_type_id = ?", id).Count(&refs).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to check tax type usage")
		return
	}
	if refs == 0 {
		if err := db.Model(&models.BusinessType{}).Where("tax_type_id = ?", id).Count(&refs).Error; err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to check tax type usage")
			return
		}
	}
	if refs == 0 {
		if err := db.Model(&models.InvestmentType{}).Where("tax_type_id = ?", id).Count(&refs).Error; err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to check tax type usage")
			return
		}
	}
	if refs > 0 {
		utils.WriteError(w, http.StatusBadRequest, "Tax type is in use and cannot be deleted")
		return
	}

	if err := db.Delete(&models.TaxType{}, id).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete tax type")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Tax type deleted",
	})
}
