package admins

// Dropdown sources for the list filters and editor forms. These return the
// full set ordered by name; none of them paginate.

import (
	"net/http"

	"mogul/database"
	"mogul/models"
	"mogul/utils"
)

func writeLookup(w http.ResponseWriter, dest interface{}, err error) {
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load options")
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    dest,
	})
}

// GET /admin/lookups/account-types
func LookupAccountTypes(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	var rows []models.AccountType
	err := db.Order("name ASC").Find(&rows).Error
	writeLookup(w, rows, err)
}

// GET /admin/lookups/tax-types
func LookupTaxTypes(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	var rows []models.TaxType
	err := db.Order("name ASC").Find(&rows).Error
	writeLookup(w, rows, err)
}

// GET /admin/lookups/asset-categories
func LookupAssetCategories(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	var rows []models.AssetCategory
	err := db.Order("name ASC").Find(&rows).Error
	writeLookup(w, rows, err)
}

// GET /admin/lookups/asset-types
//
// Optionally narrowed by ?category= so the type dropdown follows the
// category selection.
func LookupAssetTypes(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	db = db.Order("name ASC")
	if c := r.URL.Query().Get("category"); c != "" && c != "all" {
		db = db.Where("asset_category_id = ?", c)
	}
	var rows []models.AssetType
	err := db.Find(&rows).Error
	writeLookup(w, rows, err)
}

// GET /admin/lookups/assets
func LookupAssets(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	db = db.Order("name ASC")
	if t := r.URL.Query().Get("type"); t != "" && t != "all" {
		db = db.Where("asset_type_id = ?", t)
	}
	var rows []models.Asset
	err := db.Find(&rows).Error
	writeLookup(w, rows, err)
}

// GET /admin/lookups/business-categories
func LookupBusinessCategories(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	var rows []models.BusinessCategory
	err := db.Order("name ASC").Find(&rows).Error
	writeLookup(w, rows, err)
}

// GET /admin/lookups/business-types
func LookupBusinessTypes(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	var rows []models.BusinessType
	err := db.Order("name ASC").Find(&rows).Error
	writeLookup(w, rows, err)
}

// GET /admin/lookups/investment-categories
func LookupInvestmentCategories(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	var rows []models.InvestmentCategory
	err := db.Order("name ASC").Find(&rows).Error
	writeLookup(w, rows, err)
}

// GET /admin/lookups/investment-types
func LookupInvestmentTypes(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	var rows []models.InvestmentType
	err := db.Order("name ASC").Find(&rows).Error
	writeLookup(w, rows, err)
}
