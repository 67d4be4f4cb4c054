package admins

import (
	"log"
	"net/http"

	"mogul/database"
	"mogul/models"
	"mogul/utils"
)

type dashboardCounts struct {
	Accounts        int64 `json:"accounts"`
	ActiveAccounts  int64 `json:"active_accounts"`
	Assets          int64 `json:"assets"`
	UserAssets      int64 `json:"user_assets"`
	BusinessTypes   int64 `json:"business_types"`
	UserBusinesses  int64 `json:"user_businesses"`
	InvestmentTypes int64 `json:"investment_types"`
	UserInvestments int64 `json:"user_investments"`
}

type dashboardEarnings struct {
	Business   float64 `json:"business"`
	Investment float64 `json:"investment"`
	Clicker    float64 `json:"clicker"`
	Total      float64 `json:"total"`
}

// GET /admin/dashboard
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	var counts dashboardCounts

	tally := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Account{}, &counts.Accounts},
		{&models.Asset{}, &counts.Assets},
		{&models.UserAsset{}, &counts.UserAssets},
		{&models.BusinessType{}, &counts.BusinessTypes},
		{&models.UserBusiness{}, &counts.UserBusinesses},
		{&models.InvestmentType{}, &counts.InvestmentTypes},
		{&models.UserInvestment{}, &counts.UserInvestments},
	}
	for _, t := range tally {
		if err := db.Model(t.model).Count(t.dest).Error; err != nil {
			log.Printf("[dashboard] count failed: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to load dashboard")
			return
		}
	}
	if err := db.Model(&models.Account{}).Where("status = ?", "active").Count(&counts.ActiveAccounts).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	var earnings dashboardEarnings
	row := db.Model(&models.Account{}).
		Select("COALESCE(SUM(business_earnings), 0) AS business, COALESCE(SUM(investment_earnings), 0) AS investment, COALESCE(SUM(clicker_earnings), 0) AS clicker").
		Row()
	if err := row.Scan(&earnings.Business, &earnings.Investment, &earnings.Clicker); err != nil {
		log.Printf("[dashboard] earnings scan failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	earnings.Total = utils.RoundFloat(earnings.Business+earnings.Investment+earnings.Clicker, 2)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"counts":   counts,
			"earnings": earnings,
		},
	})
}
