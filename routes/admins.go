package routes

import (
	"net/http"
	"time"

	"mogul/controllers/admins"
	"mogul/middleware"

	"github.com/gorilla/mux"
)

func SetAdminRoutes(api *mux.Router) {
	// Rate limiter for admin login: 5 attempts per IP per minute
	adminLoginLimiter := middleware.NewIPRateLimiter(5, time.Minute)

	// Public admin routes
	api.Handle("/admin/login", adminLoginLimiter.Middleware(http.HandlerFunc(admins.Login))).Methods(http.MethodPost)
	api.Handle("/admin/refresh", adminLoginLimiter.Middleware(http.HandlerFunc(admins.Refresh))).Methods(http.MethodPost)

	// Protected admin routes
	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.AdminAuthMiddleware)

	adminRouter.Handle("/logout", http.HandlerFunc(admins.Logout)).Methods(http.MethodPost)

	// Dashboard
	adminRouter.Handle("/dashboard", http.HandlerFunc(admins.GetDashboard)).Methods(http.MethodGet)

	// Admin profile
	adminRouter.Handle("/profile", http.HandlerFunc(admins.GetAdminProfile)).Methods(http.MethodGet)
	adminRouter.Handle("/profile", http.HandlerFunc(admins.UpdateAdminProfile)).Methods(http.MethodPut)
	adminRouter.Handle("/password", http.HandlerFunc(admins.UpdateAdminPassword)).Methods(http.MethodPut)

	// Account management
	adminRouter.Handle("/accounts", http.HandlerFunc(admins.GetAccounts)).Methods(http.MethodGet)
	adminRouter.Handle("/accounts/{id:[0-9]+}", http.HandlerFunc(admins.GetAccountDetail)).Methods(http.MethodGet)
	adminRouter.Handle("/accounts/{id:[0-9]+}", http.HandlerFunc(admins.UpdateAccount)).Methods(http.MethodPut)
	adminRouter.Handle("/accounts/{id:[0-9]+}/status", http.HandlerFunc(admins.UpdateAccountStatus)).Methods(http.MethodPut)
	adminRouter.Handle("/accounts/{id:[0-9]+}/type", http.HandlerFunc(admins.UpdateAccountType)).Methods(http.MethodPut)
	adminRouter.Handle("/accounts/{id:[0-9]+}/credentials", http.HandlerFunc(admins.UpdateAccountCredentials)).Methods(http.MethodPut)

	// Asset catalog management
	adminRouter.Handle("/assets", http.HandlerFunc(admins.GetAssets)).Methods(http.MethodGet)
	adminRouter.Handle("/assets", http.HandlerFunc(admins.CreateAsset)).Methods(http.MethodPost)
	adminRouter.Handle("/assets/{id:[0-9]+}", http.HandlerFunc(admins.GetAssetDetail)).Methods(http.MethodGet)
	adminRouter.Handle("/assets/{id:[0-9]+}", http.HandlerFunc(admins.UpdateAsset)).Methods(http.MethodPut)
	adminRouter.Handle("/assets/{id:[0-9]+}", http.HandlerFunc(admins.DeleteAsset)).Methods(http.MethodDelete)
	adminRouter.Handle("/assets/{id:[0-9]+}/image", http.HandlerFunc(admins.UploadAssetImage)).Methods(http.MethodPost, http.MethodPut)

	// User asset management
	adminRouter.Handle("/user-assets", http.HandlerFunc(admins.GetUserAssets)).Methods(http.MethodGet)
	adminRouter.Handle("/user-assets/{id:[0-9]+}", http.HandlerFunc(admins.GetUserAssetDetail)).Methods(http.MethodGet)
	adminRouter.Handle("/user-assets/{id:[0-9]+}", http.HandlerFunc(admins.UpdateUserAsset)).Methods(http.MethodPut)
	adminRouter.Handle("/user-assets/{id:[0-9]+}", http.HandlerFunc(admins.DeleteUserAsset)).Methods(http.MethodDelete)

	// Business type management
	adminRouter.Handle("/business-types", http.HandlerFunc(admins.GetBusinessTypes)).Methods(http.MethodGet)
	adminRouter.Handle("/business-types", http.HandlerFunc(admins.CreateBusinessType)).Methods(http.MethodPost)
	adminRouter.Handle("/business-types/{id:[0-9]+}", http.HandlerFunc(admins.GetBusinessTypeDetail)).Methods(http.MethodGet)
	adminRouter.Handle("/business-types/{id:[0-9]+}", http.HandlerFunc(admins.UpdateBusinessType)).Methods(http.MethodPut)
	adminRouter.Handle("/business-types/{id:[0-9]+}", http.HandlerFunc(admins.DeleteBusinessType)).Methods(http.MethodDelete)

	// User business management
	adminRouter.Handle("/user-businesses", http.HandlerFunc(admins.GetUserBusinesses)).Methods(http.MethodGet)
	adminRouter.Handle("/user-businesses/{id:[0-9]+}", http.HandlerFunc(admins.GetUserBusinessDetail)).Methods(http.MethodGet)
	adminRouter.Handle("/user-businesses/{id:[0-9]+}", http.HandlerFunc(admins.UpdateUserBusiness)).Methods(http.MethodPut)
	adminRouter.Handle("/user-businesses/{id:[0-9]+}", http.HandlerFunc(admins.DeleteUserBusiness)).Methods(http.MethodDelete)

	// Investment type management
	adminRouter.Handle("/investment-types", http.HandlerFunc(admins.GetInvestmentTypes)).Methods(http.MethodGet)
	adminRouter.Handle("/investment-types", http.HandlerFunc(admins.CreateInvestmentType)).Methods(http.MethodPost)
	adminRouter.Handle("/investment-types/{id:[0-9]+}", http.HandlerFunc(admins.GetInvestmentTypeDetail)).Methods(http.MethodGet)
	adminRouter.Handle("/investment-types/{id:[0-9]+}", http.HandlerFunc(admins.UpdateInvestmentType)).Methods(http.MethodPut)
	adminRouter.Handle("/investment-types/{id:[0-9]+}", http.HandlerFunc(admins.DeleteInvestmentType)).Methods(http.MethodDelete)

	// User investment management
	adminRouter.Handle("/user-investments", http.HandlerFunc(admins.GetUserInvestments)).Methods(http.MethodGet)
	adminRouter.Handle("/user-investments/{id:[0-9]+}", http.HandlerFunc(admins.GetUserInvestmentDetail)).Methods(http.MethodGet)
	adminRouter.Handle("/user-investments/{id:[0-9]+}", http.HandlerFunc(admins.UpdateUserInvestment)).Methods(http.MethodPut)
	adminRouter.Handle("/user-investments/{id:[0-9]+}", http.HandlerFunc(admins.DeleteUserInvestment)).Methods(http.MethodDelete)

	// Tax type management
	adminRouter.Handle("/tax-types", http.HandlerFunc(admins.GetTaxTypes)).Methods(http.MethodGet)
	adminRouter.Handle("/tax-types", http.HandlerFunc(admins.CreateTaxType)).Methods(http.MethodPost)
	adminRouter.Handle("/tax-types/{id:[0-9]+}", http.HandlerFunc(admins.UpdateTaxType)).Methods(http.MethodPut)
	adminRouter.Handle("/tax-types/{id:[0-9]+}", http.HandlerFunc(admins.DeleteTaxType)).Methods(http.MethodDelete)

	// Dropdown sources
	adminRouter.Handle("/lookups/account-types", http.HandlerFunc(admins.LookupAccountTypes)).Methods(http.MethodGet)
	adminRouter.Handle("/lookups/tax-types", http.HandlerFunc(admins.LookupTaxTypes)).Methods(http.MethodGet)
	adminRouter.Handle("/lookups/asset-categories", http.HandlerFunc(admins.LookupAssetCategories)).Methods(http.MethodGet)
	adminRouter.Handle("/lookups/asset-types", http.HandlerFunc(admins.LookupAssetTypes)).Methods(http.MethodGet)
	adminRouter.Handle("/lookups/assets", http.HandlerFunc(admins.LookupAssets)).Methods(http.MethodGet)
	adminRouter.Handle("/lookups/business-categories", http.HandlerFunc(admins.LookupBusinessCategories)).Methods(http.MethodGet)
	adminRouter.Handle("/lookups/business-types", http.HandlerFunc(admins.LookupBusinessTypes)).Methods(http.MethodGet)
	adminRouter.Handle("/lookups/investment-categories", http.HandlerFunc(admins.LookupInvestmentCategories)).Methods(http.MethodGet)
	adminRouter.Handle("/lookups/investment-types", http.HandlerFunc(admins.LookupInvestmentTypes)).Methods(http.MethodGet)
}
