package middleware

import (
	"context"
	"net/http"
	"strings"

	"mogul/utils"
)

// AdminAuthMiddleware verifies that the request is from an authenticated
// admin and injects the admin id into the request context.
func AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Error:   "Unauthorized: No token provided",
			})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		// Centralized validation checks aud/iss/exp/nbf and revocation
		_, claims, err := utils.ValidateAccessToken(tokenString)
		if err != nil {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Error:   "Unauthorized: Invalid token",
			})
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != "admin" {
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{
				Success: false,
				Error:   "Forbidden: Admin access required",
			})
			return
		}

		adminID := utils.AdminIDFromClaims(claims)
		if adminID == 0 {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Error:   "Unauthorized: Invalid subject",
			})
			return
		}

		ctx := context.WithValue(r.Context(), utils.AdminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminID returns the authenticated admin id stored by AdminAuthMiddleware.
func AdminID(r *http.Request) (int64, bool) {
	v := r.Context().Value(utils.AdminIDKey)
	id, ok := v.(int64)
	return id, ok
}
