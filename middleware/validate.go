package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"mogul/utils"
)

// ValidateJSON decodes a JSON payload into dst, rejecting unknown fields, and
// runs utils.ValidateStruct over the result. On failure it writes the error
// response itself and returns a non-nil error so the handler can bail out.
func ValidateJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		utils.WriteJSON(w, http.StatusUnsupportedMediaType, utils.APIResponse{Success: false, Error: "Content-Type must be application/json"})
		return http.ErrNotSupported
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Error: "Invalid JSON body"})
		return err
	}
	if err := utils.ValidateStruct(dst); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Error: err.Error()})
		return err
	}
	return nil
}
