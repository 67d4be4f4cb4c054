package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"mogul/query"

	"github.com/stretchr/testify/require"
)

func TestWriteJSONListEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 200, APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    []int{1, 2, 3},
		Meta:    &query.Meta{Total: 40, Page: 2, Limit: 25, TotalPages: 2},
	})

	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, true, got["success"])
	require.NotContains(t, got, "error")
	require.NotContains(t, got, "warnings")

	meta, ok := got["meta"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, float64(40), meta["total"])
	require.Equal(t, float64(2), meta["page"])
	require.Equal(t, float64(25), meta["limit"])
	require.Equal(t, float64(2), meta["total_pages"])
}

func TestWriteErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 404, "Asset not found")

	require.Equal(t, 404, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, false, got["success"])
	require.Equal(t, "Asset not found", got["error"])
	require.NotContains(t, got, "data")
	require.NotContains(t, got, "meta")
}
