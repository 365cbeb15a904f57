package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(r, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestStatusCatalogueMatchesAcceptedValues(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(r, http.MethodGet, "/api/meta/statuses", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	want := map[string][]string{
		"roles":             {"user", "ngo", "restaurant", "admin"},
		"menu_items":        {"available", "reserved", "expired", "collected"},
		"pickups":           {"pending", "accepted", "rejected", "completed", "cancelled"},
		"volunteers":        {"submitted", "verified", "rejected"},
		"partnership_types": {"food", "logistics", "ngo", "sponsor"},
		"partnerships":      {"pending", "approved", "rejected", "active", "inactive"},
		"donation_payments": {"pending", "completed", "failed", "refunded"},
		"donations":         {"active", "cancelled", "refunded"},
	}
	for key, values := range want {
		got, ok := body[key].([]interface{})
		require.True(t, ok, "missing %s", key)
		gotStrings := make([]string, len(got))
		for i, v := range got {
			gotStrings[i] = v.(string)
		}
		assert.ElementsMatch(t, values, gotStrings, key)
	}
}
