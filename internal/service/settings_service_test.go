package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSettingsUsesDefaults(t *testing.T) {
	s := mergeSettings(nil)

	assert.Equal(t, "Warung PO", s.LandingBrandTitle)
	assert.NotEmpty(t, s.Terms)
	assert.Equal(t, "", s.WhatsappAdmin)
	assert.Equal(t, "", s.POStartDate)
}

func TestMergeSettingsOverlaysStoredValues(t *testing.T) {
	s := mergeSettings(map[string]string{
		"whatsapp_admin":      "6281234567890",
		"po_start_date":       "2026-08-01",
		"landing_brand_title": "Dapur Ibu",
	})

	assert.Equal(t, "6281234567890", s.WhatsappAdmin)
	assert.Equal(t, "2026-08-01", s.POStartDate)
	assert.Equal(t, "Dapur Ibu", s.LandingBrandTitle)
	// untouched keys keep their defaults
	assert.Equal(t, "Pre-Order Makanan Rumahan", s.LandingBrandSubtitle)
}

func TestMergeSettingsIgnoresUnknownKeys(t *testing.T) {
	s := mergeSettings(map[string]string{
		"whatsapp_admin": "6281234567890",
		"not_a_setting":  "whatever",
	})

	assert.Equal(t, "6281234567890", s.WhatsappAdmin)
	assert.Equal(t, defaultSettings().Terms, s.Terms)
}
