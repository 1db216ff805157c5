package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/warungpo/preorder_api/internal/cache"
	"github.com/warungpo/preorder_api/internal/models"
	"github.com/warungpo/preorder_api/internal/repository"
)

// SettingsService exposes the typed settings bag and the pre-order window
// predicate derived from it.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	storeCache   *cache.StoreCache
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(settingsRepo *repository.SettingsRepository, storeCache *cache.StoreCache) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo, storeCache: storeCache}
}

// defaultSettings are the values rendered when a key has never been set.
func defaultSettings() models.Settings {
	return models.Settings{
		WhatsappAdmin:    "",
		POStartDate:      "",
		POEndDate:        "",
		Terms:            "Pesanan diproses setelah pembayaran dikonfirmasi admin.",
		MaxOrderQuantity: "",

		LandingBrandTitle:         "Warung PO",
		LandingBrandSubtitle:      "Pre-Order Makanan Rumahan",
		LandingHeroTitleLine1:     "Pesan Sekarang,",
		LandingHeroTitleLine2:     "Nikmati Kemudian",
		LandingHeroDescription:    "Pre-order makanan favorit Anda langsung dari dapur kami.",
		LandingTeaserMainTitle:    "Kenapa Pre-Order?",
		LandingTeaserMainSubtitle: "Selalu segar, tanpa antre",
		LandingTeaserCol1Title:    "Dibuat Setelah Dipesan",
		LandingTeaserCol1Body:     "Semua pesanan dimasak segar di hari pengambilan.",
		LandingTeaserCol2Title:    "Konfirmasi via WhatsApp",
		LandingTeaserCol2Body:     "Pembayaran dan pengambilan dikoordinasikan langsung dengan admin.",
	}
}

// settingsFields maps storage keys onto the fields of a Settings struct.
// Both the fetch merge and the update filter share this mapping so the key
// set cannot drift between them.
func settingsFields(s *models.Settings) map[string]*string {
	return map[string]*string{
		"whatsapp_admin":     &s.WhatsappAdmin,
		"po_start_date":      &s.POStartDate,
		"po_end_date":        &s.POEndDate,
		"terms":              &s.Terms,
		"max_order_quantity": &s.MaxOrderQuantity,

		"landing_logo_url":             &s.LandingLogoURL,
		"landing_brand_title":          &s.LandingBrandTitle,
		"landing_brand_subtitle":       &s.LandingBrandSubtitle,
		"landing_hero_title_line1":     &s.LandingHeroTitleLine1,
		"landing_hero_title_line2":     &s.LandingHeroTitleLine2,
		"landing_hero_description":     &s.LandingHeroDescription,
		"landing_teaser_main_title":    &s.LandingTeaserMainTitle,
		"landing_teaser_main_subtitle": &s.LandingTeaserMainSubtitle,
		"landing_teaser_col1_title":    &s.LandingTeaserCol1Title,
		"landing_teaser_col1_body":     &s.LandingTeaserCol1Body,
		"landing_teaser_col2_title":    &s.LandingTeaserCol2Title,
		"landing_teaser_col2_body":     &s.LandingTeaserCol2Body,
	}
}

// mergeSettings lays stored key-value pairs over the defaults.
func mergeSettings(stored map[string]string) models.Settings {
	s := defaultSettings()
	fields := settingsFields(&s)
	for key, value := range stored {
		if field, ok := fields[key]; ok {
			*field = value
		}
	}
	return s
}

// Get returns the current settings merged over defaults.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	if s.storeCache != nil {
		var cached models.Settings
		if s.storeCache.GetSettings(ctx, &cached) {
			return &cached, nil
		}
	}

	stored, err := s.settingsRepo.GetAll()
	if err != nil {
		return nil, err
	}

	merged := mergeSettings(stored)
	if s.storeCache != nil {
		s.storeCache.SetSettings(ctx, merged)
	}
	return &merged, nil
}

// Update writes the provided keys only; everything else keeps its stored
// value. Keys outside the settings schema are dropped.
func (s *SettingsService) Update(ctx context.Context, partial map[string]string) error {
	var schema models.Settings
	known := settingsFields(&schema)

	values := make(map[string]string, len(partial))
	for key, value := range partial {
		if _, ok := known[key]; ok {
			values[key] = value
		} else {
			log.Debug().Str("key", key).Msg("ignoring unknown settings key")
		}
	}

	if err := s.settingsRepo.UpsertMany(values); err != nil {
		return err
	}
	if s.storeCache != nil {
		s.storeCache.InvalidateSettings(ctx)
	}
	return nil
}
