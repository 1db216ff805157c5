package models

import "time"

// Settings is the typed view of the key-value configuration bag. Fetched
// rows are merged over the per-field defaults, so unset keys always render
// a usable value.
type Settings struct {
	WhatsappAdmin    string `json:"whatsapp_admin"`
	POStartDate      string `json:"po_start_date"`
	POEndDate        string `json:"po_end_date"`
	Terms            string `json:"terms"`
	MaxOrderQuantity string `json:"max_order_quantity"`

	// Landing page copy.
	LandingLogoURL            string `json:"landing_logo_url"`
	LandingBrandTitle         string `json:"landing_brand_title"`
	LandingBrandSubtitle      string `json:"landing_brand_subtitle"`
	LandingHeroTitleLine1     string `json:"landing_hero_title_line1"`
	LandingHeroTitleLine2     string `json:"landing_hero_title_line2"`
	LandingHeroDescription    string `json:"landing_hero_description"`
	LandingTeaserMainTitle    string `json:"landing_teaser_main_title"`
	LandingTeaserMainSubtitle string `json:"landing_teaser_main_subtitle"`
	LandingTeaserCol1Title    string `json:"landing_teaser_col1_title"`
	LandingTeaserCol1Body     string `json:"landing_teaser_col1_body"`
	LandingTeaserCol2Title    string `json:"landing_teaser_col2_title"`
	LandingTeaserCol2Body     string `json:"landing_teaser_col2_body"`
}

// parsePODate accepts both RFC3339 timestamps and plain dates, which is what
// the admin settings form submits. dateOnly reports that the value carried
// no time component.
func parsePODate(v string) (t time.Time, dateOnly, ok bool) {
	if v == "" {
		return time.Time{}, false, false
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, false, true
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, true, true
	}
	return time.Time{}, false, false
}

// IsPreOrderOpen reports whether the pre-order window is open at the given
// instant. Both bounds are inclusive. A zero now means wall-clock time, so
// the answer is re-evaluated on each call rather than cached. Missing or
// unparseable dates close the window.
func (s Settings) IsPreOrderOpen(now time.Time) bool {
	start, _, ok := parsePODate(s.POStartDate)
	if !ok {
		return false
	}
	end, dateOnly, ok := parsePODate(s.POEndDate)
	if !ok {
		return false
	}
	if dateOnly {
		// A plain end date means the whole of that day.
		end = end.AddDate(0, 0, 1).Add(-time.Second)
	}
	if now.IsZero() {
		now = time.Now()
	}
	return !now.Before(start) && !now.After(end)
}
