package models

import "time"

// SubscriptionSource tags where a newsletter subscription came from.
type SubscriptionSource string

const (
	SourceWebsite  SubscriptionSource = "website"
	SourceSocial   SubscriptionSource = "social"
	SourceReferral SubscriptionSource = "referral"
	SourceImport   SubscriptionSource = "import"
)

// NewsletterSubscription maps an email address to content-category opt-ins.
// Subscriptions are keyed by email, not user id; anonymous subscription is
// supported. Unsubscribing hard-deletes the row.
type NewsletterSubscription struct {
	ID          uint                  `gorm:"primaryKey" json:"id"`
	Email       string                `gorm:"uniqueIndex;not null" json:"email"`
	Preferences NewsletterPreferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
	IsActive    bool                  `gorm:"default:true;index" json:"is_active"`
	Source      SubscriptionSource    `gorm:"type:varchar(20);default:'website'" json:"source"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// PreferencesPatch is a partial update of newsletter preferences. Nil fields
// keep their stored value; only explicitly provided flags are merged.
type PreferencesPatch struct {
	NBA           *bool `json:"nba,omitempty"`
	WNBA          *bool `json:"wnba,omitempty"`
	NCAA          *bool `json:"ncaa,omitempty"`
	International *bool `json:"international,omitempty"`
	Breaking      *bool `json:"breaking,omitempty"`
}

// ApplyTo merges the patch over prefs, leaving unset flags untouched.
func (p PreferencesPatch) ApplyTo(prefs *NewsletterPreferences) {
	if p.NBA != nil {
		prefs.NBA = *p.NBA
	}
	if p.WNBA != nil {
		prefs.WNBA = *p.WNBA
	}
	if p.NCAA != nil {
		prefs.NCAA = *p.NCAA
	}
	if p.International != nil {
		prefs.International = *p.International
	}
	if p.Breaking != nil {
		prefs.Breaking = *p.Breaking
	}
}

// DefaultNewsletterPreferences returns the flags applied to a brand-new
// subscription before any explicit patch.
func DefaultNewsletterPreferences() NewsletterPreferences {
	return NewsletterPreferences{
		NBA:           true,
		WNBA:          false,
		NCAA:          false,
		International: false,
		Breaking:      true,
	}
}

// NotificationPreferencesPatch is the partial-update form of
// NotificationPreferences used on the user preferences route.
type NotificationPreferencesPatch struct {
	Email *bool `json:"email,omitempty"`
	Push  *bool `json:"push,omitempty"`
}

// ApplyTo merges the patch over prefs.
func (p NotificationPreferencesPatch) ApplyTo(prefs *NotificationPreferences) {
	if p.Email != nil {
		prefs.Email = *p.Email
	}
	if p.Push != nil {
		prefs.Push = *p.Push
	}
}

// NewsletterStats aggregates subscriber counts for the admin dashboard.
type NewsletterStats struct {
	TotalSubscribers int64 `json:"totalSubscribers"`
	PreferenceStats  struct {
		NBA           int64 `json:"nba"`
		WNBA          int64 `json:"wnba"`
		NCAA          int64 `json:"ncaa"`
		International int64 `json:"international"`
		Breaking      int64 `json:"breaking"`
	} `json:"preferenceStats"`
}
