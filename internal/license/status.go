package license

import (
	"time"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

const secondsPerDay = 86400

const (
	MsgNoLicense   = "No license found"
	MsgExpired     = "License has expired"
	MsgDeactivated = "License is deactivated"
)

// StatusAt derives the live status of key at the given instant. A nil key
// means nothing was ever activated.
func StatusAt(key *model.LicenseKey, now time.Time) *model.LicenseStatus {
	if key == nil {
		msg := MsgNoLicense
		return &model.LicenseStatus{ErrorMessage: &msg}
	}

	email := key.Email
	licenseType := key.LicenseType
	st := &model.LicenseStatus{
		IsActivated: true,
		IsValid:     key.IsActive,
		ExpiresAt:   key.ExpiresAt,
		Email:       &email,
		LicenseType: &licenseType,
	}

	if key.ExpiresAt != nil {
		unix := now.Unix()
		days := (*key.ExpiresAt - unix) / secondsPerDay
		st.DaysRemaining = &days
		if unix > *key.ExpiresAt {
			st.IsValid = false
			msg := MsgExpired
			st.ErrorMessage = &msg
			return st
		}
	}

	if !key.IsActive {
		msg := MsgDeactivated
		st.ErrorMessage = &msg
	}
	return st
}
