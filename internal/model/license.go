package model

type LicenseKey struct {
	KeyHash            string `db:"key_hash" json:"keyHash"`
	Email              string `db:"email" json:"email"`
	MachineFingerprint string `db:"machine_fingerprint" json:"machineFingerprint"`
	ActivatedAt        int64  `db:"activated_at" json:"activatedAt"`
	ExpiresAt          *int64 `db:"expires_at" json:"expiresAt,omitempty"`
	IsActive           bool   `db:"is_active" json:"isActive"`
	LicenseType        string `db:"license_type" json:"licenseType"`
}

// LicenseStatus is derived on demand from the stored LicenseKey.
type LicenseStatus struct {
	IsActivated   bool    `json:"isActivated"`
	IsValid       bool    `json:"isValid"`
	ExpiresAt     *int64  `json:"expiresAt"`
	Email         *string `json:"email"`
	DaysRemaining *int64  `json:"daysRemaining"`
	LicenseType   *string `json:"licenseType"`
	ErrorMessage  *string `json:"errorMessage"`
}
