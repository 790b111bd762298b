package licenseserver

import "errors"

var ErrInvalidRequest = errors.New("invalid request")

const (
	TypeBasic      = "basic"
	TypePro        = "pro"
	TypeEnterprise = "enterprise"
)

// Rejection reasons returned to the desktop client.
const (
	ReasonNotFound        = "License key not found"
	ReasonDeactivated     = "License is deactivated"
	ReasonExpired         = "License has expired"
	ReasonTooManyMachines = "Maximum activations exceeded"
	ReasonInternal        = "Internal server error"
)

// License is an issued key. The plain key is kept so support staff can
// resend it; it never leaves the admin API after creation.
type License struct {
	ID                 int64   `db:"id" json:"id"`
	KeyHash            string  `db:"key_hash" json:"-"`
	KeyPlain           string  `db:"key_plain" json:"-"`
	Email              string  `db:"email" json:"email"`
	MachineFingerprint *string `db:"machine_fingerprint" json:"machine_fingerprint,omitempty"`
	LicenseType        string  `db:"license_type" json:"license_type"`
	ExpiresAt          *int64  `db:"expires_at" json:"expires_at,omitempty"`
	ActivatedAt        *int64  `db:"activated_at" json:"activated_at,omitempty"`
	IsActive           bool    `db:"is_active" json:"is_active"`
	ActivationCount    int64   `db:"activation_count" json:"activation_count"`
	MaxActivations     int64   `db:"max_activations" json:"max_activations"`
	CreatedAt          int64   `db:"created_at" json:"created_at"`
}

type ValidationLog struct {
	ID                 int64   `db:"id" json:"id"`
	LicenseID          int64   `db:"license_id" json:"license_id"`
	MachineFingerprint string  `db:"machine_fingerprint" json:"machine_fingerprint"`
	Valid              bool    `db:"valid" json:"valid"`
	IPAddress          *string `db:"ip_address" json:"ip_address,omitempty"`
	UserAgent          *string `db:"user_agent" json:"user_agent,omitempty"`
	ValidatedAt        int64   `db:"validated_at" json:"validated_at"`
}

// Client describes where a validation request came from.
type Client struct {
	IPAddress string
	UserAgent string
}

type CreateLicenseRequest struct {
	Email         string `json:"email"`
	LicenseType   string `json:"license_type"`
	ExpiresInDays *int64 `json:"expires_in_days,omitempty"`
}

type CreateLicenseResponse struct {
	ID          int64  `json:"id"`
	Key         string `json:"key"`
	KeyHash     string `json:"key_hash"`
	Email       string `json:"email"`
	LicenseType string `json:"license_type"`
	ExpiresAt   *int64 `json:"expires_at,omitempty"`
}
