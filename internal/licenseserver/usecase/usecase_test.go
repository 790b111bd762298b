package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/fekuna/omnipos-desktop/internal/license"
	"github.com/fekuna/omnipos-desktop/internal/licenseserver"
	"github.com/fekuna/omnipos-desktop/internal/licenseserver/repository"
	"github.com/fekuna/omnipos-desktop/internal/store/storetest"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
)

var t0 = time.Unix(1_700_000_000, 0)

func newUseCase(t *testing.T) *licenseServerUseCase {
	s := storetest.NewWithSchema(t, licenseserver.Schema)
	uc := NewLicenseServerUseCase(repository.NewSQLiteRepository(s), logger.NewNop()).(*licenseServerUseCase)
	uc.now = func() time.Time { return t0 }
	return uc
}

func days(n int64) *int64 { return &n }

func validate(t *testing.T, uc *licenseServerUseCase, key, fp string) *license.ValidationResponse {
	t.Helper()
	resp, err := uc.Validate(context.Background(), &license.ValidationRequest{
		Key:                key,
		Email:              "a@b.com",
		MachineFingerprint: fp,
	}, licenseserver.Client{IPAddress: "10.0.0.1", UserAgent: "test"})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return resp
}

func reason(resp *license.ValidationResponse) string {
	if resp.Error == nil {
		return ""
	}
	return *resp.Error
}

func TestGenerateKeyShape(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		k, err := GenerateKey()
		if err != nil {
			t.Fatalf("GenerateKey: %v", err)
		}
		if !pattern.MatchString(k) {
			t.Fatalf("key %q has wrong shape", k)
		}
		seen[k] = true
	}
	if len(seen) < 50 {
		t.Errorf("duplicate keys generated: %d unique", len(seen))
	}
}

func TestCreateLicenseValidation(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	cases := []licenseserver.CreateLicenseRequest{
		{Email: "not-an-email", LicenseType: licenseserver.TypeBasic},
		{Email: "a@b.com", LicenseType: "gold"},
		{Email: "a@b.com", LicenseType: licenseserver.TypePro, ExpiresInDays: days(0)},
	}
	for _, req := range cases {
		if _, err := uc.CreateLicense(ctx, &req); !errors.Is(err, licenseserver.ErrInvalidRequest) {
			t.Errorf("CreateLicense(%+v) err = %v, want ErrInvalidRequest", req, err)
		}
	}

	all, err := uc.ListLicenses(ctx)
	if err != nil {
		t.Fatalf("ListLicenses: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("rejected requests stored %d licenses", len(all))
	}
}

func TestCreateAndValidate(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	created, err := uc.CreateLicense(ctx, &licenseserver.CreateLicenseRequest{
		Email:         "owner@shop.com",
		LicenseType:   licenseserver.TypePro,
		ExpiresInDays: days(30),
	})
	if err != nil {
		t.Fatalf("CreateLicense: %v", err)
	}
	if created.KeyHash != license.HashKey(created.Key) {
		t.Errorf("key hash mismatch")
	}
	if created.ExpiresAt == nil || *created.ExpiresAt != t0.Unix()+30*secondsPerDay {
		t.Errorf("expires_at = %v", created.ExpiresAt)
	}

	resp := validate(t, uc, created.Key, "aa:bb:cc")
	if !resp.Valid || resp.UserEmail != "owner@shop.com" || resp.LicenseType != licenseserver.TypePro {
		t.Fatalf("first validation = %+v", resp)
	}

	// Same machine again is allowed.
	if resp := validate(t, uc, created.Key, "aa:bb:cc"); !resp.Valid {
		t.Errorf("revalidation rejected: %s", reason(resp))
	}

	resp = validate(t, uc, created.Key, "dd:ee:ff")
	if resp.Valid || reason(resp) != licenseserver.ReasonTooManyMachines {
		t.Errorf("second machine = %+v", resp)
	}

	logs, err := uc.ValidationHistory(ctx, created.ID)
	if err != nil {
		t.Fatalf("ValidationHistory: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("logs = %d, want 2", len(logs))
	}
	if !logs[0].Valid || logs[0].MachineFingerprint != "aa:bb:cc" || logs[0].IPAddress == nil || *logs[0].IPAddress != "10.0.0.1" {
		t.Errorf("log[0] = %+v", logs[0])
	}

	byEmail, err := uc.LicensesByEmail(ctx, "owner@shop.com")
	if err != nil {
		t.Fatalf("LicensesByEmail: %v", err)
	}
	if len(byEmail) != 1 || byEmail[0].ActivationCount != 2 || byEmail[0].MachineFingerprint == nil {
		t.Errorf("licenses = %+v", byEmail)
	}
}

func TestValidateRejections(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	if resp := validate(t, uc, "NOPE-NOPE-NOPE-NOPE", "aa"); resp.Valid || reason(resp) != licenseserver.ReasonNotFound {
		t.Errorf("unknown key = %+v", resp)
	}

	created, err := uc.CreateLicense(ctx, &licenseserver.CreateLicenseRequest{
		Email:         "a@b.com",
		LicenseType:   licenseserver.TypeBasic,
		ExpiresInDays: days(1),
	})
	if err != nil {
		t.Fatalf("CreateLicense: %v", err)
	}

	ok, err := uc.Revoke(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("Revoke = %v, %v", ok, err)
	}
	if resp := validate(t, uc, created.Key, "aa"); reason(resp) != licenseserver.ReasonDeactivated {
		t.Errorf("revoked = %+v", resp)
	}

	if ok, err := uc.Reactivate(ctx, created.ID); err != nil || !ok {
		t.Fatalf("Reactivate = %v, %v", ok, err)
	}
	uc.now = func() time.Time { return t0.Add(2 * 24 * time.Hour) }
	if resp := validate(t, uc, created.Key, "aa"); reason(resp) != licenseserver.ReasonExpired {
		t.Errorf("expired = %+v", resp)
	}

	if ok, err := uc.Revoke(ctx, 9999); err != nil || ok {
		t.Errorf("Revoke(missing) = %v, %v", ok, err)
	}
}

func TestPerpetualLicense(t *testing.T) {
	uc := newUseCase(t)
	created, err := uc.CreateLicense(context.Background(), &licenseserver.CreateLicenseRequest{
		Email:       "a@b.com",
		LicenseType: licenseserver.TypeEnterprise,
	})
	if err != nil {
		t.Fatalf("CreateLicense: %v", err)
	}
	uc.now = func() time.Time { return t0.Add(10 * 365 * 24 * time.Hour) }

	resp := validate(t, uc, created.Key, "aa")
	if !resp.Valid || resp.ExpiresAt != nil {
		t.Errorf("perpetual = %+v", resp)
	}
}
