package license

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-desktop/internal/model"
)

func TestHashKey(t *testing.T) {
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := HashKey("abc"); got != want {
		t.Errorf("HashKey(abc) = %s", got)
	}
	if HashKey("ABCD-1234") == HashKey("abcd-1234") {
		t.Error("hash should be case sensitive")
	}
}

func TestPickHardwareAddr(t *testing.T) {
	mac := func(s string) net.HardwareAddr {
		hw, err := net.ParseMAC(s)
		if err != nil {
			t.Fatalf("ParseMAC: %v", err)
		}
		return hw
	}
	ifaces := []net.Interface{
		{Name: "lo", Flags: net.FlagLoopback},
		{Name: "wlan0", HardwareAddr: mac("aa:bb:cc:00:00:01")},
		{Name: "eth0", HardwareAddr: mac("aa:bb:cc:00:00:02")},
	}

	got, err := pickHardwareAddr(ifaces, "eth0")
	if err != nil || got != "aa:bb:cc:00:00:02" {
		t.Errorf("preferred = %q, %v", got, err)
	}
	got, err = pickHardwareAddr(ifaces, "en0")
	if err != nil || got != "aa:bb:cc:00:00:01" {
		t.Errorf("fallback = %q, %v", got, err)
	}
	if _, err := pickHardwareAddr(ifaces[:1], "eth0"); !errors.Is(err, ErrFingerprint) {
		t.Errorf("loopback only: err = %v, want ErrFingerprint", err)
	}
}

func TestNetFingerprinterListFailure(t *testing.T) {
	f := &NetFingerprinter{interfaces: func() ([]net.Interface, error) { return nil, errors.New("denied") }}
	if _, err := f.Fingerprint(); !errors.Is(err, ErrFingerprint) {
		t.Errorf("err = %v, want ErrFingerprint", err)
	}
}

func TestHTTPClientValidate(t *testing.T) {
	var got ValidationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/license/validate" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID")
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"valid":true,"expires_at":1900000000,"user_email":"owner@shop.com","license_type":"pro","error":null}`))
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL+"/").Validate(context.Background(), &ValidationRequest{
		Key: "K", Email: "e@x.com", MachineFingerprint: "fp",
	})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got.MachineFingerprint != "fp" || got.Key != "K" {
		t.Errorf("server saw %+v", got)
	}
	if !resp.Valid || resp.ExpiresAt == nil || *resp.ExpiresAt != 1900000000 || resp.UserEmail != "owner@shop.com" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestHTTPClientFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		kind    error
		prefix  string
	}{
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			kind:    ErrNetwork,
			prefix:  "API error: 500",
		},
		{
			name:    "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"valid": tru`)) },
			kind:    ErrParse,
			prefix:  "Parse error: ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewHTTPClient(srv.URL).Validate(context.Background(), &ValidationRequest{Key: "K"})
			if !errors.Is(err, tt.kind) {
				t.Fatalf("err = %v, want %v", err, tt.kind)
			}
			if !strings.HasPrefix(err.Error(), tt.prefix) {
				t.Errorf("message = %q, want prefix %q", err.Error(), tt.prefix)
			}
		})
	}

	// Nothing listens on a closed server's address.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	_, err := NewHTTPClient(url).Validate(context.Background(), &ValidationRequest{Key: "K"})
	if !errors.Is(err, ErrNetwork) || !strings.HasPrefix(err.Error(), "Connection error: ") {
		t.Errorf("unreachable: err = %v", err)
	}
}

func TestStatusAt(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	ptr := func(v int64) *int64 { return &v }

	if st := StatusAt(nil, now); st.IsActivated || st.ErrorMessage == nil || *st.ErrorMessage == "" {
		t.Errorf("no license: %+v", st)
	}

	expired := &model.LicenseKey{Email: "a@b.com", IsActive: true, LicenseType: "pro", ExpiresAt: ptr(now.Unix() - 1)}
	if st := StatusAt(expired, now); !st.IsActivated || st.IsValid {
		t.Errorf("expired: %+v", st)
	}

	perpetual := &model.LicenseKey{Email: "a@b.com", IsActive: true, LicenseType: "enterprise", ActivatedAt: 1}
	if st := StatusAt(perpetual, now.Add(100*365*24*time.Hour)); !st.IsValid || st.DaysRemaining != nil || st.ErrorMessage != nil {
		t.Errorf("perpetual: %+v", st)
	}

	tenDays := &model.LicenseKey{IsActive: true, ExpiresAt: ptr(now.Unix() + 10*86400 + 3600)}
	st := StatusAt(tenDays, now)
	if !st.IsValid || st.DaysRemaining == nil || *st.DaysRemaining != 10 {
		t.Errorf("ten days: valid=%v days=%v", st.IsValid, st.DaysRemaining)
	}

	revoked := &model.LicenseKey{IsActive: false}
	if st := StatusAt(revoked, now); st.IsValid || st.ErrorMessage == nil || *st.ErrorMessage != MsgDeactivated {
		t.Errorf("revoked: %+v", st)
	}
}
