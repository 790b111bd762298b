package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/fekuna/omnipos-desktop/internal/license"
	"github.com/fekuna/omnipos-desktop/internal/licenseserver"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
)

const secondsPerDay = 24 * 60 * 60

type licenseServerUseCase struct {
	repo   licenseserver.Repository
	now    func() time.Time
	logger logger.ZapLogger
}

func NewLicenseServerUseCase(repo licenseserver.Repository, log logger.ZapLogger) licenseserver.UseCase {
	return &licenseServerUseCase{
		repo:   repo,
		now:    time.Now,
		logger: log,
	}
}

func (uc *licenseServerUseCase) Validate(ctx context.Context, req *license.ValidationRequest, client licenseserver.Client) (*license.ValidationResponse, error) {
	l, err := uc.repo.FindByKeyHash(ctx, license.HashKey(req.Key))
	if err != nil {
		return nil, err
	}
	if l == nil {
		return reject("", "", licenseserver.ReasonNotFound), nil
	}
	if !l.IsActive {
		return reject(l.Email, l.LicenseType, licenseserver.ReasonDeactivated), nil
	}

	now := uc.now().Unix()
	if l.ExpiresAt != nil && now > *l.ExpiresAt {
		return reject(l.Email, l.LicenseType, licenseserver.ReasonExpired), nil
	}

	// A machine already bound to the key may always re-validate.
	movingMachine := l.MachineFingerprint != nil && *l.MachineFingerprint != req.MachineFingerprint
	if movingMachine && l.ActivationCount >= l.MaxActivations {
		uc.logger.Warn("activation limit reached",
			zap.Int64("license_id", l.ID),
			zap.Int64("activation_count", l.ActivationCount),
		)
		return reject(l.Email, l.LicenseType, licenseserver.ReasonTooManyMachines), nil
	}

	if err := uc.repo.RecordActivation(ctx, l.ID, req.MachineFingerprint, now, client); err != nil {
		return nil, err
	}

	uc.logger.Info("license validated", zap.Int64("license_id", l.ID), zap.String("ip", client.IPAddress))
	return &license.ValidationResponse{
		Valid:       true,
		ExpiresAt:   l.ExpiresAt,
		UserEmail:   l.Email,
		LicenseType: l.LicenseType,
	}, nil
}

func reject(email, licenseType, reason string) *license.ValidationResponse {
	return &license.ValidationResponse{
		Valid:       false,
		UserEmail:   email,
		LicenseType: licenseType,
		Error:       &reason,
	}
}

func (uc *licenseServerUseCase) CreateLicense(ctx context.Context, req *licenseserver.CreateLicenseRequest) (*licenseserver.CreateLicenseResponse, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, fmt.Errorf("%w: email must be a valid email address", licenseserver.ErrInvalidRequest)
	}
	switch req.LicenseType {
	case licenseserver.TypeBasic, licenseserver.TypePro, licenseserver.TypeEnterprise:
	default:
		return nil, fmt.Errorf("%w: unknown license type %q", licenseserver.ErrInvalidRequest, req.LicenseType)
	}
	if req.ExpiresInDays != nil && *req.ExpiresInDays < 1 {
		return nil, fmt.Errorf("%w: expiration days must be at least 1", licenseserver.ErrInvalidRequest)
	}

	key, err := GenerateKey()
	if err != nil {
		return nil, err
	}

	now := uc.now().Unix()
	var expiresAt *int64
	if req.ExpiresInDays != nil {
		exp := now + *req.ExpiresInDays*secondsPerDay
		expiresAt = &exp
	}

	l := &licenseserver.License{
		KeyHash:        license.HashKey(key),
		KeyPlain:       key,
		Email:          req.Email,
		LicenseType:    req.LicenseType,
		ExpiresAt:      expiresAt,
		IsActive:       true,
		MaxActivations: 1,
		CreatedAt:      now,
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		uc.logger.Error("failed to create license", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("license created", zap.Int64("license_id", l.ID), zap.String("license_type", l.LicenseType))
	return &licenseserver.CreateLicenseResponse{
		ID:          l.ID,
		Key:         key,
		KeyHash:     l.KeyHash,
		Email:       l.Email,
		LicenseType: l.LicenseType,
		ExpiresAt:   expiresAt,
	}, nil
}

func (uc *licenseServerUseCase) ListLicenses(ctx context.Context) ([]licenseserver.License, error) {
	return uc.repo.List(ctx)
}

func (uc *licenseServerUseCase) LicensesByEmail(ctx context.Context, email string) ([]licenseserver.License, error) {
	return uc.repo.ListByEmail(ctx, email)
}

func (uc *licenseServerUseCase) Revoke(ctx context.Context, id int64) (bool, error) {
	ok, err := uc.repo.SetActive(ctx, id, false)
	if err == nil && ok {
		uc.logger.Info("license revoked", zap.Int64("license_id", id))
	}
	return ok, err
}

func (uc *licenseServerUseCase) Reactivate(ctx context.Context, id int64) (bool, error) {
	ok, err := uc.repo.SetActive(ctx, id, true)
	if err == nil && ok {
		uc.logger.Info("license reactivated", zap.Int64("license_id", id))
	}
	return ok, err
}

func (uc *licenseServerUseCase) ValidationHistory(ctx context.Context, id int64) ([]licenseserver.ValidationLog, error) {
	return uc.repo.ListValidationLogs(ctx, id)
}
