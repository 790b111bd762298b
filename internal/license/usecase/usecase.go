package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fekuna/omnipos-desktop/internal/license"
	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
)

type licenseUseCase struct {
	repo        license.Repository
	validator   license.Validator
	fingerprint license.Fingerprinter
	now         func() time.Time
	logger      logger.ZapLogger
}

func NewLicenseUseCase(repo license.Repository, v license.Validator, fp license.Fingerprinter, log logger.ZapLogger) license.UseCase {
	return &licenseUseCase{
		repo:        repo,
		validator:   v,
		fingerprint: fp,
		now:         time.Now,
		logger:      log,
	}
}

func (uc *licenseUseCase) Status(ctx context.Context) (*model.LicenseStatus, error) {
	key, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return license.StatusAt(key, uc.now()), nil
}

func (uc *licenseUseCase) Activate(ctx context.Context, key, email string) (*model.LicenseStatus, error) {
	fp, err := uc.fingerprint.Fingerprint()
	if err != nil {
		uc.logger.Error("failed to fingerprint machine", zap.Error(err))
		return nil, err
	}

	resp, err := uc.validator.Validate(ctx, &license.ValidationRequest{
		Key:                key,
		Email:              email,
		MachineFingerprint: fp,
	})
	if err != nil {
		var verr *license.ValidationError
		if !errors.As(err, &verr) {
			return nil, err
		}
		uc.logger.Warn("license validation failed", zap.String("email", email), zap.Error(err))
		return rejected(verr.Msg), nil
	}

	if !resp.Valid {
		msg := "License validation failed"
		if resp.Error != nil && *resp.Error != "" {
			msg = *resp.Error
		}
		uc.logger.Info("license rejected", zap.String("email", email), zap.String("reason", msg))
		return rejected(msg), nil
	}

	userEmail := resp.UserEmail
	if userEmail == "" {
		userEmail = email
	}
	now := uc.now()
	record := &model.LicenseKey{
		KeyHash:            license.HashKey(key),
		Email:              userEmail,
		MachineFingerprint: fp,
		ActivatedAt:        now.Unix(),
		ExpiresAt:          resp.ExpiresAt,
		IsActive:           true,
		LicenseType:        resp.LicenseType,
	}
	if err := uc.repo.Save(ctx, record); err != nil {
		uc.logger.Error("failed to store license", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("license activated",
		zap.String("email", userEmail),
		zap.String("license_type", resp.LicenseType),
	)
	return license.StatusAt(record, now), nil
}

func rejected(msg string) *model.LicenseStatus {
	return &model.LicenseStatus{ErrorMessage: &msg}
}

func (uc *licenseUseCase) Fingerprint(context.Context) (string, error) {
	return uc.fingerprint.Fingerprint()
}

func (uc *licenseUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.Clear(ctx); err != nil {
		return err
	}
	uc.logger.Info("license cleared")
	return nil
}
