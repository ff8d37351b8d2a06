package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/internal/service/licensecheck"
	"github.com/pharmahub/backend/pkg/logger"
)

type LicenseCheckInput struct {
	TenantID                uuid.UUID
	PharmacyLicenseNumber   string
	PharmacistLicenseNumber string
	BusinessLicenseNumber   string
}

func (in LicenseCheckInput) queries() []licensecheck.LicenseQuery {
	return []licensecheck.LicenseQuery{
		{Kind: licensecheck.KindPharmacy, Number: in.PharmacyLicenseNumber},
		{Kind: licensecheck.KindPharmacist, Number: in.PharmacistLicenseNumber},
		{Kind: licensecheck.KindBusiness, Number: in.BusinessLicenseNumber},
	}
}

type licenseChecker struct {
	registry LicenseRegistry
	tenants  TenantLicenses
	now      func() time.Time
}

func newLicenseChecker(registry LicenseRegistry, tenants TenantLicenses) *licenseChecker {
	return &licenseChecker{
		registry: registry,
		tenants:  tenants,
		now:      time.Now,
	}
}

// CheckTenantLicenses asks the registry about every license of a tenant and
// stores the verdict. A registry failure leaves the tenant pending so the
// task can be retried.
func (c *licenseChecker) CheckTenantLicenses(ctx context.Context, input LicenseCheckInput) (domain.LicenseStatus, error) {
	queries := input.queries()

	resp, err := c.registry.Check(ctx, queries)
	if err != nil {
		return domain.LicensePending, fmt.Errorf("check licenses failed: %w", err)
	}

	status := domain.LicenseRejected
	if resp.AllValid(len(queries)) {
		status = domain.LicenseVerified
	} else {
		for _, r := range resp.Results {
			if r.Status != licensecheck.StatusValid {
				logger.Info("license not confirmed by registry",
					zap.String("tenant_id", input.TenantID.String()),
					zap.String("kind", string(r.Kind)),
					zap.String("status", string(r.Status)),
				)
			}
		}
	}

	if err := c.tenants.UpdateLicenseStatus(ctx, input.TenantID, status, c.now()); err != nil {
		return status, fmt.Errorf("update license status failed: %w", err)
	}

	return status, nil
}
