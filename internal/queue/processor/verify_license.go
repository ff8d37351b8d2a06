package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/pharmahub/backend/internal/queue/task"
	"github.com/pharmahub/backend/internal/worker"
	"github.com/pharmahub/backend/pkg/logger"
)

type verifyLicenseProcessor struct {
	workers *worker.Workers
}

func NewVerifyLicenseProcessor(workers *worker.Workers) *verifyLicenseProcessor {
	return &verifyLicenseProcessor{
		workers: workers,
	}
}

func (p *verifyLicenseProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.VerifyLicense
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return fmt.Errorf("process verify license task json unmarshal failed: %w: %w", err, asynq.SkipRetry)
	}

	status, err := p.workers.LicenseChecker.CheckTenantLicenses(ctx, worker.LicenseCheckInput{
		TenantID:                data.TenantID,
		PharmacyLicenseNumber:   data.PharmacyLicenseNumber,
		PharmacistLicenseNumber: data.PharmacistLicenseNumber,
		BusinessLicenseNumber:   data.BusinessLicenseNumber,
	})
	if err != nil {
		return fmt.Errorf("check tenant licenses failed: %w", err)
	}

	logger.Info("tenant license checked", zap.String("tenant_id", data.TenantID.String()), zap.String("status", string(status)))
	return nil
}
