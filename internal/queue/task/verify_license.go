package task

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	VerifyLicenseTaskName  = "verifyLicenseTask"
	VerifyLicenseQueueName = "verifyLicenseQueue"
)

type VerifyLicense struct {
	TenantID                uuid.UUID `json:"tenant_id"`
	PharmacyLicenseNumber   string    `json:"pharmacy_license_number"`
	PharmacistLicenseNumber string    `json:"pharmacist_license_number"`
	BusinessLicenseNumber   string    `json:"business_license_number"`
}

// NewVerifyLicenseTask asks the regulator registry about a freshly created
// tenant. The task id is derived from the tenant so a tenant is queued once.
func NewVerifyLicenseTask(data VerifyLicense) (*asynq.Task, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		VerifyLicenseTaskName,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(VerifyLicenseQueueName),
		asynq.TaskID("verify-license:"+data.TenantID.String()),
	), nil
}
