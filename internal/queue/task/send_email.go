package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	SendVerificationEmailTaskName  = "sendVerificationEmailTask"
	SendPasswordResetEmailTaskName = "sendPasswordResetEmailTask"
	SendEmailQueueName             = "sendEmailQueue"
)

type SendVerificationEmail struct {
	Email            string `json:"email"`
	FullName         string `json:"full_name"`
	VerificationCode string `json:"verification_code"`
}

func NewSendVerificationEmailTask(email string, fullName string, verificationCode string) (*asynq.Task, error) {
	data := SendVerificationEmail{
		Email:            email,
		FullName:         fullName,
		VerificationCode: verificationCode,
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendVerificationEmailTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(SendEmailQueueName),
	), nil
}

type SendPasswordResetEmail struct {
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	ResetLink string `json:"reset_link"`
}

func NewSendPasswordResetEmailTask(email string, fullName string, resetLink string) (*asynq.Task, error) {
	data := SendPasswordResetEmail{
		Email:     email,
		FullName:  fullName,
		ResetLink: resetLink,
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendPasswordResetEmailTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(SendEmailQueueName),
	), nil
}
