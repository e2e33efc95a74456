package dto

import (
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
)

// JobResponse reports the outcome of a scheduled batch.
type JobResponse struct {
	Job        string             `json:"job"`
	StartedAt  time.Time          `json:"startedAt"`
	FinishedAt time.Time          `json:"finishedAt"`
	Result     domain.BatchResult `json:"result"`
}

// ProcessRecurringResponse reports a manual recurring run for one organization.
type ProcessRecurringResponse struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}
