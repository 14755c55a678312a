package payroll

import (
	"fmt"
	"time"

	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayRunStatus represents the lifecycle state of a pay run
type PayRunStatus string

const (
	PayRunStatusDraft      PayRunStatus = "draft"
	PayRunStatusProcessing PayRunStatus = "processing"
	PayRunStatusApproved   PayRunStatus = "approved"
)

// IsValid returns true for a recognized status
func (s PayRunStatus) IsValid() bool {
	switch s {
	case PayRunStatusDraft, PayRunStatusProcessing, PayRunStatusApproved:
		return true
	}
	return false
}

// String returns the status as a string
func (s PayRunStatus) String() string {
	return string(s)
}

// PayRun is one execution of payroll against a pay period. Totals are
// recomputed every time the run is calculated.
type PayRun struct {
	shared.OrgAggregateRoot
	PayPeriodID     uuid.UUID
	RunNumber       string
	Status          PayRunStatus
	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalTaxes      decimal.Decimal
	TotalNet        decimal.Decimal
	EmployeeCount   int
	ProcessedBy     *uuid.UUID
	ProcessedAt     *time.Time
	ApprovedBy      *uuid.UUID
	ApprovedAt      *time.Time
	Notes           string
}

// NewPayRun creates a draft pay run for a period. sequence is the
// 1-based count of runs already created for the period, used to build
// the run number PR-YYYYMMDD-n.
func NewPayRun(orgID, payPeriodID uuid.UUID, periodStart time.Time, sequence int64) *PayRun {
	return &PayRun{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		PayPeriodID:      payPeriodID,
		RunNumber:        fmt.Sprintf("PR-%s-%d", periodStart.Format("20060102"), sequence),
		Status:           PayRunStatusDraft,
	}
}

// CanCalculate reports whether payroll may be (re)calculated for the run
func (r *PayRun) CanCalculate() bool {
	return r.Status == PayRunStatusDraft || r.Status == PayRunStatusProcessing
}

// Process transitions the run from draft to processing
func (r *PayRun) Process(userID uuid.UUID) error {
	if r.Status != PayRunStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Pay run can only be processed from draft status")
	}
	now := time.Now()
	r.Status = PayRunStatusProcessing
	r.ProcessedBy = &userID
	r.ProcessedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()
	return nil
}

// Approve transitions the run from processing to approved
func (r *PayRun) Approve(userID uuid.UUID) error {
	if r.Status != PayRunStatusProcessing {
		return shared.NewDomainError("INVALID_STATE", "Pay run can only be approved from processing status")
	}
	now := time.Now()
	r.Status = PayRunStatusApproved
	r.ApprovedBy = &userID
	r.ApprovedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()
	return nil
}

// ApplyTotals replaces the run's aggregate totals
func (r *PayRun) ApplyTotals(gross, deductions, taxes, net decimal.Decimal, employeeCount int) {
	r.TotalGross = gross.Round(2)
	r.TotalDeductions = deductions.Round(2)
	r.TotalTaxes = taxes.Round(2)
	r.TotalNet = net.Round(2)
	r.EmployeeCount = employeeCount
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}
