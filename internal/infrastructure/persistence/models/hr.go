package models

import (
	"time"

	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeProfileModel is the persistence model for employee profiles
type EmployeeProfileModel struct {
	OrgAggregateModel
	UserID         *uuid.UUID `gorm:"type:uuid;index"`
	// Uniqueness of (org_id, employee_number) is enforced by migration
	EmployeeNumber string `gorm:"type:varchar(50);not null;index"`
	FirstName      string     `gorm:"type:varchar(100);not null"`
	LastName       string     `gorm:"type:varchar(100);not null"`
	JobTitle       string     `gorm:"type:varchar(200)"`
	Status         string     `gorm:"type:varchar(20);not null;index"`
	HireDate       time.Time  `gorm:"not null"`
	TerminatedAt   *time.Time
}

// TableName returns the table name
func (EmployeeProfileModel) TableName() string {
	return "employee_profiles"
}

// ToDomain converts the model to a domain employee profile
func (m *EmployeeProfileModel) ToDomain() *hr.EmployeeProfile {
	emp := &hr.EmployeeProfile{
		UserID:         m.UserID,
		EmployeeNumber: m.EmployeeNumber,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		JobTitle:       m.JobTitle,
		Status:         hr.EmployeeStatus(m.Status),
		HireDate:       m.HireDate,
		TerminatedAt:   m.TerminatedAt,
	}
	m.PopulateOrgAggregateRoot(&emp.OrgAggregateRoot)
	return emp
}

// FromDomain populates the model from a domain employee profile
func (m *EmployeeProfileModel) FromDomain(emp *hr.EmployeeProfile) {
	m.FromDomainOrgAggregateRoot(emp.OrgAggregateRoot)
	m.UserID = emp.UserID
	m.EmployeeNumber = emp.EmployeeNumber
	m.FirstName = emp.FirstName
	m.LastName = emp.LastName
	m.JobTitle = emp.JobTitle
	m.Status = emp.Status.String()
	m.HireDate = emp.HireDate
	m.TerminatedAt = emp.TerminatedAt
}

// CompensationRecordModel is the persistence model for compensation
// records. The partial unique index keeping one current record per
// employee lives in the migrations.
type CompensationRecordModel struct {
	OrgAggregateModel
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PayType       string          `gorm:"type:varchar(20);not null"`
	HourlyRate    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	OvertimeRate  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Salary        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	PerDiem       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	EffectiveDate time.Time       `gorm:"not null"`
	EndDate       *time.Time
	IsCurrent     bool   `gorm:"not null;default:true;index"`
	Reason        string `gorm:"type:varchar(500)"`
}

// TableName returns the table name
func (CompensationRecordModel) TableName() string {
	return "compensation_records"
}

// ToDomain converts the model to a domain compensation record
func (m *CompensationRecordModel) ToDomain() *hr.CompensationRecord {
	record := &hr.CompensationRecord{
		EmployeeID:    m.EmployeeID,
		PayType:       hr.PayType(m.PayType),
		HourlyRate:    m.HourlyRate,
		OvertimeRate:  m.OvertimeRate,
		Salary:        m.Salary,
		PerDiem:       m.PerDiem,
		EffectiveDate: m.EffectiveDate,
		EndDate:       m.EndDate,
		IsCurrent:     m.IsCurrent,
		Reason:        m.Reason,
	}
	m.PopulateOrgAggregateRoot(&record.OrgAggregateRoot)
	return record
}

// FromDomain populates the model from a domain compensation record
func (m *CompensationRecordModel) FromDomain(record *hr.CompensationRecord) {
	m.FromDomainOrgAggregateRoot(record.OrgAggregateRoot)
	m.EmployeeID = record.EmployeeID
	m.PayType = record.PayType.String()
	m.HourlyRate = record.HourlyRate
	m.OvertimeRate = record.OvertimeRate
	m.Salary = record.Salary
	m.PerDiem = record.PerDiem
	m.EffectiveDate = record.EffectiveDate
	m.EndDate = record.EndDate
	m.IsCurrent = record.IsCurrent
	m.Reason = record.Reason
}

// TimeEntryModel is the persistence model for time entries
type TimeEntryModel struct {
	OrgAggregateModel
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ClockIn      time.Time `gorm:"not null;index"`
	ClockOut     *time.Time
	BreakMinutes int              `gorm:"not null;default:0"`
	TotalHours   *decimal.Decimal `gorm:"type:decimal(8,2)"`
	Notes        string           `gorm:"type:varchar(1000)"`
}

// TableName returns the table name
func (TimeEntryModel) TableName() string {
	return "time_entries"
}

// ToDomain converts the model to a domain time entry
func (m *TimeEntryModel) ToDomain() *hr.TimeEntry {
	entry := &hr.TimeEntry{
		EmployeeID:   m.EmployeeID,
		ClockIn:      m.ClockIn,
		ClockOut:     m.ClockOut,
		BreakMinutes: m.BreakMinutes,
		TotalHours:   m.TotalHours,
		Notes:        m.Notes,
	}
	m.PopulateOrgAggregateRoot(&entry.OrgAggregateRoot)
	return entry
}

// FromDomain populates the model from a domain time entry
func (m *TimeEntryModel) FromDomain(entry *hr.TimeEntry) {
	m.FromDomainOrgAggregateRoot(entry.OrgAggregateRoot)
	m.EmployeeID = entry.EmployeeID
	m.ClockIn = entry.ClockIn
	m.ClockOut = entry.ClockOut
	m.BreakMinutes = entry.BreakMinutes
	m.TotalHours = entry.TotalHours
	m.Notes = entry.Notes
}
