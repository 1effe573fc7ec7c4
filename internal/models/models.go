package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Role Enum ---
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole normalizes a role coming from outside the process (config, CLI, token claims).
// It is the only place where role strings are compared case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("invalid role: %q", s)
	}
}

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, err := scanString("Role", value)
	if err != nil {
		return err
	}
	parsed, err := ParseRole(strVal)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Job Type Enum ---
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeRemote     JobType = "remote"
	JobTypeInternship JobType = "internship"
)

// JobTypes lists every accepted job type, in display order.
var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote, JobTypeInternship}

func (jt JobType) IsValid() bool {
	switch jt {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote, JobTypeInternship:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for JobType
func (jt *JobType) Scan(value interface{}) error {
	strVal, err := scanString("JobType", value)
	if err != nil {
		return err
	}
	v := JobType(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid JobType value: %s", strVal)
	}
	*jt = v
	return nil
}

// Value implements the driver.Valuer interface for JobType
func (jt JobType) Value() (driver.Value, error) {
	return string(jt), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusSubmitted,
	ApplicationStatusReviewed,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, err := scanString("ApplicationStatus", value)
	if err != nil {
		return err
	}
	v := ApplicationStatus(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Profile Visibility Enum ---
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// Scan implements the sql.Scanner interface for Visibility
func (v *Visibility) Scan(value interface{}) error {
	strVal, err := scanString("Visibility", value)
	if err != nil {
		return err
	}
	parsed := Visibility(strVal)
	if !parsed.IsValid() {
		return fmt.Errorf("invalid Visibility value: %s", strVal)
	}
	*v = parsed
	return nil
}

// Value implements the driver.Valuer interface for Visibility
func (v Visibility) Value() (driver.Value, error) {
	return string(v), nil
}

func scanString(typeName string, value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to scan %s: value is not string or []byte", typeName)
	}
}

// User is the subject of every authorization decision.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	IsVerified   bool      `json:"is_verified" db:"is_verified"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Profile holds the optional descriptive fields of a User (1:1).
type Profile struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	FullName    *string    `json:"full_name,omitempty" db:"full_name"`
	Headline    *string    `json:"headline,omitempty" db:"headline"`
	Bio         *string    `json:"bio,omitempty" db:"bio"`
	PhoneNumber *string    `json:"phone_number,omitempty" db:"phone_number"`
	ResumeURL   *string    `json:"resume_url,omitempty" db:"resume_url"`
	Visibility  Visibility `json:"visibility" db:"visibility"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

type JobCategory struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	Slug string    `json:"slug" db:"slug"`
}

// Job is a posting created by an admin. Company is free text, not a reference to Company.
type Job struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	Title       string           `json:"title" db:"title"`
	Description string           `json:"description" db:"description"`
	Company     string           `json:"company" db:"company"`
	Location    string           `json:"location" db:"location"`
	Latitude    *float64         `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64         `json:"longitude,omitempty" db:"longitude"`
	JobType     JobType          `json:"job_type" db:"job_type"`
	SalaryMin   *decimal.Decimal `json:"salary_min,omitempty" db:"salary_min"`
	SalaryMax   *decimal.Decimal `json:"salary_max,omitempty" db:"salary_max"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty" db:"category_id"`
	Category    *JobCategory     `json:"category,omitempty" db:"-"`
	PostedBy    uuid.UUID        `json:"posted_by" db:"posted_by"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
}

type Application struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	JobID       uuid.UUID         `json:"job_id" db:"job_id"`
	ApplicantID uuid.UUID         `json:"applicant_id" db:"applicant_id"`
	Resume      string            `json:"resume" db:"resume"`
	CoverLetter *string           `json:"cover_letter,omitempty" db:"cover_letter"`
	Status      ApplicationStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// JobSummary is the slice of a Job embedded in application listings.
type JobSummary struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Company string    `json:"company"`
}

// UserSummary is the slice of a User embedded in application listings.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// ApplicationDetail is an Application eagerly joined with its job and applicant.
type ApplicationDetail struct {
	Application
	Job       JobSummary  `json:"job"`
	Applicant UserSummary `json:"applicant"`
}

type Company struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OwnerID     uuid.UUID `json:"owner_id" db:"owner_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	Industry    *string   `json:"industry,omitempty" db:"industry"`
	WebsiteURL  *string   `json:"website_url,omitempty" db:"website_url"`
	Logo        *string   `json:"logo,omitempty" db:"logo"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type Country struct {
	ID      uuid.UUID `json:"id" db:"id"`
	Name    string    `json:"name" db:"name"`
	ISOCode *string   `json:"iso_code,omitempty" db:"iso_code"`
}

type State struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CountryID uuid.UUID `json:"country_id" db:"country_id"`
	Name      string    `json:"name" db:"name"`
}

type City struct {
	ID      uuid.UUID `json:"id" db:"id"`
	StateID uuid.UUID `json:"state_id" db:"state_id"`
	Name    string    `json:"name" db:"name"`
}
