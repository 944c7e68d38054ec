package models

import (
	"strings"
	"time"
)

// Officer is a tracked law enforcement officer
type Officer struct {
	ID          int64      `json:"id"`
	BadgeNumber string     `json:"badge_number"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	MiddleName  string     `json:"middle_name,omitempty"`
	Rank        string     `json:"current_rank,omitempty"`
	HireDate    *time.Time `json:"hire_date,omitempty"`
	Status      string     `json:"status"` // active, suspended, terminated, retired
	CreatedAt   time.Time  `json:"created_at"`
}

// Incident is a reported act of misconduct tied to an officer
type Incident struct {
	ID               int64     `json:"id"`
	OfficerID        int64     `json:"officer_id"`
	IncidentDate     time.Time `json:"incident_date"`
	IncidentType     string    `json:"incident_type"`
	Description      string    `json:"description"`
	Location         string    `json:"location,omitempty"`
	Outcome          string    `json:"outcome,omitempty"`
	ChargesFiled     bool      `json:"charges_filed"`
	SettlementAmount *float64  `json:"settlement_amount,omitempty"`
	CaseNumber       string    `json:"case_number,omitempty"`
	Source           string    `json:"source,omitempty"`
	SourceURL        string    `json:"source_url,omitempty"`
	Verified         bool      `json:"verified"`
	CreatedAt        time.Time `json:"created_at"`
}

// Evidence is metadata about an uploaded file supporting an incident
type Evidence struct {
	ID            int64     `json:"id"`
	OfficerID     int64     `json:"officer_id"`
	IncidentID    *int64    `json:"incident_id,omitempty"`
	EvidenceType  string    `json:"evidence_type"` // photo, video, document, audio
	FilePath      string    `json:"file_path"`
	FileName      string    `json:"file_name"`
	FileSize      int64     `json:"file_size,omitempty"`
	MimeType      string    `json:"mime_type,omitempty"`
	Description   string    `json:"description,omitempty"`
	Source        string    `json:"source,omitempty"`
	UploaderName  string    `json:"uploader_name,omitempty"`
	UploaderEmail string    `json:"uploader_email,omitempty"`
	Verified      bool      `json:"verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// CommunityReport is an account submitted by a member of the public
type CommunityReport struct {
	ID            int64      `json:"id"`
	IncidentID    *int64     `json:"incident_id,omitempty"`
	ReporterName  string     `json:"reporter_name,omitempty"`
	ReporterEmail string     `json:"reporter_email,omitempty"`
	ReporterPhone string     `json:"reporter_phone,omitempty"`
	ReportType    string     `json:"report_type,omitempty"` // witness, victim, community member
	Description   string     `json:"description"`
	IncidentDate  *time.Time `json:"incident_date,omitempty"`
	Location      string     `json:"location,omitempty"`
	ContactOK     bool       `json:"contact_ok"`
	Verified      bool       `json:"verified"`
	CreatedAt     time.Time  `json:"created_at"`
}

// PendingCounts holds the number of unverified records per kind
type PendingCounts map[EntityKind]int

// OfficerForm represents form data for adding an officer
type OfficerForm struct {
	BadgeNumber string `json:"badge_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	MiddleName  string `json:"middle_name"`
	Rank        string `json:"rank"`
	HireDate    string `json:"hire_date"`
	Status      string `json:"status"`
}

var officerStatuses = map[string]bool{"active": true, "suspended": true, "terminated": true, "retired": true}

// Validate validates the officer form data
func (f *OfficerForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.BadgeNumber) == "" {
		errors = append(errors, "Badge number is required")
	}
	if len(f.BadgeNumber) > 20 {
		errors = append(errors, "Badge number must be less than 20 characters")
	}
	if strings.TrimSpace(f.FirstName) == "" {
		errors = append(errors, "First name is required")
	}
	if strings.TrimSpace(f.LastName) == "" {
		errors = append(errors, "Last name is required")
	}
	if f.Status != "" && !officerStatuses[f.Status] {
		errors = append(errors, "Status is invalid")
	}
	if _, err := parseOptionalDate(f.HireDate); err != nil {
		errors = append(errors, "Hire date must be in YYYY-MM-DD format")
	}

	return errors
}

// ToOfficer converts a validated form to an Officer
func (f *OfficerForm) ToOfficer() *Officer {
	hire, _ := parseOptionalDate(f.HireDate)
	status := f.Status
	if status == "" {
		status = "active"
	}
	return &Officer{
		BadgeNumber: strings.TrimSpace(f.BadgeNumber),
		FirstName:   strings.TrimSpace(f.FirstName),
		LastName:    strings.TrimSpace(f.LastName),
		MiddleName:  strings.TrimSpace(f.MiddleName),
		Rank:        strings.TrimSpace(f.Rank),
		HireDate:    hire,
		Status:      status,
	}
}

// IncidentForm represents form data for adding an incident
type IncidentForm struct {
	OfficerID        int64    `json:"officer_id"`
	IncidentDate     string   `json:"incident_date"`
	IncidentType     string   `json:"incident_type"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	Outcome          string   `json:"outcome"`
	ChargesFiled     bool     `json:"charges_filed"`
	SettlementAmount *float64 `json:"settlement_amount"`
	CaseNumber       string   `json:"case_number"`
	Source           string   `json:"source"`
	SourceURL        string   `json:"source_url"`
}

// Validate validates the incident form data
func (f *IncidentForm) Validate() []string {
	var errors []string

	if f.OfficerID <= 0 {
		errors = append(errors, "Officer must be selected")
	}
	if f.IncidentDate == "" {
		errors = append(errors, "Incident date is required")
	} else if _, err := ParseDate(f.IncidentDate); err != nil {
		errors = append(errors, "Incident date must be in YYYY-MM-DD format")
	}
	if strings.TrimSpace(f.IncidentType) == "" {
		errors = append(errors, "Incident type is required")
	}
	if strings.TrimSpace(f.Description) == "" {
		errors = append(errors, "Description is required")
	}
	if f.SettlementAmount != nil && *f.SettlementAmount < 0 {
		errors = append(errors, "Settlement amount cannot be negative")
	}

	return errors
}

// ToIncident converts a validated form to an unverified Incident
func (f *IncidentForm) ToIncident() *Incident {
	date, _ := ParseDate(f.IncidentDate)
	return &Incident{
		OfficerID:        f.OfficerID,
		IncidentDate:     date,
		IncidentType:     strings.TrimSpace(f.IncidentType),
		Description:      strings.TrimSpace(f.Description),
		Location:         strings.TrimSpace(f.Location),
		Outcome:          strings.TrimSpace(f.Outcome),
		ChargesFiled:     f.ChargesFiled,
		SettlementAmount: f.SettlementAmount,
		CaseNumber:       strings.TrimSpace(f.CaseNumber),
		Source:           strings.TrimSpace(f.Source),
		SourceURL:        strings.TrimSpace(f.SourceURL),
	}
}

// EvidenceForm represents metadata for an already stored evidence file
type EvidenceForm struct {
	OfficerID     int64  `json:"officer_id"`
	IncidentID    int64  `json:"incident_id"`
	EvidenceType  string `json:"evidence_type"`
	FilePath      string `json:"file_path"`
	FileName      string `json:"file_name"`
	FileSize      int64  `json:"file_size"`
	MimeType      string `json:"mime_type"`
	Description   string `json:"description"`
	Source        string `json:"source"`
	UploaderName  string `json:"uploader_name"`
	UploaderEmail string `json:"uploader_email"`
}

var evidenceTypes = map[string]bool{"photo": true, "video": true, "document": true, "audio": true}

// Validate validates the evidence form data
func (f *EvidenceForm) Validate() []string {
	var errors []string

	if f.OfficerID <= 0 {
		errors = append(errors, "Officer must be selected")
	}
	if !evidenceTypes[f.EvidenceType] {
		errors = append(errors, "Evidence type must be photo, video, document or audio")
	}
	if strings.TrimSpace(f.FilePath) == "" || strings.TrimSpace(f.FileName) == "" {
		errors = append(errors, "File is required")
	}
	if f.UploaderEmail != "" && !isValidEmail(f.UploaderEmail) {
		errors = append(errors, "Email format is invalid")
	}

	return errors
}

// ToEvidence converts a validated form to an unverified Evidence row
func (f *EvidenceForm) ToEvidence() *Evidence {
	e := &Evidence{
		OfficerID:     f.OfficerID,
		EvidenceType:  f.EvidenceType,
		FilePath:      strings.TrimSpace(f.FilePath),
		FileName:      strings.TrimSpace(f.FileName),
		FileSize:      f.FileSize,
		MimeType:      f.MimeType,
		Description:   strings.TrimSpace(f.Description),
		Source:        strings.TrimSpace(f.Source),
		UploaderName:  strings.TrimSpace(f.UploaderName),
		UploaderEmail: strings.TrimSpace(f.UploaderEmail),
	}
	if f.IncidentID > 0 {
		id := f.IncidentID
		e.IncidentID = &id
	}
	return e
}

// CommunityReportForm represents an anonymous community report
type CommunityReportForm struct {
	IncidentID    int64  `json:"incident_id"`
	ReporterName  string `json:"reporter_name"`
	ReporterEmail string `json:"reporter_email"`
	ReporterPhone string `json:"reporter_phone"`
	ReportType    string `json:"report_type"`
	Description   string `json:"description"`
	IncidentDate  string `json:"incident_date"`
	Location      string `json:"location"`
	ContactOK     bool   `json:"contact_ok"`
}

// Validate validates the community report form data
func (f *CommunityReportForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Description) == "" {
		errors = append(errors, "Description is required")
	}
	if f.ReporterEmail != "" && !isValidEmail(f.ReporterEmail) {
		errors = append(errors, "Email format is invalid")
	}
	if len(f.ReporterPhone) > 20 {
		errors = append(errors, "Phone must be less than 20 characters")
	}
	if _, err := parseOptionalDate(f.IncidentDate); err != nil {
		errors = append(errors, "Incident date must be in YYYY-MM-DD format")
	}

	return errors
}

// ToCommunityReport converts a validated form to an unverified report
func (f *CommunityReportForm) ToCommunityReport() *CommunityReport {
	date, _ := parseOptionalDate(f.IncidentDate)
	r := &CommunityReport{
		ReporterName:  strings.TrimSpace(f.ReporterName),
		ReporterEmail: strings.TrimSpace(f.ReporterEmail),
		ReporterPhone: strings.TrimSpace(f.ReporterPhone),
		ReportType:    strings.TrimSpace(f.ReportType),
		Description:   strings.TrimSpace(f.Description),
		IncidentDate:  date,
		Location:      strings.TrimSpace(f.Location),
		ContactOK:     f.ContactOK,
	}
	// 0 means "not related to a specific incident"
	if f.IncidentID > 0 {
		id := f.IncidentID
		r.IncidentID = &id
	}
	return r
}
