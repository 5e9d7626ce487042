package api

import (
	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/api/shared"
)

// RegisterRequest is the payload for company registration.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	CompanyName string `json:"companyName" validate:"required,max=200"`
	Address     string `json:"address" validate:"max=500"`
	CityID      string `json:"cityId" validate:"omitempty,uuid"`
	CompanyCity string `json:"companyCity" validate:"max=100"`
}

// LoginRequest is the payload for company login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued session token. The token is also set as
// an HTTP-only cookie; the body copy serves non-browser clients.
type LoginResponse struct {
	shared.Envelope
	Token string `json:"token"`
}

// ProfileRequest is the payload for a company profile update. When sent as
// multipart form data, an optional "logo" file part replaces the stored logo.
type ProfileRequest struct {
	CompanyName      string `json:"companyName" validate:"required,max=200"`
	Address          string `json:"address" validate:"max=500"`
	CompanyModel     string `json:"companyModel" validate:"max=200"`
	CompanyEmployees string `json:"companyEmployees" validate:"max=100"`
	WorkingTime      string `json:"workingTime" validate:"max=200"`
	WorkOvertime     string `json:"workOvertime" validate:"max=200"`
	Description      string `json:"description" validate:"max=5000"`
	CityID           string `json:"cityId" validate:"omitempty,uuid"`
	CompanyCity      string `json:"companyCity" validate:"max=100"`
}

// CompanyProfile is the authenticated company's own profile view.
type CompanyProfile struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	CompanyName      string    `json:"companyName"`
	Logo             string    `json:"logo"`
	Address          string    `json:"address"`
	CompanyModel     string    `json:"companyModel"`
	CompanyEmployees string    `json:"companyEmployees"`
	WorkingTime      string    `json:"workingTime"`
	WorkOvertime     string    `json:"workOvertime"`
	Description      string    `json:"description"`
	CityID           string    `json:"cityId,omitempty"`
	CompanyCity      string    `json:"companyCity"`
}

// ProfileResponse wraps the authenticated company's profile.
type ProfileResponse struct {
	shared.Envelope
	Company CompanyProfile `json:"company"`
}

// JobRequest is the payload for creating or updating a job. Technologies is
// a single comma-delimited string. When sent as multipart form data, "images"
// file parts are stored and their paths attached to the job.
type JobRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	SalaryMin    int    `json:"salaryMin"`
	SalaryMax    int    `json:"salaryMax"`
	Position     string `json:"position" validate:"max=200"`
	WorkingForm  string `json:"workingForm" validate:"max=100"`
	Technologies string `json:"technologies" validate:"max=1000"`
}

// JobItem is one job in a listing.
type JobItem struct {
	ID           uuid.UUID `json:"id"`
	CompanyLogo  string    `json:"companyLogo"`
	Title        string    `json:"title"`
	CompanyName  string    `json:"companyName"`
	SalaryMin    int       `json:"salaryMin"`
	SalaryMax    int       `json:"salaryMax"`
	Position     string    `json:"position"`
	WorkingForm  string    `json:"workingForm"`
	CompanyCity  string    `json:"companyCity"`
	Technologies []string  `json:"technologies"`
}

// JobListResponse is one page of the authenticated company's jobs.
type JobListResponse struct {
	shared.Envelope
	Jobs      []JobItem `json:"jobs"`
	TotalPage int       `json:"totalPage"`
}

// JobRecord is the full editable record of an owned job.
type JobRecord struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	SalaryMin    int       `json:"salaryMin"`
	SalaryMax    int       `json:"salaryMax"`
	Position     string    `json:"position"`
	WorkingForm  string    `json:"workingForm"`
	Technologies []string  `json:"technologies"`
	Images       []string  `json:"images"`
}

// JobRecordResponse wraps a single owned job for editing.
type JobRecordResponse struct {
	shared.Envelope
	Job JobRecord `json:"job"`
}

// CompanyItem is one company in the public company list.
type CompanyItem struct {
	ID          uuid.UUID `json:"id"`
	Logo        string    `json:"logo"`
	CompanyName string    `json:"companyName"`
	CityName    string    `json:"cityName"`
	TotalJob    int64     `json:"totalJob"`
}

// CompanyListResponse is the public company list.
type CompanyListResponse struct {
	shared.Envelope
	Companies []CompanyItem `json:"companies"`
}

// CompanyPublic is the public profile of a company, without email or
// credentials.
type CompanyPublic struct {
	ID               uuid.UUID `json:"id"`
	Logo             string    `json:"logo"`
	CompanyName      string    `json:"companyName"`
	Address          string    `json:"address"`
	CompanyModel     string    `json:"companyModel"`
	CompanyEmployees string    `json:"companyEmployees"`
	WorkingTime      string    `json:"workingTime"`
	WorkOvertime     string    `json:"workOvertime"`
	Description      string    `json:"description"`
}

// CompanyDetailJob is one job in a public company detail view. The resolved
// city is keyed as cityName here, unlike the companyCity key of listings.
type CompanyDetailJob struct {
	ID           uuid.UUID `json:"id"`
	CompanyLogo  string    `json:"companyLogo"`
	Title        string    `json:"title"`
	CompanyName  string    `json:"companyName"`
	SalaryMin    int       `json:"salaryMin"`
	SalaryMax    int       `json:"salaryMax"`
	Position     string    `json:"position"`
	WorkingForm  string    `json:"workingForm"`
	CityName     string    `json:"cityName"`
	Technologies []string  `json:"technologies"`
}

// CompanyDetailResponse is the public company detail view.
type CompanyDetailResponse struct {
	shared.Envelope
	Company CompanyPublic      `json:"company"`
	Jobs    []CompanyDetailJob `json:"jobs"`
}

// JobDetailResponse is the public view of a single job posting.
type JobDetailResponse struct {
	shared.Envelope
	Job      JobRecord     `json:"job"`
	Company  CompanyPublic `json:"company"`
	CityName string        `json:"cityName"`
}

// CityItem is one city in the reference list.
type CityItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CityListResponse is the city reference list.
type CityListResponse struct {
	shared.Envelope
	Cities []CityItem `json:"cities"`
}

// SubmitCVRequest is the public CV submission payload.
type SubmitCVRequest struct {
	JobID    string `json:"jobId" validate:"required,uuid"`
	FullName string `json:"fullName" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,max=30"`
}

// CVItem is one CV in the authenticated company's CV listing, enriched with
// its owning job's display fields.
type CVItem struct {
	ID          uuid.UUID `json:"id"`
	JobTitle    string    `json:"jobTitle"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	SalaryMin   int       `json:"salaryMin"`
	SalaryMax   int       `json:"salaryMax"`
	Position    string    `json:"position"`
	WorkingForm string    `json:"workingForm"`
	Viewed      bool      `json:"viewed"`
	Status      string    `json:"status"`
}

// CVListResponse is the authenticated company's CV listing.
type CVListResponse struct {
	shared.Envelope
	CVs []CVItem `json:"cvs"`
}

// CVStatusRequest is the payload for moving a CV to a new review state.
type CVStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}
