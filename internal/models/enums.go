package models

type JobStatus string
type RoleType string
type Currency string
type CompanySize string
type AttachmentType string

const (
	JobStatusBookmarked   JobStatus = "BOOKMARKED"
	JobStatusApplying     JobStatus = "APPLYING"
	JobStatusApplied      JobStatus = "APPLIED"
	JobStatusInterviewing JobStatus = "INTERVIEWING"
	JobStatusNegotiating  JobStatus = "NEGOTIATING"
	JobStatusAccepted     JobStatus = "ACCEPTED"
	JobStatusWithdrew     JobStatus = "WITHDREW"
	JobStatusNotAccepted  JobStatus = "NOT_ACCEPTED"
	JobStatusNoResponse   JobStatus = "NO_RESPONSE"
	JobStatusArchived     JobStatus = "ARCHIVED"

	RoleTypeIC        RoleType = "IC"
	RoleTypeManager   RoleType = "MANAGER"
	RoleTypeExecutive RoleType = "EXECUTIVE"

	CurrencyUSD   Currency = "USD"
	CurrencyEUR   Currency = "EUR"
	CurrencyGBP   Currency = "GBP"
	CurrencyCAD   Currency = "CAD"
	CurrencyAUD   Currency = "AUD"
	CurrencyJPY   Currency = "JPY"
	CurrencyOther Currency = "OTHER"

	AttachmentTypeResume        AttachmentType = "resume"
	AttachmentTypeJobDetails    AttachmentType = "job_details"
	AttachmentTypeOtherDocument AttachmentType = "other_document"
)

// JobStatuses lists every status in display order. Status transitions are
// unconstrained: any value may follow any other.
var JobStatuses = []JobStatus{
	JobStatusBookmarked,
	JobStatusApplying,
	JobStatusApplied,
	JobStatusInterviewing,
	JobStatusNegotiating,
	JobStatusAccepted,
	JobStatusWithdrew,
	JobStatusNotAccepted,
	JobStatusNoResponse,
	JobStatusArchived,
}

var RoleTypes = []RoleType{RoleTypeIC, RoleTypeManager, RoleTypeExecutive}

var Currencies = []Currency{
	CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyCAD,
	CurrencyAUD, CurrencyJPY, CurrencyOther,
}

// CompanySizes holds the fixed employee-count buckets.
var CompanySizes = []CompanySize{
	"1-10", "11-50", "51-200", "201-500", "501-1000",
	"1001-2000", "2001-5000", "5001-10000", "10001+",
}

var AttachmentTypes = []AttachmentType{
	AttachmentTypeResume,
	AttachmentTypeJobDetails,
	AttachmentTypeOtherDocument,
}

func (s JobStatus) Valid() bool {
	for _, v := range JobStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (r RoleType) Valid() bool {
	for _, v := range RoleTypes {
		if r == v {
			return true
		}
	}
	return false
}

func (c Currency) Valid() bool {
	for _, v := range Currencies {
		if c == v {
			return true
		}
	}
	return false
}

func (s CompanySize) Valid() bool {
	for _, v := range CompanySizes {
		if s == v {
			return true
		}
	}
	return false
}

func (t AttachmentType) Valid() bool {
	for _, v := range AttachmentTypes {
		if t == v {
			return true
		}
	}
	return false
}
