package dto

// CreateCompanyRequest covers both the full company form and the minimal
// quick-create flow nested inside job creation (name + optional website).
type CreateCompanyRequest struct {
	Name         string   `json:"name" validate:"required,min=1"`
	Website      *string  `json:"website" validate:"omitempty,url"`
	Notes        *string  `json:"notes"`
	IsNonprofit  bool     `json:"is_nonprofit"`
	Industry     *string  `json:"industry"`
	Stage        *string  `json:"stage"`
	Funding      *string  `json:"funding"`
	Keywords     []string `json:"keywords"`
	FoundingYear *int     `json:"founding_year" validate:"omitempty,min=1"`
	Size         *string  `json:"size" validate:"omitempty,is-company-size"`
}

type UpdateCompanyRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1"`
	Website      *string  `json:"website" validate:"omitempty,url"`
	Notes        *string  `json:"notes"`
	IsNonprofit  *bool    `json:"is_nonprofit"`
	Industry     *string  `json:"industry"`
	Stage        *string  `json:"stage"`
	Funding      *string  `json:"funding"`
	Keywords     []string `json:"keywords"`
	FoundingYear *int     `json:"founding_year" validate:"omitempty,min=1"`
	Size         *string  `json:"size" validate:"omitempty,is-company-size"`
}
