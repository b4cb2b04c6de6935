package models

import "time"

type Person struct {
	ID                  int64      `json:"id"`
	PersonalIDNumber    string     `json:"personal_id_number"`
	FirstName           string     `json:"first_name"`
	MiddleName          *string    `json:"middle_name,omitempty"`
	LastName            string     `json:"last_name"`
	NickName            *string    `json:"nick_name,omitempty"`
	BirthDate           *time.Time `json:"birth_date,omitempty"`
	GenderTypeID        *int64     `json:"gender_type_id,omitempty"`
	MaritalStatusTypeID *int64     `json:"marital_status_type_id,omitempty"`
	CountryID           *int64     `json:"country_id,omitempty"`
	Height              *int64     `json:"height,omitempty"`
	Weight              *int64     `json:"weight,omitempty"`
	RacialTypeID        *int64     `json:"racial_type_id,omitempty"`
	IncomeRangeID       *int64     `json:"income_range_id,omitempty"`
	AboutMe             *string    `json:"about_me,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

type Organization struct {
	ID                 int64      `json:"id"`
	FederalTaxID       *string    `json:"federal_tax_id,omitempty"`
	NameEN             string     `json:"name_en"`
	NameTH             *string    `json:"name_th,omitempty"`
	OrganizationTypeID *int64     `json:"organization_type_id,omitempty"`
	IndustryTypeID     *int64     `json:"industry_type_id,omitempty"`
	EmployeeCount      *int64     `json:"employee_count,omitempty"`
	Slogan             *string    `json:"slogan,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}
