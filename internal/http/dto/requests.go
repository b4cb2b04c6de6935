package dto

import (
	"github.com/party-model/backend/internal/models"
	"github.com/party-model/backend/internal/repositories"
)

// Update requests use pointers: a nil or empty value leaves the column as
// it is.

type DescriptionCreate struct {
	Description string `json:"description" validate:"required,max=255"`
}

func (r DescriptionCreate) Model() *models.DescriptionType {
	return &models.DescriptionType{Description: r.Description}
}

type DescriptionUpdate struct {
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func (r DescriptionUpdate) Patch() repositories.Patch {
	var p repositories.Patch
	p.SetString("description", r.Description)
	return p
}

type CountryCreate struct {
	ISOCode string  `json:"iso_code" validate:"required,min=2,max=3,alpha"`
	NameEN  string  `json:"name_en" validate:"required,max=255"`
	NameTH  *string `json:"name_th" validate:"omitempty,max=255"`
}

func (r CountryCreate) Model() *models.Country {
	return &models.Country{ISOCode: r.ISOCode, NameEN: r.NameEN, NameTH: r.NameTH}
}

type CountryUpdate struct {
	ISOCode *string `json:"iso_code" validate:"omitempty,min=2,max=3,alpha"`
	NameEN  *string `json:"name_en" validate:"omitempty,max=255"`
	NameTH  *string `json:"name_th" validate:"omitempty,max=255"`
}

func (r CountryUpdate) Patch() repositories.Patch {
	var p repositories.Patch
	p.SetString("iso_code", r.ISOCode).
		SetString("name_en", r.NameEN).
		SetString("name_th", r.NameTH)
	return p
}

type IndustryTypeCreate struct {
	NAISC       string `json:"naisc" validate:"required,max=16"`
	Description string `json:"description" validate:"required,max=255"`
}

func (r IndustryTypeCreate) Model() *models.IndustryType {
	return &models.IndustryType{NAISC: r.NAISC, Description: r.Description}
}

type IndustryTypeUpdate struct {
	NAISC       *string `json:"naisc" validate:"omitempty,max=16"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func (r IndustryTypeUpdate) Patch() repositories.Patch {
	var p repositories.Patch
	p.SetString("naisc", r.NAISC).SetString("description", r.Description)
	return p
}

type MacTextCreate struct {
	MacAddress  string `json:"mac_address" validate:"required,mac"`
	Description string `json:"description" validate:"required,max=255"`
}

func (r MacTextCreate) Model() *models.MacText {
	return &models.MacText{MacAddress: r.MacAddress, Description: r.Description}
}

type MacTextUpdate struct {
	MacAddress  *string `json:"mac_address" validate:"omitempty,mac"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func (r MacTextUpdate) Patch() repositories.Patch {
	var p repositories.Patch
	p.SetString("mac_address", r.MacAddress).SetString("description", r.Description)
	return p
}

// CommunicationEventCreate has no sender field: the sender is always the caller.
type CommunicationEventCreate struct {
	Title                          string  `json:"title" validate:"required,max=255"`
	Detail                         *string `json:"detail"`
	ToUserID                       int64   `json:"to_user_id" validate:"required,gt=0"`
	ContactMechanismTypeID         *int64  `json:"contact_mechanism_type_id" validate:"omitempty,gt=0"`
	CommunicationEventStatusTypeID *int64  `json:"communication_event_status_type_id" validate:"omitempty,gt=0"`
}

func (r CommunicationEventCreate) Model() *models.CommunicationEvent {
	return &models.CommunicationEvent{
		Title:                          r.Title,
		Detail:                         r.Detail,
		ToUserID:                       r.ToUserID,
		ContactMechanismTypeID:         r.ContactMechanismTypeID,
		CommunicationEventStatusTypeID: r.CommunicationEventStatusTypeID,
	}
}

// CommunicationEventUpdate cannot change the participants.
type CommunicationEventUpdate struct {
	Title                          *string `json:"title" validate:"omitempty,max=255"`
	Detail                         *string `json:"detail"`
	ContactMechanismTypeID         *int64  `json:"contact_mechanism_type_id" validate:"omitempty,gt=0"`
	CommunicationEventStatusTypeID *int64  `json:"communication_event_status_type_id" validate:"omitempty,gt=0"`
	FavoriteFlag                   *bool   `json:"favorite_flag"`
}

func (r CommunicationEventUpdate) Patch() repositories.Patch {
	var p repositories.Patch
	p.SetString("title", r.Title).
		SetString("detail", r.Detail).
		SetInt("contact_mechanism_type_id", r.ContactMechanismTypeID).
		SetInt("communication_event_status_type_id", r.CommunicationEventStatusTypeID).
		SetBool("favorite_flag", r.FavoriteFlag)
	return p
}

type PersonCreate struct {
	PersonalIDNumber    string  `json:"personal_id_number" validate:"required,max=20"`
	FirstName           string  `json:"first_name" validate:"required,max=100"`
	MiddleName          *string `json:"middle_name" validate:"omitempty,max=100"`
	LastName            string  `json:"last_name" validate:"required,max=100"`
	NickName            *string `json:"nick_name" validate:"omitempty,max=100"`
	BirthDate           *Date   `json:"birth_date"`
	GenderTypeID        *int64  `json:"gender_type_id" validate:"omitempty,gt=0"`
	MaritalStatusTypeID *int64  `json:"marital_status_type_id" validate:"omitempty,gt=0"`
	CountryID           *int64  `json:"country_id" validate:"omitempty,gt=0"`
	Height              *int64  `json:"height" validate:"omitempty,gt=0,lt=300"`
	Weight              *int64  `json:"weight" validate:"omitempty,gt=0,lt=700"`
	RacialTypeID        *int64  `json:"racial_type_id" validate:"omitempty,gt=0"`
	IncomeRangeID       *int64  `json:"income_range_id" validate:"omitempty,gt=0"`
	AboutMe             *string `json:"about_me"`
}

func (r PersonCreate) Model() *models.Person {
	return &models.Person{
		PersonalIDNumber:    r.PersonalIDNumber,
		FirstName:           r.FirstName,
		MiddleName:          r.MiddleName,
		LastName:            r.LastName,
		NickName:            r.NickName,
		BirthDate:           r.BirthDate.ptr(),
		GenderTypeID:        r.GenderTypeID,
		MaritalStatusTypeID: r.MaritalStatusTypeID,
		CountryID:           r.CountryID,
		Height:              r.Height,
		Weight:              r.Weight,
		RacialTypeID:        r.RacialTypeID,
		IncomeRangeID:       r.IncomeRangeID,
		AboutMe:             r.AboutMe,
	}
}

type PersonUpdate struct {
	PersonalIDNumber    *string `json:"personal_id_number" validate:"omitempty,max=20"`
	FirstName           *string `json:"first_name" validate:"omitempty,max=100"`
	MiddleName          *string `json:"middle_name" validate:"omitempty,max=100"`
	LastName            *string `json:"last_name" validate:"omitempty,max=100"`
	NickName            *string `json:"nick_name" validate:"omitempty,max=100"`
	BirthDate           *Date   `json:"birth_date"`
	GenderTypeID        *int64  `json:"gender_type_id" validate:"omitempty,gt=0"`
	MaritalStatusTypeID *int64  `json:"marital_status_type_id" validate:"omitempty,gt=0"`
	CountryID           *int64  `json:"country_id" validate:"omitempty,gt=0"`
	Height              *int64  `json:"height" validate:"omitempty,gt=0,lt=300"`
	Weight              *int64  `json:"weight" validate:"omitempty,gt=0,lt=700"`
	RacialTypeID        *int64  `json:"racial_type_id" validate:"omitempty,gt=0"`
	IncomeRangeID       *int64  `json:"income_range_id" validate:"omitempty,gt=0"`
	AboutMe             *string `json:"about_me"`
}

func (r PersonUpdate) Patch() repositories.Patch {
	var p repositories.Patch
	p.SetString("personal_id_number", r.PersonalIDNumber).
		SetString("first_name", r.FirstName).
		SetString("middle_name", r.MiddleName).
		SetString("last_name", r.LastName).
		SetString("nick_name", r.NickName).
		SetDate("birth_date", r.BirthDate.ptr()).
		SetInt("gender_type_id", r.GenderTypeID).
		SetInt("marital_status_type_id", r.MaritalStatusTypeID).
		SetInt("country_id", r.CountryID).
		SetInt("height", r.Height).
		SetInt("weight", r.Weight).
		SetInt("racial_type_id", r.RacialTypeID).
		SetInt("income_range_id", r.IncomeRangeID).
		SetString("about_me", r.AboutMe)
	return p
}

type OrganizationCreate struct {
	FederalTaxID       *string `json:"federal_tax_id" validate:"omitempty,max=50"`
	NameEN             string  `json:"name_en" validate:"required,max=255"`
	NameTH             *string `json:"name_th" validate:"omitempty,max=255"`
	OrganizationTypeID *int64  `json:"organization_type_id" validate:"omitempty,gt=0"`
	IndustryTypeID     *int64  `json:"industry_type_id" validate:"omitempty,gt=0"`
	EmployeeCount      *int64  `json:"employee_count" validate:"omitempty,gte=0"`
	Slogan             *string `json:"slogan"`
}

func (r OrganizationCreate) Model() *models.Organization {
	return &models.Organization{
		FederalTaxID:       r.FederalTaxID,
		NameEN:             r.NameEN,
		NameTH:             r.NameTH,
		OrganizationTypeID: r.OrganizationTypeID,
		IndustryTypeID:     r.IndustryTypeID,
		EmployeeCount:      r.EmployeeCount,
		Slogan:             r.Slogan,
	}
}

type OrganizationUpdate struct {
	FederalTaxID       *string `json:"federal_tax_id" validate:"omitempty,max=50"`
	NameEN             *string `json:"name_en" validate:"omitempty,max=255"`
	NameTH             *string `json:"name_th" validate:"omitempty,max=255"`
	OrganizationTypeID *int64  `json:"organization_type_id" validate:"omitempty,gt=0"`
	IndustryTypeID     *int64  `json:"industry_type_id" validate:"omitempty,gt=0"`
	EmployeeCount      *int64  `json:"employee_count" validate:"omitempty,gte=0"`
	Slogan             *string `json:"slogan"`
}

func (r OrganizationUpdate) Patch() repositories.Patch {
	var p repositories.Patch
	p.SetString("federal_tax_id", r.FederalTaxID).
		SetString("name_en", r.NameEN).
		SetString("name_th", r.NameTH).
		SetInt("organization_type_id", r.OrganizationTypeID).
		SetInt("industry_type_id", r.IndustryTypeID).
		SetInt("employee_count", r.EmployeeCount).
		SetString("slogan", r.Slogan)
	return p
}
