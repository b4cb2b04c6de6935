package repositories

import "github.com/party-model/backend/internal/models"

// Description-keyed lookup tables.
const (
	TableGenderTypes                    = "gender_types"
	TableOrganizationTypes              = "organization_types"
	TableRacialTypes                    = "racial_types"
	TableIncomeRanges                   = "income_ranges"
	TableMaritalStatusTypes             = "marital_status_types"
	TableContactMechanismTypes          = "contact_mechanism_types"
	TableCommunicationEventStatusTypes  = "communication_event_status_types"
	TableCommunicationEventPurposeTypes = "communication_event_purpose_types"
)

var DescriptionTables = []string{
	TableGenderTypes,
	TableOrganizationTypes,
	TableRacialTypes,
	TableIncomeRanges,
	TableMaritalStatusTypes,
	TableContactMechanismTypes,
	TableCommunicationEventStatusTypes,
	TableCommunicationEventPurposeTypes,
}

var touched = []string{"created_at", "updated_at"}

func DescriptionTable(name string) Table[models.DescriptionType] {
	return Table[models.DescriptionType]{
		Name:    name,
		Entity:  name,
		Columns: []string{"description"},
		Unique:  []string{"description"},
		Fields:  func(r *models.DescriptionType) []any { return []any{&r.ID, &r.Description} },
		Values:  func(r *models.DescriptionType) []any { return []any{r.Description} },
	}
}

func CountryTable() Table[models.Country] {
	return Table[models.Country]{
		Name:    "countries",
		Entity:  "country",
		Columns: []string{"iso_code", "name_en", "name_th"},
		Unique:  []string{"iso_code"},
		Fields:  func(r *models.Country) []any { return []any{&r.ID, &r.ISOCode, &r.NameEN, &r.NameTH} },
		Values:  func(r *models.Country) []any { return []any{r.ISOCode, r.NameEN, r.NameTH} },
	}
}

func IndustryTypeTable() Table[models.IndustryType] {
	return Table[models.IndustryType]{
		Name:    "industry_types",
		Entity:  "industry type",
		Columns: []string{"naisc", "description"},
		Unique:  []string{"naisc"},
		Fields:  func(r *models.IndustryType) []any { return []any{&r.ID, &r.NAISC, &r.Description} },
		Values:  func(r *models.IndustryType) []any { return []any{r.NAISC, r.Description} },
	}
}

func MacTextTable() Table[models.MacText] {
	return Table[models.MacText]{
		Name:    "mac_text",
		Entity:  "mac text",
		Columns: []string{"mac_address", "description"},
		Unique:  []string{"mac_address"},
		Fields:  func(r *models.MacText) []any { return []any{&r.ID, &r.MacAddress, &r.Description} },
		Values:  func(r *models.MacText) []any { return []any{r.MacAddress, r.Description} },
	}
}

var communicationEventColumns = []string{
	"title", "detail", "from_user_id", "to_user_id",
	"contact_mechanism_type_id", "communication_event_status_type_id", "favorite_flag",
}

func CommunicationEventTable() Table[models.CommunicationEvent] {
	return Table[models.CommunicationEvent]{
		Name:    "communication_event",
		Entity:  "communication event",
		Columns: communicationEventColumns,
		Managed: touched,
		Touch:   "updated_at",
		Fields: func(r *models.CommunicationEvent) []any {
			return []any{
				&r.ID, &r.Title, &r.Detail, &r.FromUserID, &r.ToUserID,
				&r.ContactMechanismTypeID, &r.CommunicationEventStatusTypeID, &r.FavoriteFlag,
				&r.CreatedAt, &r.UpdatedAt,
			}
		},
		Values: func(r *models.CommunicationEvent) []any {
			return []any{
				r.Title, r.Detail, r.FromUserID, r.ToUserID,
				r.ContactMechanismTypeID, r.CommunicationEventStatusTypeID, r.FavoriteFlag,
			}
		},
	}
}

var personColumns = []string{
	"personal_id_number", "first_name", "middle_name", "last_name", "nick_name", "birth_date",
	"gender_type_id", "marital_status_type_id", "country_id", "height", "weight",
	"racial_type_id", "income_range_id", "about_me",
}

func PersonTable() Table[models.Person] {
	return Table[models.Person]{
		Name:    "persons",
		Entity:  "person",
		Columns: personColumns,
		Managed: touched,
		Unique:  []string{"personal_id_number"},
		Touch:   "updated_at",
		Fields: func(r *models.Person) []any {
			return []any{
				&r.ID, &r.PersonalIDNumber, &r.FirstName, &r.MiddleName, &r.LastName, &r.NickName, &r.BirthDate,
				&r.GenderTypeID, &r.MaritalStatusTypeID, &r.CountryID, &r.Height, &r.Weight,
				&r.RacialTypeID, &r.IncomeRangeID, &r.AboutMe,
				&r.CreatedAt, &r.UpdatedAt,
			}
		},
		Values: func(r *models.Person) []any {
			return []any{
				r.PersonalIDNumber, r.FirstName, r.MiddleName, r.LastName, r.NickName, r.BirthDate,
				r.GenderTypeID, r.MaritalStatusTypeID, r.CountryID, r.Height, r.Weight,
				r.RacialTypeID, r.IncomeRangeID, r.AboutMe,
			}
		},
	}
}

var organizationColumns = []string{
	"federal_tax_id", "name_en", "name_th", "organization_type_id", "industry_type_id",
	"employee_count", "slogan",
}

func OrganizationTable() Table[models.Organization] {
	return Table[models.Organization]{
		Name:    "organizations",
		Entity:  "organization",
		Columns: organizationColumns,
		Managed: touched,
		Unique:  []string{"federal_tax_id"},
		Touch:   "updated_at",
		Fields: func(r *models.Organization) []any {
			return []any{
				&r.ID, &r.FederalTaxID, &r.NameEN, &r.NameTH, &r.OrganizationTypeID, &r.IndustryTypeID,
				&r.EmployeeCount, &r.Slogan,
				&r.CreatedAt, &r.UpdatedAt,
			}
		},
		Values: func(r *models.Organization) []any {
			return []any{
				r.FederalTaxID, r.NameEN, r.NameTH, r.OrganizationTypeID, r.IndustryTypeID,
				r.EmployeeCount, r.Slogan,
			}
		},
	}
}

// History tables are read through these descriptors and never written
// through them, so they carry no Values.

func historyColumns(entityColumn string, snapshot []string) []string {
	cols := make([]string, 0, len(snapshot)+3)
	cols = append(cols, entityColumn)
	cols = append(cols, snapshot...)
	return append(cols, "action", "action_by")
}

var actionAt = []string{"action_at"}

func CommunicationEventHistoryTable() Table[models.CommunicationEventHistory] {
	return Table[models.CommunicationEventHistory]{
		Name:    "communication_event_history",
		Entity:  "communication event history",
		Columns: historyColumns("communication_event_id", communicationEventColumns),
		Managed: actionAt,
		Fields: func(h *models.CommunicationEventHistory) []any {
			return []any{
				&h.ID, &h.CommunicationEventID, &h.Title, &h.Detail, &h.FromUserID, &h.ToUserID,
				&h.ContactMechanismTypeID, &h.CommunicationEventStatusTypeID, &h.FavoriteFlag,
				&h.Action, &h.ActionBy, &h.ActionAt,
			}
		},
	}
}

func PersonHistoryTable() Table[models.PersonHistory] {
	return Table[models.PersonHistory]{
		Name:    "person_history",
		Entity:  "person history",
		Columns: historyColumns("person_id", personColumns),
		Managed: actionAt,
		Fields: func(h *models.PersonHistory) []any {
			return []any{
				&h.ID, &h.PersonID, &h.PersonalIDNumber, &h.FirstName, &h.MiddleName, &h.LastName, &h.NickName,
				&h.BirthDate, &h.GenderTypeID, &h.MaritalStatusTypeID, &h.CountryID, &h.Height, &h.Weight,
				&h.RacialTypeID, &h.IncomeRangeID, &h.AboutMe,
				&h.Action, &h.ActionBy, &h.ActionAt,
			}
		},
	}
}

func OrganizationHistoryTable() Table[models.OrganizationHistory] {
	return Table[models.OrganizationHistory]{
		Name:    "organization_history",
		Entity:  "organization history",
		Columns: historyColumns("organization_id", organizationColumns),
		Managed: actionAt,
		Fields: func(h *models.OrganizationHistory) []any {
			return []any{
				&h.ID, &h.OrganizationID, &h.FederalTaxID, &h.NameEN, &h.NameTH, &h.OrganizationTypeID,
				&h.IndustryTypeID, &h.EmployeeCount, &h.Slogan,
				&h.Action, &h.ActionBy, &h.ActionAt,
			}
		},
	}
}

// UsersHistoryTable leaves out the password column.
func UsersHistoryTable() Table[models.UsersHistory] {
	return Table[models.UsersHistory]{
		Name:    "users_history",
		Entity:  "users history",
		Columns: historyColumns("user_id", []string{"username", "email", "role"}),
		Managed: actionAt,
		Fields: func(h *models.UsersHistory) []any {
			return []any{&h.ID, &h.UserID, &h.Username, &h.Email, &h.Role, &h.Action, &h.ActionBy, &h.ActionAt}
		},
	}
}
