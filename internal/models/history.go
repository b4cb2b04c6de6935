package models

import "time"

// Action is the kind of mutation a history row records.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// History rows are immutable snapshots. The entity id column has no foreign key:
// the entity may already be deleted.

type CommunicationEventHistory struct {
	ID                             int64     `json:"id"`
	CommunicationEventID           *int64    `json:"communication_event_id"`
	Title                          *string   `json:"title"`
	Detail                         *string   `json:"detail"`
	FromUserID                     *int64    `json:"from_user_id"`
	ToUserID                       *int64    `json:"to_user_id"`
	ContactMechanismTypeID         *int64    `json:"contact_mechanism_type_id"`
	CommunicationEventStatusTypeID *int64    `json:"communication_event_status_type_id"`
	FavoriteFlag                   bool      `json:"favorite_flag"`
	Action                         Action    `json:"action"`
	ActionAt                       time.Time `json:"action_at"`
	ActionBy                       *int64    `json:"action_by"`
}

type PersonHistory struct {
	ID                  int64      `json:"id"`
	PersonID            *int64     `json:"person_id"`
	PersonalIDNumber    *string    `json:"personal_id_number"`
	FirstName           *string    `json:"first_name"`
	MiddleName          *string    `json:"middle_name"`
	LastName            *string    `json:"last_name"`
	NickName            *string    `json:"nick_name"`
	BirthDate           *time.Time `json:"birth_date"`
	GenderTypeID        *int64     `json:"gender_type_id"`
	MaritalStatusTypeID *int64     `json:"marital_status_type_id"`
	CountryID           *int64     `json:"country_id"`
	Height              *int64     `json:"height"`
	Weight              *int64     `json:"weight"`
	RacialTypeID        *int64     `json:"racial_type_id"`
	IncomeRangeID       *int64     `json:"income_range_id"`
	AboutMe             *string    `json:"about_me"`
	Action              Action     `json:"action"`
	ActionAt            time.Time  `json:"action_at"`
	ActionBy            *int64     `json:"action_by"`
}

type OrganizationHistory struct {
	ID                 int64     `json:"id"`
	OrganizationID     *int64    `json:"organization_id"`
	FederalTaxID       *string   `json:"federal_tax_id"`
	NameEN             *string   `json:"name_en"`
	NameTH             *string   `json:"name_th"`
	OrganizationTypeID *int64    `json:"organization_type_id"`
	IndustryTypeID     *int64    `json:"industry_type_id"`
	EmployeeCount      *int64    `json:"employee_count"`
	Slogan             *string   `json:"slogan"`
	Action             Action    `json:"action"`
	ActionAt           time.Time `json:"action_at"`
	ActionBy           *int64    `json:"action_by"`
}

// UsersHistory is written by the authentication subsystem. The password
// column is never selected.
type UsersHistory struct {
	ID       int64     `json:"id"`
	UserID   *int64    `json:"user_id"`
	Username *string   `json:"username"`
	Email    *string   `json:"email"`
	Role     *string   `json:"role"`
	Action   Action    `json:"action"`
	ActionAt time.Time `json:"action_at"`
	ActionBy *int64    `json:"action_by"`
}
