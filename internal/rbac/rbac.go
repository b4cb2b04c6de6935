package rbac

import (
	"fmt"
	"slices"

	"github.com/party-model/backend/internal/models"
)

// Role constants
const (
	RoleBasetypeAdmin     = "basetype_admin"
	RoleOrganizationAdmin = "organization_admin"
	RoleOrganizationUser  = "organization_user"
	RoleHRAdmin           = "hr_admin"
	RolePersonUser        = "person_user"
	RoleSystemAdmin       = "system_admin"
)

// AllRoles lists every recognised role.
var AllRoles = []string{
	RoleBasetypeAdmin,
	RoleOrganizationAdmin,
	RoleOrganizationUser,
	RoleHRAdmin,
	RolePersonUser,
	RoleSystemAdmin,
}

type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpList   Operation = "list"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Resource is the kind of entity an operation targets.
type Resource string

// Lookup resources
const (
	ResGenderTypes                    Resource = "gender_types"
	ResOrganizationTypes              Resource = "organization_types"
	ResRacialTypes                    Resource = "racial_types"
	ResIncomeRanges                   Resource = "income_ranges"
	ResMaritalStatusTypes             Resource = "marital_status_types"
	ResContactMechanismTypes          Resource = "contact_mechanism_types"
	ResCommunicationEventStatusTypes  Resource = "communication_event_status_types"
	ResCommunicationEventPurposeTypes Resource = "communication_event_purpose_types"
	ResCountries                      Resource = "countries"
	ResIndustryTypes                  Resource = "industry_types"
	ResMacText                        Resource = "mac_text"
)

// Master resources
const (
	ResCommunicationEvents Resource = "communication_events"
	ResPersons             Resource = "persons"
	ResOrganizations       Resource = "organizations"
)

// History resources
const (
	ResCommunicationEventHistory Resource = "communication_event_history"
	ResPersonHistory             Resource = "person_history"
	ResOrganizationHistory       Resource = "organization_history"
	ResUsersHistory              Resource = "users_history"
)

// Principal is the authenticated caller.
type Principal struct {
	ID   int64
	Role string
}

type Decision bool

const (
	Deny  Decision = false
	Allow Decision = true
)

// Rule grants an operation to a set of roles. When Owner is set the caller
// must additionally be one of the resource's owners.
type Rule struct {
	Roles []string
	Owner bool
}

// Policies is the whole access policy, keyed by resource and operation.
// Anything missing from the table is denied.
var Policies = map[Resource]map[Operation]Rule{}

func init() {
	lookups := []Resource{
		ResGenderTypes, ResOrganizationTypes, ResRacialTypes, ResIncomeRanges,
		ResMaritalStatusTypes, ResContactMechanismTypes, ResCommunicationEventStatusTypes,
		ResCommunicationEventPurposeTypes, ResCountries, ResIndustryTypes, ResMacText,
	}
	for _, res := range lookups {
		Policies[res] = crud(
			Rule{Roles: []string{RoleBasetypeAdmin}},
			Rule{Roles: AllRoles},
		)
	}

	participant := Rule{Roles: AllRoles, Owner: true}
	Policies[ResCommunicationEvents] = map[Operation]Rule{
		OpCreate: {Roles: AllRoles},
		OpList:   {Roles: AllRoles},
		OpRead:   participant,
		OpUpdate: participant,
		OpDelete: participant,
	}

	Policies[ResPersons] = crud(
		Rule{Roles: []string{RoleHRAdmin, RoleSystemAdmin}},
		Rule{Roles: []string{RoleHRAdmin, RoleSystemAdmin}},
	)
	Policies[ResOrganizations] = crud(
		Rule{Roles: []string{RoleOrganizationAdmin, RoleSystemAdmin}},
		Rule{Roles: []string{RoleOrganizationAdmin, RoleOrganizationUser, RoleSystemAdmin}},
	)

	Policies[ResCommunicationEventHistory] = readOnly(RoleSystemAdmin, RoleHRAdmin, RoleOrganizationAdmin)
	Policies[ResOrganizationHistory] = readOnly(RoleOrganizationAdmin, RoleSystemAdmin)
	Policies[ResPersonHistory] = readOnly(RoleHRAdmin, RoleSystemAdmin)
	Policies[ResUsersHistory] = readOnly(RoleSystemAdmin)
}

func crud(write, read Rule) map[Operation]Rule {
	return map[Operation]Rule{
		OpCreate: write,
		OpUpdate: write,
		OpDelete: write,
		OpRead:   read,
		OpList:   read,
	}
}

func readOnly(roles ...string) map[Operation]Rule {
	r := Rule{Roles: roles}
	return map[Operation]Rule{OpRead: r, OpList: r}
}

// IsKnownRole reports whether role is one of AllRoles.
func IsKnownRole(role string) bool {
	return slices.Contains(AllRoles, role)
}

// OwnershipGated reports whether the operation depends on the resource's
// owners, in which case the resource must be loaded before Evaluate.
func OwnershipGated(res Resource, op Operation) bool {
	rule, ok := Policies[res][op]
	return ok && rule.Owner
}

// Evaluate decides whether p may perform op on res. owners is only consulted
// for ownership-gated rules.
func Evaluate(p Principal, res Resource, op Operation, owners ...int64) Decision {
	rule, ok := Policies[res][op]
	if !ok || !IsKnownRole(p.Role) {
		return Deny
	}
	if !slices.Contains(rule.Roles, p.Role) {
		return Deny
	}
	if rule.Owner && !slices.Contains(owners, p.ID) {
		return Deny
	}
	return Allow
}

// Check is Evaluate returning a models.ErrForbidden wrapped error on denial.
func Check(p Principal, res Resource, op Operation, owners ...int64) error {
	if Evaluate(p, res, op, owners...) == Deny {
		return fmt.Errorf("%s %s by role %q: %w", op, res, p.Role, models.ErrForbidden)
	}
	return nil
}
