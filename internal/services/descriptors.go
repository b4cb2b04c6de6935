package services

import (
	"github.com/party-model/backend/internal/models"
	"github.com/party-model/backend/internal/rbac"
)

var PersonDescriptor = Descriptor[models.Person]{
	Resource: rbac.ResPersons,
	ID:       func(p *models.Person) int64 { return p.ID },
}

var OrganizationDescriptor = Descriptor[models.Organization]{
	Resource: rbac.ResOrganizations,
	ID:       func(o *models.Organization) int64 { return o.ID },
}

// CommunicationEventDescriptor makes the caller the sender of every new
// event, which always starts out of favorites.
var CommunicationEventDescriptor = Descriptor[models.CommunicationEvent]{
	Resource: rbac.ResCommunicationEvents,
	ID:       func(e *models.CommunicationEvent) int64 { return e.ID },
	Owners:   func(e *models.CommunicationEvent) []int64 { return []int64{e.FromUserID, e.ToUserID} },
	Prepare: func(p rbac.Principal, e *models.CommunicationEvent) {
		e.FromUserID = p.ID
		e.FavoriteFlag = false
	},
}
