package main

import (
	"go.uber.org/zap"

	"github.com/party-model/backend/internal/db"
	"github.com/party-model/backend/internal/events"
	apphttp "github.com/party-model/backend/internal/http"
	"github.com/party-model/backend/internal/http/dto"
	"github.com/party-model/backend/internal/http/handlers"
	"github.com/party-model/backend/internal/models"
	"github.com/party-model/backend/internal/rbac"
	"github.com/party-model/backend/internal/repositories"
	"github.com/party-model/backend/internal/services"
)

func route(path string, hs ...apphttp.Registrar) apphttp.Route {
	return apphttp.Route{Path: path, Handlers: hs}
}

// buildRoutes wires repositories, services and handlers for every resource.
// publisher may be nil.
func buildRoutes(pool db.DB, publisher events.Publisher, log *zap.Logger) []apphttp.Route {
	tx := db.NewTxManager(pool)
	var routes []apphttp.Route

	// Lookups; description tables are served under their own name.
	for _, table := range repositories.DescriptionTables {
		resource := rbac.Resource(table)
		repo := repositories.NewRepo(pool, repositories.DescriptionTable(table))
		svc := services.NewLookupService(resource, repo, tx, log)
		routes = append(routes, route(table,
			handlers.NewResourceHandler[models.DescriptionType, dto.DescriptionCreate, dto.DescriptionUpdate](svc, log)))
	}

	countries := services.NewLookupService(rbac.ResCountries, repositories.NewRepo(pool, repositories.CountryTable()), tx, log)
	industries := services.NewLookupService(rbac.ResIndustryTypes, repositories.NewRepo(pool, repositories.IndustryTypeTable()), tx, log)
	macText := services.NewLookupService(rbac.ResMacText, repositories.NewRepo(pool, repositories.MacTextTable()), tx, log)
	routes = append(routes,
		route(string(rbac.ResCountries), handlers.NewResourceHandler[models.Country, dto.CountryCreate, dto.CountryUpdate](countries, log)),
		route(string(rbac.ResIndustryTypes), handlers.NewResourceHandler[models.IndustryType, dto.IndustryTypeCreate, dto.IndustryTypeUpdate](industries, log)),
		route(string(rbac.ResMacText), handlers.NewResourceHandler[models.MacText, dto.MacTextCreate, dto.MacTextUpdate](macText, log)),
	)

	// Masters
	communicationEvents := services.NewCommunicationEventService(
		repositories.NewCommunicationEventRepo(pool),
		repositories.CommunicationEventHistorySink(pool),
		tx, publisher, log,
	)
	persons := services.NewAuditedService(services.PersonDescriptor,
		repositories.NewRepo(pool, repositories.PersonTable()),
		repositories.PersonHistorySink(pool),
		tx, log)
	organizations := services.NewAuditedService(services.OrganizationDescriptor,
		repositories.NewRepo(pool, repositories.OrganizationTable()),
		repositories.OrganizationHistorySink(pool),
		tx, log)

	routes = append(routes,
		route(string(rbac.ResCommunicationEvents),
			handlers.NewCommunicationEventHandler(communicationEvents, log),
			handlers.NewResourceHandler[models.CommunicationEvent, dto.CommunicationEventCreate, dto.CommunicationEventUpdate](communicationEvents, log)),
		route(string(rbac.ResPersons), handlers.NewResourceHandler[models.Person, dto.PersonCreate, dto.PersonUpdate](persons, log)),
		route(string(rbac.ResOrganizations), handlers.NewResourceHandler[models.Organization, dto.OrganizationCreate, dto.OrganizationUpdate](organizations, log)),
	)

	// Histories
	routes = append(routes,
		route(string(rbac.ResCommunicationEventHistory), handlers.NewHistoryHandler(
			services.NewHistoryService(rbac.ResCommunicationEventHistory, repositories.CommunicationEventHistoryReader(pool), log), log)),
		route(string(rbac.ResPersonHistory), handlers.NewHistoryHandler(
			services.NewHistoryService(rbac.ResPersonHistory, repositories.PersonHistoryReader(pool), log), log)),
		route(string(rbac.ResOrganizationHistory), handlers.NewHistoryHandler(
			services.NewHistoryService(rbac.ResOrganizationHistory, repositories.OrganizationHistoryReader(pool), log), log)),
		route(string(rbac.ResUsersHistory), handlers.NewHistoryHandler(
			services.NewHistoryService(rbac.ResUsersHistory, repositories.UsersHistoryReader(pool), log), log)),
	)

	return routes
}
