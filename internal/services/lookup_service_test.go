package services

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/party-model/backend/internal/models"
	"github.com/party-model/backend/internal/rbac"
	"github.com/party-model/backend/internal/repositories"
)

var basetypeAdmin = rbac.Principal{ID: 1, Role: rbac.RoleBasetypeAdmin}

func newCountryService(mock pgxmock.PgxPoolIface) *LookupService[models.Country] {
	return NewLookupService(rbac.ResCountries, repositories.NewRepo(mock, repositories.CountryTable()), txOf(mock), nop)
}

// Creating TH twice yields one row and a Conflict; a caller without a
// recognised role is then denied the read.
func TestLookupService_CountryScenario(t *testing.T) {
	mock := newMock(t)
	svc := newCountryService(mock)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("TH").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`INSERT INTO countries`).WithArgs("TH", "Thailand", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "iso_code", "name_en", "name_th"}).AddRow(int64(1), "TH", "Thailand", nil))
	mock.ExpectCommit()

	created, err := svc.Create(ctx, basetypeAdmin, &models.Country{ISOCode: "TH", NameEN: "Thailand"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("TH").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err = svc.Create(ctx, basetypeAdmin, &models.Country{ISOCode: "TH", NameEN: "Thailand"})
	require.ErrorIs(t, err, models.ErrConflict)

	_, err = svc.Get(ctx, rbac.Principal{ID: 2, Role: "guest"}, created.ID)
	require.ErrorIs(t, err, models.ErrForbidden)
}

func TestLookupService_CreateDenied(t *testing.T) {
	mock := newMock(t)
	svc := newCountryService(mock)

	_, err := svc.Create(context.Background(), rbac.Principal{ID: 3, Role: rbac.RolePersonUser}, &models.Country{ISOCode: "LA"})
	require.ErrorIs(t, err, models.ErrForbidden)
}

func TestLookupService_Update(t *testing.T) {
	tests := []struct {
		name    string
		patch   func() repositories.Patch
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name:    "empty patch is NoChange",
			patch:   func() repositories.Patch { var p repositories.Patch; return *p.SetString("description", ptr("")) },
			setup:   func(mock pgxmock.PgxPoolIface) {},
			wantErr: models.ErrNoChange,
		},
		{
			name:  "description",
			patch: func() repositories.Patch { var p repositories.Patch; return *p.SetString("description", ptr("divorced")) },
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`UPDATE marital_status_types SET description = \$1 WHERE id = \$2`).
					WithArgs("divorced", int64(4)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "description"}).AddRow(int64(4), "divorced"))
			},
		},
		{
			name:  "missing id",
			patch: func() repositories.Patch { var p repositories.Patch; return *p.SetString("description", ptr("divorced")) },
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`UPDATE marital_status_types`).
					WithArgs("divorced", int64(4)).
					WillReturnError(errNoRows)
			},
			wantErr: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)
			repo := repositories.NewRepo(mock, repositories.DescriptionTable(repositories.TableMaritalStatusTypes))
			svc := NewLookupService(rbac.ResMaritalStatusTypes, repo, txOf(mock), nop)

			got, err := svc.Update(context.Background(), basetypeAdmin, 4, tt.patch())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "divorced", got.Description)
		})
	}
}

func TestLookupService_UpdateLogsColumns(t *testing.T) {
	mock := newMock(t)
	core, logs := observer.New(zap.InfoLevel)
	repo := repositories.NewRepo(mock, repositories.DescriptionTable(repositories.TableMaritalStatusTypes))
	svc := NewLookupService(rbac.ResMaritalStatusTypes, repo, txOf(mock), zap.New(core))

	mock.ExpectQuery(`UPDATE marital_status_types SET description = \$1 WHERE id = \$2`).
		WithArgs("divorced", int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "description"}).AddRow(int64(4), "divorced"))

	var p repositories.Patch
	p.SetString("description", ptr("divorced"))
	_, err := svc.Update(context.Background(), basetypeAdmin, 4, p)
	require.NoError(t, err)

	entries := logs.FilterMessage("mutation applied").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, []any{"description"}, fields["columns"])
	assert.Equal(t, "update", fields["action"])
}

func TestLookupService_ListAndDelete(t *testing.T) {
	mock := newMock(t)
	repo := repositories.NewRepo(mock, repositories.IndustryTypeTable())
	svc := NewLookupService(rbac.ResIndustryTypes, repo, txOf(mock), nop)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT id, naisc, description FROM industry_types ORDER BY id ASC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "naisc", "description"}).AddRow(int64(1), "5415", "Computer Systems Design"))

	list, err := svc.List(ctx, rbac.Principal{ID: 9, Role: rbac.RoleOrganizationUser})
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = svc.Delete(ctx, rbac.Principal{ID: 9, Role: rbac.RoleOrganizationUser}, 1)
	require.ErrorIs(t, err, models.ErrForbidden)

	mock.ExpectQuery(`DELETE FROM industry_types`).WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	id, err := svc.Delete(ctx, basetypeAdmin, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}
