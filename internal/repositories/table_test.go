package repositories

import (
	"reflect"
	"testing"
	"time"

	"github.com/party-model/backend/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestPatch(t *testing.T) {
	day := time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		build func(p *Patch)
		want  []string
	}{
		{"nothing supplied", func(p *Patch) {}, nil},
		{"nil string", func(p *Patch) { p.SetString("title", nil) }, nil},
		{"empty string means no change", func(p *Patch) { p.SetString("title", ptr("")) }, nil},
		{"string", func(p *Patch) { p.SetString("title", ptr("hi")) }, []string{"title"}},
		{"zero int is a change", func(p *Patch) { p.SetInt("height", ptr(int64(0))) }, []string{"height"}},
		{"false is a change", func(p *Patch) { p.SetBool("favorite_flag", ptr(false)) }, []string{"favorite_flag"}},
		{"date", func(p *Patch) { p.SetDate("birth_date", &day) }, []string{"birth_date"}},
		{
			"order is kept",
			func(p *Patch) {
				p.SetString("last_name", ptr("Jaidee")).SetInt("weight", nil).SetString("first_name", ptr("Somchai"))
			},
			[]string{"last_name", "first_name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Patch
			tt.build(&p)
			if got := p.Columns(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Columns() = %v, want %v", got, tt.want)
			}
			if p.Empty() != (len(tt.want) == 0) {
				t.Errorf("Empty() = %v", p.Empty())
			}
		})
	}
}

func TestTable_SelectColumns(t *testing.T) {
	got := CommunicationEventTable().selectColumns()
	if got[0] != "id" || got[len(got)-1] != "updated_at" || len(got) != 10 {
		t.Errorf("selectColumns() = %v", got)
	}
}

// Scan targets and insert values must line up with the column lists.
func TestTables_Shape(t *testing.T) {
	check := func(name string, fields, selected, values, columns int) {
		t.Helper()
		if fields != selected {
			t.Errorf("%s: %d scan targets for %d columns", name, fields, selected)
		}
		if values >= 0 && values != columns {
			t.Errorf("%s: %d values for %d writable columns", name, values, columns)
		}
	}

	for _, name := range DescriptionTables {
		tb := DescriptionTable(name)
		check(name, len(tb.Fields(new(models.DescriptionType))), len(tb.selectColumns()),
			len(tb.Values(new(models.DescriptionType))), len(tb.Columns))
	}

	country := CountryTable()
	check("countries", len(country.Fields(new(models.Country))), len(country.selectColumns()),
		len(country.Values(new(models.Country))), len(country.Columns))
	industry := IndustryTypeTable()
	check("industry_types", len(industry.Fields(new(models.IndustryType))), len(industry.selectColumns()),
		len(industry.Values(new(models.IndustryType))), len(industry.Columns))
	mac := MacTextTable()
	check("mac_text", len(mac.Fields(new(models.MacText))), len(mac.selectColumns()),
		len(mac.Values(new(models.MacText))), len(mac.Columns))
	ce := CommunicationEventTable()
	check("communication_event", len(ce.Fields(new(models.CommunicationEvent))), len(ce.selectColumns()),
		len(ce.Values(new(models.CommunicationEvent))), len(ce.Columns))
	person := PersonTable()
	check("persons", len(person.Fields(new(models.Person))), len(person.selectColumns()),
		len(person.Values(new(models.Person))), len(person.Columns))
	org := OrganizationTable()
	check("organizations", len(org.Fields(new(models.Organization))), len(org.selectColumns()),
		len(org.Values(new(models.Organization))), len(org.Columns))

	ceh := CommunicationEventHistoryTable()
	check("communication_event_history", len(ceh.Fields(new(models.CommunicationEventHistory))), len(ceh.selectColumns()), -1, 0)
	ph := PersonHistoryTable()
	check("person_history", len(ph.Fields(new(models.PersonHistory))), len(ph.selectColumns()), -1, 0)
	oh := OrganizationHistoryTable()
	check("organization_history", len(oh.Fields(new(models.OrganizationHistory))), len(oh.selectColumns()), -1, 0)
	uh := UsersHistoryTable()
	check("users_history", len(uh.Fields(new(models.UsersHistory))), len(uh.selectColumns()), -1, 0)
}
