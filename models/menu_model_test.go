package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuLocationDeletesAreHard(t *testing.T) {
	// The (name, company_id) unique index covers every row in the table. A
	// soft-delete column would leave dead rows occupying the index, blocking
	// re-creation and the resolver's lazy auto-create of the same pair.
	typ := reflect.TypeOf(MenuLocation{})

	_, hasDeletedAt := typ.FieldByName("DeletedAt")
	assert.False(t, hasDeletedAt, "a deleted location must free its (name, company) slot")

	name, _ := typ.FieldByName("Name")
	company, _ := typ.FieldByName("CompanyID")
	assert.Contains(t, name.Tag.Get("gorm"), "uniqueIndex:idx_menu_locations_name_company")
	assert.Contains(t, company.Tag.Get("gorm"), "uniqueIndex:idx_menu_locations_name_company")
}
