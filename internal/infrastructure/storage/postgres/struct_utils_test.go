package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"milldesk/internal/core/entity"
	"milldesk/internal/core/id"
)

type mockCatalog struct {
	entity.Catalog
	UserID id.ID   `db:"user_id" json:"userId"`
	Phone  *string `db:"phone" json:"phone,omitempty"`
	Hidden string  `db:"-" json:"-"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expected := []string{
		"id", "deletion_mark", "version", "created_at", "updated_at",
		"code", "name", "user_id", "phone",
	}
	for _, col := range expected {
		assert.Contains(t, cols, col)
	}
	assert.NotContains(t, cols, "-")
}

func TestStructToMap(t *testing.T) {
	cat := mockCatalog{
		Catalog: entity.NewCatalog("CO-00001", "Apex Textiles"),
		UserID:  id.New(),
		Hidden:  "should not appear",
	}
	cat.DeletionMark = true
	cat.Version = 5

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "CO-00001", m["code"])
	assert.Equal(t, "Apex Textiles", m["name"])
	assert.Equal(t, cat.UserID, m["user_id"])
	assert.NotContains(t, m, "-")
	assert.NotContains(t, m, "Hidden")
}

func TestStructToMap_Pointer(t *testing.T) {
	cat := &mockCatalog{Catalog: entity.NewCatalog("", "Ptr")}
	m := StructToMap(cat)
	assert.Equal(t, "Ptr", m["name"])
}
