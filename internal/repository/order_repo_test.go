package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestBuildOrderUpdateSetStatusOnly(t *testing.T) {
	clause, args := buildOrderUpdateSet(&OrderUpdate{Status: strPtr("confirmed")})

	assert.Equal(t, "updated_at = NOW(), status = $1", clause)
	assert.Equal(t, []interface{}{"confirmed"}, args)
	assert.NotContains(t, clause, "admin_notes")
}

func TestBuildOrderUpdateSetNotesOnly(t *testing.T) {
	clause, args := buildOrderUpdateSet(&OrderUpdate{AdminNotes: strPtr("sudah dibayar")})

	assert.Equal(t, "updated_at = NOW(), admin_notes = $1", clause)
	assert.Equal(t, []interface{}{"sudah dibayar"}, args)
	assert.NotContains(t, clause, "status")
}

func TestBuildOrderUpdateSetBothFields(t *testing.T) {
	clause, args := buildOrderUpdateSet(&OrderUpdate{
		Status:     strPtr("cancelled"),
		AdminNotes: strPtr("stok habis"),
	})

	assert.Equal(t, "updated_at = NOW(), status = $1, admin_notes = $2", clause)
	assert.Equal(t, []interface{}{"cancelled", "stok habis"}, args)
}

func TestBuildOrderUpdateSetNeverTouchesSnapshotColumns(t *testing.T) {
	clause, _ := buildOrderUpdateSet(&OrderUpdate{
		Status:     strPtr("confirmed"),
		AdminNotes: strPtr("ok"),
	})

	for _, col := range []string{"unit_price", "quantity", "product_id", "variant_id", "code", "total"} {
		assert.NotContains(t, clause, col)
	}
}
