package model_test

import (
	"testing"

	"github.com/stackboard/stackboard/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	catalog := model.Catalog()
	assert.Len(t, catalog, 13)

	seen := make(map[model.PermissionCode]bool, len(catalog))
	for _, p := range catalog {
		assert.True(t, model.ValidPermissionCode(p.Code), "catalog code %q must be valid", p.Code)
		assert.False(t, seen[p.Code], "catalog code %q listed twice", p.Code)
		assert.NotEmpty(t, p.Group)
		seen[p.Code] = true
	}
}

func TestValidPermissionCode(t *testing.T) {
	assert.True(t, model.ValidPermissionCode(model.PermTicketReorder))
	assert.False(t, model.ValidPermissionCode("TICKET_LAUNCH"))
	assert.False(t, model.ValidPermissionCode(""))
}

func TestPermissionSet(t *testing.T) {
	set := model.NewPermissionSet(model.PermTicketCreate, model.PermTicketUpdate)

	assert.True(t, set.Contains(model.PermTicketCreate))
	assert.False(t, set.Contains(model.PermTicketDelete))

	t.Run("intersects on any required code", func(t *testing.T) {
		assert.True(t, set.IntersectsAny([]model.PermissionCode{
			model.PermTicketDelete,
			model.PermTicketUpdate,
		}))
		assert.False(t, set.IntersectsAny([]model.PermissionCode{
			model.PermProjectArchive,
		}))
		assert.False(t, set.IntersectsAny(nil))
	})
}

func TestRolePermissionCodes(t *testing.T) {
	role := &model.Role{
		Permissions: []model.Permission{
			{Code: model.PermTicketCreate},
			{Code: model.PermTicketReorder},
		},
	}

	codes := role.PermissionCodes()
	assert.Len(t, codes, 2)
	assert.True(t, codes.Contains(model.PermTicketReorder))
}
