package policy_test

import (
	"testing"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActor_IsAdmin(t *testing.T) {
	id := uuid.New()
	assert.True(t, policy.NewActor(id, models.RoleAdmin).IsAdmin())
	assert.False(t, policy.NewActor(id, models.RoleUser).IsAdmin())
	assert.False(t, policy.Anonymous().IsAdmin())
	// A role without authentication never counts.
	assert.False(t, policy.Actor{ID: id, Role: models.RoleAdmin}.IsAdmin())
}

func TestCan(t *testing.T) {
	anon := policy.Anonymous()
	user := policy.NewActor(uuid.New(), models.RoleUser)
	admin := policy.NewActor(uuid.New(), models.RoleAdmin)

	tests := []struct {
		name     string
		resource policy.Resource
		action   policy.Action
		anon     bool
		user     bool
		admin    bool
	}{
		{"read jobs", policy.ResourceJob, policy.ActionRead, true, true, true},
		{"create jobs", policy.ResourceJob, policy.ActionCreate, false, false, true},
		{"update jobs", policy.ResourceJob, policy.ActionUpdate, false, false, true},
		{"delete jobs", policy.ResourceJob, policy.ActionDelete, false, false, true},
		{"read companies", policy.ResourceCompany, policy.ActionRead, true, true, true},
		{"create companies", policy.ResourceCompany, policy.ActionCreate, false, false, true},
		{"read locations", policy.ResourceLocation, policy.ActionRead, true, true, true},
		{"delete locations", policy.ResourceLocation, policy.ActionDelete, false, false, true},
		{"read categories", policy.ResourceCategory, policy.ActionRead, true, true, true},
		{"create categories", policy.ResourceCategory, policy.ActionCreate, false, false, true},
		{"create application", policy.ResourceApplication, policy.ActionCreate, false, true, false},
		{"read applications", policy.ResourceApplication, policy.ActionRead, false, true, true},
		{"update application status", policy.ResourceApplication, policy.ActionUpdateStatus, false, false, true},
		{"read profile", policy.ResourceProfile, policy.ActionRead, false, true, true},
		{"update profile", policy.ResourceProfile, policy.ActionUpdate, false, true, true},
		{"delete profile", policy.ResourceProfile, policy.ActionDelete, false, false, false},
		{"read user directory", policy.ResourceUserDirectory, policy.ActionRead, false, true, true},
		{"write user directory", policy.ResourceUserDirectory, policy.ActionCreate, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.anon, policy.Can(anon, tt.action, tt.resource), "anonymous")
			assert.Equal(t, tt.user, policy.Can(user, tt.action, tt.resource), "user")
			assert.Equal(t, tt.admin, policy.Can(admin, tt.action, tt.resource), "admin")
		})
	}
}

func TestCanAccess_Application(t *testing.T) {
	owner := policy.NewActor(uuid.New(), models.RoleUser)
	other := policy.NewActor(uuid.New(), models.RoleUser)
	admin := policy.NewActor(uuid.New(), models.RoleAdmin)

	assert.True(t, policy.CanAccess(owner, policy.ActionRead, policy.ResourceApplication, owner.ID))
	assert.False(t, policy.CanAccess(other, policy.ActionRead, policy.ResourceApplication, owner.ID))
	assert.True(t, policy.CanAccess(admin, policy.ActionRead, policy.ResourceApplication, owner.ID))
	assert.False(t, policy.CanAccess(policy.Anonymous(), policy.ActionRead, policy.ResourceApplication, owner.ID))
	assert.False(t, policy.CanAccess(owner, policy.ActionUpdateStatus, policy.ResourceApplication, owner.ID))
	assert.True(t, policy.CanAccess(admin, policy.ActionUpdateStatus, policy.ResourceApplication, owner.ID))
}

func TestCanAccess_ProfileIsOwnerOnly(t *testing.T) {
	owner := policy.NewActor(uuid.New(), models.RoleUser)
	admin := policy.NewActor(uuid.New(), models.RoleAdmin)

	assert.True(t, policy.CanAccess(owner, policy.ActionRead, policy.ResourceProfile, owner.ID))
	assert.True(t, policy.CanAccess(owner, policy.ActionUpdate, policy.ResourceProfile, owner.ID))
	assert.False(t, policy.CanAccess(admin, policy.ActionRead, policy.ResourceProfile, owner.ID))
	assert.True(t, policy.CanAccess(admin, policy.ActionRead, policy.ResourceProfile, admin.ID))
}

func TestCanAccess_PublicKindsIgnoreOwner(t *testing.T) {
	user := policy.NewActor(uuid.New(), models.RoleUser)
	assert.True(t, policy.CanAccess(user, policy.ActionRead, policy.ResourceCompany, uuid.New()))
	assert.False(t, policy.CanAccess(user, policy.ActionUpdate, policy.ResourceCompany, user.ID))
}
