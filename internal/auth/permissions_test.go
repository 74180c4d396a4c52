package auth

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func roleCaller(userID, roleID uint) *Caller {
	return &Caller{UserID: userID, RoleID: &roleID}
}

func TestPredicates(t *testing.T) {
	seeker := roleCaller(1, models.RoleJobSeekerID)
	hirer := roleCaller(2, models.RoleHirerID)
	admin := roleCaller(3, models.RoleAdminID)
	staff := &Caller{UserID: 4, IsStaff: true}

	assert.False(t, IsAuthenticated(nil))
	assert.False(t, IsAuthenticated(&Caller{}))
	assert.True(t, IsAuthenticated(seeker))

	assert.True(t, IsHirer(hirer))
	assert.False(t, IsHirer(seeker))
	assert.False(t, IsHirer(nil))

	assert.True(t, IsAdmin(admin))
	assert.True(t, IsAdmin(staff))
	assert.False(t, IsAdmin(hirer))
}

func TestOwnershipPredicates(t *testing.T) {
	caller := roleCaller(7, models.RoleJobSeekerID)

	assert.True(t, OwnsUser(caller, &models.Apply{UserID: 7}))
	assert.False(t, OwnsUser(caller, &models.Apply{UserID: 8}))
	// Сущность без владельца никогда не принадлежит вызывающему
	assert.False(t, OwnsUser(caller, &models.Category{}))

	assert.False(t, OwnsProfile(caller, &models.Education{ProfileID: 3}))
	profileID := uint(3)
	caller.ProfileID = &profileID
	assert.True(t, OwnsProfile(caller, &models.Education{ProfileID: 3}))
	assert.False(t, OwnsProfile(caller, &models.Experience{ProfileID: 4}))

	post := &models.Post{Company: models.Company{UserID: 7}}
	assert.True(t, OwnsPostCompany(caller, post))
	post.Company.UserID = 9
	assert.False(t, OwnsPostCompany(caller, post))
}

func TestPolicy_Authorize(t *testing.T) {
	policy := NewPolicy()
	hirer := roleCaller(2, models.RoleHirerID)
	otherHirer := roleCaller(5, models.RoleHirerID)
	seeker := roleCaller(1, models.RoleJobSeekerID)
	post := &models.Post{Company: models.Company{UserID: 2}}

	tests := []struct {
		name   string
		caller *Caller
		res    Resource
		act    Action
		target any
		want   *apperrors.AppError
	}{
		{"public read has no rule", nil, ResourcePost, ActionRetrieve, post, nil},
		{"anonymous create", nil, ResourcePost, ActionCreate, nil, apperrors.ErrAuthenticationRequired},
		{"seeker cannot create post", seeker, ResourcePost, ActionCreate, nil, apperrors.ErrPermissionDenied},
		{"hirer creates post", hirer, ResourcePost, ActionCreate, nil, nil},
		{"owner updates post", hirer, ResourcePost, ActionUpdate, post, nil},
		{"other hirer cannot update", otherHirer, ResourcePost, ActionUpdate, post, apperrors.ErrPermissionDenied},
		{"seeker cannot list applies", seeker, ResourcePost, ActionListApplies, post, apperrors.ErrPermissionDenied},
		{"hirer cannot rate", hirer, ResourceCompany, ActionRate, nil, apperrors.ErrPermissionDenied},
		{"seeker rates", seeker, ResourceCompany, ActionRate, nil, nil},
		{"seeker cannot list users", seeker, ResourceUser, ActionList, nil, apperrors.ErrPermissionDenied},
		{"staff lists users", &Caller{UserID: 9, IsStaff: true}, ResourceUser, ActionList, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Authorize(tt.caller, tt.res, tt.act, tt.target)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestPolicy_Register(t *testing.T) {
	policy := NewPolicy()
	seeker := roleCaller(1, models.RoleJobSeekerID)

	assert.False(t, policy.Allowed(seeker, ResourcePost, ActionCreate, nil))

	policy.Register(ResourcePost, ActionCreate, All(authenticated, Not(hirer)))
	assert.True(t, policy.Allowed(seeker, ResourcePost, ActionCreate, nil))
	assert.False(t, policy.Allowed(roleCaller(2, models.RoleHirerID), ResourcePost, ActionCreate, nil))
}
