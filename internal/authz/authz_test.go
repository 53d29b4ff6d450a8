package authz

import (
	"testing"

	"bimdb/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
)

func userWithRole(id string, role models.Role) *models.User {
	return &models.User{ID: id, Username: "u-" + id, Role: role}
}

func TestCan_NilActorAlwaysDenied(t *testing.T) {
	tag := models.Tag{ID: 1, Name: "x", CreatedBy: "someone"}

	for _, action := range []Action{
		ActionManageTags, ActionCreateTag, ActionEditTag, ActionSetTagActive,
		ActionDeleteTag, ActionCreateComment, ActionEditComment,
		ActionDeleteComment, ActionSetUserRole, ActionListUsers,
	} {
		assert.False(t, Can(nil, action, nil), "nil actor must be denied %s", action)
		assert.False(t, Can(nil, action, tag), "nil actor must be denied %s with resource", action)
	}
}

func TestCan_UnknownActionDenied(t *testing.T) {
	admin := userWithRole("a1", models.RoleAdmin)
	assert.False(t, Can(admin, Action("reboot_server"), nil))
}

func TestCan_TagPolicies(t *testing.T) {
	admin := userWithRole("admin-1", models.RoleAdmin)
	mod := userWithRole("mod-1", models.RoleMod)
	otherMod := userWithRole("mod-2", models.RoleMod)
	regular := userWithRole("user-1", models.RoleUser)

	tagByMod := models.Tag{ID: 7, Name: "racist-trope", CreatedBy: mod.ID}
	tagByUser := models.Tag{ID: 8, Name: "ableist-joke", CreatedBy: regular.ID}

	// Tag management pages and tag creation require at least mod.
	assert.True(t, Can(admin, ActionManageTags, nil))
	assert.True(t, Can(mod, ActionCreateTag, nil))
	assert.False(t, Can(regular, ActionCreateTag, nil))
	assert.False(t, Can(regular, ActionManageTags, nil))

	// Admin edits and deletes any tag, regardless of creator.
	assert.True(t, Can(admin, ActionEditTag, tagByMod))
	assert.True(t, Can(admin, ActionDeleteTag, tagByMod))
	assert.True(t, Can(admin, ActionDeleteTag, tagByUser))

	// A mod only touches their own tags.
	assert.True(t, Can(mod, ActionEditTag, tagByMod))
	assert.False(t, Can(otherMod, ActionEditTag, tagByMod))
	assert.False(t, Can(otherMod, ActionDeleteTag, tagByMod))
	assert.False(t, Can(mod, ActionSetTagActive, tagByUser))

	// The creator keeps control even without a mod role.
	assert.True(t, Can(regular, ActionEditTag, tagByUser))
	assert.True(t, Can(regular, ActionSetTagActive, tagByUser))
}

func TestCan_CommentPolicies(t *testing.T) {
	admin := userWithRole("admin-1", models.RoleAdmin)
	mod := userWithRole("mod-1", models.RoleMod)
	author := userWithRole("user-1", models.RoleUser)
	other := userWithRole("user-2", models.RoleUser)

	comment := models.Comment{ID: 3, MovieID: 550, UserID: author.ID}

	// Editing is admin-or-author only; even mods stay out.
	assert.True(t, Can(admin, ActionEditComment, comment))
	assert.True(t, Can(author, ActionEditComment, comment))
	assert.False(t, Can(mod, ActionEditComment, comment))
	assert.False(t, Can(other, ActionEditComment, comment))

	// Any non-banned role may delete; so may the author.
	assert.True(t, Can(admin, ActionDeleteComment, comment))
	assert.True(t, Can(mod, ActionDeleteComment, comment))
	assert.True(t, Can(other, ActionDeleteComment, comment))
}

func TestCan_BannedRoles(t *testing.T) {
	shadow := userWithRole("sb-1", models.RoleShadowBan)
	banned := userWithRole("fb-1", models.RoleFullBan)

	// Banned roles cannot add comments or delete other people's.
	assert.False(t, Can(shadow, ActionCreateComment, nil))
	assert.False(t, Can(banned, ActionCreateComment, nil))

	othersComment := models.Comment{ID: 4, UserID: "user-9"}
	assert.False(t, Can(shadow, ActionDeleteComment, othersComment))
	assert.False(t, Can(banned, ActionDeleteComment, othersComment))

	// Self-management survives a ban.
	ownComment := models.Comment{ID: 5, UserID: shadow.ID}
	assert.True(t, Can(shadow, ActionEditComment, ownComment))
	assert.True(t, Can(shadow, ActionDeleteComment, ownComment))
}

func TestCan_SetUserRoleIsAdminOnly(t *testing.T) {
	admin := userWithRole("admin-1", models.RoleAdmin)
	mod := userWithRole("mod-1", models.RoleMod)
	regular := userWithRole("user-1", models.RoleUser)

	assert.True(t, Can(admin, ActionSetUserRole, nil))
	assert.False(t, Can(mod, ActionSetUserRole, nil))
	assert.False(t, Can(regular, ActionSetUserRole, nil))
	assert.False(t, Can(mod, ActionListUsers, nil))
}

func TestCan_UnknownRoleDeniedEverywhere(t *testing.T) {
	stranger := userWithRole("x-1", models.Role("superuser"))

	assert.False(t, Can(stranger, ActionCreateComment, nil))
	assert.False(t, Can(stranger, ActionCreateTag, nil))
	// Ownership still works: the record is theirs whatever the role says.
	own := models.Comment{ID: 6, UserID: stranger.ID}
	assert.True(t, Can(stranger, ActionDeleteComment, own))
}
