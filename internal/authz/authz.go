// Package authz holds the moderation rules: who may do what, whose
// content is visible, and how tag usage is aggregated for display.
// Everything here is a pure decision over records already loaded for
// the request; persistence and HTTP status codes are the caller's job.
package authz

import (
	"bimdb/internal/httpapi/models"
)

// Action names a protected operation. Handlers and services pass these
// instead of raw role thresholds so the policy lives in one table.
type Action string

const (
	ActionManageTags    Action = "manage_tags"
	ActionCreateTag     Action = "create_tag"
	ActionEditTag       Action = "edit_tag"
	ActionSetTagActive  Action = "set_tag_active"
	ActionDeleteTag     Action = "delete_tag"
	ActionCreateComment Action = "create_comment"
	ActionEditComment   Action = "edit_comment"
	ActionDeleteComment Action = "delete_comment"
	ActionSetUserRole   Action = "set_user_role"
	ActionListUsers     Action = "list_users"
)

// Resource is anything with an owning user. Ownership is compared by
// stable user id, never by object identity.
type Resource interface {
	OwnerID() string
}

type policy struct {
	// threshold is the least-privileged role allowed to perform the
	// action on records it does not own.
	threshold models.Role
	// ownerOK lets the resource's creator/author act regardless of
	// role. Self-management survives a ban: a shadow-banned author can
	// still edit or delete their own comment even though nobody else
	// sees it.
	ownerOK bool
}

// policies is the authorization table. RoleUser as a threshold means
// "any non-banned role" since shadow_ban and full_ban rank below it.
var policies = map[Action]policy{
	ActionManageTags:    {threshold: models.RoleMod},
	ActionCreateTag:     {threshold: models.RoleMod},
	ActionEditTag:       {threshold: models.RoleAdmin, ownerOK: true},
	ActionSetTagActive:  {threshold: models.RoleAdmin, ownerOK: true},
	ActionDeleteTag:     {threshold: models.RoleAdmin, ownerOK: true},
	ActionCreateComment: {threshold: models.RoleUser},
	ActionEditComment:   {threshold: models.RoleAdmin, ownerOK: true},
	ActionDeleteComment: {threshold: models.RoleUser, ownerOK: true},
	ActionSetUserRole:   {threshold: models.RoleAdmin},
	ActionListUsers:     {threshold: models.RoleAdmin},
}

// Can decides whether actor may perform action on resource. A nil
// actor (no authenticated identity) is denied everything; an unknown
// action is denied. Resource may be nil for actions that are not about
// a particular record, such as creating a comment. Can never errors:
// absence of authorization is just false.
func Can(actor *models.User, action Action, resource Resource) bool {
	if actor == nil {
		return false
	}
	p, ok := policies[action]
	if !ok {
		return false
	}
	if p.ownerOK && resource != nil && resource.OwnerID() == actor.ID {
		return true
	}
	return actor.Role.AtLeast(p.threshold)
}
