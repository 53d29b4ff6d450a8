package authz

import "bimdb/internal/httpapi/models"

// Visible returns the comments whose author is not banned, preserving
// input order. Every read path that shows comments to third parties
// goes through this; a user reading their own comment does not.
//
// Comments must carry a preloaded User. A comment whose author was not
// loaded has an empty role, which ranks as banned and is dropped — the
// safe direction for a moderation filter.
func Visible(comments []models.Comment) []models.Comment {
	visible := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		if c.User.Role.Banned() {
			continue
		}
		visible = append(visible, c)
	}
	return visible
}
