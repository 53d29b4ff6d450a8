package authz

import (
	"sort"

	"bimdb/internal/httpapi/models"
)

// TagCount is one row of the tag-usage board for a movie page.
type TagCount struct {
	TagID int64  `json:"tag_id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TagStats aggregates tag usage over the given comments, descending by
// count. It starts from the visibility-filtered set, so banned authors'
// tag usage never contributes, and skips associations whose tag is
// inactive. Ties keep the order tags were first seen in; this is a
// display aid, not a total order anyone depends on.
func TagStats(comments []models.Comment) []TagCount {
	index := make(map[string]int)
	var counts []TagCount

	for _, c := range Visible(comments) {
		for _, t := range c.Tags {
			if !t.Active {
				continue
			}
			i, ok := index[t.Name]
			if !ok {
				i = len(counts)
				index[t.Name] = i
				// Tag names are unique, so the first id seen is as
				// representative as any.
				counts = append(counts, TagCount{TagID: t.ID, Name: t.Name})
			}
			counts[i].Count++
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
