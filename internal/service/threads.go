package service

import (
	"sort"

	"pulse/internal/models"
	"pulse/internal/observability"
)

// BuildCommentTree turns the flat comment set of one post into a forest of
// root comments with nested reply lists. Pure in-memory construction: one
// sort, one linear pass, no storage access.
//
// Ordering is ascending creation time, ties broken by id, and it determines
// both root order and sibling order within any parent.
//
// A comment whose parent id does not resolve within the set is promoted to a
// root. That mirrors how orphaned threads have always rendered here; whether
// they should instead be hidden is a product decision, not one this function
// makes.
func BuildCommentTree(comments []*models.Comment) []*models.Comment {
	sorted := make([]*models.Comment, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	byID := make(map[uint]*models.Comment, len(sorted))
	for _, c := range sorted {
		// Non-nil so roots with no replies serialize as [] rather than null.
		c.Replies = []*models.Comment{}
		byID[c.ID] = c
	}

	roots := []*models.Comment{}
	for _, c := range sorted {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		if parent, ok := byID[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
			continue
		}
		// Dangling parent: keep the comment visible as a root.
		roots = append(roots, c)
	}

	observability.CommentTreeSize.Observe(float64(len(sorted)))
	return roots
}
