package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. Categories form a tree through ParentID only; children are
// resolved through a CategoryIndex rather than stored on the entity.
type Category struct {
	ID          uuid.UUID  // The Global Unique Identifier (GUID) for the category.
	Name        string     // Unique display name.
	Description string     // Optional description.
	ImageURL    string     // Optional banner image.
	ParentID    *uuid.UUID // Parent category, nil for roots.
	Active      bool       // Soft-delete marker.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryNode is one node of a materialized category tree.
type CategoryNode struct {
	Category *Category
	Children []*CategoryNode
}

// CategoryIndex maps parent ids to their children, built at query time.
type CategoryIndex struct {
	byID     map[uuid.UUID]*Category
	children map[uuid.UUID][]uuid.UUID
	roots    []uuid.UUID
}

// NewCategoryIndex indexes categories by id and by parent. Input order is kept for siblings.
// A category whose parent is not in the input is treated as a root.
func NewCategoryIndex(categories []*Category) *CategoryIndex {
	idx := &CategoryIndex{
		byID:     make(map[uuid.UUID]*Category, len(categories)),
		children: make(map[uuid.UUID][]uuid.UUID),
	}
	for _, c := range categories {
		idx.byID[c.ID] = c
	}
	for _, c := range categories {
		if c.ParentID == nil {
			idx.roots = append(idx.roots, c.ID)

			continue
		}
		if _, ok := idx.byID[*c.ParentID]; !ok {
			idx.roots = append(idx.roots, c.ID)

			continue
		}
		idx.children[*c.ParentID] = append(idx.children[*c.ParentID], c.ID)
	}

	return idx
}

// Children returns the direct children of a category.
func (idx *CategoryIndex) Children(id uuid.UUID) []*Category {
	ids := idx.children[id]
	out := make([]*Category, 0, len(ids))
	for _, childID := range ids {
		out = append(out, idx.byID[childID])
	}

	return out
}

// Tree materializes the forest rooted at every root category.
func (idx *CategoryIndex) Tree() []*CategoryNode {
	nodes := make([]*CategoryNode, 0, len(idx.roots))
	for _, id := range idx.roots {
		nodes = append(nodes, idx.subtree(id, map[uuid.UUID]bool{}))
	}

	return nodes
}

func (idx *CategoryIndex) subtree(id uuid.UUID, seen map[uuid.UUID]bool) *CategoryNode {
	seen[id] = true
	node := &CategoryNode{Category: idx.byID[id]}
	for _, childID := range idx.children[id] {
		if seen[childID] {
			continue
		}
		node.Children = append(node.Children, idx.subtree(childID, seen))
	}

	return node
}

// CreatesCycle reports whether making parentID the parent of id would produce a cycle,
// following the stored parent chain upwards from parentID.
func CreatesCycle(id uuid.UUID, parentID uuid.UUID, parentOf func(uuid.UUID) (*uuid.UUID, bool)) bool {
	visited := map[uuid.UUID]bool{}
	current := parentID
	for {
		if current == id {
			return true
		}
		if visited[current] {
			// an existing cycle that does not pass through id
			return false
		}
		visited[current] = true

		next, ok := parentOf(current)
		if !ok || next == nil {
			return false
		}
		current = *next
	}
}
