package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryIndex_Tree(t *testing.T) {
	rootA, rootB, child, grandchild := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	orphanParent := uuid.New()
	orphan := uuid.New()

	idx := NewCategoryIndex([]*Category{
		{ID: rootA, Name: "Computers"},
		{ID: child, Name: "Laptops", ParentID: &rootA},
		{ID: rootB, Name: "Components"},
		{ID: grandchild, Name: "Gaming", ParentID: &child},
		{ID: orphan, Name: "Orphan", ParentID: &orphanParent},
	})

	tree := idx.Tree()
	require.Len(t, tree, 3)
	assert.Equal(t, rootA, tree[0].Category.ID)
	assert.Equal(t, rootB, tree[1].Category.ID)
	assert.Equal(t, orphan, tree[2].Category.ID)

	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, child, tree[0].Children[0].Category.ID)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, grandchild, tree[0].Children[0].Children[0].Category.ID)
	assert.Empty(t, tree[1].Children)

	children := idx.Children(rootA)
	require.Len(t, children, 1)
	assert.Equal(t, "Laptops", children[0].Name)
	assert.Empty(t, idx.Children(grandchild))
}

func TestCreatesCycle(t *testing.T) {
	root, child, grandchild, other := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	parents := map[uuid.UUID]*uuid.UUID{
		root:       nil,
		child:      &root,
		grandchild: &child,
		other:      nil,
	}
	lookup := func(id uuid.UUID) (*uuid.UUID, bool) {
		parent, ok := parents[id]

		return parent, ok
	}

	tests := []struct {
		name     string
		id       uuid.UUID
		parentID uuid.UUID
		want     bool
	}{
		{name: "self", id: root, parentID: root, want: true},
		{name: "direct child", id: root, parentID: child, want: true},
		{name: "deep descendant", id: root, parentID: grandchild, want: true},
		{name: "ancestor", id: grandchild, parentID: root, want: false},
		{name: "unrelated", id: child, parentID: other, want: false},
		{name: "unknown parent", id: child, parentID: uuid.New(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreatesCycle(tt.id, tt.parentID, lookup))
		})
	}
}

func TestCreatesCycle_ExistingLoopTerminates(t *testing.T) {
	a, b, target := uuid.New(), uuid.New(), uuid.New()
	parents := map[uuid.UUID]*uuid.UUID{a: &b, b: &a, target: nil}

	cycle := CreatesCycle(target, a, func(id uuid.UUID) (*uuid.UUID, bool) {
		parent, ok := parents[id]

		return parent, ok
	})

	assert.False(t, cycle)
}
