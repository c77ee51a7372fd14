package tree

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNodeChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.widgets")
	defer teardown()
	//
	root := NewNode("root")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(c)
	root.InsertChildAt(1, b)
	assert.Equal(t, 3, root.ChildCount())
	assert.Equal(t, 1, b.Index())
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, 3, c.SiblingCount())
	assert.Same(t, root, b.Parent())
	ch, ok := root.Child(0)
	assert.True(t, ok)
	assert.Same(t, a, ch)
	_, ok = root.Child(3)
	assert.False(t, ok)
	//
	b.Isolate()
	assert.Nil(t, b.Parent())
	assert.Equal(t, 1, c.Index(), "children must stay dense after removal")
	assert.Equal(t, -1, root.IndexOfChild(b))
	assert.Equal(t, 0, root.Index())
	assert.Equal(t, 1, root.SiblingCount())
}

func TestNodeWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.widgets")
	defer teardown()
	//
	root := NewNode("root")
	left := NewNode("left")
	left.AddChild(NewNode("left.1")).AddChild(NewNode("left.2"))
	root.AddChild(left).AddChild(NewNode("right"))
	var visited []string
	depths := map[string]int{}
	root.Walk(func(n *Node[string], depth int) bool {
		visited = append(visited, n.Payload)
		depths[n.Payload] = depth
		return true
	})
	assert.Equal(t, []string{"root", "left", "left.1", "left.2", "right"}, visited)
	assert.Equal(t, 2, depths["left.2"])
	//
	visited = visited[:0]
	root.Walk(func(n *Node[string], depth int) bool {
		visited = append(visited, n.Payload)
		return n.Payload != "left"
	})
	assert.Equal(t, []string{"root", "left", "right"}, visited)
}

func TestNodeConcurrentAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.widgets")
	defer teardown()
	//
	root := NewNode(0)
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			root.AddChild(NewNode(i))
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, root.ChildCount())
	for i, ch := range root.Children() {
		assert.Equal(t, i, ch.Index())
	}
}
