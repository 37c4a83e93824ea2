package dag_test

import (
	"fmt"
	"strings"

	"github.com/kyodera/kanjipath/pkg/dag"
)

func ExampleGraph_OrderBy() {
	// 日 and 月 combine into 明: both must be studied first.
	sun := dag.NewNode(0, "日")
	moon := dag.NewNode(1, "月")
	bright := dag.NewNode(2, "明")

	sun.SetChildren([]*dag.Node[string]{bright})
	moon.SetChildren([]*dag.Node[string]{bright})
	bright.SetParents([]*dag.Node[string]{sun, moon})

	g := dag.New([]*dag.Node[string]{sun, moon})
	if err := g.OrderBy(func(a, b dag.View[string]) int {
		return strings.Compare(a.Value(), b.Value())
	}); err != nil {
		fmt.Println("order:", err)
		return
	}

	for _, v := range g.Nodes() {
		fmt.Println(v.Value())
	}
	// Output:
	// 日
	// 月
	// 明
}

func ExampleNode_DescendantCount() {
	// A diamond counts the shared grandchild once per path.
	root := dag.NewNode(0, "root")
	a := dag.NewNode(1, "a")
	b := dag.NewNode(2, "b")
	c := dag.NewNode(3, "c")

	root.SetChildren([]*dag.Node[string]{a, b})
	a.SetParents([]*dag.Node[string]{root})
	a.SetChildren([]*dag.Node[string]{c})
	b.SetParents([]*dag.Node[string]{root})
	b.SetChildren([]*dag.Node[string]{c})
	c.SetParents([]*dag.Node[string]{a, b})

	fmt.Println(root.DescendantCount())
	// Output:
	// 4
}
