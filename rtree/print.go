package rtree

import "github.com/xlab/treeprint"

// String renders the whole tree, one line per node and entry.
func (t *Tree[T]) String() string {
	root := t.Root()
	printed := treeprint.NewWithRoot(root.Bounds().String())

	printNode(printed, root)

	return printed.String()
}

func printNode[T any](branch treeprint.Tree, v NodeView[T]) {
	for _, entry := range v.Entries() {
		branch.AddNode(entry.String())
	}

	for child := range v.Children() {
		printNode(branch.AddBranch(child.Bounds().String()), child)
	}
}
