package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/lvldsa/avl"
	"github.com/katalvlaran/lvldsa/bst"
)

// sampleUsers are the accounts inserted by the user database demo.
var sampleUsers = []*bst.User{
	{Username: "jadhesh", Name: "Jadhesh Verma", Email: "jadhesh@example.com"},
	{Username: "biraj", Name: "Biraj Das", Email: "biraj@example.com"},
	{Username: "sonaksh", Name: "Sonaksh Kumar", Email: "sonaksh@example.com"},
	{Username: "aakash", Name: "Aakash Rai", Email: "aakash@example.com"},
	{Username: "hemanth", Name: "Hemanth Jain", Email: "hemanth@example.com"},
	{Username: "siddhant", Name: "Siddhant Sinha", Email: "siddhant@example.com"},
	{Username: "vishal", Name: "Vishal Goel", Email: "vishal@example.com"},
}

func runBST(_ context.Context, w io.Writer, e *env) error {
	for _, c := range e.fx.Trees {
		printSection(w, "TREE: "+c.Name)
		root, err := parseTree(c.Tuple)
		if err != nil {
			return err
		}
		printTreeReport(w, root)
	}

	printSection(w, "USER DATABASE")
	db := bst.NewTreeUserDB()
	for _, u := range sampleUsers {
		if err := db.Insert(u); err != nil {
			return fmt.Errorf("insert %s: %w", u.Username, err)
		}
	}
	fmt.Fprintf(w, "Users: %s, tree height: %s\n", num(db.Len()), num(db.Height()))
	if u, err := db.Find("hemanth"); err == nil {
		printSuccess(w, "%s", u.Introduce())
	}
	if err := db.Update("hemanth", "hemanth@lesson.dev"); err != nil {
		return err
	}
	if u, err := db.Find("hemanth"); err == nil {
		printDetail(w, "after update: %s", u)
	}
	if _, err := db.Find("nobody"); err != nil {
		printInfo(w, "find nobody: %v", err)
	}
	printDetail(w, "in order: %v", db.List())

	printSection(w, "BALANCING")
	t := bst.New[int, struct{}]()
	for k := 1; k <= 7; k++ {
		_ = t.Insert(k, struct{}{})
	}
	fmt.Fprintf(w, "sorted inserts: height %s, balanced %v\n", num(t.Height()), t.IsBalanced())
	t.Balance()
	fmt.Fprintf(w, "after Balance: height %s, balanced %v, level order %v\n",
		num(t.Height()), t.IsBalanced(), t.LevelOrder())

	return nil
}

// parseTree decodes tuple notation into a node tree.
func parseTree(tuple string) (*bst.Node, error) {
	v, err := bst.ParseTuple(tuple)
	if err != nil {
		return nil, fmt.Errorf("parse tree: %w", err)
	}
	root, err := bst.FromTuple(v)
	if err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}

	return root, nil
}

// printTreeReport prints statistics, properties and every text rendering of root.
func printTreeReport(w io.Writer, root *bst.Node) {
	st := bst.Info(root)
	fmt.Fprintf(w, "Tuple: %s\n", bst.FormatTuple(bst.ToTuple(root)))
	fmt.Fprintf(w, "Height: %s  Nodes: %s  Leaves: %s  Internal: %s\n",
		num(st.Height), num(st.Nodes), num(st.Leaves), num(st.Internal))
	printCheck(w, bst.IsBSTNode(root), "binary search tree property")
	printDetail(w, "in order: %v", bst.InOrderNode(root))

	fmt.Fprintln(w, StyleDim.Render("keys:"))
	bst.DisplayKeys(w, root, "\t")
	fmt.Fprintln(w, StyleDim.Render("horizontal:"))
	bst.DisplayHorizontal(w, root)
	fmt.Fprintln(w, StyleDim.Render("compact:"))
	bst.DisplayCompact(w, root)
	fmt.Fprintln(w, StyleDim.Render("pretty:"))
	bst.DisplayPretty(w, root)
}

func runAVL(_ context.Context, w io.Writer, e *env) error {
	const n = 1023
	plain := bst.New[int, struct{}]()
	balanced := avl.New[int]()
	for k := 0; k < n; k++ {
		if err := plain.Insert(k, struct{}{}); err != nil {
			return err
		}
		balanced.Insert(k)
	}
	printSection(w, "SORTED INSERTS")
	fmt.Fprintf(w, "%d keys: BST height %s, AVL height %s\n", n, num(plain.Height()), num(balanced.Height()))

	printSection(w, "RANDOM DELETES")
	removed := 0
	for _, k := range e.randomInts(n/2, n) {
		if balanced.Delete(k - 1) {
			removed++
		}
	}
	fmt.Fprintf(w, "removed %s keys, %s left, height %s\n",
		num(removed), num(balanced.Len()), num(balanced.Height()))
	printCheck(w, balanced.Balanced(), "AVL invariant holds")

	return nil
}
