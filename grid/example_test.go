package grid_test

import (
	"fmt"

	"github.com/Rmoneygit/SymmetricGroupExplorer/grid"
	"github.com/Rmoneygit/SymmetricGroupExplorer/perm"
)

// ExampleEditCell shows a typed value displacing its previous holder.
func ExampleEditCell() {
	committed := perm.MustNew(1, 2, 3)
	buffer := committed.Clone()

	ok, _ := grid.EditCell(buffer, committed, 0, 3)
	fmt.Println(ok, committed)

	ok, _ = grid.EditCell(buffer, committed, 1, 7)
	fmt.Println(ok, committed, buffer)
	// Output:
	// true [3 2 1]
	// false [3 2 1] [3 2 1]
}

// ExampleResize keeps two operands and their product the same size.
func ExampleResize() {
	left := perm.MustNew(2, 3, 1)
	right := perm.MustNew(3, 2, 1)
	product, _ := perm.Compose(left, right)

	g := grid.Group{&left, &right, &product}
	if err := grid.Resize(g, 3, 2); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(left, right, product)
	// Output: [2 1] [1 2] [1 2]
}
