package vm_test

import (
	"fmt"

	"github.com/agenthands/postfix/pkg/vm"
)

func ExampleRender() {
	fmt.Println(vm.Render("3 4 +"))
	fmt.Println(vm.Render("-5 3 +"))
	fmt.Println(vm.Render("10 3 % 1 +"))
	fmt.Println(vm.Render("4 0 /"))
	// Output:
	// 7
	// -2
	// 2
	// Arithmetic Error
	// Error: Divide By Zero
}
