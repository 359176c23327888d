package search_test

import (
	"fmt"

	"github.com/katalvlaran/lazybeaver/search"
)

// ExampleLimited bounds LB(2) with a budget of 10 steps.
func ExampleLimited() {
	res, err := search.Limited(2, 10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("LB(2) = %d [%d machines]\n", res.Least, res.Stats.Examined)
	// Output: LB(2) = 7 [168 machines]
}

// ExampleLazyBeaver escalates the budget until LB(3) is bounded.
func ExampleLazyBeaver() {
	res, err := search.LazyBeaver(3, search.WithOnBudget(func(r search.Result) {
		fmt.Printf("LB(3) > %d\n", r.Budget)
	}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("LB(3) = %d\n", res.Least)
	// Output:
	// LB(3) > 1
	// LB(3) > 10
	// LB(3) = 22
}

// ExampleDistribution prints how many 2-state machines halt at each step.
func ExampleDistribution() {
	buckets, _, _ := search.Distribution(2, 10)
	for _, b := range buckets {
		fmt.Printf("%d:%d ", b.Step, b.Machines)
	}
	fmt.Println()
	// Output: 1:1 2:2 3:4 4:5 5:2 6:5
}
