package fibonacci

import (
	"context"
	"fmt"
)

// ExampleNewCalculator demonstrates creating a Calculator with
// different algorithm implementations.
func ExampleNewCalculator() {
	iterative := NewCalculator(&Iterative{})
	matrix := NewCalculator(&MatrixPower{})

	fmt.Println(iterative.Name())
	fmt.Println(matrix.Name())
	// Output:
	// Iterative (O(n) time, O(1) space)
	// Matrix Power (O(log n) fast doubling)
}

// ExampleDefaultFactory demonstrates using the factory to obtain
// pre-registered calculators by name.
func ExampleDefaultFactory() {
	factory := NewDefaultFactory()

	// List available algorithms.
	fmt.Println(factory.List())

	// Get a calculator by name.
	calc, err := factory.Get("matrix")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := calc.Calculate(context.Background(), nil, 0, 10)
	if err != nil {
		fmt.Printf("Calculation error: %v\n", err)
		return
	}

	fmt.Println(result)
	// Output:
	// [binet binet-approx cached iterative matrix recursive sequence]
	// 55
}

// ExampleCache demonstrates the shared memoization table.
func ExampleCache() {
	cache := NewCache()

	v, _ := cache.Fib(10)
	fmt.Println(v)
	fmt.Println(cache.Len())
	// Output:
	// 55
	// 11
}
