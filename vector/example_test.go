package vector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

func ExampleVector_Normalize() {
	u, _ := vector.New(3, 4).Normalize()
	fmt.Println(u)

	_, err := vector.New(0, 0, 0).Normalize()
	fmt.Println(errors.Is(err, vector.ErrDegenerate))
	// Output:
	// [0.6000, 0.8000]
	// true
}

func ExampleVector_Dot() {
	d, _ := vector.New(1, 2, 3).Dot(vector.New(4, 5, 6))
	fmt.Println(d)
	// Output:
	// 32
}
