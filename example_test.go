// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binary64

import (
	"encoding/json"
	"fmt"
	"math"
)

func ExampleBits() {
	b := FromFloat64(-2.5)
	fmt.Println(b.Split())
	fmt.Println(b.Category(), b.Sign())
	fmt.Println(b)
	fmt.Printf("%b\n", b)

	r, err := b.Rat()
	if err != nil {
		panic(err)
	}
	fmt.Printf("exact rational = %v, rebuilt = %v\n", r, Compile(Negative, 1024, 1<<50))

	data, err := json.Marshal(b)
	if err != nil {
		panic(err)
	}
	JSONMode = JSONModeFields
	fields, err := json.Marshal(b)
	if err != nil {
		panic(err)
	}
	JSONMode = JSONModeCompact
	fmt.Printf("json: %s, %s\n", data, fields)

	// Output:
	// 1 1024 1125899906842624
	// Normal -
	// -1 * 0b1.0100000000000000000000000000000000000000000000000000 * 2**(1024-1023)
	// 1 10000000000 0100000000000000000000000000000000000000000000000000
	// exact rational = -5/2, rebuilt = -2.5
	// json: -2.5, {"s":1,"e":1024,"m":1125899906842624}
}

func ExampleULPsFrom() {
	fmt.Println(ULP(1) == Epsilon, 1+ULP(1)/2 == 1)
	fmt.Println(ULPsFrom(1, Prev(1)))
	fmt.Println(ULPsFrom(Prev(1), Next(1)))
	fmt.Println(ULPsFrom(0, math.Copysign(0, -1)))
	fmt.Println(ULPsFrom(1, math.NaN()))

	// Output:
	// true true
	// 1
	// -2
	// 0
	// NaN
}

func ExampleExactDecimal() {
	d, err := ExactDecimal(0.1)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	_, err = ExactDecimal(math.Inf(1))
	fmt.Println(err)

	// Output:
	// 0.1000000000000000055511151231257827021181583404541015625
	// +Infinity: non-finite value
}
