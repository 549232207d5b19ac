// File: mapgen/example_test.go
package mapgen_test

import (
	"fmt"
	"log"

	"github.com/jannef/RogueSharp/mapgen"
)

func ExampleBorderOnlyStrategy() {
	strategy, err := mapgen.NewBorderOnlyStrategy(6, 4)
	if err != nil {
		log.Fatal(err)
	}

	m, err := strategy.CreateMap()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(strategy.Name())
	fmt.Println(m)
	// Output:
	// Border Only
	// ######
	// #....#
	// #....#
	// ######
}

func ExampleStringDeserializeStrategy() {
	strategy := mapgen.NewStringDeserializeStrategy(`
		####
		#.s#
		#o.#
		####`)

	m, err := strategy.CreateMap()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(m)
	// Output:
	// ####
	// #.s#
	// #o.#
	// ####
}
