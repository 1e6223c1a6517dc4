package bitgrid_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/bitgrid"
)

func Example() {
	g, err := bitgrid.New(2, 1, []uint32{0xFFFFFFFF, 0x00000000})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(g.WordWidth(), g.Height(), g.PopulationCount())

	err = g.SetData([]uint32{1})
	fmt.Println(errors.Is(err, bitgrid.ErrInvalidLength))
	fmt.Println(g.Data())

	// Output:
	// 2 1 32
	// true
	// [4294967295 0]
}

func ExampleMake() {
	g, err := bitgrid.Make(100, 50)
	if err != nil {
		log.Fatal(err)
	}
	_ = g.SetAll([]bitgrid.Point{{X: 3, Y: 7}, {X: 99, Y: 49}})

	r, _ := g.BoundingBox()
	fmt.Println(g.WordWidth(), g.Width(), g.PopulationCount())
	fmt.Printf("%+v\n", r)

	// Output:
	// 4 128 2
	// {MinX:3 MinY:7 MaxX:99 MaxY:49}
}

func ExampleGrid_ToRoaring() {
	g, _ := bitgrid.Make(32, 2)
	_ = g.Set(1, 0)
	_ = g.Set(2, 1)

	rb, _ := g.ToRoaring()
	fmt.Println(rb.ToArray())

	// Output: [1 34]
}
