package main

import (
	"log"
	"os"
	"slices"

	"github.com/rawbytedev/cellref"
	"gopkg.in/yaml.v3"
)

type counter struct {
	N uint8 `yaml:"n"`
}

type report struct {
	Byte    *cellref.Cell[uint8]   `yaml:"byte"`
	List    *cellref.Cell[[]int]   `yaml:"list"`
	Counter *cellref.Cell[counter] `yaml:"counter"`
}

func main() {
	b := cellref.New(uint8(2))
	cellref.WithMut(b, func(x *uint8) uint8 {
		*x += 3
		return *x
	})

	l := cellref.New([]int{1, 2, 3})
	cellref.WithTakenMut(l, func(v *[]int) int {
		*v = append(*v, 4)
		return len(*v)
	})
	log.Printf("list clone: %v", cellref.GetCloned(l, slices.Clone[[]int]))

	c := cellref.New(counter{N: 8})
	cellref.WithTakenMut(c, func(x *counter) uint8 {
		x.N += 4
		return x.N
	})

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	if err := enc.Encode(&report{Byte: b, List: l, Counter: c}); err != nil {
		log.Fatal(err)
	}
}
