package main

import "math/rand"

// zeroSource 火球总是生成在最左侧
type zeroSource struct{}

func (zeroSource) Float64() float64 { return 0 }

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}
