// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small fixtures and utilities shared by the matrix tests.

package matrix_test

import (
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/katalvlaran/divconq/matrix"
)

// MustDense ALLOCATES an n×n *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n)
	if err != nil {
		t.Fatalf("NewDense(%d): %v", n, err)
	}

	return m
}

// MustFromRows BUILDS a *Dense from a square literal or fails the test.
func MustFromRows(t testing.TB, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// RandomDense FILLS a new n×n matrix with small random integers in [-9, 9].
func RandomDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.Set(i, j, randomdata.Number(-9, 10)); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// textbookA and textbookB are the 4×4 operands of the demo product.
func textbookA() [][]int {
	return [][]int{
		{1, 3, 2, 4},
		{8, 5, 7, 5},
		{6, 9, 1, 2},
		{4, 8, 2, 9},
	}
}

func textbookB() [][]int {
	return [][]int{
		{6, 8, 6, 8},
		{9, 6, 4, 2},
		{3, 7, 8, 4},
		{1, 2, 9, 8},
	}
}

// textbookAB is textbookA × textbookB.
func textbookAB() [][]int {
	return [][]int{
		{43, 48, 70, 54},
		{119, 153, 169, 142},
		{122, 113, 98, 86},
		{111, 112, 153, 128},
	}
}
