// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/utl"

// matmul returns a·b for 3×3 matrices
func matmul(a, b [][]float64) (c [][]float64) {
	c = utl.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return
}

// conjugate returns R·b·Rᵀ for 3×3 matrices
func conjugate(R, b [][]float64) (c [][]float64) {
	rb := matmul(R, b)
	c = utl.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				c[i][j] += rb[i][k] * R[j][k]
			}
		}
	}
	return
}

// join returns the 6×6 matrix α·[[b11, b12], [b12ᵀ, b22]] with each 3×3 block rotated by R
func join(α float64, R, b11, b12, b22 [][]float64) (m [][]float64) {
	r11 := conjugate(R, b11)
	r12 := conjugate(R, b12)
	r22 := conjugate(R, b22)
	m = utl.Alloc(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = α * r11[i][j]
			m[i][j+3] = α * r12[i][j]
			m[i+3][j] = α * r12[j][i]
			m[i+3][j+3] = α * r22[i][j]
		}
	}
	return
}
