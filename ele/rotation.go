// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "math"

// RotX returns the rotation matrix about the x-axis
//         ┌               ┐
//         │ 1    0     0  │
//  Rx  =  │ 0   cφ    sφ  │
//         │ 0  -sφ    cφ  │
//         └               ┘
func RotX(φ float64) [][]float64 {
	c, s := math.Cos(φ), math.Sin(φ)
	return [][]float64{
		{1, 0, 0},
		{0, c, s},
		{0, -s, c},
	}
}

// RotY returns the rotation matrix about the y-axis
func RotY(θ float64) [][]float64 {
	c, s := math.Cos(θ), math.Sin(θ)
	return [][]float64{
		{c, 0, -s},
		{0, 1, 0},
		{s, 0, c},
	}
}

// RotZ returns the rotation matrix about the z-axis
func RotZ(ψ float64) [][]float64 {
	c, s := math.Cos(ψ), math.Sin(ψ)
	return [][]float64{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

// Rotation returns R = Rx(rx)·Ry(ry)·Rz(rz)
func Rotation(rx, ry, rz float64) [][]float64 {
	return matmul(matmul(RotX(rx), RotY(ry)), RotZ(rz))
}

// Planar returns a copy of R projected onto the xy-plane; i.e. with the third row and column
// replaced by the ones of the identity matrix
func Planar(R [][]float64) (P [][]float64) {
	P = [][]float64{
		{R[0][0], R[0][1], 0},
		{R[1][0], R[1][1], 0},
		{0, 0, 1},
	}
	return
}

// AngularVelocity returns the matrix mapping the rates of the rotation angles into the angular
// velocity expressed in the rotated frame
func AngularVelocity(drx, dry, drz float64) [][]float64 {
	cx, sx := math.Cos(drx), math.Sin(drx)
	cy, sy := math.Cos(dry), math.Sin(dry)
	return [][]float64{
		{1, 0, -sy},
		{0, cx, cy * sx},
		{0, -sx, cy * cx},
	}
}
