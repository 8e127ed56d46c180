// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// SoiBerk returns the silicon-on-insulator process of the Berkeley microlab
//  layers:
//   p1 -- structural polysilicon with a 2µm fluid gap to the substrate
//   ox -- buried oxide
//   p2 -- handle wafer
func SoiBerk() *ProcessDb {
	poly := &Process{
		Name: "poly",
		E:    169e9,
		Nu:   0.3,
		Rho:  2300,
		K:    2.33e-6,
		Mu:   1.78e-5,
		Eps:  8.854e-12,
		Rs:   20,
	}
	return &ProcessDb{
		Processes: map[string]*Process{"poly": poly},
		Layers: map[string]*Layer{
			"p1": NewLayer("p1", poly, 40e-6, 2e-6),
			"ox": NewLayer("ox", poly, 2e-6, 0),
			"p2": NewLayer("p2", poly, 550e-6, 0),
		},
	}
}
