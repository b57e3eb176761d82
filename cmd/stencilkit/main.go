// SPDX-License-Identifier: MIT
// Package: stencilkit/cmd/stencilkit

// Command stencilkit generates test fields for stencil benchmarks, plots
// them, times the reference diffusion workload and queries the timing log.
//
//	stencilkit init --out field.h5 --order XZY
//	stencilkit show --slice 0
//	stencilkit bench --test diffuse-go
//	stencilkit results compare diffuse-go diffuse-numpy
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
