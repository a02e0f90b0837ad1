// Package roverrun computes terrain cost fields for a planetary rover.
//
// A map is a rectangular grid of soils. One cell holds the base station;
// every other cell gets the cheapest accumulated movement cost from it,
// found by a single breadth-first expansion followed by one repair sweep.
//
//	  B  ---  ~~~       0  1  3
//	 ---  ^^^  ███      1  5  -
//
// Everything is organized under these packages:
//
//	terrain/   Grid, Soil, Cost and Position: the data model
//	fifo/      bounded generic FIFO used by the expansion
//	costfield/ Relax, Propagate, Repair and Compute, with hooks
//	mapfile/   text map loader, LoadAndCompute
//	render/    soil drawing, cost and code tables
//	rover/     orientation, moves and mission replay
//	mission/   HCL mission files evaluated against a map
//	config/    YAML application config
//	cmd/roverrun  the command line tool
//
// Quick start:
//
//	go run ./cmd/roverrun costs mapfile/testdata/training.map
package roverrun
