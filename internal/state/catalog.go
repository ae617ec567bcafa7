// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package state

import (
	"fmt"
	"math"
)

// LandmarkSeed describes one catalog entry before it is loaded into a store.
type LandmarkSeed struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// DefaultCatalog returns the landmark table the service ships with.
// A fresh slice is returned on every call.
func DefaultCatalog() []LandmarkSeed {
	return []LandmarkSeed{
		{
			Name: "Florida International University Graham Center Pit",
			Lat:  25.756305010307514,
			Lng:  -80.37291507782811,
		},
		{
			Name: "Arbetters Hot Dogs",
			Lat:  25.733552302746368,
			Lng:  -80.33680016181258,
		},
	}
}

// ValidateCatalog checks that every seed has a name, that names are unique,
// and that coordinates are within geographic bounds.
func ValidateCatalog(seeds []LandmarkSeed) error {
	if len(seeds) == 0 {
		return fmt.Errorf("%w: landmark catalog is empty", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(seeds))
	for i, seed := range seeds {
		if seed.Name == "" {
			return fmt.Errorf("%w: landmark %d has no name", ErrInvalidInput, i)
		}
		if _, dup := seen[seed.Name]; dup {
			return fmt.Errorf("%w: duplicate landmark %q", ErrInvalidInput, seed.Name)
		}
		seen[seed.Name] = struct{}{}

		if math.IsNaN(seed.Lat) || seed.Lat < -90 || seed.Lat > 90 {
			return fmt.Errorf("%w: landmark %q latitude %v out of range", ErrInvalidInput, seed.Name, seed.Lat)
		}
		if math.IsNaN(seed.Lng) || seed.Lng < -180 || seed.Lng > 180 {
			return fmt.Errorf("%w: landmark %q longitude %v out of range", ErrInvalidInput, seed.Name, seed.Lng)
		}
	}
	return nil
}
