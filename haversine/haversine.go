// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package haversine consumes coordinate pairs from a parsed tree and
// computes great-circle distances between them.
package haversine

import (
	"fmt"
	"math"

	"github.com/creachadair/jot/ast"
)

// EarthRadius is the mean radius of the earth in kilometres, used by Sum and
// Average.
const EarthRadius = 6372.8

// A Pair is one pair of coordinates, in degrees.
type Pair struct {
	X0, Y0 float64 // longitude and latitude of the first point
	X1, Y1 float64 // longitude and latitude of the second point
}

// Distance reports the haversine distance between the points of p across a
// sphere with the given radius.
func (p Pair) Distance(radius float64) float64 {
	dLat := radians(p.Y1 - p.Y0)
	dLon := radians(p.X1 - p.X0)
	lat0 := radians(p.Y0)
	lat1 := radians(p.Y1)

	a := sqSin(dLat/2) + math.Cos(lat0)*math.Cos(lat1)*sqSin(dLon/2)
	return 2 * radius * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func sqSin(x float64) float64 {
	s := math.Sin(x)
	return s * s
}

// Pairs extracts the coordinate pairs from root. The tree must have an array
// under the key "pairs", each element of which is an object with numeric
// members x0, y0, x1, and y1.
func Pairs(root *ast.Object) ([]Pair, error) {
	v := root.Get("pairs")
	n := ast.ArrayLen(v)
	if n < 0 {
		return nil, fmt.Errorf(`no "pairs" array: got %v`, ast.KindOf(v))
	}

	out := make([]Pair, n)
	for i := 0; i < n; i++ {
		elt, ok := ast.ArrayAt(v, i).(*ast.Object)
		if !ok {
			return nil, fmt.Errorf("pair %d: not an object", i)
		}
		p := &out[i]
		for _, f := range []struct {
			key string
			val *float64
		}{
			{"x0", &p.X0}, {"y0", &p.Y0}, {"x1", &p.X1}, {"y1", &p.Y1},
		} {
			num, ok := elt.Get(f.key).(ast.Number)
			if !ok {
				return nil, fmt.Errorf("pair %d: missing number %q", i, f.key)
			}
			*f.val = num.Float()
		}
	}
	return out, nil
}

// Sum reports the total haversine distance over pairs on a sphere with the
// given radius.
func Sum(pairs []Pair, radius float64) float64 {
	var total float64
	for _, p := range pairs {
		total += p.Distance(radius)
	}
	return total
}

// Average reports the mean haversine distance over pairs, or 0 for no pairs.
func Average(pairs []Pair, radius float64) float64 {
	if len(pairs) == 0 {
		return 0
	}
	return Sum(pairs, radius) / float64(len(pairs))
}
