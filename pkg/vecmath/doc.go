// Package vecmath provides the small generic vector algebra the geometry
// predicates are written against. Vectors are plain values parameterised
// over float32 and float64.
package vecmath
