//go:build !exactmath

package geom

const exactMath = false
