//go:build exactmath

package geom

const exactMath = true
