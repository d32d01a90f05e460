//go:build !geomdebug

package geom

const debugAsserts = false
