//go:build geomdebug

package geom

const debugAsserts = true
