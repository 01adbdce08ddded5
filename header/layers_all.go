//go:build !without_mp12

package header

// layer12Enabled reports whether Layer I and II frames are accepted.
const layer12Enabled = true
