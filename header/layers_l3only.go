//go:build without_mp12

package header

const layer12Enabled = false
