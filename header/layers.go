package header

// Layer12Enabled reports whether this build decodes Layer I and II frames.
func Layer12Enabled() bool {
	return layer12Enabled
}
