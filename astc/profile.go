package astc

// Profile controls how decoded endpoint colors are expanded.
//
// ASTC files do not record a profile; it is a usage convention between the
// encoder and the consumer of the texture.
type Profile uint8

const (
	// ProfileLDR decodes using linear LDR rules.
	ProfileLDR Profile = iota
	// ProfileLDRSRGB decodes using sRGB LDR rules.
	ProfileLDRSRGB
	// ProfileHDRRGBLDRAlpha decodes using HDR RGB and LDR alpha rules.
	ProfileHDRRGBLDRAlpha
	// ProfileHDR decodes using HDR RGBA rules.
	ProfileHDR
)

func (p Profile) valid() bool {
	return p <= ProfileHDR
}

func (p Profile) isLDR() bool {
	return p == ProfileLDR || p == ProfileLDRSRGB
}

func (p Profile) String() string {
	switch p {
	case ProfileLDR:
		return "ldr"
	case ProfileLDRSRGB:
		return "srgb"
	case ProfileHDRRGBLDRAlpha:
		return "hdr-rgb-ldr-a"
	case ProfileHDR:
		return "hdr"
	default:
		return "unknown"
	}
}
