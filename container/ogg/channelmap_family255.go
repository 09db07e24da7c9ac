//go:build family255

package ogg

// family255Enabled gates parsing of channel-mapping family 255 (Discrete)
// and the reserved family range 2..=254. It is off by default: most
// embedded decode targets only ever see family 0 or 1 streams, and the
// larger up-to-255-entry tables these families allow cost scratch space a
// constrained build may not have. Build with -tags family255 to enable.
const family255Enabled = true
