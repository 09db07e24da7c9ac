//go:build !family255

package ogg

const family255Enabled = false
