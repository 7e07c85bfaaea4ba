//go:build !windows

package resp

const lineSeparator = "\n"
