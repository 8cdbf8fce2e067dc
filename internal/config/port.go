package config

import (
	"strconv"
	"strings"
)

// ResolvePort converts the raw PORT value into a TCP port number.
//
// Surrounding whitespace is ignored and the leading integer is used, so
// "8080abc" and "8080.5" both give 8080. Values without a leading integer
// and values outside 1..65535 resolve to DefaultPort. The function is pure:
// the same input always gives the same port.
func ResolvePort(raw string) int {
	port, err := strconv.Atoi(leadingInteger(strings.TrimSpace(raw)))
	if err != nil || port < 1 || port > maxPort {
		return DefaultPort
	}

	return port
}

// leadingInteger returns the optional sign and digit run that s starts with.
func leadingInteger(s string) string {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
