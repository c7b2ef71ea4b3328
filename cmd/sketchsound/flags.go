// ABOUTME: Flag parsing helpers
// ABOUTME: Splits format lists and extracts listen ports
package main

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// splitFormats turns "ogg, mp3" into ["ogg", "mp3"], dropping empty entries
func splitFormats(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// portOf returns the numeric port of a listen address like ":8930"
func portOf(addr string) (int, error) {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 0, fmt.Errorf("invalid listen address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return 0, fmt.Errorf("invalid port in %q", addr)
	}
	return port, nil
}
