package utils

import "time"

// NowRFC3339 returns the current UTC time formatted for API responses
func NowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
