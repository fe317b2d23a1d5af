package providers

import "time"

const leagueTimezone = "Asia/Seoul"

// kstOffset is used when the tz database is missing from the host.
var kstOffset = time.FixedZone("KST", 9*60*60)

// ResolveTimezone returns a location for a tz string, or nil if invalid.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}

// LeagueLocation returns the league's local timezone.
func LeagueLocation() *time.Location {
	if loc := ResolveTimezone(leagueTimezone); loc != nil {
		return loc
	}
	return kstOffset
}
