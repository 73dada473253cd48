package timezone

import (
	"os"
	"time"
)

const DefaultTimezone = "America/New_York"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// Shop returns the shop's operating timezone (SHOP_TIMEZONE env, or the
// default). Slot dates and times are interpreted in this location.
func Shop() *time.Location {
	return Location(os.Getenv("SHOP_TIMEZONE"))
}

func Now() time.Time {
	return time.Now().In(Shop())
}

// Today returns the current date in the shop timezone, in the same
// YYYY-MM-DD form slot rows use.
func Today() string {
	return Now().Format("2006-01-02")
}
