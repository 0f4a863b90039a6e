package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Pacific/Auckland")
	if err != nil {
		panic(err)
	}
}

// force the timezone to NZ because RCM is an NZ system and all of its
// date fields assume NZ local dates, while our servers may be deployed
// anywhere
func Now() time.Time {
	return time.Now().In(Location)
}

// the dd/MM/yyyy layout RCM report date fields expect
const RCMDateLayout = "02/01/2006"

func FormatRCMDate(t time.Time) string {
	return t.In(Location).Format(RCMDateLayout)
}
