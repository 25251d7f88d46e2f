package jobs

import "strings"

var jobTypeCodes = map[string]string{
	"fullTime":   "F",
	"partTime":   "P",
	"contract":   "C",
	"internship": "I",
}

var workTypeCodes = map[string]string{
	"remote": "R",
	"onsite": "O",
	"hybrid": "H",
}

type geoID struct {
	name string
	id   string
}

// geoIDs is checked in order; the first name contained in the requested
// location wins, so broader names listed earlier shadow later cities.
var geoIDs = []geoID{
	{"new york", "103644278"},
	{"san francisco", "102277331"},
	{"chicago", "102183082"},
	{"seattle", "103679156"},
	{"boston", "101835590"},
	{"austin", "100025064"},
	{"india", "102713980"},
	{"bangalore", "102105699"},
	{"mumbai", "102083659"},
	{"hyderabad", "102089132"},
	{"chennai", "102093119"},
	{"delhi", "102090883"},
	{"pune", "102179709"},
	{"kolkata", "102200003"},
	{"ahmedabad", "102096753"},
	{"gurgaon", "102115891"},
	{"noida", "102180291"},
	{"jaipur", "102103260"},
	{"chandigarh", "102115878"},
	{"kochi", "102100620"},
	{"nagpur", "102113739"},
	{"indore", "102111733"},
	{"bhopal", "102108184"},
	{"lucknow", "102113183"},
	{"bhubaneswar", "102106297"},
	{"surat", "102116134"},
	{"vadodara", "102116323"},
	{"thiruvananthapuram", "102119642"},
	{"patna", "102112594"},
	{"guwahati", "102110667"},
	// remote falls back to US-wide
	{"remote", "103644278"},
}

// JobTypeCode maps a frontend job type to LinkedIn's f_JT code.
func JobTypeCode(jobType string) string {
	return jobTypeCodes[jobType]
}

// WorkTypeCode maps a frontend work location type to LinkedIn's f_WT code.
func WorkTypeCode(workType string) string {
	return workTypeCodes[workType]
}

// ExperienceLevel maps the upper bound of an experience range in years to
// LinkedIn's f_E level: entry, associate, mid-senior, director.
func ExperienceLevel(maxYears float64) string {
	switch {
	case maxYears <= 2:
		return "1"
	case maxYears <= 5:
		return "2"
	case maxYears <= 10:
		return "3"
	default:
		return "4"
	}
}

// GeoID returns the LinkedIn geoId for a free-form location, or "".
func GeoID(location string) string {
	location = strings.ToLower(location)
	if location == "" {
		return ""
	}
	for _, g := range geoIDs {
		if strings.Contains(location, g.name) {
			return g.id
		}
	}
	return ""
}
