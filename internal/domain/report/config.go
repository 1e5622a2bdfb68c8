package report

// Options toggles the report sections. The zero value is NOT the baseline;
// use DefaultOptions and override the fields the caller actually set.
type Options struct {
	ShowHeader       bool
	ShowDays         bool
	ShowLocation     bool
	ShowReliever     bool
	ShowShiftSummary bool
	UseShortName     bool
}

// DefaultOptions is the fixed baseline: header, days, location and shift
// summary on, reliever and short names off.
func DefaultOptions() Options {
	return Options{
		ShowHeader:       true,
		ShowDays:         true,
		ShowLocation:     true,
		ShowReliever:     false,
		ShowShiftSummary: true,
		UseShortName:     false,
	}
}
