package domain

import "time"

// Season scales the nightly rate. It is resolved from the wall time at quote
// time, never at room creation, so a quote is only valid for the day it was
// produced.
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
)

var seasonMultipliers = map[Season]float64{
	SeasonWinter: 0.8,
	SeasonSpring: 1.0,
	SeasonSummer: 1.3,
	SeasonFall:   1.1,
}

// Jan..Dec
var monthSeasons = [12]Season{
	SeasonWinter, SeasonWinter,
	SeasonSpring, SeasonSpring, SeasonSpring,
	SeasonSummer, SeasonSummer, SeasonSummer,
	SeasonFall, SeasonFall, SeasonFall,
	SeasonWinter,
}

// SeasonOf maps a point in time to its pricing season.
func SeasonOf(t time.Time) Season { return monthSeasons[t.Month()-1] }

func (s Season) Multiplier() float64 { return seasonMultipliers[s] }
