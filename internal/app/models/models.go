package models

import (
	"sort"
	"strings"
)

// Instrument is an instrument tag taught at the school
type Instrument string

const (
	InstrumentVocals Instrument = "vocals"
	InstrumentKeys   Instrument = "keys"
	InstrumentGuitar Instrument = "guitar"
	InstrumentBass   Instrument = "bass"
	InstrumentDrums  Instrument = "drums"
)

// Instruments lists all known instrument tags
var Instruments = []Instrument{
	InstrumentVocals,
	InstrumentKeys,
	InstrumentGuitar,
	InstrumentBass,
	InstrumentDrums,
}

// IsValidInstrument reports whether tag is a known instrument
func IsValidInstrument(tag string) bool {
	for _, i := range Instruments {
		if string(i) == tag {
			return true
		}
	}
	return false
}

// EncodeInstrumentSet serializes an instrument set to the comma-joined column
// format. Duplicates collapse and the output order is stable.
func EncodeInstrumentSet(set []Instrument) string {
	seen := make(map[Instrument]struct{}, len(set))
	uniq := make([]string, 0, len(set))
	for _, i := range set {
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		uniq = append(uniq, string(i))
	}
	sort.Strings(uniq)
	return strings.Join(uniq, ",")
}

// DecodeInstrumentSet parses the comma-joined column format back into an
// instrument set. Unknown tags are dropped.
func DecodeInstrumentSet(raw string) []Instrument {
	if raw == "" {
		return nil
	}
	var set []Instrument
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" || !IsValidInstrument(tag) {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		set = append(set, Instrument(tag))
	}
	return set
}

// AgeGroup is a band age bracket
type AgeGroup string

const (
	AgeGroupRookie      AgeGroup = "rookie"
	AgeGroupRock101     AgeGroup = "rock101"
	AgeGroupPerformance AgeGroup = "performance"
	AgeGroupAdults      AgeGroup = "adults"
)

// AgeGroups lists all band age brackets
var AgeGroups = []AgeGroup{
	AgeGroupRookie,
	AgeGroupRock101,
	AgeGroupPerformance,
	AgeGroupAdults,
}

// IsValidAgeGroup reports whether tag is a known age group
func IsValidAgeGroup(tag string) bool {
	for _, g := range AgeGroups {
		if string(g) == tag {
			return true
		}
	}
	return false
}
