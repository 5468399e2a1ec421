package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeInstrumentSet(t *testing.T) {
	tests := []struct {
		name string
		set  []Instrument
		want string
	}{
		{"empty", nil, ""},
		{"single", []Instrument{InstrumentDrums}, "drums"},
		{"sorted", []Instrument{InstrumentVocals, InstrumentBass}, "bass,vocals"},
		{"duplicates collapse", []Instrument{InstrumentKeys, InstrumentKeys, InstrumentBass}, "bass,keys"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EncodeInstrumentSet(tc.set))
		})
	}
}

func TestDecodeInstrumentSet(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Instrument
	}{
		{"empty", "", nil},
		{"single", "guitar", []Instrument{InstrumentGuitar}},
		{"multiple with spaces", "bass, drums", []Instrument{InstrumentBass, InstrumentDrums}},
		{"unknown tags dropped", "guitar,theremin", []Instrument{InstrumentGuitar}},
		{"duplicates collapse", "keys,keys", []Instrument{InstrumentKeys}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeInstrumentSet(tc.raw))
		})
	}
}

func TestInstrumentSetRoundTrip(t *testing.T) {
	set := []Instrument{InstrumentGuitar, InstrumentVocals, InstrumentKeys}
	decoded := DecodeInstrumentSet(EncodeInstrumentSet(set))
	assert.ElementsMatch(t, set, decoded)
}

func TestIsValidAgeGroup(t *testing.T) {
	for _, g := range AgeGroups {
		assert.True(t, IsValidAgeGroup(string(g)))
	}
	assert.False(t, IsValidAgeGroup("seniors"))
}
