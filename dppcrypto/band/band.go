// Package band maps DPP's (operating class, channel) pairs to frequencies
// in MHz and back, per the IEEE 802.11 Annex E / WFA Easy Connect operating
// class tables. The DPP:C: URI token names channels this way instead of by
// raw frequency, so the URI codec depends on this table for both directions.
package band

import "github.com/go-dpp/dpp/dpperr"

// Class-of-frequency band tags, mirroring the original implementation's
// band_freq enumeration.
type Band int

const (
	Band2GHz Band = iota
	Band5GHz
	Band6GHz
)

type entry struct {
	class   uint8
	channel uint8
	freq    uint32
	band    Band
}

// table is intentionally small and curated: the classes spec.md §4.9 names.
var table = buildTable()

func buildTable() []entry {
	var t []entry

	// Class 81: 2.4 GHz, channels 1-13, 5 MHz spacing from 2412 MHz.
	for ch := uint8(1); ch <= 13; ch++ {
		t = append(t, entry{81, ch, 2407 + uint32(ch)*5, Band2GHz})
	}

	// Class 115: 5 GHz UNII-1, channels 36/40/44/48.
	for _, ch := range []uint8{36, 40, 44, 48} {
		t = append(t, entry{115, ch, 5000 + uint32(ch)*5, Band5GHz})
	}

	// Class 118: 5 GHz UNII-2, channels 52/56/60/64.
	for _, ch := range []uint8{52, 56, 60, 64} {
		t = append(t, entry{118, ch, 5000 + uint32(ch)*5, Band5GHz})
	}

	// Class 121: 5 GHz UNII-2 Extended, channels 100-144 step 4.
	for ch := uint8(100); ch <= 144; ch += 4 {
		t = append(t, entry{121, ch, 5000 + uint32(ch)*5, Band5GHz})
	}

	// Class 124: 5 GHz UNII-3, channels 149/153/157/161.
	for _, ch := range []uint8{149, 153, 157, 161} {
		t = append(t, entry{124, ch, 5000 + uint32(ch)*5, Band5GHz})
	}

	// Class 125: 5 GHz UNII-3, channels 149/153/157/161/165/169/173/177.
	for _, ch := range []uint8{149, 153, 157, 161, 165, 169, 173, 177} {
		t = append(t, entry{125, ch, 5000 + uint32(ch)*5, Band5GHz})
	}

	// Classes 131-135: 6 GHz, channels 1-233 step 4, 5.950 GHz base.
	for _, class := range []uint8{131, 132, 133, 134, 135} {
		for ch := uint8(1); ch <= 233; ch += 4 {
			t = append(t, entry{class, ch, 5950 + uint32(ch)*5, Band6GHz})
		}
	}

	return t
}

// FreqOf returns the frequency in MHz for a (class, channel) pair.
func FreqOf(class, channel uint8) (uint32, error) {
	for _, e := range table {
		if e.class == class && e.channel == channel {
			return e.freq, nil
		}
	}
	return 0, dpperr.Unsupported("band.FreqOf: unknown class/channel", nil)
}

// ClassOf returns the (class, channel) pair for a frequency in MHz. When a
// frequency belongs to multiple classes (classes 124/125 share channels
// 149-161, and the 6 GHz classes 131-135 share every channel), the smaller
// class is returned, matching the
// original implementation's preference for class 81 on 2.4 GHz and the
// narrowest UNII class otherwise.
func ClassOf(freq uint32) (class, channel uint8, err error) {
	best := -1
	for i, e := range table {
		if e.freq != freq {
			continue
		}
		if best == -1 || e.class < table[best].class {
			best = i
		}
	}
	if best == -1 {
		return 0, 0, dpperr.Unsupported("band.ClassOf: unknown frequency", nil)
	}
	return table[best].class, table[best].channel, nil
}

// EmissionClass returns the class the URI codec should emit for freq when
// generating a C: token: 81 for 2.4 GHz, 115 for the frequencies class 115
// carries (UNII-1), and for any other known frequency the class ClassOf
// returns for it, so that every emitted pair parses back via FreqOf.
func EmissionClass(freq uint32) (class, channel uint8, err error) {
	if freq >= 2400 && freq < 2500 {
		if _, chFound, err := ClassOf(freq); err == nil {
			return 81, chFound, nil
		}
		return 0, 0, dpperr.Unsupported("band.EmissionClass: unknown 2.4GHz frequency", nil)
	}
	for _, e := range table {
		if e.freq == freq && e.class == 115 {
			return 115, e.channel, nil
		}
	}
	// Fall back to whatever class the table has for this frequency.
	return ClassOf(freq)
}
