package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-seis/seis/paz"
)

// pazFile is the on-disk JSON form of a poles-zeros-gain description.
// Complex values are [real, imag] pairs.
type pazFile struct {
	Poles       [][2]float64 `json:"poles"`
	Zeros       [][2]float64 `json:"zeros"`
	Gain        float64      `json:"gain"`
	Sensitivity float64      `json:"sensitivity"`
}

func (f pazFile) toPAZ() paz.PAZ {
	p := paz.PAZ{
		Poles:       make([]complex128, len(f.Poles)),
		Zeros:       make([]complex128, len(f.Zeros)),
		Gain:        f.Gain,
		Sensitivity: f.Sensitivity,
	}

	for i, v := range f.Poles {
		p.Poles[i] = complex(v[0], v[1])
	}

	for i, v := range f.Zeros {
		p.Zeros[i] = complex(v[0], v[1])
	}

	return p
}

// resolvePAZ turns a -remove/-simulate argument into a description: a
// catalogue instrument name (e.g. "wood_anderson"), a "corner:FC[:DAMPING]"
// shorthand, or a path to a JSON PAZ file.
func resolvePAZ(arg string) (paz.PAZ, error) {
	if p, ok := paz.Instruments[strings.ToLower(arg)]; ok {
		return p, nil
	}

	if fc, damping, ok := parseCorner(arg); ok {
		return paz.FromCornerFreq(fc, damping), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return paz.PAZ{}, fmt.Errorf("PAZ argument %q is neither a catalogue instrument nor a readable file: %w", arg, err)
	}

	var f pazFile
	if err := json.Unmarshal(data, &f); err != nil {
		return paz.PAZ{}, fmt.Errorf("failed to parse PAZ file %s: %w", arg, err)
	}

	p := f.toPAZ()
	if err := p.Validate(); err != nil {
		return paz.PAZ{}, fmt.Errorf("PAZ file %s: %w", arg, err)
	}

	return p, nil
}

func parseCorner(arg string) (fc, damping float64, ok bool) {
	rest, found := strings.CutPrefix(arg, "corner:")
	if !found {
		return 0, 0, false
	}

	parts := strings.Split(rest, ":")
	if len(parts) > 2 {
		return 0, 0, false
	}

	fc, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || fc <= 0 {
		return 0, 0, false
	}

	damping = paz.DefaultDamping
	if len(parts) == 2 {
		damping, err = strconv.ParseFloat(parts[1], 64)
		if err != nil || damping <= 0 || damping > 1 {
			return 0, 0, false
		}
	}

	return fc, damping, true
}
