package paz

// Poles, zeros, and gain for common seismometers, corrected to velocity per
// the RESP/SEED standard. Compared with the PITSA tables each entry carries
// one zero fewer: corrected signals are in velocity, which removes one 1/w
// factor in the frequency domain.
var (
	// WoodAnderson is the torsion seismometer underlying local-magnitude
	// scales.
	WoodAnderson = PAZ{
		Poles:       []complex128{-6.2832 - 4.7124i, -6.2832 + 4.7124i},
		Zeros:       []complex128{0},
		Gain:        1 / 2.25,
		Sensitivity: 1,
	}

	// WWSSNSP is the World-Wide Standardized Seismograph Network
	// short-period instrument.
	WWSSNSP = PAZ{
		Poles: []complex128{
			-4.0093 - 4.0093i, -4.0093 + 4.0093i,
			-4.6077 - 6.9967i, -4.6077 + 6.9967i,
		},
		Zeros:       []complex128{0, 0},
		Gain:        1 / 1.0413,
		Sensitivity: 1,
	}

	// WWSSNLP is the corresponding long-period instrument.
	WWSSNLP = PAZ{
		Poles:       []complex128{-0.4189, -0.4189, -0.0628, -0.0628},
		Zeros:       []complex128{0, 0},
		Gain:        1 / 0.0271,
		Sensitivity: 1,
	}

	// Kirnos is the Soviet-era broadband galvanometric instrument.
	Kirnos = PAZ{
		Poles: []complex128{
			-0.1257 - 0.2177i, -0.1257 + 0.2177i,
			-83.4473, -0.3285,
		},
		Zeros:       []complex128{0, 0},
		Gain:        1 / 1.61,
		Sensitivity: 1,
	}
)

// Instruments maps catalogue names to their descriptions.
var Instruments = map[string]PAZ{
	"wood_anderson": WoodAnderson,
	"wwssn_sp":      WWSSNSP,
	"wwssn_lp":      WWSSNLP,
	"kirnos":        Kirnos,
}
