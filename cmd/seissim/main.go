// Command seissim removes and simulates seismometer responses on traces
// stored as mono WAV files.
//
// Usage:
//
//	seissim -remove corner:1.0 input.wav output.wav
//	seissim -remove paz.json -simulate wood_anderson input.wav output.wav
//	seissim -remove wwssn_sp -prefilter 0.5,1,20,25 input.wav output.wav
//
// The -remove and -simulate arguments accept a catalogue instrument name
// (wood_anderson, wwssn_sp, wwssn_lp, kirnos), a corner:FC[:DAMPING]
// shorthand, or the path of a JSON PAZ file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-seis/seis/sim"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	remove := flag.String("remove", "", "response to deconvolve (instrument name, corner:FC[:DAMPING], or PAZ file)")
	simulate := flag.String("simulate", "", "response to convolve in (same forms as -remove)")
	waterLevel := flag.Float64("water-level", 600, "deconvolution water level in dB")
	taperFraction := flag.Float64("taper-fraction", 0.05, "cosine taper fraction")
	noTaper := flag.Bool("no-taper", false, "disable the cosine taper")
	noDemean := flag.Bool("no-demean", false, "disable mean removal")
	preFilter := flag.String("prefilter", "", "band-limit corners f1,f2,f3,f4 in Hz")
	pow2 := flag.Bool("pow2", false, "pad the FFT to the next power of two")
	removeSens := flag.Bool("remove-sensitivity", true, "divide by the removal instrument sensitivity")
	simulateSens := flag.Bool("simulate-sensitivity", true, "multiply by the target instrument sensitivity")
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		return errors.New("expected input and output file arguments")
	}

	opts, err := buildOptions(*remove, *simulate, *waterLevel, *taperFraction,
		*noTaper, *noDemean, *preFilter, *pow2, *removeSens, *simulateSens)
	if err != nil {
		return err
	}

	data, rate, bitDepth, err := readWAV(flag.Arg(0))
	if err != nil {
		return err
	}

	log.Printf("read %d samples at %d Hz", len(data), rate)

	out, err := sim.Simulate(data, float64(rate), opts...)
	if err != nil {
		return err
	}

	return writeWAV(flag.Arg(1), out, rate, bitDepth)
}

func buildOptions(remove, simulate string, waterLevel, taperFraction float64,
	noTaper, noDemean bool, preFilter string, pow2, removeSens, simulateSens bool,
) ([]sim.Option, error) {
	opts := []sim.Option{
		sim.WithWaterLevel(waterLevel),
		sim.WithTaperFraction(taperFraction),
		sim.WithTaper(!noTaper),
		sim.WithZeroMean(!noDemean),
		sim.WithRemoveSensitivity(removeSens),
		sim.WithSimulateSensitivity(simulateSens),
	}

	if remove != "" {
		p, err := resolvePAZ(remove)
		if err != nil {
			return nil, err
		}

		opts = append(opts, sim.WithRemove(p))
	}

	if simulate != "" {
		p, err := resolvePAZ(simulate)
		if err != nil {
			return nil, err
		}

		opts = append(opts, sim.WithSimulate(p))
	}

	if preFilter != "" {
		corners, err := parseCorners(preFilter)
		if err != nil {
			return nil, err
		}

		opts = append(opts, sim.WithPreFilter(corners[0], corners[1], corners[2], corners[3]))
	}

	if pow2 {
		opts = append(opts, sim.WithPowerOfTwoFFT())
	}

	return opts, nil
}

func parseCorners(arg string) ([4]float64, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 4 {
		return [4]float64{}, fmt.Errorf("prefilter needs four comma-separated corners, got %q", arg)
	}

	var corners [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return [4]float64{}, fmt.Errorf("invalid prefilter corner %q: %w", part, err)
		}

		corners[i] = v
	}

	return corners, nil
}

func readWAV(path string) ([]float64, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if buf.Format.NumChannels != 1 {
		return nil, 0, 0, fmt.Errorf("%s has %d channels, only mono traces are supported", path, buf.Format.NumChannels)
	}

	data := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = float64(v)
	}

	return data, buf.Format.SampleRate, int(decoder.BitDepth), nil
}

func writeWAV(path string, data []float64, rate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, rate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(data)),
	}

	for i, v := range data {
		buf.Data[i] = int(math.Round(v))
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}

	return f.Close()
}
