//go:build analysis

// Distribution analysis for the blind-signature scheme: runs the full
// protocol many times with a seeded source, then reports histograms of the
// discrete-Gaussian sampler output and of the centered unblinded-signature
// coefficients, plus summary statistics, as an HTML page and a JSON dump.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	signer "RLWE-Blind-Signature/Signer"
	Parameters "RLWE-Blind-Signature/System"
	"RLWE-Blind-Signature/Sampler"
	"RLWE-Blind-Signature/measure"
	"RLWE-Blind-Signature/prof"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/crypto/sha3"
)

type summaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var m2 float64
	for _, v := range x {
		d := v - m
		m2 += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(m2 / float64(n-1))
	}
	return summaryStats{
		Count:  n,
		Mean:   m,
		Std:    std,
		Min:    cp[0],
		Median: cp[n/2],
		Max:    cp[n-1],
	}
}

func computeHistogram(values []float64, nbins int) (edges []float64, counts []int) {
	if len(values) == 0 {
		return []float64{0, 1}, []int{0}
	}
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	minv, maxv := cp[0], cp[len(cp)-1]
	width := (maxv - minv) / float64(nbins)
	if width <= 0 {
		width = 1
	}
	edges = make([]float64, nbins+1)
	for i := 0; i <= nbins; i++ {
		edges[i] = minv + float64(i)*width
	}
	counts = make([]int, nbins)
	for _, v := range values {
		idx := int(math.Floor((v - minv) / width))
		if idx < 0 {
			idx = 0
		}
		if idx >= nbins {
			idx = nbins - 1
		}
		counts[idx]++
	}
	return
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newHistogramChart(title string, values []float64, stats summaryStats) *charts.Bar {
	const nbins = 50
	edges, counts := computeHistogram(values, nbins)
	xLabels := make([]string, nbins)
	for i := 0; i < nbins; i++ {
		center := 0.5 * (edges[i] + edges[i+1])
		xLabels[i] = fmt.Sprintf("%.2f", center)
	}
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d, mean=%.3f, std=%.3f, median=%.3f",
		stats.Count, stats.Mean, stats.Std, stats.Median)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// deriveMessage expands the run seed into a distinct 16-byte message per run.
func deriveMessage(seed []byte, run int) []byte {
	in := make([]byte, len(seed)+4)
	copy(in, seed)
	binary.LittleEndian.PutUint32(in[len(seed):], uint32(run))
	out := make([]byte, 16)
	sha3.ShakeSum256(out, in)
	return out
}

func levelByName(name string) (Parameters.SecurityLevel, bool) {
	for _, l := range Parameters.Levels() {
		if l.String() == name {
			return l, true
		}
	}
	return 0, false
}

func main() {
	runs := flag.Int("runs", 20, "number of protocol runs")
	levelName := flag.String("level", "KYBER512", "catalog level: TEST_TINY|TEST_SMALL|KYBER512|MODERATE|HIGH")
	seedHex := flag.String("seedhex", "", "optional hex seed for a reproducible run")
	outDir := flag.String("out", "Measure_Reports", "output directory for reports")
	flag.Parse()

	level, ok := levelByName(*levelName)
	if !ok {
		log.Fatalf("unknown level %q", *levelName)
	}
	params, err := Parameters.GetParameterSet(level)
	if err != nil {
		log.Fatalf("GetParameterSet: %v", err)
	}

	seed := []byte("rlwe-blindsig-analysis")
	if *seedHex != "" {
		seed, err = hex.DecodeString(*seedHex)
		if err != nil {
			log.Fatalf("bad -seedhex: %v", err)
		}
	}
	src, err := Sampler.NewSeededSource(seed)
	if err != nil {
		log.Fatalf("NewSeededSource: %v", err)
	}

	bs, err := signer.NewWithSource(params, src)
	if err != nil {
		log.Fatalf("NewWithSource: %v", err)
	}

	var gaussCoeffs, sigCoeffs []float64
	verified := 0

	start := time.Now()
	for i := 0; i < *runs; i++ {
		if err := bs.GenerateKeys(); err != nil {
			log.Fatalf("run %d: GenerateKeys: %v", i, err)
		}
		_, b, err := bs.PublicKey()
		if err != nil {
			log.Fatalf("run %d: PublicKey: %v", i, err)
		}

		// one fresh Gaussian polynomial per run for the sampler histogram
		g, err := src.Gaussian(params.N, params.Q, params.Sigma)
		if err != nil {
			log.Fatalf("run %d: Gaussian: %v", i, err)
		}
		for _, c := range g.Centered() {
			gaussCoeffs = append(gaussCoeffs, float64(c))
		}

		msg := deriveMessage(seed, i)
		blinded, r, err := bs.ComputeBlindedMessage(msg)
		if err != nil {
			log.Fatalf("run %d: ComputeBlindedMessage: %v", i, err)
		}
		blindSig, err := bs.BlindSign(blinded)
		if err != nil {
			log.Fatalf("run %d: BlindSign: %v", i, err)
		}
		sig, err := bs.ComputeSignature(blindSig, r, b)
		if err != nil {
			log.Fatalf("run %d: ComputeSignature: %v", i, err)
		}
		ok, err := bs.Verify(msg, sig)
		if err != nil {
			log.Fatalf("run %d: Verify: %v", i, err)
		}
		if ok {
			verified++
		}

		for _, c := range sig.Centered() {
			sigCoeffs = append(sigCoeffs, float64(c))
		}
		measure.Global.Add("signatures", int64(measure.BytesRing(params.N, params.Q)))
		measure.Global.Add("blinded messages", int64(measure.BytesRing(params.N, params.Q)))
	}
	prof.Track(start, fmt.Sprintf("%d protocol runs", *runs))
	log.Printf("%d/%d runs verified", verified, *runs)
	measure.Global.Dump()

	gaussStats := computeStats(gaussCoeffs)
	sigStats := computeStats(sigCoeffs)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("MkdirAll: %v", err)
	}

	page := components.NewPage()
	page.AddCharts(
		newHistogramChart(fmt.Sprintf("Discrete Gaussian samples (σ=%.1f)", params.Sigma), gaussCoeffs, gaussStats),
		newHistogramChart("Unblinded signature coefficients (centered)", sigCoeffs, sigStats),
	)
	htmlPath := filepath.Join(*outDir, "distributions.html")
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("Create: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("Render: %v", err)
	}

	report := struct {
		Level    string       `json:"level"`
		Runs     int          `json:"runs"`
		Verified int          `json:"verified"`
		Gauss    summaryStats `json:"gaussian_samples"`
		Sig      summaryStats `json:"signature_coeffs"`
	}{params.Name, *runs, verified, gaussStats, sigStats}
	if err := saveJSON(filepath.Join(*outDir, "stats.json"), report); err != nil {
		log.Fatalf("saveJSON: %v", err)
	}
	fmt.Printf("Reports written to %s\n", *outDir)
}
