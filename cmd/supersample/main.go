package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lcurve/supersample/pkg/lightcurve"
	"github.com/lcurve/supersample/pkg/supersample"
	"github.com/lcurve/supersample/pkg/types"
	"github.com/lcurve/supersample/pkg/util"
)

var (
	pretty  bool
	showSub bool
)

type opts struct {
	// sampling
	nsamples int
	exptime  float64

	// toy model
	model  string
	t0     float64
	center float64
	width  float64
	depth  float64

	// outputs
	csvPath  string
	jsonPath string
}

type row struct {
	Exposure int      `json:"exposure"`
	Center   float64   `json:"center_d"`
	Start    float64   `json:"window_start_d"`
	End      float64   `json:"window_end_d"`
	SubTimes []float64 `json:"subsample_times_d"`
	SubFlux  []float64 `json:"subsample_flux,omitempty"`
	AvgFlux  *float64  `json:"avg_flux,omitempty"`
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "supersample [TIME|START..END:STEP]...",
		Short: "Finite-exposure supersampling for photometric time series",
		Long: `The supersample tool expands exposure-center timestamps into evenly
spaced sub-exposure timestamps, optionally evaluates a toy flux model at
the sub-times, and averages the model back to one value per exposure.
Times and exposure durations are in days.

Examples:
  supersample -n 5 -e 1 0 1 2
  supersample -n 7 --model box --center 1.0 --width 0.2 --depth 0.01 0..2:0.25
  supersample --model step --t0 1.1 --csv out.csv 0.6 0.8 1.0 1.2 1.4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args)
		},
	}

	root.Flags().BoolVar(&pretty, "pretty", true, "format output as a table instead of CSV-like lines")
	root.Flags().BoolVar(&showSub, "subsamples", false, "print every sub-exposure time (and flux) per exposure")
	root.Flags().IntVarP(&o.nsamples, "nsamples", "n", 5, "sub-exposure samples per exposure")
	root.Flags().Float64VarP(&o.exptime, "exptime", "e", 0.020433598, "exposure duration in days (default: Kepler long cadence)")

	root.Flags().StringVar(&o.model, "model", "box", "toy flux model to average: step, box, or none")
	root.Flags().Float64Var(&o.t0, "t0", 0, "step model: flux rises from 0 to 1 after this time")
	root.Flags().Float64Var(&o.center, "center", 0, "box model: dip center (days)")
	root.Flags().Float64Var(&o.width, "width", 0.1, "box model: dip width (days)")
	root.Flags().Float64Var(&o.depth, "depth", 0.01, "box model: dip depth (fraction of baseline)")

	root.Flags().StringVar(&o.csvPath, "csv", "", "write per-exposure rows to CSV file")
	root.Flags().StringVar(&o.jsonPath, "json", "", "write per-exposure rows to JSON file")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func pickModel(o opts) (lightcurve.Model, error) {
	switch o.model {
	case "none":
		return nil, nil
	case "step":
		return lightcurve.Step(o.t0), nil
	case "box":
		return lightcurve.Box(o.center, o.width, o.depth), nil
	default:
		return nil, fmt.Errorf("unknown model %q (want step, box, or none)", o.model)
	}
}

func run(o opts, args []string) error {
	times, err := util.ParseTimes(args)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no exposure times provided")
	}

	model, err := pickModel(o)
	if err != nil {
		return err
	}

	s, err := supersample.New(&supersample.Config{NSamples: o.nsamples, ExpTime: o.exptime})
	if err != nil {
		return err
	}

	fmt.Printf("# %d exposures, %d samples/exposure, exptime %s\n",
		len(times), s.NSamples(), types.Days(s.ExpTime()).Humanized())
	fmt.Printf("# offsets:")
	for _, off := range s.Offsets() {
		fmt.Printf(" %s", util.FmtFloat(off))
	}
	fmt.Println()

	sub := s.Sample(times)

	var (
		flux []float64
		avg  []float64
	)
	if model != nil {
		flux = lightcurve.Evaluate(model, sub)
		avg, err = s.Average(flux)
		if err != nil {
			return err
		}
	}

	rows := buildRows(s, times, sub, flux, avg)

	if pretty {
		printTable(rows, model != nil)
	} else {
		printCsvLike(rows, model != nil)
	}
	if showSub {
		printSubsamples(rows, model != nil)
	}

	if o.csvPath != "" {
		if err := writeCSV(o.csvPath, rows, model != nil); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	if o.jsonPath != "" {
		if err := writeJSON(o.jsonPath, rows); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	}
	return nil
}

func buildRows(s *supersample.Sampler, times, sub, flux, avg []float64) []row {
	k := s.NSamples()
	half := s.ExpTime() / 2
	rows := make([]row, len(times))
	for i, t := range times {
		r := row{
			Exposure: i,
			Center:   t,
			Start:    t - half,
			End:      t + half,
			SubTimes: sub[i*k : (i+1)*k],
		}
		if avg != nil {
			r.SubFlux = flux[i*k : (i+1)*k]
			v := avg[i]
			r.AvgFlux = &v
		}
		rows[i] = r
	}
	return rows
}

func printTable(rows []row, withFlux bool) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if withFlux {
		fmt.Fprintln(tw, "EXP\tCENTER (d)\tWINDOW (d)\tAVG FLUX")
		fmt.Fprintln(tw, "---\t----------\t----------\t--------")
	} else {
		fmt.Fprintln(tw, "EXP\tCENTER (d)\tWINDOW (d)")
		fmt.Fprintln(tw, "---\t----------\t----------")
	}
	for _, r := range rows {
		if withFlux {
			fmt.Fprintf(tw, "%d\t%.6f\t[%.6f, %.6f]\t%.6f\n", r.Exposure, r.Center, r.Start, r.End, *r.AvgFlux)
		} else {
			fmt.Fprintf(tw, "%d\t%.6f\t[%.6f, %.6f]\n", r.Exposure, r.Center, r.Start, r.End)
		}
	}
	tw.Flush()
}

func printCsvLike(rows []row, withFlux bool) {
	if withFlux {
		fmt.Println("# exposure, center, window_start, window_end, avg_flux")
	} else {
		fmt.Println("# exposure, center, window_start, window_end")
	}
	for _, r := range rows {
		if withFlux {
			fmt.Printf("%d, %s, %s, %s, %s\n", r.Exposure,
				util.FmtFloat(r.Center), util.FmtFloat(r.Start), util.FmtFloat(r.End), util.FmtFloat(*r.AvgFlux))
		} else {
			fmt.Printf("%d, %s, %s, %s\n", r.Exposure,
				util.FmtFloat(r.Center), util.FmtFloat(r.Start), util.FmtFloat(r.End))
		}
	}
}

func printSubsamples(rows []row, withFlux bool) {
	for _, r := range rows {
		fmt.Printf("exposure %d:\n", r.Exposure)
		for j, st := range r.SubTimes {
			if withFlux {
				fmt.Printf("  t=%s flux=%s\n", util.FmtFloat(st), util.FmtFloat(r.SubFlux[j]))
			} else {
				fmt.Printf("  t=%s\n", util.FmtFloat(st))
			}
		}
	}
}

func writeCSV(path string, rows []row, withFlux bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"exposure", "center_d", "window_start_d", "window_end_d"}
	if withFlux {
		header = append(header, "avg_flux")
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Exposure),
			util.FmtFloat(r.Center), util.FmtFloat(r.Start), util.FmtFloat(r.End),
		}
		if withFlux {
			rec = append(rec, util.FmtFloat(*r.AvgFlux))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(path string, rows []row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
