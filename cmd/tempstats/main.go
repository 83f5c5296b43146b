// Command tempstats computes average/min/max statistics over human
// body-temperature readings, resolving whether the values are Celsius or
// Fahrenheit. Output is always Fahrenheit.
//
// Usage:
//
//	tempstats -unit C 37.0 36.6 39.0
//	echo "98.6, 98.2, 97.8" | tempstats -unit F
//	echo '[98.6, 37.0, 99.1]' | tempstats -unit F -convert-mixed -json
//
// Readings come from arguments or stdin, either whitespace/comma separated or
// as a JSON array. Defaults for the unit-resolution flags come from the
// environment and an optional YAML config file; flags take precedence.
// An empty batch is not an error: it prints the NaN/null sentinel triple.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/vitals-stats/internal/config"
	"github.com/couchcryptid/vitals-stats/internal/observability"
	"github.com/couchcryptid/vitals-stats/internal/service"
	"github.com/couchcryptid/vitals-stats/temperature"
)

func main() {
	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("TEMPSTATS_CONFIG"), "path to YAML config file")
	unitFlag := flag.String("unit", "", `declared input unit: "C" or "F" (default: infer from config or data)`)
	force := flag.Bool("force-convert", false, "resolve a declared-unit mismatch by trusting the data")
	mixed := flag.Bool("convert-mixed", false, "convert Celsius-range values in a mixed batch")
	asJSON := flag.Bool("json", false, "print the result as JSON")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()
	svc := service.New(logger, metrics)

	opts := cfg.Options()
	if *force {
		opts.ForceConvertIfMismatch = true
	}
	if *mixed {
		opts.ConvertMixedValues = true
	}
	if *unitFlag != "" {
		unit, err := temperature.ParseUnit(*unitFlag)
		if err != nil {
			logger.Error("invalid -unit flag", "error", err)
			os.Exit(1)
		}
		opts.InputUnit = unit
	}

	stats, err := run(svc, flag.Args(), os.Stdin, opts)
	if err != nil {
		logger.Error("computation failed", "error", err)
		os.Exit(1)
	}

	if err := printStats(os.Stdout, stats, *asJSON); err != nil {
		logger.Error("write output failed", "error", err)
		os.Exit(1)
	}
}

// run gathers readings from arguments (preferred) or stdin and computes
// statistics over them.
func run(svc *service.Service, args []string, stdin io.Reader, opts temperature.Options) (temperature.Stats, error) {
	input := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return temperature.Stats{}, fmt.Errorf("read stdin: %w", err)
		}
		input = string(data)
	}
	input = strings.TrimSpace(input)

	// A JSON array goes through the run-time contract guard so malformed
	// payloads surface as typed invalid-input errors.
	if strings.HasPrefix(input, "[") {
		dec := json.NewDecoder(strings.NewReader(input))
		dec.UseNumber()
		var decoded any
		if err := dec.Decode(&decoded); err != nil {
			return temperature.Stats{}, fmt.Errorf("%w: %v", temperature.ErrInvalidInput, err)
		}
		return svc.ComputeAny(decoded, opts)
	}

	readings, err := parseReadings(input)
	if err != nil {
		return temperature.Stats{}, err
	}
	return svc.Compute(readings, opts)
}

// parseReadings splits whitespace/comma separated numbers.
func parseReadings(input string) ([]float64, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	readings := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", temperature.ErrInvalidInput, f)
		}
		readings = append(readings, v)
	}
	return readings, nil
}

func printStats(w io.Writer, stats temperature.Stats, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintf(w, "average=%g min=%g max=%g unit=%s\n",
			stats.Average, stats.Min, stats.Max, stats.Unit)
		return err
	}

	// NaN has no JSON representation; the empty-batch sentinel encodes as null.
	out := struct {
		Average *float64 `json:"average"`
		Min     *float64 `json:"min"`
		Max     *float64 `json:"max"`
		Unit    string   `json:"unit"`
	}{
		Average: jsonNumber(stats.Average),
		Min:     jsonNumber(stats.Min),
		Max:     jsonNumber(stats.Max),
		Unit:    stats.Unit.String(),
	}
	return json.NewEncoder(w).Encode(out)
}

func jsonNumber(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
