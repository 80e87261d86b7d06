package main

import (
	"bufio"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/telemetrik/currentloop"
)

type config struct {
	value     float64
	min       float64
	max       float64
	bands     int
	tolerance int

	interactive bool
	debug       bool
}

// sparks are the levels of the curve rendering, lowest to highest
var sparks = []rune("▁▂▃▄▅▆▇█")

func main() {

	// Parse command line options
	var cfg config
	flag.Float64Var(&cfg.value, "value", 50, "process value to convert")
	flag.Float64Var(&cfg.min, "min", 0, "lower bound of the process range")
	flag.Float64Var(&cfg.max, "max", 100, "upper bound of the process range")
	flag.IntVar(&cfg.bands, "bands", 4, "number of color code bands (3, 4 or 5)")
	flag.IntVar(&cfg.tolerance, "tolerance", 5, "resistor tolerance in percent (1, 2, 5 or 10)")
	flag.BoolVar(&cfg.interactive, "interactive", false, "keep reading process values from stdin")
	flag.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	flag.Parse()

	logger := currentloop.NewDefaultLogger(cfg.debug)

	calc, err := currentloop.New(
		currentloop.WithProcessValue(cfg.value),
		currentloop.WithRange(cfg.min, cfg.max),
		currentloop.WithBandCount(currentloop.BandCount(cfg.bands)),
		currentloop.WithTolerance(currentloop.Tolerance(cfg.tolerance)),
	)
	if err != nil {
		logger.Fatalf("failed to initialize calculator: %s", err)
	}

	display(logger, calc)

	if !cfg.interactive {
		return
	}

	updateChan := make(chan currentloop.Outputs, 1)
	calc.SetUpdateChannel(updateChan)

	go func() {
		for out := range updateChan {
			logger.Debugf("update published: %s", out)
		}
	}()

	logger.Infof("enter process values (one per line, ctrl-d to quit)")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			logger.Errorf("not a process value: %q", line)
			continue
		}
		if err := calc.SetProcessValue(value); err != nil {
			logger.Errorf("failed to update process value: %s", err)
			continue
		}

		display(logger, calc)
	}
}

func display(logger currentloop.Logger, calc *currentloop.Calculator) {
	in, out := calc.Inputs(), calc.Outputs()

	logger.Infof("process value %v on [%v, %v]", in.ProcessValue, in.Range.Min, in.Range.Max)
	logger.Infof("loop current:     %.2f mA", out.Current)
	logger.Infof("load resistance:  %.2f Ω", out.Resistance)
	logger.Infof("color code:       %s", out.Code)
	logger.Infof("resistance at %s: %.2f Ω to %.2f Ω", in.Tolerance, out.ResistanceMin, out.ResistanceMax)
	logger.Infof("reference curve:  %s", sparkline(out.Curve))
}

// sparkline renders the resistance curve as one block character per
// curve point, scaled between the curve's own extremes
func sparkline(curve currentloop.Curve) string {
	if len(curve) == 0 {
		return ""
	}

	min, max := curve[0].Resistance, curve[0].Resistance
	for _, point := range curve {
		if point.Resistance < min {
			min = point.Resistance
		}
		if point.Resistance > max {
			max = point.Resistance
		}
	}

	var b strings.Builder
	for _, point := range curve {
		level := 0
		if max > min {
			level = int((point.Resistance - min) / (max - min) * float64(len(sparks)-1))
		}
		b.WriteRune(sparks[level])
	}

	first, last := curve[0], curve[len(curve)-1]
	b.WriteString(" (")
	b.WriteString(strconv.FormatFloat(first.Resistance, 'f', 0, 64))
	b.WriteString(" Ω at ")
	b.WriteString(strconv.FormatFloat(first.Current, 'f', 1, 64))
	b.WriteString(" mA down to ")
	b.WriteString(strconv.FormatFloat(last.Resistance, 'f', 0, 64))
	b.WriteString(" Ω at ")
	b.WriteString(strconv.FormatFloat(last.Current, 'f', 1, 64))
	b.WriteString(" mA)")

	return b.String()
}
