package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/visualizer"
)

// ErrUnknownParam indicates a key in the params file that Params does not define.
var ErrUnknownParam = errors.New("cli: unknown parameter")

type runFlags struct {
	params  string
	speed   float64
	metrics bool
}

func (c *CLI) runCommand() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run <name>",
		Short: "Play one visualizer step by step",
		Long: `Play one visualizer with its demo input, or with the input read from --params.

The params file is TOML and uses the sections of the chosen visualizer, e.g.

  text = "abababab"
  pattern = "abab"`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: visualizer.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("speed") {
				f.speed = c.Config.Playback.Speed
			}

			return c.play(cmd.Context(), args[0], f)
		},
	}

	cmd.Flags().StringVarP(&f.params, "params", "p", "", "TOML file with the visualizer input")
	cmd.Flags().Float64VarP(&f.speed, "speed", "s", playback.DefaultSpeed, "speed multiplier, > 0")
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "print run metrics when done")

	return cmd
}

func (c *CLI) play(ctx context.Context, name string, f runFlags) error {
	logger := loggerFromContext(ctx)

	d, err := visualizer.Lookup(name)
	if err != nil {
		return err
	}
	p := d.Defaults
	if f.params != "" {
		if p, err = loadParams(f.params, p); err != nil {
			return err
		}
		logger.Debug("params loaded", "file", f.params)
	}
	steps, err := d.Run(p)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	printer := stepPrinter{w: c.out, palette: c.Config.Palette}
	session := playback.NewSession(
		playback.WithLogger(logger),
		playback.WithSleeper(c.sleep),
		playback.WithHooks(playback.MultiHooks{
			playback.StepFunc(printer.print),
			playback.NewMetrics(reg),
		}),
	)
	if err = session.SetSpeed(f.speed); err != nil {
		return err
	}

	fmt.Fprintln(c.out, styleTitle.Render(d.Title))
	rep, err := session.Play(ctx, d.Name, steps)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s after %d steps\n", outcomeStyle(rep.Outcome).Render(rep.Outcome.String()), rep.Steps)

	if f.metrics {
		families, err := reg.Gather()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		writeMetrics(c.out, families)
	}
	if !rep.Completed {
		return ctx.Err()
	}

	return nil
}

// loadParams decodes path over base. Unknown keys are an error.
func loadParams(path string, base visualizer.Params) (visualizer.Params, error) {
	p := base.Clone()
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return visualizer.Params{}, fmt.Errorf("params %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return visualizer.Params{}, fmt.Errorf("%w: %s", ErrUnknownParam, strings.Join(keys, ", "))
	}

	return p, nil
}

// writeMetrics prints counters and histogram totals, one series per line.
func writeMetrics(w io.Writer, families []*dto.MetricFamily) {
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			series := fam.GetName() + labelString(m.GetLabel())
			switch fam.GetType() {
			case dto.MetricType_COUNTER:
				fmt.Fprintf(w, "%s %g\n", styleDim.Render(series), m.GetCounter().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				fmt.Fprintf(w, "%s count=%d sum=%g\n", styleDim.Render(series), h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
}

func labelString(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprintf("%s=%q", l.GetName(), l.GetValue())
	}

	return "{" + strings.Join(parts, ",") + "}"
}
