package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/daimatz/objhook/pkg/config"
	"github.com/daimatz/objhook/pkg/hook"
	"github.com/daimatz/objhook/pkg/native"
	"github.com/daimatz/objhook/pkg/objrt"
)

func newAttachCmd(root *rootOptions) *cobra.Command {
	var exercise bool
	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Boot the host runtime and install the indicator hooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			return runAttach(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, exercise)
		},
	}
	cmd.Flags().BoolVar(&exercise, "exercise", false, "drive the indicator after attaching to show the hooks at work")
	return cmd
}

func runAttach(ctx context.Context, out, logOut io.Writer, cfg config.Config, exercise bool) error {
	logger, err := newLogger(logOut, cfg)
	if err != nil {
		return err
	}
	rt, err := bootHost(cfg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	driver := hook.NewDriver(hook.NewLogSink(logger), hook.NewMetrics(reg), selectPolicies(cfg)...)
	report := driver.Run(rt)
	printReport(out, report)

	if exercise {
		if err := exerciseIndicator(out, rt); err != nil {
			return err
		}
	}
	if cfg.MetricsAddr != "" {
		return serveMetrics(ctx, cfg.MetricsAddr, reg)
	}
	return nil
}

// selectPolicies returns the indicator policies enabled in cfg, in order.
func selectPolicies(cfg config.Config) []hook.Policy {
	enabled := map[string]bool{
		hook.IndicatorVisibility: cfg.Hooks.IndicatorVisibility,
		hook.ForceDisplay:        cfg.Hooks.ForceDisplay,
	}
	var out []hook.Policy
	for _, p := range hook.IndicatorPolicies(cfg.TargetClass) {
		if enabled[p.Name] {
			out = append(out, p)
		}
	}
	return out
}

func printReport(w io.Writer, r *hook.Report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "HOOK\tTARGET\tSTATE\tERROR")
	for _, res := range r.Results {
		errText := ""
		if res.Err != nil {
			errText = res.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n", res.Hook, res.Class, res.Signature, res.State, errText)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d of %d hooks installed\n", r.Installed(), len(r.Results))
}

// exerciseIndicator starts a recording on a dimmed backlight, the case the
// indicator is built to stay visible for.
func exerciseIndicator(w io.Writer, rt *objrt.Runtime) error {
	ctl, err := native.NewIndicatorController(rt)
	if err != nil {
		return errors.Wrap(err, "creating indicator controller")
	}
	for _, step := range []struct {
		sel objrt.Selector
		arg bool
	}{
		{"setBacklightDimmed:", true},
		{"setRecording:", true},
	} {
		if _, err := rt.Send(ctl, step.sel, objrt.BoolValue(step.arg)); err != nil {
			return errors.Wrapf(err, "sending %s", step.sel)
		}
	}
	visible, err := rt.Send(ctl, "isIndicatorVisible")
	if err != nil {
		return errors.Wrap(err, "reading indicator state")
	}
	fmt.Fprintf(w, "recording: YES, backlight dimmed: YES, indicator visible: %s\n", visible)
	return nil
}

func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return errors.Wrap(err, "serving metrics")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
