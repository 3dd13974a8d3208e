// Command rangebar-sim drives the indicator loop with simulated hardware so
// the distance-to-bar mapping can be checked on a PC.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "rangebar-sim",
		Short:        "Simulate the ultrasonic LED bar on the host",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML file overriding the firmware defaults")

	root.AddCommand(newOnceCmd(&configPath))
	root.AddCommand(newSweepCmd(&configPath))
	return root
}

func newOnceCmd(configPath *string) *cobra.Command {
	var pot int
	var pulse int32

	cmd := &cobra.Command{
		Use:   "once",
		Short: "Run one loop iteration and show the display and the strip",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newSimBench(*configPath, pot, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			b.sonar.pulse = pulse

			f, stepErr := b.ctrl.Step()
			out := cmd.OutOrStdout()
			fmt.Fprint(out, b.screen.String())
			fmt.Fprintln(out, renderStrip(b.led.last))
			fmt.Fprintln(out, renderSummary(f))
			return stepErr
		},
	}
	cmd.Flags().IntVarP(&pot, "pot", "p", 512, "potentiometer level (0-1023)")
	cmd.Flags().Int32VarP(&pulse, "pulse", "u", 2941, "echo pulse width in µs (0 = timeout)")
	return cmd
}

func newSweepCmd(configPath *string) *cobra.Command {
	var pot int
	var from, to, step int32

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Step the echo pulse through a range and print one row per value",
		RunE: func(cmd *cobra.Command, args []string) error {
			if step <= 0 {
				return fmt.Errorf("step must be positive, got %d", step)
			}
			if to < from {
				return fmt.Errorf("--to %d is below --from %d", to, from)
			}
			b, err := newSimBench(*configPath, pot, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%7s %5s %5s %4s %4s", "pulse", "dist", "ctrl", "st", "lit")))
			for p := from; p <= to; p += step {
				b.sonar.pulse = p
				f, err := b.ctrl.Step()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%7d %5d %5d %4s %4d  %s\n",
					p, f.Distance, f.Threshold, f.Pattern.State, f.Pattern.Lit, renderStrip(b.led.last))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&pot, "pot", "p", 512, "potentiometer level (0-1023)")
	cmd.Flags().Int32Var(&from, "from", 0, "first pulse width in µs")
	cmd.Flags().Int32Var(&to, "to", 6000, "last pulse width in µs")
	cmd.Flags().Int32Var(&step, "step", 250, "pulse width increment in µs")
	return cmd
}
