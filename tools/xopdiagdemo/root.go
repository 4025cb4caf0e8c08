package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/xoplog/xopdiag"
	"github.com/xoplog/xopdiag/xopdesc"
	"github.com/xoplog/xopdiag/xopnum"
)

type options struct {
	level    string
	services []string
	payload  int
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "xopdiagdemo",
		Short: "Log descriptions of simulated Bluetooth objects",
		Long: "xopdiagdemo sets the xopdiag threshold from --level and logs a short,\n" +
			"simulated discovery session so the line format can be inspected.",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := xopnum.SeverityString(opts.level)
			if err != nil {
				return errors.Wrap(err, "--level")
			}
			xopdiag.SetLevel(level)
			return run(cmd.OutOrStdout(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVarP(&opts.level, "level", "l", xopnum.Info.String(),
		"threshold: one of "+strings.Join(xopnum.SeverityStrings(), ", "))
	cmd.Flags().StringSliceVar(&opts.services, "service", []string{"0000180d-0000-1000-8000-00805f9b34fb"},
		"service UUIDs to pretend to discover")
	cmd.Flags().IntVar(&opts.payload, "payload", 8, "bytes in the simulated characteristic value")
	cmd.AddCommand(newLevelsCmd())
	return cmd
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List severities and their tag mnemonics",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range xopnum.SeverityValues() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", s, s.Mnemonic())
			}
		},
	}
}

func run(out io.Writer, opts *options) error {
	manager := xopdesc.NewHandle(xopdesc.KindManager)
	xopdiag.Info(xopdesc.Message("%s state %s", manager, xopdesc.StatePoweredOn))

	services := make([]*xopdesc.Handle, 0, len(opts.services))
	for _, s := range opts.services {
		id, err := xopdesc.ParseIdentifier(s)
		if err != nil {
			xopdiag.Warning(xopdesc.Message("skipping service: %s", xopdesc.Error(err)))
			continue
		}
		services = append(services, xopdesc.NewHandle(xopdesc.KindService, xopdesc.WithIdentifier(id)))
	}
	xopdiag.Debug(xopdesc.Message("discovered %s", xopdesc.ListOf(services...)))

	value := make(xopdesc.Bytes, opts.payload)
	for i := range value {
		value[i] = byte(i * 17)
	}
	for _, service := range services {
		characteristic := xopdesc.NewHandle(xopdesc.KindCharacteristic)
		xopdiag.Verbose(xopdesc.Message("%s read %s on %s", characteristic, value.Truncated(32), service))
	}
	if len(services) == 0 {
		xopdiag.Error(func() string { return "no usable services" })
	}
	fmt.Fprintf(out, "logged at threshold %s\n", xopdiag.GetLevel())
	return nil
}
