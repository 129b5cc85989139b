// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/snap-desk/internal/ipc"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

const (
	DefaultAddress = "127.0.0.1:7777"
	DefaultTimeout = 30 * time.Second

	outputJSON = "json"
	outputYAML = "yaml"
)

var ErrUnknownOutput = errors.New("unknown output format")

type options struct {
	address string
	timeout time.Duration
	output  string
}

// NewRootCommand returns the snapctl command tree. The IPC address defaults
// to $IPC_ADDRESS, then to [DefaultAddress].
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "snapctl",
		Short:         "Invoke SnapDesk commands over IPC",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != outputJSON && opts.output != outputYAML {
				return fmt.Errorf("%w: %s", ErrUnknownOutput, opts.output)
			}
			return nil
		},
	}

	address := os.Getenv("IPC_ADDRESS")
	if address == "" {
		address = DefaultAddress
	}

	root.PersistentFlags().StringVarP(&opts.address, "addr", "a", address, "IPC server address (host:port)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", DefaultTimeout, "request timeout")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputJSON, "output format: json or yaml")

	root.AddCommand(
		newCommandsCommand(opts),
		newInvokeCommand(opts),
		newGreetCommand(opts),
	)

	return root
}

func (o *options) client() *ipc.Client {
	return ipc.NewClient(o.address, o.timeout)
}

// print writes v in the selected output format.
func (o *options) print(w io.Writer, v any) error {
	switch o.output {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
