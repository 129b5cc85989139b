// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/snap-desk/internal/handler"
	"github.com/MKhiriev/snap-desk/internal/ipc"
	"github.com/spf13/cobra"
)

func newCommandsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands the running process accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := opts.client().Commands(cmd.Context())
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), names)
		},
	}
}

func newInvokeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "invoke COMMAND [JSON_ARGS]",
		Short: "Invoke a command with optional JSON arguments",
		Example: `  snapctl invoke load_config
  snapctl invoke select_snap_config '{"id":"3f1c..."}'
  snapctl -o yaml invoke app_info`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body any
			if len(args) == 2 {
				if !json.Valid([]byte(args[1])) {
					return fmt.Errorf("%w: arguments are not valid JSON", ipc.ErrInvalidArgs)
				}
				body = json.RawMessage(args[1])
			}

			var result any
			if err := opts.client().Invoke(cmd.Context(), args[0], body, &result); err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), result)
		},
	}
}

func newGreetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "greet NAME",
		Short: "Greet NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var greeting string
			err := opts.client().Invoke(cmd.Context(), handler.CommandGreet, handler.GreetArgs{Name: args[0]}, &greeting)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), greeting)
			return err
		},
	}
}
