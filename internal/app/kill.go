//go:build linux || darwin

package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pranshuparmar/memtop/internal/completion"
	"github.com/pranshuparmar/memtop/internal/proc"
)

var killForce bool

var killCmd = &cobra.Command{
	Use:   "kill <pid>",
	Short: "Terminate a process (SIGTERM, or SIGKILL with --force)",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return completion.PIDs(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveKeepOrder
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil || pid <= 0 {
			return fmt.Errorf("invalid pid %q", args[0])
		}

		if err := proc.Terminate(proc.PID(pid), killForce); err != nil {
			return err
		}

		sig := "SIGTERM"
		if killForce {
			sig = "SIGKILL"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sent %s to %d\n", sig, pid)
		return nil
	},
}

func init() {
	killCmd.Flags().BoolVarP(&killForce, "force", "f", false, "send SIGKILL instead of SIGTERM")
}
