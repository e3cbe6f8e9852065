// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/gamepilot/internal/mood"
)

func newMoodsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List the mood taxonomy",
		Long: `List every mood with its energy level and the moods it cannot be
combined with.

Subcommands:
  games  Rank library games for one mood

Examples:
  gamepilot moods
  gamepilot moods games cozy --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := mood.All()
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return printJSON(out, all)
			}
			for _, info := range all {
				fmt.Fprintf(out, "%-12s %-7s %s\n", info.ID, info.Energy, info.Description)
				if len(info.Incompatible) > 0 {
					ids := make([]string, len(info.Incompatible))
					for i, id := range info.Incompatible {
						ids[i] = string(id)
					}
					fmt.Fprintf(out, "%-12s not with: %s\n", "", strings.Join(ids, ", "))
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newMoodGamesCmd(opts))
	return cmd
}

func newMoodGamesCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "games <mood>",
		Short: "Rank library games for one mood",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := mood.Parse(args[0])
			if !ok {
				return fmt.Errorf("unknown mood %q", args[0])
			}
			if limit < 1 {
				return fmt.Errorf("limit must be at least 1, got %d", limit)
			}

			engine, _, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}
			scored, err := engine.MoodGames(ctxOrBackground(cmd), id, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return printJSON(out, scored)
			}
			if len(scored) == 0 {
				fmt.Fprintf(out, "No games suit a %s mood.\n", id)
				return nil
			}
			for i, sg := range scored {
				fmt.Fprintf(out, "%2d. %s (%.0f)\n      %s\n", i+1, sg.Game.Title, sg.MoodMatch.Score, sg.MoodMatch.Reason)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "max results")
	return cmd
}
