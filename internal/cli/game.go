// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/gamepilot/internal/launch"
	"github.com/tomtom215/gamepilot/internal/recommend"
)

func newPersonaCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "persona",
		Short: "Summarise your play history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, _, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}
			p, err := engine.Persona(ctxOrBackground(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return printJSON(out, p)
			}
			fmt.Fprintf(out, "Dominant moods:     %s\n", joinOrNone(p.DominantMoods))
			fmt.Fprintf(out, "Preferred session:  %s\n", p.PreferredSessionLength)
			fmt.Fprintf(out, "Preferred times:    %s\n", joinOrNone(p.PreferredTimesOfDay))
			fmt.Fprintf(out, "Completion rate:    %.0f%%\n", p.CompletionRate*100)
			fmt.Fprintf(out, "Games considered:   %d\n", p.GamesConsidered)
			return nil
		},
	}
}

func newTagCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <game-id>",
		Short: "Show the session length and times of day a game suits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, games, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}
			g, err := findGame(games, args[0])
			if err != nil {
				return err
			}
			tags := recommend.Tag(&g, engine.GetConfig())

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return printJSON(out, tags)
			}
			fmt.Fprintf(out, "%s\n  session: %s\n  times:   %s\n", g.Title, tags.SessionLength, joinOrNone(tags.RecommendedTimes))
			return nil
		},
	}
}

func newLaunchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "launch <game-id>",
		Short: "Print the platform launch URL for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := opts.loadGames(cmd)
			if err != nil {
				return err
			}
			g, err := findGame(games, args[0])
			if err != nil {
				return err
			}
			target, err := launch.URL(&g)
			if err != nil {
				return fmt.Errorf("launch %s: %w", g.ID, err)
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return printJSON(out, target)
			}
			fmt.Fprintln(out, target.URL)
			return nil
		},
	}
}

func joinOrNone[T ~string](items []T) string {
	if len(items) == 0 {
		return "none"
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = string(it)
	}
	return strings.Join(parts, ", ")
}
