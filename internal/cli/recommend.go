// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/gamepilot/internal/mood"
	"github.com/tomtom215/gamepilot/internal/recommend"
)

type recommendFlags struct {
	moods         []string
	session       string
	timeOfDay     string
	localTime     bool
	requireTime   bool
	matchMode     string
	exclude       []string
	limit         int
	personaWeight float64
}

func newRecommendCmd(opts *options) *cobra.Command {
	f := &recommendFlags{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend games for a mood, session length and time of day",
		Long: `Rank the library for the given context.

Up to two moods may be given: the first is primary. A secondary mood that
cannot be combined with the primary is dropped with a notice.

Examples:
  gamepilot recommend --mood chill
  gamepilot recommend --mood competitive --mood social --session short
  gamepilot recommend --mood cozy --now --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecommend(cmd, opts, f)
		},
	}

	cmd.Flags().StringSliceVarP(&f.moods, "mood", "m", nil, "selected moods, primary first (max 2)")
	cmd.Flags().StringVarP(&f.session, "session", "s", "", "session length: short, medium or long")
	cmd.Flags().StringVarP(&f.timeOfDay, "time", "t", "", "time of day: morning, afternoon, evening or late-night")
	cmd.Flags().BoolVar(&f.localTime, "now", false, "use the current local time of day")
	cmd.Flags().BoolVar(&f.requireTime, "require-time", false, "drop games that do not suit the time of day")
	cmd.Flags().StringVar(&f.matchMode, "match-mode", "", "mood matching: any or all (default from config)")
	cmd.Flags().StringSliceVarP(&f.exclude, "exclude", "x", nil, "game ids to leave out")
	cmd.Flags().IntVarP(&f.limit, "limit", "n", 0, "max results (default from config)")
	cmd.Flags().Float64VarP(&f.personaWeight, "persona-weight", "p", 0, "share of the score from your play history, 0 to 1")

	return cmd
}

// filters validates the flags and converts them to engine filters. The
// notice is non-empty when the secondary mood was dropped.
func (f *recommendFlags) filters(now time.Time) (recommend.Filters, string, error) {
	out := recommend.Filters{
		ExcludeIDs:       f.exclude,
		RequireTimeOfDay: f.requireTime,
		MatchMode:        recommend.MoodMatchMode(f.matchMode),
	}
	if len(f.moods) > 2 {
		return out, "", fmt.Errorf("at most two moods may be selected, got %d", len(f.moods))
	}
	moods := make([]mood.ID, 0, len(f.moods))
	for _, s := range f.moods {
		id, ok := mood.Parse(s)
		if !ok {
			return out, "", fmt.Errorf("unknown mood %q", s)
		}
		moods = append(moods, id)
	}

	var notice string
	if len(moods) == 2 {
		sel, dropped := mood.ResolveSelection(moods[0], &moods[1])
		if dropped {
			notice = fmt.Sprintf("%s cannot be combined with %s, using %s only", moods[1], moods[0], moods[0])
		}
		moods = sel.Moods()
	}
	out.SelectedMoods = moods

	if f.session != "" {
		s := recommend.SessionLength(f.session)
		if !s.Valid() {
			return out, "", fmt.Errorf("unknown session length %q", f.session)
		}
		out.SelectedSessionLength = &s
	}
	switch {
	case f.timeOfDay != "":
		t := recommend.TimeOfDay(f.timeOfDay)
		if !t.Valid() {
			return out, "", fmt.Errorf("unknown time of day %q", f.timeOfDay)
		}
		out.TimeOfDay = &t
	case f.localTime:
		t := recommend.TimeOfDayAt(now)
		out.TimeOfDay = &t
	}
	switch out.MatchMode {
	case "", recommend.MatchAny, recommend.MatchAll:
	default:
		return out, "", fmt.Errorf("unknown match mode %q", f.matchMode)
	}
	return out, notice, nil
}

func runRecommend(cmd *cobra.Command, opts *options, f *recommendFlags) error {
	now := time.Now()
	filters, notice, err := f.filters(now)
	if err != nil {
		return err
	}

	engine, _, err := opts.newEngine(cmd)
	if err != nil {
		return err
	}

	req := recommend.Request{Filters: filters, Limit: f.limit, Now: now}
	if cmd.Flags().Changed("persona-weight") {
		w := f.personaWeight
		req.PersonaWeight = &w
	}
	resp, err := engine.Recommend(ctxOrBackground(cmd), req)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		return printJSON(out, struct {
			*recommend.Response
			Notice string `json:"notice,omitempty"`
		}{resp, notice})
	}

	if notice != "" {
		fmt.Fprintf(out, "Note: %s\n", notice)
	}
	if resp.Fallback {
		fmt.Fprintln(out, "Nothing matched this context, here are some picks from your library.")
	}
	printRecommendations(out, resp.Recommendations)
	return nil
}

func printRecommendations(w io.Writer, recs []recommend.Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No recommendations.")
		return
	}
	for i, r := range recs {
		fmt.Fprintf(w, "%2d. %s (%.0f)\n", i+1, r.Game.Title, r.Score)
		for _, reason := range r.Reasons {
			fmt.Fprintf(w, "      %s\n", reason)
		}
	}
}
