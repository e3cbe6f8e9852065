// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

// Package recommend scores a game library against the player's mood, context
// and play history.
//
// # Pipeline
//
// The scoring core is a set of pure functions over a []Game snapshot:
//
//   - Tag derives a session length from hours played and recommended times
//     of day from the game's moods.
//   - Match is a stable filter on selected moods, session length and,
//     optionally, time of day.
//   - GetMoodRecommendation and FilterGamesByMood score games against the
//     mood taxonomy in package mood.
//   - BuildPersonaContext summarises play history into dominant moods,
//     preferred session length, preferred times and completion rate.
//   - Recommend blends mood alignment with persona affinity, attaches
//     reasons and ranks the result. Fallback provides the degraded list.
//
// None of these functions read the clock, touch globals or perform I/O.
// Every tunable lives in Config, so the same inputs always produce the
// same ranking.
//
// # Engine
//
// Engine wraps the core for the server: it loads the library through a
// LibraryProvider, applies the fallback policy, runs registered rerankers
// and caches responses per library version.
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	engine.SetLibrary(store)
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Filters: recommend.Filters{SelectedMoods: []mood.ID{mood.Chill}},
//	    Limit:   10,
//	})
package recommend
