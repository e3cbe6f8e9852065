// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package mood

// Info describes one mood in the taxonomy.
type Info struct {
	ID          ID       `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Energy      Energy   `json:"energy"`
	Genres      []string `json:"genres"`
	Keywords    []string `json:"keywords"`

	// Incompatible lists moods that cannot be paired with this one.
	Incompatible []ID `json:"incompatible,omitempty"`
}

var taxonomy = []Info{
	{
		ID: Chill, Label: "Chill", Energy: EnergyLow,
		Description:  "Low-pressure games to unwind with",
		Genres:       []string{"puzzle", "simulation", "casual", "farming", "life-sim"},
		Keywords:     []string{"relax", "calm", "zen", "peaceful", "garden"},
		Incompatible: []ID{Competitive},
	},
	{
		ID: Cozy, Label: "Cozy", Energy: EnergyLow,
		Description: "Warm, comforting worlds with gentle goals",
		Genres:      []string{"farming", "life-sim", "simulation", "casual"},
		Keywords:    []string{"cozy", "farm", "village", "cat", "cafe", "tea"},
	},
	{
		ID: Casual, Label: "Casual", Energy: EnergyLow,
		Description: "Pick-up-and-play sessions",
		Genres:      []string{"casual", "puzzle", "party", "arcade", "card"},
		Keywords:    []string{"quick", "match", "cards", "solitaire", "mini"},
	},
	{
		ID: Energetic, Label: "Energetic", Energy: EnergyHigh,
		Description: "Fast, reflex-heavy action",
		Genres:      []string{"action", "platformer", "rhythm", "racing", "hack-and-slash"},
		Keywords:    []string{"rush", "speed", "beat", "turbo", "fast"},
	},
	{
		ID: Competitive, Label: "Competitive", Energy: EnergyHigh,
		Description:  "Ranked play and head-to-head matches",
		Genres:       []string{"shooter", "fighting", "sports", "moba", "battle-royale"},
		Keywords:     []string{"ranked", "versus", "arena", "league", "tournament"},
		Incompatible: []ID{Chill},
	},
	{
		ID: Focused, Label: "Focused", Energy: EnergyMedium,
		Description: "Deep thinking, planning and optimisation",
		Genres:      []string{"strategy", "tactics", "puzzle", "roguelike", "simulation"},
		Keywords:    []string{"tactics", "chess", "factory", "manage", "command"},
	},
	{
		ID: Social, Label: "Social", Energy: EnergyMedium,
		Description: "Games best shared with friends",
		Genres:      []string{"party", "mmo", "co-op", "multiplayer"},
		Keywords:    []string{"party", "together", "friends", "online", "crew"},
	},
	{
		ID: Creative, Label: "Creative", Energy: EnergyMedium,
		Description: "Build, craft and express yourself",
		Genres:      []string{"sandbox", "building", "crafting", "simulation"},
		Keywords:    []string{"build", "craft", "create", "design", "maker"},
	},
	{
		ID: Story, Label: "Story-driven", Energy: EnergyLow,
		Description: "Narrative-first experiences",
		Genres:      []string{"adventure", "role-playing", "visual-novel", "story-rich"},
		Keywords:    []string{"story", "tale", "chronicles", "legend", "saga"},
	},
	{
		ID: Exploratory, Label: "Exploration", Energy: EnergyMedium,
		Description: "Open worlds and hidden corners to discover",
		Genres:      []string{"open-world", "adventure", "survival", "metroidvania"},
		Keywords:    []string{"world", "explore", "journey", "island", "lost"},
	},
}

// index maps each id to its position in taxonomy.
var index = func() map[ID]int {
	m := make(map[ID]int, len(taxonomy))
	for i, info := range taxonomy {
		m[info.ID] = i
	}
	return m
}()

// All returns the taxonomy in canonical order.
func All() []Info {
	out := make([]Info, len(taxonomy))
	for i, info := range taxonomy {
		out[i] = info.clone()
	}
	return out
}

// IDs returns every mood id in canonical order.
func IDs() []ID {
	out := make([]ID, len(taxonomy))
	for i, info := range taxonomy {
		out[i] = info.ID
	}
	return out
}

// Lookup returns the taxonomy entry for id.
func Lookup(id ID) (Info, bool) {
	i, ok := index[id]
	if !ok {
		return Info{}, false
	}
	return taxonomy[i].clone(), true
}

func (i Info) clone() Info {
	i.Genres = append([]string(nil), i.Genres...)
	i.Keywords = append([]string(nil), i.Keywords...)
	i.Incompatible = append([]ID(nil), i.Incompatible...)
	return i
}
