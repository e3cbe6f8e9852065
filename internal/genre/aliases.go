// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package genre

// aliases maps store-specific slugs onto the slugs the mood taxonomy uses.
var aliases = map[string]string{
	"rpg":                     "role-playing",
	"role-playing-games":      "role-playing",
	"role-playing-game":       "role-playing",
	"jrpg":                    "role-playing",
	"action-rpg":              "role-playing",
	"sim":                     "simulation",
	"simulator":               "simulation",
	"simulations":             "simulation",
	"life-simulation":         "life-sim",
	"farming-sim":             "farming",
	"shoot-em-up":             "shooter",
	"fps":                     "shooter",
	"first-person-shooter":    "shooter",
	"third-person-shooter":    "shooter",
	"platform":                "platformer",
	"platformers":             "platformer",
	"puzzles":                 "puzzle",
	"puzzle-game":             "puzzle",
	"rts":                     "strategy",
	"real-time-strategy":      "strategy",
	"turn-based-strategy":     "strategy",
	"turn-based-tactics":      "tactics",
	"massively-multiplayer":   "mmo",
	"mmorpg":                  "mmo",
	"multi-player":            "multiplayer",
	"coop":                    "co-op",
	"cooperative":             "co-op",
	"rogue-like":              "roguelike",
	"rogue-lite":              "roguelike",
	"roguelite":               "roguelike",
	"open-world-adventure":    "open-world",
	"narrative":               "story-rich",
	"story":                   "story-rich",
	"interactive-fiction":     "visual-novel",
	"music":                   "rhythm",
	"hack-slash":              "hack-and-slash",
	"hack-n-slash":            "hack-and-slash",
	"battle-royal":            "battle-royale",
	"casual-games":            "casual",
	"indie-casual":            "casual",
	"sandbox-building":        "sandbox",
	"city-builder":            "building",
	"base-building":           "building",
	"craft":                   "crafting",
	"metroidvania-platformer": "metroidvania",
}
