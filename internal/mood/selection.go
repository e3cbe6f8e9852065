// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

package mood

// Compatible reports whether a and b may be selected together.
// A mood is never compatible with itself.
func Compatible(a, b ID) bool {
	if a == b {
		return false
	}
	ia, okA := Lookup(a)
	ib, okB := Lookup(b)
	if !okA || !okB {
		return false
	}
	return !Contains(ia.Incompatible, b) && !Contains(ib.Incompatible, a)
}

// Selection is a primary mood with an optional secondary.
type Selection struct {
	Primary   ID  `json:"primary"`
	Secondary *ID `json:"secondary"`
}

// Moods flattens the selection into primary-first order.
func (s Selection) Moods() []ID {
	if s.Primary == "" {
		return nil
	}
	if s.Secondary == nil {
		return []ID{s.Primary}
	}
	return []ID{s.Primary, *s.Secondary}
}

// ResolveSelection applies the pairing rule: an incompatible or unknown
// secondary is reset to none. The returned bool reports whether a requested
// secondary was dropped.
func ResolveSelection(primary ID, secondary *ID) (Selection, bool) {
	sel := Selection{Primary: primary}
	if secondary == nil || *secondary == "" {
		return sel, false
	}
	if !Compatible(primary, *secondary) {
		return sel, true
	}
	s := *secondary
	sel.Secondary = &s
	return sel, false
}
