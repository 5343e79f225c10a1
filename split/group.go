package split

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"

	"github.com/npillmayer/segment/styled"
	"github.com/npillmayer/tyse/core/dimen"
)

// GroupIndexAttribute is the attribute carrying a unit's line-group index.
const GroupIndexAttribute = "data-line-index"

// GroupIntoLines groups existing units (e.g. from WrapCharacters) into line
// wrappers by their vertical position: a single forward pass tracks the
// last unit's top coordinate, and a unit whose top differs by more than the
// tolerance starts a new group. Each wrapper is inserted immediately before
// the group's first unit, and the group's units are reparented into it.
// Units without a usable insertion point (already detached) end up in a
// standalone wrapper instead; units are never silently dropped.
func (s *Splitter) GroupIntoLines(units []styled.Node, cfg WrapConfig) []styled.Node {
	if len(units) == 0 {
		return []styled.Node{}
	}

	// geometry pass first: grouping reads Bounds of every unit before
	// any reparenting invalidates the layout
	var groups [][]styled.Node
	current := []styled.Node{units[0]}
	lastTop := units[0].Bounds().Y
	for _, unit := range units[1:] {
		top := unit.Bounds().Y
		if distance(top, lastTop) > s.tolerance {
			groups = append(groups, current)
			current = []styled.Node{unit}
		} else {
			current = append(current, unit)
		}
		lastTop = top
	}
	groups = append(groups, current)

	wrappers := make([]styled.Node, 0, len(groups))
	for gi, group := range groups {
		first := group[0]
		wrapper := first.CreateElement(cfg.containerTag())
		wrapper.SetAttr(GroupIndexAttribute, strconv.Itoa(gi))
		if cfg.ClassName != "" {
			wrapper.SetAttr("class", cfg.ClassName)
		}
		if parent := first.Parent(); parent != nil {
			if err := parent.InsertBefore(wrapper, first); err != nil {
				tracer().Infof("split: no insertion point for line group %d, keeping wrapper standalone: %v",
					gi, err)
			}
		} else {
			tracer().Infof("split: units of line group %d are detached, keeping wrapper standalone", gi)
		}
		for _, unit := range group {
			wrapper.AppendChild(unit)
			unit.SetAttr(GroupIndexAttribute, strconv.Itoa(gi))
		}
		wrappers = append(wrappers, wrapper)
	}
	return wrappers
}

func distance(a, b dimen.DU) dimen.DU {
	if a < b {
		return b - a
	}
	return a - b
}
