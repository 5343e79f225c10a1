package styled

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping the raw
// string value into type Property is to provide a set of convenient
// helpers for the style-capture pipeline.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsDefault checks wether a property carries one of the CSS non-values
// which the capture pipeline treats as "nothing to preserve".
func (p Property) IsDefault() bool {
	switch p {
	case "", "inherit", "initial", "unset", "auto", "normal", "none":
		return true
	}
	return false
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- CSS property groups ---------------------------------------------------

// PropertyGroup is a collection of properties sharing a common topic.
// The segmentation engine only ever deals with text-level styling, so the
// group set is limited to color, font and text properties (plus a catch-all
// group for extension properties like design tokens).
//
// A group may link to the corresponding group of an enclosing node, which
// is how inherited properties cascade without copying.
type PropertyGroup struct {
	name      string
	Parent    *PropertyGroup
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction), property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for k, v := range pg.propsDict {
		s += fmt.Sprintf("  %s = %s\n", k, v)
	}
	return s
}

// Properties returns all properties of a group.
func (pg *PropertyGroup) Properties() []KeyValue {
	i := 0
	r := make([]KeyValue, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r[i] = KeyValue{k, v}
		i++
	}
	return r
}

// IsSet is a predicate wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg == nil || pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg == nil || pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case, except for
// properties with case-carrying values (font-family, text-shadow).
func (pg *PropertyGroup) Set(key string, p Property) {
	if !carriesCase(key) {
		p = Property(strings.ToLower(string(p)))
	}
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Cascade finds the nearest enclosing group containing the given
// property-key, starting with the receiver. Returns nil if no enclosing
// group carries the key.
func (pg *PropertyGroup) Cascade(key string) *PropertyGroup {
	it := pg
	for it != nil && !it.IsSet(key) {
		it = it.Parent
	}
	return it
}

// Font families and shadow colors may legally carry upper-case letters
// ("Helvetica Neue"); lower-casing them would damage the value.
func carriesCase(key string) bool {
	return key == "font-family" || key == "text-shadow"
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGColor = "Color"
	PGFont  = "Font"
	PGText  = "Text"
	PGX     = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"color":            PGColor,
	"background-color": PGColor,
	"font-family":      PGFont,
	"font-size":        PGFont,
	"font-weight":      PGFont,
	"font-style":       PGFont,
	"font-variant":     PGFont,
	"line-height":      PGText,
	"direction":        PGText,
	"white-space":      PGText,
	"word-spacing":     PGText,
	"letter-spacing":   PGText,
	"text-decoration":  PGText,
	"text-transform":   PGText,
	"text-shadow":      PGText,
	"vertical-align":   PGText,
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property. Example:
//
//    GroupNameFromPropertyKey("letter-spacing") => "Text"
//
// Unknown style property keys (including custom properties) will return
// a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// IsInherited returns wether the standard behaviour for a property is to be
// inherited from the enclosing node, i.e., a call to retrieve its value
// will cascade.
func IsInherited(key string) bool {
	switch key {
	case "color", "direction", "white-space", "line-height":
		return true
	case "font-family", "font-size", "font-weight", "font-style", "font-variant":
		return true
	case "letter-spacing", "word-spacing", "text-transform", "text-shadow":
		return true
	}
	// text-decoration, background-color and vertical-align do not inherit
	return strings.HasPrefix(key, "--") // custom properties do
}

// --- Property map ----------------------------------------------------------

// PropertyMap holds CSS properties for one node of a styled tree. nil is a
// legal (empty) property map. Groups of a property map may link to the
// groups of an enclosing node's map, making inherited lookups cheap.
type PropertyMap struct {
	m map[string]*PropertyGroup
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, v := range pmap.m {
		s += v.String()
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map. For inherited properties
// the lookup cascades along the group parent links.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	if p, ok := group.Get(key); ok {
		return p, true
	}
	if !IsInherited(key) {
		return NullStyle, false
	}
	if group = group.Cascade(key); group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Add adds a property to this property map, e.g.,
//
//    pmap.Add("letter-spacing", "0.2em")
//
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	groupname := GroupNameFromPropertyKey(key)
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// LinkToParent links every group of pmap to the corresponding group of an
// enclosing node's property map, creating empty local groups as necessary.
// This establishes the inheritance chain used by Property.
func (pmap *PropertyMap) LinkToParent(parent *PropertyMap) {
	if pmap == nil || parent == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	for _, groupname := range []string{PGColor, PGFont, PGText, PGX} {
		pg := parent.Group(groupname)
		if pg == nil {
			continue
		}
		group, found := pmap.m[groupname]
		if !found {
			group = NewPropertyGroup(groupname)
			pmap.m[groupname] = group
		}
		group.Parent = pg
	}
}

// Snapshot flattens a property map into a plain key→value dictionary,
// resolving inherited values. This is the form style facts carry around.
func (pmap *PropertyMap) Snapshot() map[string]string {
	snap := make(map[string]string)
	if pmap == nil {
		return snap
	}
	for _, group := range pmap.m {
		for g := group; g != nil; g = g.Parent {
			for _, kv := range g.Properties() {
				if _, ok := snap[kv.Key]; ok {
					continue // nearer value wins
				}
				if g != group && !IsInherited(kv.Key) {
					continue
				}
				snap[kv.Key] = kv.Value.String()
			}
		}
	}
	return snap
}
