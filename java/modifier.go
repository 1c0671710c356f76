package java

import (
	"fmt"
	"strings"
)

// Modifier is a Java declaration modifier. The declaration order of the
// constants is the order in which modifiers are emitted.
type Modifier int

const (
	Public Modifier = iota
	Protected
	Private
	Abstract
	Default
	Static
	Sealed
	NonSealed
	Final
	Transient
	Volatile
	Synchronized
	Native
	Strictfp

	modifierCount
)

var modifierNames = [...]string{
	Public:       "public",
	Protected:    "protected",
	Private:      "private",
	Abstract:     "abstract",
	Default:      "default",
	Static:       "static",
	Sealed:       "sealed",
	NonSealed:    "non-sealed",
	Final:        "final",
	Transient:    "transient",
	Volatile:     "volatile",
	Synchronized: "synchronized",
	Native:       "native",
	Strictfp:     "strictfp",
}

func (m Modifier) String() string {
	if m < 0 || m >= modifierCount {
		return fmt.Sprintf("Modifier(%d)", int(m))
	}
	return modifierNames[m]
}

// ParseModifier maps the source keyword of a modifier back to its value.
func ParseModifier(s string) (Modifier, error) {
	for m, name := range modifierNames {
		if name == strings.TrimSpace(s) {
			return Modifier(m), nil
		}
	}
	return 0, newError(ErrInvalidArgument, "unknown modifier: %s", s)
}

// modifierSet is a bit set of modifiers; iteration follows emission order.
type modifierSet uint32

func modifiersOf(mods ...Modifier) modifierSet {
	var s modifierSet
	for _, m := range mods {
		s = s.with(m)
	}
	return s
}

func (s modifierSet) has(m Modifier) bool { return s&(1<<uint(m)) != 0 }
func (s modifierSet) with(m Modifier) modifierSet { return s | 1<<uint(m) }
func (s modifierSet) without(m Modifier) modifierSet {
	return s &^ (1 << uint(m))
}
func (s modifierSet) union(o modifierSet) modifierSet { return s | o }
func (s modifierSet) hasAny(o modifierSet) bool { return s&o != 0 }
func (s modifierSet) hasAll(o modifierSet) bool { return s&o == o }

func (s modifierSet) list() []Modifier {
	var out []Modifier
	for m := Modifier(0); m < modifierCount; m++ {
		if s.has(m) {
			out = append(out, m)
		}
	}
	return out
}

func (s modifierSet) String() string {
	names := make([]string, 0, modifierCount)
	for _, m := range s.list() {
		names = append(names, m.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}

var visibilityModifiers = modifiersOf(Public, Protected, Private)

func checkModifier(m Modifier) {
	checkArgument(m >= 0 && m < modifierCount, "unknown modifier: %d", int(m))
}

// checkVisibility rejects sets that combine two visibility modifiers.
func checkVisibility(s modifierSet, owner string) {
	var seen []string
	for _, m := range (s & visibilityModifiers).list() {
		seen = append(seen, m.String())
	}
	checkArgument(len(seen) <= 1, "%s cannot be both %s", owner, strings.Join(seen, " and "))
}
