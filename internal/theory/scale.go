package theory

import (
	"errors"
	"fmt"
	"strings"
)

// ScaleType identifies a built-in scale or mode
type ScaleType string

const (
	Major         ScaleType = "major"
	NaturalMinor  ScaleType = "naturalMinor"
	HarmonicMinor ScaleType = "harmonicMinor"
	MelodicMinor  ScaleType = "melodicMinor"
	Chromatic     ScaleType = "chromatic"
	Dorian        ScaleType = "dorian"
	Phrygian      ScaleType = "phrygian"
	Lydian        ScaleType = "lydian"
	Mixolydian    ScaleType = "mixolydian"
	Locrian       ScaleType = "locrian"
)

// Family groups definitions the way the scale and mode pages do
type Family string

const (
	FamilyScale Family = "scale"
	FamilyMode  Family = "mode"
)

// Pattern is an ordered list of semitone steps relative to the root
type Pattern []int

// ErrInvalidPattern is returned for empty patterns, non-positive steps, or
// patterns that do not span exactly one octave
var ErrInvalidPattern = errors.New("invalid interval pattern")

// Validate checks that the pattern is a closed walk around the octave
func (p Pattern) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidPattern)
	}
	sum := 0
	for i, step := range p {
		if step <= 0 {
			return fmt.Errorf("%w: step %d is %d, must be positive", ErrInvalidPattern, i, step)
		}
		// bounded before adding so the running sum cannot overflow
		if step > NumPitchClasses-sum {
			return fmt.Errorf("%w: steps exceed %d semitones at step %d", ErrInvalidPattern, NumPitchClasses, i)
		}
		sum += step
	}
	if sum != NumPitchClasses {
		return fmt.Errorf("%w: steps sum to %d, must sum to %d", ErrInvalidPattern, sum, NumPitchClasses)
	}
	return nil
}

// Definition associates a scale type with its interval pattern
type Definition struct {
	Type    ScaleType
	Name    string // used in the display string, e.g. "natural minor"
	Family  Family
	Pattern Pattern
}

// Built-in definitions in presentation order. Never mutated.
var definitions = []Definition{
	{Major, "major", FamilyScale, Pattern{2, 2, 1, 2, 2, 2, 1}},
	{NaturalMinor, "natural minor", FamilyScale, Pattern{2, 1, 2, 2, 1, 2, 2}},
	{HarmonicMinor, "harmonic minor", FamilyScale, Pattern{2, 1, 2, 2, 1, 3, 1}},
	{MelodicMinor, "melodic minor", FamilyScale, Pattern{2, 1, 2, 2, 2, 2, 1}}, // ascending form
	{Chromatic, "chromatic", FamilyScale, Pattern{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	{Dorian, "dorian", FamilyMode, Pattern{2, 1, 2, 2, 2, 1, 2}},
	{Phrygian, "phrygian", FamilyMode, Pattern{1, 2, 2, 2, 1, 2, 2}},
	{Lydian, "lydian", FamilyMode, Pattern{2, 2, 2, 1, 2, 2, 1}},
	{Mixolydian, "mixolydian", FamilyMode, Pattern{2, 2, 1, 2, 2, 1, 2}},
	{Locrian, "locrian", FamilyMode, Pattern{1, 2, 2, 1, 2, 2, 2}},
}

// selector key (lowercase, separators removed) -> index into definitions
var selectors = buildSelectors()

func buildSelectors() map[string]int {
	m := make(map[string]int, len(definitions)+3)
	for i, def := range definitions {
		m[selectorKey(string(def.Type))] = i
	}
	aliases := map[string]ScaleType{
		"ionian":  Major,
		"aeolian": NaturalMinor,
		"minor":   NaturalMinor,
	}
	for alias, target := range aliases {
		m[alias] = m[selectorKey(string(target))]
	}
	return m
}

func selectorKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// UnknownScaleTypeError is returned when a selector names no known scale
type UnknownScaleTypeError struct {
	Input string
}

func (e *UnknownScaleTypeError) Error() string {
	return fmt.Sprintf("unknown scale type: %q", e.Input)
}

// Definitions returns the built-in definitions in presentation order
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	for i, def := range definitions {
		out[i] = def.clone()
	}
	return out
}

// LookupScale resolves a selector such as "dorian", "naturalMinor" or
// "natural minor" to its definition
func LookupScale(selector string) (Definition, error) {
	idx, ok := selectors[selectorKey(selector)]
	if !ok {
		return Definition{}, &UnknownScaleTypeError{Input: selector}
	}
	return definitions[idx].clone(), nil
}

func (d Definition) clone() Definition {
	d.Pattern = append(Pattern(nil), d.Pattern...)
	return d
}

// Scale is a generated scale: the root spelling, the definition it was
// built from, and its notes in order starting at the root
type Scale struct {
	Root       string
	Definition Definition
	Spelling   Spelling
	Classes    []PitchClass
	Notes      []string
}

// Generate walks the pattern from the root and returns the pitch names
// visited, root first. The closing step back to the root is not recorded,
// so the result has len(pattern) elements.
func Generate(root string, pattern Pattern) ([]string, error) {
	class, spelling, err := ParsePitch(root)
	if err != nil {
		return nil, err
	}
	classes, err := walk(class, pattern)
	if err != nil {
		return nil, err
	}
	return names(classes, spelling), nil
}

// BuildScale resolves the selector and generates the scale from root
func BuildScale(root, selector string) (Scale, error) {
	def, err := LookupScale(selector)
	if err != nil {
		return Scale{}, err
	}
	return BuildFromDefinition(root, def)
}

// BuildFromDefinition generates a scale from an arbitrary definition,
// including ones not in the built-in table
func BuildFromDefinition(root string, def Definition) (Scale, error) {
	class, spelling, err := ParsePitch(root)
	if err != nil {
		return Scale{}, err
	}
	classes, err := walk(class, def.Pattern)
	if err != nil {
		return Scale{}, err
	}
	notes := names(classes, spelling)
	return Scale{
		Root:       notes[0],
		Definition: def.clone(),
		Spelling:   spelling,
		Classes:    classes,
		Notes:      notes,
	}, nil
}

// Display renders the scale as "<Root> <Name> is: <n1>, ..., <nk>"
func (s Scale) Display() string {
	return FormatDisplay(s.Root, s.Definition.Name, s.Notes)
}

func walk(root PitchClass, pattern Pattern) ([]PitchClass, error) {
	if err := pattern.Validate(); err != nil {
		return nil, err
	}
	classes := make([]PitchClass, 0, len(pattern))
	current := root
	for _, step := range pattern {
		classes = append(classes, current)
		current = current.Transpose(step)
	}
	return classes, nil
}

func names(classes []PitchClass, s Spelling) []string {
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = c.Name(s)
	}
	return out
}
