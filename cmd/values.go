package main

import (
	"strings"
)

// walker over the polymorphic descriptive value shapes.  Two selection
// policies cover everything the indexers need: pick the preferred member of
// any parallel set (primary, else first), or expand parallel sets into all of
// their members in declared order.

// primaryOrFirst returns the member of vals carrying status "primary", else
// the first member.  Returns nil for an empty set.
func primaryOrFirst(vals []descValue) *descValue {
	for i := range vals {
		if vals[i].Status == statusPrimary {
			return &vals[i]
		}
	}

	if len(vals) > 0 {
		return &vals[0]
	}

	return nil
}

// resolveValue descends through parallelValue wrappers (primary-else-first at
// each level) and returns the selected node.  The result may still carry a
// structuredValue or groupedValue; those are facet-specific to unpack.
func resolveValue(v *descValue) *descValue {
	if v == nil {
		return nil
	}

	if len(v.ParallelValue) > 0 {
		return resolveValue(primaryOrFirst(v.ParallelValue))
	}

	return v
}

// allValues expands parallelValue wrappers into all of their members,
// preserving declared order.  Non-parallel nodes come back as themselves.
func allValues(v *descValue) []*descValue {
	if v == nil {
		return nil
	}

	if len(v.ParallelValue) == 0 {
		return []*descValue{v}
	}

	var out []*descValue

	for i := range v.ParallelValue {
		out = append(out, allValues(&v.ParallelValue[i])...)
	}

	return out
}

// leafValues returns every nonempty leaf string under v in declared order,
// recursing through parallel, structured and grouped wrappers alike.  This is
// the full-text expansion: nothing is selected away.
func leafValues(v *descValue) []string {
	if v == nil {
		return nil
	}

	var out []string

	if v.Value != "" {
		out = append(out, v.Value)
	}

	for i := range v.ParallelValue {
		out = append(out, leafValues(&v.ParallelValue[i])...)
	}

	for i := range v.StructuredValue {
		out = append(out, leafValues(&v.StructuredValue[i])...)
	}

	for i := range v.GroupedValue {
		out = append(out, leafValues(&v.GroupedValue[i])...)
	}

	return out
}

// structuredParts returns the members of v's structuredValue whose type is in
// types, preserving declared order.  An empty types list matches everything.
func structuredParts(v *descValue, types ...string) []*descValue {
	if v == nil {
		return nil
	}

	var out []*descValue

	for i := range v.StructuredValue {
		part := &v.StructuredValue[i]

		if len(types) == 0 || sliceContainsString(types, part.Type, true) {
			out = append(out, part)
		}
	}

	return out
}

// groupedPart returns the member of v's groupedValue with the given type.
// Selection fields take just this part; full-text fields take every part via
// leafValues.
func groupedPart(v *descValue, partType string) *descValue {
	if v == nil {
		return nil
	}

	for i := range v.GroupedValue {
		if strings.EqualFold(v.GroupedValue[i].Type, partType) {
			return &v.GroupedValue[i]
		}
	}

	return nil
}

// flatValue reduces a resolved node to a single string: the direct value if
// present, else its structured parts in declared order joined by sep, else its
// grouped "name" part (or first grouped member).
func flatValue(v *descValue, sep string) string {
	v = resolveValue(v)

	if v == nil {
		return ""
	}

	if v.Value != "" {
		return v.Value
	}

	if len(v.StructuredValue) > 0 {
		var parts []string

		for i := range v.StructuredValue {
			if s := flatValue(&v.StructuredValue[i], sep); s != "" {
				parts = append(parts, s)
			}
		}

		return strings.Join(parts, sep)
	}

	if len(v.GroupedValue) > 0 {
		if name := groupedPart(v, "name"); name != nil {
			return flatValue(name, sep)
		}

		return flatValue(&v.GroupedValue[0], sep)
	}

	return ""
}

// noteValue returns the value of the first note of the given type, or "".
func noteValue(notes []descValue, noteType string) string {
	for i := range notes {
		if strings.EqualFold(notes[i].Type, noteType) {
			return notes[i].Value
		}
	}

	return ""
}
