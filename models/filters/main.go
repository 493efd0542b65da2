package filters

import (
	"fmdverse/api/models/constants"
	"fmdverse/api/models/constants/constraint"
	"strings"
)

// Constraint restricts the values a single column may hold.
// An OneOf constraint with no values behaves as Unconstrained.
type Constraint struct {
	Kind   constants.ConstraintKind `json:"kind"`
	Values []string                 `json:"values,omitempty"`
}

type Criteria map[constants.Column]Constraint

func Unconstrained() Constraint {
	return Constraint{Kind: constraint.Unconstrained}
}

func Equals(value string) Constraint {
	return Constraint{Kind: constraint.Equals, Values: []string{value}}
}

func OneOf(values ...string) Constraint {
	return Constraint{Kind: constraint.OneOf, Values: append([]string{}, values...)}
}

// IsUnconstrained reports whether the constraint excludes nothing.
func (c Constraint) IsUnconstrained() bool {
	switch c.Kind {
	case constraint.Equals:
		return false
	case constraint.OneOf:
		return len(c.Values) == 0
	default:
		return true
	}
}

// Matches reports whether a column value satisfies the constraint.
// Absent values never match a concrete selection.
func (c Constraint) Matches(value string, present bool) bool {
	if c.IsUnconstrained() {
		return true
	}
	if !present {
		return false
	}
	for _, v := range c.Values {
		if v == value {
			return true
		}
	}
	return false
}

// FromSingleSelection maps a single-value control to a constraint,
// with "All" or an empty selection meaning no constraint.
func FromSingleSelection(selection string) Constraint {
	if len(selection) == 0 || selection == constraint.All {
		return Unconstrained()
	}
	return Equals(selection)
}

// FromMultiSelection maps a multi-value control to a constraint,
// with an empty selection meaning no constraint.
func FromMultiSelection(selections []string) Constraint {
	if len(selections) == 0 {
		return Unconstrained()
	}
	return OneOf(selections...)
}

// FromQueryValues interprets raw query parameter values: each value may itself
// be comma separated. No values, empty values, or a lone "All" are unconstrained,
// one value is an equality and several a membership test.
func FromQueryValues(raw []string) Constraint {
	var values []string
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			v = strings.TrimSpace(v)
			if len(v) == 0 || v == constraint.All {
				continue
			}
			values = append(values, v)
		}
	}

	switch len(values) {
	case 0:
		return Unconstrained()
	case 1:
		return Equals(values[0])
	default:
		return OneOf(values...)
	}
}

func (c Criteria) IsUnconstrained() bool {
	for _, con := range c {
		if !con.IsUnconstrained() {
			return false
		}
	}
	return true
}
