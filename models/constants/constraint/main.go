package constraint

import "fmdverse/api/models/constants"

const (
	Unconstrained constants.ConstraintKind = "unconstrained"
	Equals        constants.ConstraintKind = "equals"
	OneOf         constants.ConstraintKind = "oneOf"
)

// sentinel selection meaning "no constraint" in single-value controls
const All = "All"
