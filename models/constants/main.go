package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the explorer and it's
	associated services.
*/
type Column string
type ConstraintKind string
type SortDirection string
