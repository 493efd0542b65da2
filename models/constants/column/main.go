package column

import (
	"fmdverse/api/models/constants"
	"strings"
)

const (
	Unknown constants.Column = ""

	Accession constants.Column = "accession"
	Country   constants.Column = "country"
	Serotype  constants.Column = "serotype"
	Lineage   constants.Column = "lineage"
	Year      constants.Column = "year"
)

// every column a source is expected to carry
var Required = []constants.Column{Accession, Country, Serotype}

// columns that can be constrained by a filter
var Filterable = []constants.Column{Country, Serotype, Lineage, Year}

// all known columns, in table order
var All = []constants.Column{Accession, Country, Serotype, Lineage, Year}

func CastToColumn(text string) constants.Column {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "accession":
		return Accession
	case "country":
		return Country
	case "serotype":
		return Serotype
	case "lineage":
		return Lineage
	case "year":
		return Year
	default:
		return Unknown
	}
}

func IsKnownColumn(text string) bool {
	return CastToColumn(text) != Unknown
}
