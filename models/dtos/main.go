package dtos

import (
	"fmdverse/api/models/constants"
	"fmdverse/api/models/filters"
	"fmdverse/api/models/metadata"
	"time"
)

type MetadataResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type MetadataRecordsResponseDTO struct {
	MetadataResponse
	Criteria  filters.Criteria  `json:"criteria"`
	Total     int               `json:"total"`
	Displayed int               `json:"displayed"`
	Count     int               `json:"count"`
	Results   []metadata.Record `json:"results"`
}

type MetadataCountResponseDTO struct {
	MetadataResponse
	Column   constants.Column `json:"column"`
	Criteria filters.Criteria `json:"criteria"`
	Results  interface{}      `json:"results"` // i.e.: []ValueCount or []YearCount
}

type AccessionSearchResponseDTO struct {
	MetadataResponse
	Term    string            `json:"term"`
	Count   int               `json:"count"`
	Results []metadata.Record `json:"results"`
}

type MetadataOptionsResponseDTO struct {
	MetadataResponse
	Options map[constants.Column][]string `json:"options"`
}

// -- --

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}
type GeneralError struct {
	Message string `json:"message"`
}

