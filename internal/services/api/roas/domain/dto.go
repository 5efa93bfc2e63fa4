// Package domain holds DTOs for roas http and service contracts
package domain

import "routedata/internal/core/query"

// SearchInput filters ROA history records; every field is optional
type SearchInput struct {
	// filter results by origin ASN exact match
	ASN *uint32 `form:"asn" validate:"omitempty"`

	// IP prefix to search ROAs for, e.g. 1.1.1.0/24; only valid prefix
	// matches are returned
	Prefix string `form:"prefix" validate:"omitempty,cidr"`

	// filter results by trust anchor: apnic, afrinic, lacnic, ripencc, arin
	Tal string `form:"tal" validate:"omitempty,max=40"`

	// limit ROAs to ones valid on this date, format YYYY-MM-DD
	Date string `form:"date" validate:"omitempty,max=40"`

	// filter results by whether the ROA is still current
	Current *bool `form:"current" validate:"omitempty"`

	// filter results by the max_len value
	MaxLen *uint32 `form:"max_len" validate:"omitempty"`

	query.Page
}

// Entry is one normalized ROA history record
type Entry struct {
	// Autonomous system (AS) number
	ASN uint32 `json:"asn" example:"13335"`

	// maximum prefix length for this ROA
	MaxLen uint32 `json:"max_len" example:"24"`

	// prefix
	Prefix string `json:"prefix" example:"1.1.1.0/24"`

	// trust anchor locator
	Tal string `json:"tal" example:"apnic"`

	// the ROA was still valid at least on the previous day UTC
	Current bool `json:"current" example:"true"`

	// ROA validity date ranges, closed calendar-day intervals
	DateRanges [][2]string `json:"date_ranges"`
}

// Response is the /roas page envelope; unlike the other endpoints it
// carries no count field
type Response struct {
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	Data     []Entry `json:"data"`
}
