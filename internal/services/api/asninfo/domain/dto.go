// Package domain holds DTOs for asninfo http and service contracts
package domain

import "routedata/internal/core/query"

// SearchInput filters the AS registry view; every field is optional and
// absence means no constraint
type SearchInput struct {
	// filter results by ASN exact match
	ASN *uint32 `form:"asn" validate:"omitempty"`

	// filter results with ASN in the given ','-separated list
	ASNs string `form:"asns" validate:"omitempty"`

	// filter results by AS name or organization name
	Name string `form:"name" validate:"omitempty,max=200"`

	// filter by two-letter country code or country name
	Country string `form:"country" validate:"omitempty,max=100"`

	query.Page
}

// AsnInfo is one AS registry record
type AsnInfo struct {
	// Autonomous system (AS) number
	ASN uint32 `json:"asn" example:"13335"`

	// AS name
	AsName *string `json:"as_name" example:"CLOUDFLARENET"`

	// Organization ID based on CAIDA's as2org dataset
	OrgID *string `json:"org_id" example:"CLOUD14-ARIN"`

	// Organization name based on CAIDA's as2org dataset
	OrgName *string `json:"org_name" example:"Cloudflare, Inc."`

	// Registration country in two-letter code format
	CountryCode *string `json:"country_code" example:"US"`

	// Registration country full name
	CountryName *string `json:"country_name" example:"United States"`

	// RIR source
	DataSource *string `json:"data_source" example:"ARIN"`
}

// Response is the /asninfo page envelope
type Response = query.List[AsnInfo]
