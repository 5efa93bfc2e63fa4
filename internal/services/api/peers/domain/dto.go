// Package domain holds DTOs for peers http and service contracts
package domain

import "routedata/internal/core/query"

// SearchInput filters route-collector peer statistics; every field is
// optional
type SearchInput struct {
	// filter results by peer IP address exact match
	IP string `form:"ip" validate:"omitempty,ip"`

	// filter results by peer ASN exact match
	ASN *uint32 `form:"asn" validate:"omitempty"`

	// filter results by date, YYYY-MM-DD; only applies when latest=false
	Date string `form:"date" validate:"omitempty,max=40"`

	// filter by collector ID, e.g. rrc00
	Collector string `form:"collector" validate:"omitempty,max=100"`

	// filter by minimum number of IPv4 prefixes received
	MinV4 *int64 `form:"min_v4" validate:"omitempty,min=0"`

	// filter by minimum number of IPv6 prefixes received
	MinV6 *int64 `form:"min_v6" validate:"omitempty,min=0"`

	// filter by minimum number of connected ASes
	MinConnected *int64 `form:"min_connected" validate:"omitempty,min=0"`

	// show the latest snapshot, default true
	Latest *bool `form:"latest" validate:"omitempty"`

	query.Page
}

// PeerStats is one collector peer statistics record
type PeerStats struct {
	// date of the snapshot
	Date string `json:"date" example:"2022-01-01"`

	// route collector ID
	Collector string `json:"collector" example:"rrc00"`

	// route collector peer IP address
	IP string `json:"ip" example:"192.0.2.1"`

	// peer's AS number
	ASN int64 `json:"asn" example:"13335"`

	// number of unique IPv4 prefixes this peer announces
	NumV4Pfxs int64 `json:"num_v4_pfxs" example:"900000"`

	// number of unique IPv6 prefixes this peer announces
	NumV6Pfxs int64 `json:"num_v6_pfxs" example:"150000"`

	// number of connected ASes
	NumConnectedASNs int64 `json:"num_connected_asns" example:"120"`
}

// Response is the /peers page envelope
type Response = query.List[PeerStats]
