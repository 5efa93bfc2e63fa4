// Package domain holds DTOs for broker http and service contracts
package domain

import "routedata/internal/core/query"

// SearchInput filters the MRT file listing; every field is optional
type SearchInput struct {
	// start of the time window, unix timestamp or date-time string
	TsStart string `form:"ts_start" validate:"omitempty,max=40"`

	// end of the time window, unix timestamp or date-time string
	TsEnd string `form:"ts_end" validate:"omitempty,max=40"`

	// duration before ts_end or after ts_start, e.g. "2h30m" or "1d"
	query.DurationSpec

	// filter by route collector project, i.e. route-views or riperis
	Project string `form:"project" validate:"omitempty,max=40"`

	// filter by collector IDs, e.g. rrc00,route-views2; comma separated
	Collectors string `form:"collectors" validate:"omitempty,max=500"`

	// filter by file type, update or rib
	DataType string `form:"data_type" validate:"omitempty,max=40"`

	query.Page
}

// Entry is one route-collector file listing
type Entry struct {
	// file start timestamp
	TsStart string `json:"ts_start" example:"2022-01-01T00:00:00"`

	// file end timestamp
	TsEnd string `json:"ts_end" example:"2022-01-01T00:05:00"`

	// collector project, route-views or riperis
	Project string `json:"project" example:"riperis"`

	// route collector ID
	Collector string `json:"collector" example:"rrc00"`

	// file type, update or rib
	DataType string `json:"data_type" example:"update"`

	// file URL
	URL string `json:"url" example:"https://data.ris.ripe.net/rrc00/2022.01/updates.20220101.0000.gz"`

	// rough file size in bytes
	Size uint32 `json:"size" example:"1073741"`
}

// Response is the /broker page envelope
type Response = query.List[Entry]
