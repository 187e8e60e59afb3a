// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Range categories assigned by the analysis service.
const (
	CategoryVPC    = "vpc"
	CategorySubnet = "subnet"
)

// Overlap kinds reported by the analysis service.
const (
	OverlapPartial  = "partial"
	OverlapComplete = "complete"
)

// CIDRRange is a parsed CIDR block together with the numbers derived from it.
type CIDRRange struct {
	// Original is the input exactly as the caller sent it.
	Original string `json:"original"`

	// Network is the network address after the mask has been applied.
	Network string `json:"network"`

	// Mask is the dotted-quad form of the prefix length.
	Mask string `json:"mask"`

	// Broadcast is the last address of the block.
	Broadcast string `json:"broadcast"`

	// TotalIPs is the number of addresses covered by the block.
	TotalIPs int `json:"total_ips"`

	// UsableIPs is TotalIPs minus network and broadcast, zero for /31 and /32.
	UsableIPs int `json:"usable_ips"`

	Valid bool `json:"valid"`

	// Category is "vpc" or "subnet" when the range came from a categorized list.
	Category string `json:"category,omitempty"`

	ErrorMsg string `json:"error_msg,omitempty"`
}

// Gap is an unallocated address span between two merged CIDR blocks.
type Gap struct {
	StartIP       string `json:"start_ip"`
	EndIP         string `json:"end_ip"`
	Size          int    `json:"size"`
	SuggestedCIDR string `json:"suggested_cidr"`
}

// Overlap describes two CIDR blocks sharing at least one address.
type Overlap struct {
	CIDR1        string `json:"cidr1"`
	CIDR2        string `json:"cidr2"`
	Intersection string `json:"intersection"`

	// Type is "complete" when both blocks share the network address and
	// "partial" otherwise.
	Type string `json:"type"`
}

// Summary aggregates the figures of a single analysis run.
type Summary struct {
	TotalIPs     int `json:"total_ips"`
	AllocatedIPs int `json:"allocated_ips"`
	AvailableIPs int `json:"available_ips"`
	GapCount     int `json:"gap_count"`
	OverlapCount int `json:"overlap_count"`
}
