// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AnalysisRequest is the payload of POST /api/analyze.
//
// CIDRs is the legacy uncategorized list. Entries that also appear in
// VPCCIDRs or SubnetCIDRs are analyzed only once, with their category.
type AnalysisRequest struct {
	CIDRs       []string `json:"cidrs"`
	VPCCIDRs    []string `json:"vpc_cidrs,omitempty"`
	SubnetCIDRs []string `json:"subnet_cidrs,omitempty"`
}

// Len returns the number of CIDR strings carried by the request across all lists.
func (r AnalysisRequest) Len() int {
	return len(r.CIDRs) + len(r.VPCCIDRs) + len(r.SubnetCIDRs)
}

// ValidationRequest is the payload of POST /api/validate.
type ValidationRequest struct {
	CIDR string `json:"cidr"`
}
