// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cidr implements the IPv4 address arithmetic behind an analysis:
// parsing CIDR blocks, finding the unallocated gaps between them, detecting
// overlapping blocks and summarising the result.
//
// All functions are pure. Ranges that are not valid, or whose Original no
// longer parses, are skipped by FindGaps and FindOverlaps.
package cidr
