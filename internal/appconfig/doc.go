// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package appconfig loads the runtime configuration document that tells API
// clients where the backend lives (apiBaseUrl) and how long a request may
// take (apiTimeout).
//
// The document is fetched once per [Loader], merged over the built-in
// defaults and cached. Concurrent callers issued before the first load
// finishes share that single load. A load failure never surfaces: the
// defaults are used and a warning is logged.
//
// Most code should go through the process-wide accessor:
//
//	appconfig.Init(appconfig.NewLoader(src, log))
//	cfg := appconfig.GetConfig(ctx)
//
// [Reset] drops the process-wide loader; tests use it to isolate state.
package appconfig
