// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config resolves the target environment, retry and timeout
// tunables, rate limits and user credentials of an adagx client.
//
// Sources are layered, lowest priority first:
//
//   - built-in defaults;
//   - an optional YAML file;
//   - the legacy environment variables of the estimate test suite
//     (TEST_ENV, USER_ONE_USERNAME, ADRP_PASSWORD and the like);
//   - ADAGX_ environment variables, where underscores separate key
//     levels: ADAGX_RETRY_MAXRETRIES sets retry.maxretries.
//
// Durations are written as Go durations ("250ms", "1s") and status code
// lists may be given as comma-separated strings ("502,503").
package config
