// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package adag implements the API gateway operations used by the estimate
workflows: creating an estimate, linking it to a vehicle, looking up a
vehicle by car ID and logging out.

Each operation is a Descriptor executed through an adagx.Doer, normally
an *adagx.Client configured with the environment's base URL and retry
policy:

	api := adag.API{Doer: client}
	created, err := api.CreateEstimate(ctx, token)
	if err != nil {
		...
	}
	_, err = api.LinkEstimateToVehicle(ctx, token, created.EstimateID, adag.DefaultVehicleID)

API holds no per-call state. All inputs, the access token included, are
passed to each call.
*/
package adag
