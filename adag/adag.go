// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adag

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gogama/adagx"
	"github.com/gogama/adagx/decode"
	"github.com/gogama/adagx/endpoint"
	"github.com/gogama/adagx/estimate"
)

const (
	// TestCarID is the car ID of the vehicle used by the smoke tests.
	TestCarID = "61449"
	// DefaultVehicleID is the vehicle an estimate is linked to when the
	// caller has no particular vehicle in mind.
	DefaultVehicleID = "12345"
)

// Paths of the gateway endpoints, relative to the environment's base
// URL.
const (
	EstimatesPath = "/ADAG/repair-planner/estimates"
	EstimatePath  = "/ADAG/repair-planner/estimates/{estimateId}"
	CarPath       = "/ADAG/car-lookup/v3/carids/{carId}"
	LogoutPath    = "/ADAG/sso/logout"
)

// CreatedEstimate is the result of CreateEstimate.
type CreatedEstimate struct {
	StatusCode     int
	EstimateID     string
	EstimateNumber string
}

// Status is the result of the operations whose response body is not
// used.
type Status struct {
	StatusCode int
}

// Vehicle is the result of VehicleByID.
type Vehicle struct {
	StatusCode int
	CarID      string
	// Body is the decompressed JSON response.
	Body []byte
}

var (
	createEstimate = endpoint.Descriptor[CreatedEstimate]{
		Name:   "create estimate",
		Method: http.MethodPost,
		Path:   EstimatesPath,
		Header: accept("application/hal+json"),
		Expect: decode.JSON(
			decode.Field{Path: "estimates.0.id", Name: "Estimate ID"},
			decode.Field{Path: "estimates.0.estimateNumber", Name: "Estimate Number"},
		),
		Result: func(doc decode.Document) (CreatedEstimate, error) {
			return CreatedEstimate{
				StatusCode:     doc.StatusCode,
				EstimateID:     doc.String("estimates.0.id"),
				EstimateNumber: doc.String("estimates.0.estimateNumber"),
			}, nil
		},
	}

	linkEstimate = endpoint.Descriptor[Status]{
		Name:   "link estimate to vehicle",
		Method: http.MethodGet,
		Path:   EstimatePath,
		Header: accept("application/hal+json"),
		Expect: decode.StatusOnly(),
		Result: status,
	}

	vehicleByID = endpoint.Descriptor[Vehicle]{
		Name:   "vehicle by ID",
		Method: http.MethodGet,
		Path:   CarPath,
		Header: accept("*/*"),
		Expect: decode.JSON(decode.Field{Path: "carid", Name: "Car ID"}),
		Result: func(doc decode.Document) (Vehicle, error) {
			return Vehicle{
				StatusCode: doc.StatusCode,
				CarID:      doc.String("carid"),
				Body:       doc.Raw,
			}, nil
		},
	}

	logout = endpoint.Descriptor[Status]{
		Name:   "logout",
		Method: http.MethodGet,
		Path:   LogoutPath,
		Header: accept("application/json"),
		Expect: decode.StatusOnly(),
		Result: status,
	}
)

func accept(v string) http.Header {
	return http.Header{"Accept": []string{v}}
}

func status(doc decode.Document) (Status, error) {
	return Status{StatusCode: doc.StatusCode}, nil
}

// API calls the gateway operations through Doer.
type API struct {
	// Doer executes the request plans. Relative plan URLs are used, so
	// it must resolve them against a base URL, as adagx.Client does.
	Doer adagx.Doer
	// Generator produces the create-estimate payloads. If nil, the
	// process-wide estimate generator is used.
	Generator *estimate.Generator
}

// CreateEstimate posts a generated estimate and returns the ID and
// number the platform assigned to it.
func (api API) CreateEstimate(ctx context.Context, token string) (CreatedEstimate, error) {
	var body []estimate.Payload
	if api.Generator != nil {
		body = api.Generator.Body()
	} else {
		body = []estimate.Payload{estimate.Generate()}
	}
	return endpoint.Call(ctx, api.Doer, createEstimate, endpoint.Args{
		Token: token,
		Body:  body,
	})
}

// LinkEstimateToVehicle maps the estimate to the vehicle. Any 2xx
// status is success and the response body is ignored.
func (api API) LinkEstimateToVehicle(ctx context.Context, token, estimateID, vehicleID string) (Status, error) {
	if vehicleID == "" {
		vehicleID = DefaultVehicleID
	}
	return endpoint.Call(ctx, api.Doer, linkEstimate, endpoint.Args{
		Token: token,
		Path:  map[string]string{"estimateId": estimateID},
		Query: url.Values{"vehicleId": []string{vehicleID}},
	})
}

// VehicleByID looks up the vehicle with car ID carID, requiring a carid
// field in the response.
func (api API) VehicleByID(ctx context.Context, token, carID string) (Vehicle, error) {
	return endpoint.Call(ctx, api.Doer, vehicleByID, endpoint.Args{
		Token: token,
		Path:  map[string]string{"carId": carID},
		Query: url.Values{
			"locale":          []string{"en_US"},
			"has-repair-data": []string{"true"},
		},
	})
}

// Logout invalidates the session of token.
func (api API) Logout(ctx context.Context, token string) (Status, error) {
	return endpoint.Call(ctx, api.Doer, logout, endpoint.Args{Token: token})
}
