// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/gogama/adagx/adag"
)

type statusOutput struct {
	StatusCode int `json:"statusCode"`
}

func newEstimateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Create estimates and link them to vehicles",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Post a generated estimate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.requireToken()
			if err != nil {
				return err
			}
			created, err := a.api.CreateEstimate(cmd.Context(), token)
			if err != nil {
				return err
			}
			return printJSON(cmd, struct {
				StatusCode     int    `json:"statusCode"`
				EstimateID     string `json:"estimateId"`
				EstimateNumber string `json:"estimateNumber"`
			}{created.StatusCode, created.EstimateID, created.EstimateNumber})
		},
	}

	var vehicleID string
	link := &cobra.Command{
		Use:   "link ESTIMATE_ID",
		Short: "Link an estimate to a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.requireToken()
			if err != nil {
				return err
			}
			st, err := a.api.LinkEstimateToVehicle(cmd.Context(), token, args[0], vehicleID)
			if err != nil {
				return err
			}
			return printJSON(cmd, statusOutput{st.StatusCode})
		},
	}
	link.Flags().StringVar(&vehicleID, "vehicle", adag.DefaultVehicleID, "vehicle ID")

	cmd.AddCommand(create, link)
	return cmd
}

func newVehicleCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Look up vehicles",
	}

	get := &cobra.Command{
		Use:   "get [CAR_ID]",
		Short: "Fetch a vehicle by car ID (default " + adag.TestCarID + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.requireToken()
			if err != nil {
				return err
			}
			carID := adag.TestCarID
			if len(args) == 1 {
				carID = args[0]
			}
			v, err := a.api.VehicleByID(cmd.Context(), token, carID)
			if err != nil {
				return err
			}
			return printJSON(cmd, struct {
				StatusCode int             `json:"statusCode"`
				CarID      string          `json:"carId"`
				Body       json.RawMessage `json:"body"`
			}{v.StatusCode, v.CarID, v.Body})
		},
	}

	cmd.AddCommand(get)
	return cmd
}

func newSessionCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the access token session",
	}

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the session of the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.requireToken()
			if err != nil {
				return err
			}
			st, err := a.api.Logout(cmd.Context(), token)
			if err != nil {
				return err
			}
			return printJSON(cmd, statusOutput{st.StatusCode})
		},
	}

	cmd.AddCommand(logout)
	return cmd
}
