// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package estimate generates the estimate payloads posted to the
// create-estimate endpoint.
package estimate

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"
)

// Payload is one element of the create-estimate request body.
type Payload struct {
	Vehicle  Vehicle `json:"vehicle"`
	Estimate Details `json:"estimate"`
}

// Vehicle is the vehicle an estimate is written for.
type Vehicle struct {
	VehicleID          string `json:"vehicleId"`
	Year               string `json:"year"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Engine             string `json:"engine"`
	VIN                string `json:"vin"`
	LicensePlateNumber string `json:"licensePlateNumber"`
	LicensePlateState  string `json:"licensePlateState"`
	Mileage            int    `json:"mileage"`
	Color              string `json:"color"`
}

// Details are the estimate header fields and line items.
type Details struct {
	EstimateNumber   string `json:"estimateNumber"`
	ClaimNumber      string `json:"claimNumber"`
	Gross            int    `json:"gross"`
	DateCreated      string `json:"dateCreated"`
	DateModified     string `json:"dateModified"`
	SupplementNumber string `json:"supplementNumber"`
	EstimateStatus   string `json:"estimateStatus"`
	Lines            []Line `json:"lines"`
}

// Line is an estimate line item.
type Line struct {
	LineNumber      string `json:"lineNumber"`
	LineIndicator   string `json:"lineIndicator"`
	Operation       string `json:"operation"`
	LineDescription string `json:"lineDescription"`
	PartType        string `json:"partType"`
	PartDescription string `json:"partDescription"`
	LaborType       string `json:"laborType"`
	LaborHours      string `json:"laborHours"`
}

// TestVehicle is the vehicle every generated estimate is written for.
var TestVehicle = Vehicle{
	VehicleID:          "58683",
	Year:               "2020",
	Make:               "Mercedes Benz",
	Model:              "AMG GT53 4 Door (290 661)",
	Engine:             "L6-3.0L Turbo (256.930) Hybrid",
	VIN:                "WDB0J8DB2LF112233",
	LicensePlateNumber: "LP-1234",
	LicensePlateState:  "CA",
	Mileage:            25000,
	Color:              "Red",
}

// DateLayout is the layout of the generated date fields, for example
// "3/7/2019 4:05 PM".
const DateLayout = "1/2/2006 3:04 PM"

const firstYear = 1994

// A Generator produces estimate payloads with random numbers and dates.
// It is safe for concurrent use.
type Generator struct {
	mu   sync.Mutex
	rand *rand.Rand
	now  func() time.Time
}

// New returns a Generator seeded with seed. Two generators with the same
// seed and clock produce the same payloads.
func New(seed uint64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{
		rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now:  now,
	}
}

var defaultGenerator = New(rand.Uint64(), nil)

// Generate returns a payload from a process-wide generator.
func Generate() Payload {
	return defaultGenerator.Generate()
}

// Generate returns a new payload.
//
// The estimate number has four digits, the claim number is "CL-"
// followed by seven digits, gross is in [1000, 6000), the supplement
// number is "S1" to "S10" and the labor hours lie in [0, 10) with one
// decimal. Dates fall between 1994 and the current year.
func (g *Generator) Generate() Payload {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Payload{
		Vehicle: TestVehicle,
		Estimate: Details{
			EstimateNumber:   strconv.Itoa(g.between(1000, 10000)),
			ClaimNumber:      fmt.Sprintf("CL-%d", g.between(1000000, 10000000)),
			Gross:            g.between(1000, 6000),
			DateCreated:      g.date(),
			DateModified:     g.date(),
			SupplementNumber: fmt.Sprintf("S%d", g.between(1, 11)),
			EstimateStatus:   "TRUE",
			Lines: []Line{
				{
					LineNumber:      "1",
					LineIndicator:   "E01",
					Operation:       "OP11",
					LineDescription: "Bumper cover w/park asst",
					PartType:        "New",
					PartDescription: strconv.Itoa(g.between(1000000, 10000000)),
					LaborType:       "LAB",
					LaborHours:      strconv.FormatFloat(float64(g.rand.IntN(100))/10, 'f', 1, 64),
				},
			},
		},
	}
}

// Body returns the create-estimate request body: a single generated
// payload in a list.
func (g *Generator) Body() []Payload {
	return []Payload{g.Generate()}
}

// between returns a random int in [lo, hi).
func (g *Generator) between(lo, hi int) int {
	return lo + g.rand.IntN(hi-lo)
}

func (g *Generator) date() string {
	year := g.between(firstYear, g.now().Year()+1)
	month := time.Month(g.between(1, 13))
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	d := time.Date(year, month, g.between(1, days+1), g.rand.IntN(24), g.rand.IntN(60), 0, 0, time.UTC)
	return d.Format(DateLayout)
}
