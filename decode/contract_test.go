// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package decode

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var estimateContract = JSON(
	Field{Path: "estimates.0.id", Name: "estimate ID"},
	Field{Path: "estimates.0.estimateNumber", Name: "estimate number"},
)

func TestContract_Decode(t *testing.T) {
	testCases := []struct {
		name     string
		contract Contract
		status   int
		body     string
		check    func(t *testing.T, doc Document, err error)
	}{
		{
			name:     "status only ignores body",
			contract: StatusOnly(),
			status:   204,
			body:     "not json at all",
			check: func(t *testing.T, doc Document, err error) {
				require.NoError(t, err)
				assert.Equal(t, 204, doc.StatusCode)
				assert.False(t, doc.IsJSON())
				assert.Nil(t, doc.Value())
			},
		},
		{
			name:     "zero contract is status only",
			contract: Contract{},
			status:   200,
			check: func(t *testing.T, doc Document, err error) {
				require.NoError(t, err)
				assert.Equal(t, 200, doc.StatusCode)
			},
		},
		{
			name:     "fields present",
			contract: estimateContract,
			status:   201,
			body:     `{"estimates":[{"id":"e-42","estimateNumber":"4711"}]}`,
			check: func(t *testing.T, doc Document, err error) {
				require.NoError(t, err)
				assert.True(t, doc.IsJSON())
				assert.Equal(t, "e-42", doc.String("estimates.0.id"))
				assert.Equal(t, "4711", doc.Get("estimates.0.estimateNumber").String())
				assert.IsType(t, map[string]interface{}{}, doc.Value())
			},
		},
		{
			name:     "number field counts as present",
			contract: JSON(Field{Path: "carid", Name: "car ID"}),
			status:   200,
			body:     `{"carid":61449}`,
			check: func(t *testing.T, doc Document, err error) {
				require.NoError(t, err)
				assert.Equal(t, "61449", doc.String("carid"))
			},
		},
		{
			name:     "empty body",
			contract: estimateContract,
			status:   200,
			body:     "",
			check: func(t *testing.T, _ Document, err error) {
				assert.ErrorIs(t, err, ErrEmptyResponse)
				assert.EqualError(t, err, "empty response")
			},
		},
		{
			name:     "whitespace body",
			contract: JSON(),
			status:   200,
			body:     " \r\n\t ",
			check: func(t *testing.T, _ Document, err error) {
				assert.ErrorIs(t, err, ErrEmptyResponse)
			},
		},
		{
			name:     "malformed JSON",
			contract: JSON(),
			status:   200,
			body:     `{"estimates": [`,
			check: func(t *testing.T, _ Document, err error) {
				var synErr *SyntaxError
				require.ErrorAs(t, err, &synErr)
				assert.ErrorContains(t, err, "invalid JSON response")
				var jsonErr *json.SyntaxError
				assert.ErrorAs(t, err, &jsonErr)
			},
		},
		{
			name:     "missing estimate ID",
			contract: estimateContract,
			status:   200,
			body:     `{"estimates":[{"id":"","estimateNumber":"4711"}]}`,
			check: func(t *testing.T, _ Document, err error) {
				var mfErr *MissingFieldError
				require.ErrorAs(t, err, &mfErr)
				assert.Equal(t, "estimates.0.id", mfErr.Field.Path)
				assert.EqualError(t, err, "estimate ID not found in response")
			},
		},
		{
			name:     "null field",
			contract: estimateContract,
			status:   200,
			body:     `{"estimates":[{"id":"e-1","estimateNumber":null}]}`,
			check: func(t *testing.T, _ Document, err error) {
				assert.EqualError(t, err, "estimate number not found in response")
			},
		},
		{
			name:     "empty array",
			contract: estimateContract,
			status:   200,
			body:     `{"estimates":[]}`,
			check: func(t *testing.T, _ Document, err error) {
				assert.EqualError(t, err, "estimate ID not found in response")
			},
		},
		{
			name:     "non-2xx with valid body",
			contract: estimateContract,
			status:   400,
			body:     `{"estimates":[{"id":"e-1","estimateNumber":"1"}]}`,
			check: func(t *testing.T, _ Document, err error) {
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, 400, statusErr.StatusCode)
				assert.Contains(t, statusErr.Excerpt, "estimates")
			},
		},
		{
			name:     "non-2xx status only",
			contract: StatusOnly(),
			status:   401,
			check: func(t *testing.T, _ Document, err error) {
				assert.EqualError(t, err, "unexpected status 401")
			},
		},
		{
			name:     "excerpt bounded",
			contract: StatusOnly(),
			status:   500,
			body:     strings.Repeat("x", 1000),
			check: func(t *testing.T, _ Document, err error) {
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Len(t, statusErr.Excerpt, excerptLen)
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var body []byte
			if testCase.body != "" {
				body = []byte(testCase.body)
			}
			doc, err := testCase.contract.Decode(testCase.status, body)
			testCase.check(t, doc, err)
		})
	}
}

func TestContract_Fields(t *testing.T) {
	fields := []Field{{Path: "carid", Name: "car ID"}}
	c := JSON(fields...)
	fields[0].Path = "changed"
	assert.Equal(t, "carid", c.Fields()[0].Path)
	assert.True(t, c.WantsBody())
	assert.False(t, StatusOnly().WantsBody())
	assert.Empty(t, StatusOnly().Fields())
}
