// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package dataskip_test

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/dataskip/dataskip-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLiteralTypes(t *testing.T) {
	tests := []struct {
		lit      dataskip.Literal
		expected dataskip.Type
	}{
		{dataskip.NewLiteral(true), dataskip.PrimitiveTypes.Bool},
		{dataskip.NewLiteral(int32(1)), dataskip.PrimitiveTypes.Int32},
		{dataskip.NewLiteral(int64(1)), dataskip.PrimitiveTypes.Int64},
		{dataskip.NewLiteral(float32(1)), dataskip.PrimitiveTypes.Float32},
		{dataskip.NewLiteral(float64(1)), dataskip.PrimitiveTypes.Float64},
		{dataskip.NewLiteral(dataskip.Date(1)), dataskip.PrimitiveTypes.Date},
		{dataskip.NewLiteral(dataskip.Time(1)), dataskip.PrimitiveTypes.Time},
		{dataskip.NewLiteral(dataskip.Timestamp(1)), dataskip.PrimitiveTypes.Timestamp},
		{dataskip.NewLiteral("s"), dataskip.PrimitiveTypes.String},
		{dataskip.NewLiteral([]byte{0x1}), dataskip.PrimitiveTypes.Binary},
		{dataskip.NewLiteral(uuid.New()), dataskip.PrimitiveTypes.UUID},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			assert.True(t, tt.lit.Type().Equals(tt.expected))
			assert.True(t, tt.lit.Equals(tt.lit))
		})
	}
}

func TestLiteralEquality(t *testing.T) {
	assert.True(t, dataskip.NewLiteral("abc").Equals(dataskip.NewLiteral("abc")))
	assert.False(t, dataskip.NewLiteral("abc").Equals(dataskip.NewLiteral("abd")))

	// values of different literal types never compare equal
	assert.False(t, dataskip.NewLiteral(int32(1)).Equals(dataskip.NewLiteral(int64(1))))
	assert.False(t, dataskip.NewLiteral(dataskip.Date(1)).Equals(dataskip.NewLiteral(int32(1))))
}

func TestLiteralComparators(t *testing.T) {
	strCmp := dataskip.StringLiteral("").Comparator()
	assert.Negative(t, strCmp("a", "b"))
	assert.Positive(t, strCmp("b", "a"))
	assert.Zero(t, strCmp("a", "a"))

	boolCmp := dataskip.BoolLiteral(false).Comparator()
	assert.Negative(t, boolCmp(false, true))
	assert.Positive(t, boolCmp(true, false))
	assert.Zero(t, boolCmp(true, true))

	binCmp := dataskip.BinaryLiteral(nil).Comparator()
	assert.Negative(t, binCmp([]byte{0x1}, []byte{0x2}))
	assert.Zero(t, binCmp([]byte{0x1}, []byte{0x1}))
}

func TestDecimalLiteral(t *testing.T) {
	d1 := dataskip.Decimal{Val: decimal128.FromI64(1050), Scale: 2}
	d2 := dataskip.Decimal{Val: decimal128.FromI64(105), Scale: 1}
	d3 := dataskip.Decimal{Val: decimal128.FromI64(1060), Scale: 2}

	assert.Equal(t, "10.50", d1.String())

	cmp := dataskip.DecimalLiteral(d1).Comparator()
	assert.Zero(t, cmp(d1, d1))
	assert.Zero(t, cmp(d1, d2))
	assert.Negative(t, cmp(d1, d3))
	assert.Positive(t, cmp(d3, d2))

	assert.True(t, dataskip.NewLiteral(d1).Equals(dataskip.NewLiteral(d2)))
	assert.False(t, dataskip.NewLiteral(d1).Equals(dataskip.NewLiteral(d3)))
}
