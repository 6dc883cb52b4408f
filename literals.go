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

package dataskip

import (
	"bytes"
	"cmp"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow/decimal"
	"github.com/google/uuid"
)

// Date is the number of days since the unix epoch.
type Date int32

// Time is the number of microseconds since midnight.
type Time int64

// Timestamp is the number of microseconds since the unix epoch.
type Timestamp int64

// Decimal is a fixed-point decimal value with a given scale.
type Decimal struct {
	Val   decimal.Decimal128
	Scale int
}

func (d Decimal) String() string {
	return d.Val.ToString(int32(d.Scale))
}

// LiteralType is a generic type constraint for the Go types that are allowed
// as literal values, one per primitive column type.
type LiteralType interface {
	bool | int32 | int64 | float32 | float64 | Date |
		Time | Timestamp | string | []byte | uuid.UUID | Decimal
}

// Comparator is a comparison function for specific literal types:
//
//	returns 0 if v1 == v2
//	returns <0 if v1 < v2
//	returns >0 if v1 > v2
type Comparator[T LiteralType] func(v1, v2 T) int

// Literal is a non-null literal value that can appear as a comparison
// operand in a predicate.
type Literal interface {
	Term

	Any() any
	Type() Type
	Equals(Literal) bool
}

// TypedLiteral is a generic interface for literals so that the underlying
// value and its comparator can be retrieved.
type TypedLiteral[T LiteralType] interface {
	Literal

	Value() T
	Comparator() Comparator[T]
}

// NewLiteral provides a literal based on the type of T
func NewLiteral[T LiteralType](val T) Literal {
	switch v := any(val).(type) {
	case bool:
		return BoolLiteral(v)
	case int32:
		return Int32Literal(v)
	case int64:
		return Int64Literal(v)
	case float32:
		return Float32Literal(v)
	case float64:
		return Float64Literal(v)
	case Date:
		return DateLiteral(v)
	case Time:
		return TimeLiteral(v)
	case Timestamp:
		return TimestampLiteral(v)
	case string:
		return StringLiteral(v)
	case []byte:
		return BinaryLiteral(v)
	case uuid.UUID:
		return UUIDLiteral(v)
	case Decimal:
		return DecimalLiteral(v)
	}
	panic("can't happen due to literal type constraint")
}

func literalEq[T LiteralType, L TypedLiteral[T]](lhs L, other Literal) bool {
	rhs, ok := other.(TypedLiteral[T])
	if !ok {
		return false
	}

	return lhs.Comparator()(lhs.Value(), rhs.Value()) == 0
}

type BoolLiteral bool

func (BoolLiteral) Comparator() Comparator[bool] {
	return func(v1, v2 bool) int {
		if v1 {
			if v2 {
				return 0
			}

			return 1
		}
		if v2 {
			return -1
		}

		return 0
	}
}

func (BoolLiteral) isTerm()                {}
func (b BoolLiteral) Type() Type           { return PrimitiveTypes.Bool }
func (b BoolLiteral) Value() bool          { return bool(b) }
func (b BoolLiteral) Any() any             { return b.Value() }
func (b BoolLiteral) String() string       { return strconv.FormatBool(bool(b)) }
func (b BoolLiteral) Equals(l Literal) bool {
	return literalEq[bool](b, l)
}

type Int32Literal int32

func (Int32Literal) Comparator() Comparator[int32] { return cmp.Compare[int32] }

func (Int32Literal) isTerm()          {}
func (i Int32Literal) Type() Type     { return PrimitiveTypes.Int32 }
func (i Int32Literal) Value() int32   { return int32(i) }
func (i Int32Literal) Any() any       { return i.Value() }
func (i Int32Literal) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int32Literal) Equals(l Literal) bool {
	return literalEq[int32](i, l)
}

type Int64Literal int64

func (Int64Literal) Comparator() Comparator[int64] { return cmp.Compare[int64] }

func (Int64Literal) isTerm()          {}
func (i Int64Literal) Type() Type     { return PrimitiveTypes.Int64 }
func (i Int64Literal) Value() int64   { return int64(i) }
func (i Int64Literal) Any() any       { return i.Value() }
func (i Int64Literal) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int64Literal) Equals(l Literal) bool {
	return literalEq[int64](i, l)
}

type Float32Literal float32

func (Float32Literal) Comparator() Comparator[float32] { return cmp.Compare[float32] }

func (Float32Literal) isTerm()        {}
func (f Float32Literal) Type() Type   { return PrimitiveTypes.Float32 }
func (f Float32Literal) Value() float32 { return float32(f) }
func (f Float32Literal) Any() any     { return f.Value() }
func (f Float32Literal) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
func (f Float32Literal) Equals(l Literal) bool {
	return literalEq[float32](f, l)
}

type Float64Literal float64

func (Float64Literal) Comparator() Comparator[float64] { return cmp.Compare[float64] }

func (Float64Literal) isTerm()          {}
func (f Float64Literal) Type() Type     { return PrimitiveTypes.Float64 }
func (f Float64Literal) Value() float64 { return float64(f) }
func (f Float64Literal) Any() any       { return f.Value() }
func (f Float64Literal) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}
func (f Float64Literal) Equals(l Literal) bool {
	return literalEq[float64](f, l)
}

type DateLiteral Date

func (DateLiteral) Comparator() Comparator[Date] { return cmp.Compare[Date] }

func (DateLiteral) isTerm()          {}
func (d DateLiteral) Type() Type     { return PrimitiveTypes.Date }
func (d DateLiteral) Value() Date    { return Date(d) }
func (d DateLiteral) Any() any       { return d.Value() }
func (d DateLiteral) String() string { return strconv.FormatInt(int64(d), 10) }
func (d DateLiteral) Equals(l Literal) bool {
	return literalEq[Date](d, l)
}

type TimeLiteral Time

func (TimeLiteral) Comparator() Comparator[Time] { return cmp.Compare[Time] }

func (TimeLiteral) isTerm()          {}
func (t TimeLiteral) Type() Type     { return PrimitiveTypes.Time }
func (t TimeLiteral) Value() Time    { return Time(t) }
func (t TimeLiteral) Any() any       { return t.Value() }
func (t TimeLiteral) String() string { return strconv.FormatInt(int64(t), 10) }
func (t TimeLiteral) Equals(l Literal) bool {
	return literalEq[Time](t, l)
}

type TimestampLiteral Timestamp

func (TimestampLiteral) Comparator() Comparator[Timestamp] { return cmp.Compare[Timestamp] }

func (TimestampLiteral) isTerm()            {}
func (t TimestampLiteral) Type() Type       { return PrimitiveTypes.Timestamp }
func (t TimestampLiteral) Value() Timestamp { return Timestamp(t) }
func (t TimestampLiteral) Any() any         { return t.Value() }
func (t TimestampLiteral) String() string   { return strconv.FormatInt(int64(t), 10) }
func (t TimestampLiteral) Equals(l Literal) bool {
	return literalEq[Timestamp](t, l)
}

type StringLiteral string

func (StringLiteral) Comparator() Comparator[string] { return cmp.Compare[string] }

func (StringLiteral) isTerm()          {}
func (s StringLiteral) Type() Type     { return PrimitiveTypes.String }
func (s StringLiteral) Value() string  { return string(s) }
func (s StringLiteral) Any() any       { return s.Value() }
func (s StringLiteral) String() string { return string(s) }
func (s StringLiteral) Equals(l Literal) bool {
	return literalEq[string](s, l)
}

type BinaryLiteral []byte

func (BinaryLiteral) Comparator() Comparator[[]byte] { return bytes.Compare }

func (BinaryLiteral) isTerm()         {}
func (b BinaryLiteral) Type() Type    { return PrimitiveTypes.Binary }
func (b BinaryLiteral) Value() []byte { return []byte(b) }
func (b BinaryLiteral) Any() any      { return b.Value() }
func (b BinaryLiteral) String() string {
	return string(b)
}
func (b BinaryLiteral) Equals(l Literal) bool {
	return literalEq[[]byte](b, l)
}

type UUIDLiteral uuid.UUID

func (UUIDLiteral) Comparator() Comparator[uuid.UUID] {
	return func(v1, v2 uuid.UUID) int {
		return bytes.Compare(v1[:], v2[:])
	}
}

func (UUIDLiteral) isTerm()            {}
func (u UUIDLiteral) Type() Type       { return PrimitiveTypes.UUID }
func (u UUIDLiteral) Value() uuid.UUID { return uuid.UUID(u) }
func (u UUIDLiteral) Any() any         { return u.Value() }
func (u UUIDLiteral) String() string   { return uuid.UUID(u).String() }
func (u UUIDLiteral) Equals(l Literal) bool {
	return literalEq[uuid.UUID](u, l)
}

type DecimalLiteral Decimal

func (DecimalLiteral) Comparator() Comparator[Decimal] {
	return func(v1, v2 Decimal) int {
		if v1.Scale == v2.Scale {
			return v1.Val.Cmp(v2.Val)
		}

		rescaled, err := v2.Val.Rescale(int32(v2.Scale), int32(v1.Scale))
		if err != nil {
			return -1
		}

		return v1.Val.Cmp(rescaled)
	}
}

func (DecimalLiteral) isTerm()          {}
func (d DecimalLiteral) Type() Type     { return DecimalTypeOf(9, d.Scale) }
func (d DecimalLiteral) Value() Decimal { return Decimal(d) }
func (d DecimalLiteral) Any() any       { return d.Value() }
func (d DecimalLiteral) String() string {
	return d.Val.ToString(int32(d.Scale))
}
func (d DecimalLiteral) Equals(l Literal) bool {
	return literalEq[Decimal](d, l)
}
