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
	"fmt"
	"maps"
)

const (
	// Stats column naming convention shared with the statistics evaluator:
	// compiled leaves reference the original column path underneath a
	// minValues/maxValues root.
	minValuesPrefix = "minValues"
	maxValuesPrefix = "maxValues"
)

// DataSkippingPredicate is a predicate over per-file min/max statistics,
// compiled from a predicate over column values. Evaluating it against a
// file's stats proves whether the file can possibly contain matching rows.
type DataSkippingPredicate interface {
	fmt.Stringer
	Op() Operation
	// ReferencedColumns returns the stat column paths this predicate reads.
	ReferencedColumns() []ColumnPath
	// ColumnTypes maps each referenced stat column's dotted path to the
	// logical type its stats values should be parsed as.
	ColumnTypes() map[string]Type
	Equals(DataSkippingPredicate) bool
}

// SkipComparison is a leaf comparing a single min/max stat column against a
// literal under the default binary collation.
type SkipComparison struct {
	op     Operation
	column ColumnPath
	lit    Literal
	typ    Type
}

// NewSkipComparison constructs a stats comparison leaf. The column must
// already carry its minValues/maxValues prefix.
func NewSkipComparison(op Operation, column ColumnPath, lit Literal, typ Type) *SkipComparison {
	return &SkipComparison{op: op, column: column, lit: lit, typ: typ}
}

func (s *SkipComparison) Op() Operation      { return s.op }
func (s *SkipComparison) Column() ColumnPath { return s.column }
func (s *SkipComparison) Literal() Literal   { return s.lit }
func (s *SkipComparison) ColumnType() Type   { return s.typ }

func (s *SkipComparison) ReferencedColumns() []ColumnPath {
	return []ColumnPath{s.column}
}

func (s *SkipComparison) ColumnTypes() map[string]Type {
	return map[string]Type{s.column.String(): s.typ}
}

func (s *SkipComparison) String() string {
	return fmt.Sprintf("%s(column=%s, literal=%s)", s.op, s.column, s.lit)
}

func (s *SkipComparison) Equals(other DataSkippingPredicate) bool {
	rhs, ok := other.(*SkipComparison)
	if !ok {
		return false
	}

	return s.op == rhs.op &&
		s.column.Equals(rhs.column) &&
		s.lit.Equals(rhs.lit) &&
		s.typ.Equals(rhs.typ)
}

// SkipCollatedComparison is a leaf comparing a min/max stat column against
// a literal under a non-default collation. The evaluator resolves the
// collation identifier to a comparator via FetchCollation.
type SkipCollatedComparison struct {
	op        Operation
	column    ColumnPath
	lit       Literal
	collation CollationIdentifier
}

// NewSkipCollatedComparison constructs a collated stats comparison leaf.
// The collation identifier must not be the default; default-collation
// comparisons compile to plain SkipComparison leaves.
func NewSkipCollatedComparison(op Operation, column ColumnPath, lit Literal, id CollationIdentifier) *SkipCollatedComparison {
	if id.IsDefault() {
		panic(fmt.Errorf("%w: collated stats comparison with default collation",
			ErrInvalidArgument))
	}

	return &SkipCollatedComparison{op: op, column: column, lit: lit, collation: id}
}

func (s *SkipCollatedComparison) Op() Operation                  { return s.op }
func (s *SkipCollatedComparison) Column() ColumnPath             { return s.column }
func (s *SkipCollatedComparison) Literal() Literal               { return s.lit }
func (s *SkipCollatedComparison) Collation() CollationIdentifier { return s.collation }

func (s *SkipCollatedComparison) ReferencedColumns() []ColumnPath {
	return []ColumnPath{s.column}
}

func (s *SkipCollatedComparison) ColumnTypes() map[string]Type {
	return map[string]Type{s.column.String(): PrimitiveTypes.String}
}

func (s *SkipCollatedComparison) String() string {
	return fmt.Sprintf("%s(column=%s, literal=%s, collation=%s)",
		s.op, s.column, s.lit, s.collation)
}

func (s *SkipCollatedComparison) Equals(other DataSkippingPredicate) bool {
	rhs, ok := other.(*SkipCollatedComparison)
	if !ok {
		return false
	}

	return s.op == rhs.op &&
		s.column.Equals(rhs.column) &&
		s.lit.Equals(rhs.lit) &&
		s.collation == rhs.collation
}

// SkipAnd is the conjunction of two stats predicates.
type SkipAnd struct {
	left, right DataSkippingPredicate
}

func NewSkipAnd(left, right DataSkippingPredicate) *SkipAnd {
	if left == nil || right == nil {
		panic(fmt.Errorf("%w: cannot construct SkipAnd with nil arguments",
			ErrInvalidArgument))
	}

	return &SkipAnd{left: left, right: right}
}

func (s *SkipAnd) Op() Operation                { return OpAnd }
func (s *SkipAnd) Left() DataSkippingPredicate  { return s.left }
func (s *SkipAnd) Right() DataSkippingPredicate { return s.right }

func (s *SkipAnd) ReferencedColumns() []ColumnPath {
	return append(s.left.ReferencedColumns(), s.right.ReferencedColumns()...)
}

func (s *SkipAnd) ColumnTypes() map[string]Type {
	out := maps.Clone(s.left.ColumnTypes())
	maps.Copy(out, s.right.ColumnTypes())

	return out
}

func (s *SkipAnd) String() string {
	return "And(left=" + s.left.String() + ", right=" + s.right.String() + ")"
}

func (s *SkipAnd) Equals(other DataSkippingPredicate) bool {
	rhs, ok := other.(*SkipAnd)
	if !ok {
		return false
	}

	return s.left.Equals(rhs.left) && s.right.Equals(rhs.right)
}

// SkipOr is the disjunction of two stats predicates.
type SkipOr struct {
	left, right DataSkippingPredicate
}

func NewSkipOr(left, right DataSkippingPredicate) *SkipOr {
	if left == nil || right == nil {
		panic(fmt.Errorf("%w: cannot construct SkipOr with nil arguments",
			ErrInvalidArgument))
	}

	return &SkipOr{left: left, right: right}
}

func (s *SkipOr) Op() Operation                { return OpOr }
func (s *SkipOr) Left() DataSkippingPredicate  { return s.left }
func (s *SkipOr) Right() DataSkippingPredicate { return s.right }

func (s *SkipOr) ReferencedColumns() []ColumnPath {
	return append(s.left.ReferencedColumns(), s.right.ReferencedColumns()...)
}

func (s *SkipOr) ColumnTypes() map[string]Type {
	out := maps.Clone(s.left.ColumnTypes())
	maps.Copy(out, s.right.ColumnTypes())

	return out
}

func (s *SkipOr) String() string {
	return "Or(left=" + s.left.String() + ", right=" + s.right.String() + ")"
}

func (s *SkipOr) Equals(other DataSkippingPredicate) bool {
	rhs, ok := other.(*SkipOr)
	if !ok {
		return false
	}

	return s.left.Equals(rhs.left) && s.right.Equals(rhs.right)
}

// ConstructDataSkippingFilter rewrites a predicate over column values into
// an equivalent predicate over per-file min/max statistics. The second
// return value is false when no sound stats predicate can be derived;
// callers then fall back to scanning the file. Absence is normal control
// flow, never an error.
func ConstructDataSkippingFilter(expr BooleanExpression, schema *StructType) (DataSkippingPredicate, bool) {
	if expr == nil || schema == nil {
		return nil, false
	}

	return constructSkippingFilter(expr, schema)
}

func constructSkippingFilter(e BooleanExpression, schema *StructType) (DataSkippingPredicate, bool) {
	switch e := e.(type) {
	case AndExpr:
		// a conjunct that cannot be converted only loses pruning power;
		// the converted side alone remains a sound over-approximation
		left, lok := constructSkippingFilter(e.left, schema)
		right, rok := constructSkippingFilter(e.right, schema)
		switch {
		case lok && rok:
			return NewSkipAnd(left, right), true
		case lok:
			return left, true
		case rok:
			return right, true
		}

		return nil, false
	case OrExpr:
		// an unprovable disjunct means the file might still match through
		// that branch, so both sides must convert
		left, lok := constructSkippingFilter(e.left, schema)
		if !lok {
			return nil, false
		}
		right, rok := constructSkippingFilter(e.right, schema)
		if !rok {
			return nil, false
		}

		return NewSkipOr(left, right), true
	case NotExpr:
		// push the negation inward (De Morgan, complemented comparisons)
		// and compile the rewritten tree
		return constructSkippingFilter(e.child.Negate(), schema)
	case ComparisonExpr:
		return constructComparisonFilter(e, schema)
	}

	return nil, false
}

func constructComparisonFilter(e ComparisonExpr, schema *StructType) (DataSkippingPredicate, bool) {
	op := e.op

	// normalize so the column reference is on the left
	var (
		col ColumnPath
		lit Literal
		ok  bool
	)
	switch l := e.left.(type) {
	case ColumnPath:
		col = l
		if lit, ok = e.right.(Literal); !ok {
			return nil, false
		}
	case Literal:
		lit = l
		if col, ok = e.right.(ColumnPath); !ok {
			return nil, false
		}
		op = op.FlipLR()
	default:
		return nil, false
	}

	if op < OpLT || op > OpEQ {
		return nil, false
	}

	field, ok := schema.FieldByPath(col)
	if !ok {
		return nil, false
	}

	typ, ok := field.Type.(PrimitiveType)
	if !ok || !typesComparable(typ, lit.Type()) {
		return nil, false
	}

	collation := e.Collation()
	collated := !collation.IsDefault()
	if collated {
		if _, isStr := typ.(StringType); !isStr {
			return nil, false
		}
	}

	leaf := func(op Operation, statsCol ColumnPath) DataSkippingPredicate {
		if collated {
			return NewSkipCollatedComparison(op, statsCol, lit, collation)
		}

		return NewSkipComparison(op, statsCol, lit, typ)
	}

	minCol := col.withStatsPrefix(minValuesPrefix)
	maxCol := col.withStatsPrefix(maxValuesPrefix)

	switch op {
	case OpEQ:
		return NewSkipAnd(leaf(OpLTEQ, minCol), leaf(OpGTEQ, maxCol)), true
	case OpLT:
		return leaf(OpLT, minCol), true
	case OpLTEQ:
		return leaf(OpLTEQ, minCol), true
	case OpGT:
		return leaf(OpGT, maxCol), true
	case OpGTEQ:
		return leaf(OpGTEQ, maxCol), true
	}

	return nil, false
}

// typesComparable reports whether a literal of type lit can be compared
// against stats of a column of type col. String types compare regardless of
// collation and decimals regardless of precision; everything else requires
// an exact type match.
func typesComparable(col, lit Type) bool {
	switch col.(type) {
	case StringType:
		_, ok := lit.(StringType)

		return ok
	case DecimalType:
		_, ok := lit.(DecimalType)

		return ok
	}

	return col.Equals(lit)
}
