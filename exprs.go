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

import "fmt"

// Operation is an enum used for constants to define what operation a given
// expression or predicate is going to execute.
type Operation int

const (
	// do not change the order of these enum constants.
	// they are grouped for quick validation of operation type by
	// using <= and >= of the first/last operation in a group

	OpTrue Operation = iota
	OpFalse
	// comparison ops
	OpLT
	OpLTEQ
	OpGT
	OpGTEQ
	OpEQ
	OpNEQ
	// boolean ops
	OpNot
	OpAnd
	OpOr
)

func (op Operation) String() string {
	switch op {
	case OpTrue:
		return "True"
	case OpFalse:
		return "False"
	case OpLT:
		return "LessThan"
	case OpLTEQ:
		return "LessThanEqual"
	case OpGT:
		return "GreaterThan"
	case OpGTEQ:
		return "GreaterThanEqual"
	case OpEQ:
		return "Equal"
	case OpNEQ:
		return "NotEqual"
	case OpNot:
		return "Not"
	case OpAnd:
		return "And"
	case OpOr:
		return "Or"
	}

	return "Operation(" + fmt.Sprint(int(op)) + ")"
}

// Negate returns the inverse operation for a given op
func (op Operation) Negate() Operation {
	switch op {
	case OpLT:
		return OpGTEQ
	case OpLTEQ:
		return OpGT
	case OpGT:
		return OpLTEQ
	case OpGTEQ:
		return OpLT
	case OpEQ:
		return OpNEQ
	case OpNEQ:
		return OpEQ
	default:
		panic("no negation for operation " + op.String())
	}
}

// FlipLR returns the correct operation to use if the left and right operands
// are flipped.
func (op Operation) FlipLR() Operation {
	switch op {
	case OpLT:
		return OpGT
	case OpLTEQ:
		return OpGTEQ
	case OpGT:
		return OpLT
	case OpGTEQ:
		return OpLTEQ
	case OpEQ:
		return OpEQ
	case OpNEQ:
		return OpNEQ
	default:
		panic("no left-right flip for operation: " + op.String())
	}
}

// A Term is an operand of a comparison and evaluates to a value: either a
// column reference or a literal.
type Term interface {
	fmt.Stringer
	// requiring this method ensures that only types we define can be used
	// as a term.
	isTerm()
}

// BooleanExpression represents a full expression which will evaluate to a
// boolean value, such as a comparison or a conjunction of comparisons.
type BooleanExpression interface {
	fmt.Stringer
	Op() Operation
	Negate() BooleanExpression
	Equals(BooleanExpression) bool
}

// AlwaysTrue is the boolean expression "True"
type AlwaysTrue struct{}

func (AlwaysTrue) String() string            { return "AlwaysTrue()" }
func (AlwaysTrue) Op() Operation             { return OpTrue }
func (AlwaysTrue) Negate() BooleanExpression { return AlwaysFalse{} }
func (AlwaysTrue) Equals(other BooleanExpression) bool {
	_, ok := other.(AlwaysTrue)

	return ok
}

// AlwaysFalse is the boolean expression "False"
type AlwaysFalse struct{}

func (AlwaysFalse) String() string            { return "AlwaysFalse()" }
func (AlwaysFalse) Op() Operation             { return OpFalse }
func (AlwaysFalse) Negate() BooleanExpression { return AlwaysTrue{} }
func (AlwaysFalse) Equals(other BooleanExpression) bool {
	_, ok := other.(AlwaysFalse)

	return ok
}

type NotExpr struct {
	child BooleanExpression
}

// NewNot creates a BooleanExpression representing a "Not" operation on the
// given argument. If the argument is AlwaysTrue or AlwaysFalse the inverse
// expression is returned directly, and NotExpr(NotExpr(child)) reduces to
// child.
func NewNot(child BooleanExpression) BooleanExpression {
	if child == nil {
		panic(fmt.Errorf("%w: cannot create NotExpr with nil child",
			ErrInvalidArgument))
	}

	switch t := child.(type) {
	case NotExpr:
		return t.child
	case AlwaysTrue:
		return AlwaysFalse{}
	case AlwaysFalse:
		return AlwaysTrue{}
	}

	return NotExpr{child: child}
}

func (n NotExpr) String() string            { return "Not(child=" + n.child.String() + ")" }
func (NotExpr) Op() Operation               { return OpNot }
func (n NotExpr) Negate() BooleanExpression { return n.child }
func (n NotExpr) Child() BooleanExpression  { return n.child }
func (n NotExpr) Equals(other BooleanExpression) bool {
	rhs, ok := other.(NotExpr)
	if !ok {
		return false
	}

	return n.child.Equals(rhs.child)
}

type AndExpr struct {
	left, right BooleanExpression
}

// NewAnd constructs an AndExpr after folding away AlwaysTrue/AlwaysFalse
// arguments. Will panic if either argument is nil.
func NewAnd(left, right BooleanExpression) BooleanExpression {
	if left == nil || right == nil {
		panic(fmt.Errorf("%w: cannot construct AndExpr with nil arguments",
			ErrInvalidArgument))
	}

	switch {
	case left == AlwaysFalse{} || right == AlwaysFalse{}:
		return AlwaysFalse{}
	case left == AlwaysTrue{}:
		return right
	case right == AlwaysTrue{}:
		return left
	}

	return AndExpr{left: left, right: right}
}

func (a AndExpr) String() string {
	return "And(left=" + a.left.String() + ", right=" + a.right.String() + ")"
}

func (AndExpr) Op() Operation            { return OpAnd }
func (a AndExpr) Left() BooleanExpression  { return a.left }
func (a AndExpr) Right() BooleanExpression { return a.right }

func (a AndExpr) Equals(other BooleanExpression) bool {
	rhs, ok := other.(AndExpr)
	if !ok {
		return false
	}

	return (a.left.Equals(rhs.left) && a.right.Equals(rhs.right)) ||
		(a.left.Equals(rhs.right) && a.right.Equals(rhs.left))
}

func (a AndExpr) Negate() BooleanExpression {
	return NewOr(a.left.Negate(), a.right.Negate())
}

type OrExpr struct {
	left, right BooleanExpression
}

// NewOr constructs an OrExpr after folding away AlwaysTrue/AlwaysFalse
// arguments. Will panic if either argument is nil.
func NewOr(left, right BooleanExpression) BooleanExpression {
	if left == nil || right == nil {
		panic(fmt.Errorf("%w: cannot construct OrExpr with nil arguments",
			ErrInvalidArgument))
	}

	switch {
	case left == AlwaysTrue{} || right == AlwaysTrue{}:
		return AlwaysTrue{}
	case left == AlwaysFalse{}:
		return right
	case right == AlwaysFalse{}:
		return left
	}

	return OrExpr{left: left, right: right}
}

func (o OrExpr) String() string {
	return "Or(left=" + o.left.String() + ", right=" + o.right.String() + ")"
}

func (OrExpr) Op() Operation            { return OpOr }
func (o OrExpr) Left() BooleanExpression  { return o.left }
func (o OrExpr) Right() BooleanExpression { return o.right }

func (o OrExpr) Equals(other BooleanExpression) bool {
	rhs, ok := other.(OrExpr)
	if !ok {
		return false
	}

	return (o.left.Equals(rhs.left) && o.right.Equals(rhs.right)) ||
		(o.left.Equals(rhs.right) && o.right.Equals(rhs.left))
}

func (o OrExpr) Negate() BooleanExpression {
	return NewAnd(o.left.Negate(), o.right.Negate())
}

// ComparisonExpr is a binary comparison between two terms, optionally
// evaluated under a non-default string collation.
type ComparisonExpr struct {
	op          Operation
	left, right Term
	collation   CollationIdentifier
}

// NewComparison constructs a comparison predicate between two terms under
// the default collation.
//
// Will panic if op is not a comparison operation or if either term is nil.
func NewComparison(op Operation, left, right Term) BooleanExpression {
	return NewCollatedComparison(op, left, right, CollationIdentifier{})
}

// NewCollatedComparison constructs a comparison predicate whose string
// comparison semantics are governed by the given collation identifier. A
// zero identifier means the default binary collation.
//
// Will panic if op is not a comparison operation or if either term is nil.
func NewCollatedComparison(op Operation, left, right Term, id CollationIdentifier) BooleanExpression {
	switch {
	case op < OpLT || op > OpNEQ:
		panic(fmt.Errorf("%w: invalid operation for comparison: %s",
			ErrInvalidArgument, op))
	case left == nil:
		panic(fmt.Errorf("%w: cannot create comparison with nil left term",
			ErrInvalidArgument))
	case right == nil:
		panic(fmt.Errorf("%w: cannot create comparison with nil right term",
			ErrInvalidArgument))
	}

	return ComparisonExpr{op: op, left: left, right: right, collation: id}
}

func (c ComparisonExpr) String() string {
	if c.collation.IsDefault() {
		return fmt.Sprintf("%s(left=%s, right=%s)", c.op, c.left, c.right)
	}

	return fmt.Sprintf("%s(left=%s, right=%s, collation=%s)",
		c.op, c.left, c.right, c.collation)
}

func (c ComparisonExpr) Op() Operation { return c.op }
func (c ComparisonExpr) Left() Term    { return c.left }
func (c ComparisonExpr) Right() Term   { return c.right }

// Collation returns the identifier governing string comparisons for this
// predicate. For predicates built without an explicit collation it returns
// the default collation identifier.
func (c ComparisonExpr) Collation() CollationIdentifier {
	if c.collation.IsDefault() {
		return DefaultCollationIdentifier
	}

	return c.collation
}

func (c ComparisonExpr) Negate() BooleanExpression {
	return ComparisonExpr{
		op: c.op.Negate(), left: c.left, right: c.right,
		collation: c.collation,
	}
}

func (c ComparisonExpr) Equals(other BooleanExpression) bool {
	rhs, ok := other.(ComparisonExpr)
	if !ok {
		return false
	}

	return c.op == rhs.op &&
		termEquals(c.left, rhs.left) &&
		termEquals(c.right, rhs.right) &&
		c.Collation() == rhs.Collation()
}

func termEquals(a, b Term) bool {
	switch a := a.(type) {
	case ColumnPath:
		rhs, ok := b.(ColumnPath)

		return ok && a.Equals(rhs)
	case Literal:
		rhs, ok := b.(Literal)

		return ok && a.Equals(rhs)
	}

	return false
}
