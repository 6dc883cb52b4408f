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

// EqualTo is a convenience wrapper for calling
// NewComparison(OpEQ, col, NewLiteral(v))
//
// Will panic if col is nil
func EqualTo[T LiteralType](col ColumnPath, v T) BooleanExpression {
	return NewComparison(OpEQ, col, NewLiteral(v))
}

// NotEqualTo is a convenience wrapper for calling
// NewComparison(OpNEQ, col, NewLiteral(v))
//
// Will panic if col is nil
func NotEqualTo[T LiteralType](col ColumnPath, v T) BooleanExpression {
	return NewComparison(OpNEQ, col, NewLiteral(v))
}

// LessThan is a convenience wrapper for calling
// NewComparison(OpLT, col, NewLiteral(v))
//
// Will panic if col is nil
func LessThan[T LiteralType](col ColumnPath, v T) BooleanExpression {
	return NewComparison(OpLT, col, NewLiteral(v))
}

// LessThanEqual is a convenience wrapper for calling
// NewComparison(OpLTEQ, col, NewLiteral(v))
//
// Will panic if col is nil
func LessThanEqual[T LiteralType](col ColumnPath, v T) BooleanExpression {
	return NewComparison(OpLTEQ, col, NewLiteral(v))
}

// GreaterThan is a convenience wrapper for calling
// NewComparison(OpGT, col, NewLiteral(v))
//
// Will panic if col is nil
func GreaterThan[T LiteralType](col ColumnPath, v T) BooleanExpression {
	return NewComparison(OpGT, col, NewLiteral(v))
}

// GreaterThanEqual is a convenience wrapper for calling
// NewComparison(OpGTEQ, col, NewLiteral(v))
//
// Will panic if col is nil
func GreaterThanEqual[T LiteralType](col ColumnPath, v T) BooleanExpression {
	return NewComparison(OpGTEQ, col, NewLiteral(v))
}

// CollatedEqualTo builds an equality comparison evaluated under the given
// collation.
func CollatedEqualTo(col ColumnPath, v string, id CollationIdentifier) BooleanExpression {
	return NewCollatedComparison(OpEQ, col, NewLiteral(v), id)
}

// CollatedLessThan builds a less-than comparison evaluated under the given
// collation.
func CollatedLessThan(col ColumnPath, v string, id CollationIdentifier) BooleanExpression {
	return NewCollatedComparison(OpLT, col, NewLiteral(v), id)
}

// CollatedGreaterThan builds a greater-than comparison evaluated under the
// given collation.
func CollatedGreaterThan(col ColumnPath, v string, id CollationIdentifier) BooleanExpression {
	return NewCollatedComparison(OpGT, col, NewLiteral(v), id)
}
