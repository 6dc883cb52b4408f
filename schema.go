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
	"slices"
	"strings"
)

// ColumnPath identifies a (possibly nested) column as the ordered sequence
// of field names from the schema root. Segments are case-sensitive.
type ColumnPath []string

// Ref builds a ColumnPath from the given segments.
func Ref(segments ...string) ColumnPath { return segments }

// ParseColumnPath splits a dotted column name into a ColumnPath. Field
// names containing literal dots are not representable in this form.
func ParseColumnPath(name string) ColumnPath {
	return strings.Split(name, ".")
}

func (p ColumnPath) isTerm() {}

func (p ColumnPath) String() string { return strings.Join(p, ".") }

func (p ColumnPath) Equals(other ColumnPath) bool {
	return slices.Equal(p, other)
}

// IsPrefixOf reports whether p is an equal or strict prefix of other.
func (p ColumnPath) IsPrefixOf(other ColumnPath) bool {
	if len(p) > len(other) {
		return false
	}

	return slices.Equal(p, other[:len(p)])
}

// Append returns a new path with the given segment appended, never sharing
// backing storage with p.
func (p ColumnPath) Append(segment string) ColumnPath {
	out := make(ColumnPath, 0, len(p)+1)
	out = append(out, p...)

	return append(out, segment)
}

func (p ColumnPath) withStatsPrefix(prefix string) ColumnPath {
	out := make(ColumnPath, 0, len(p)+1)
	out = append(out, prefix)

	return append(out, p...)
}

// PruneStatsSchema projects a full table schema down to only the branches
// addressed by the referenced column set. Field order is preserved. A
// nested struct whose pruned result has no fields is omitted from its
// parent entirely; only the root may end up as an empty struct. Referenced
// paths that do not resolve to a leaf are silently ineffective.
func PruneStatsSchema(schema *StructType, referenced []ColumnPath) *StructType {
	return pruneStruct(schema, nil, referenced)
}

func pruneStruct(st *StructType, prefix ColumnPath, referenced []ColumnPath) *StructType {
	out := &StructType{}
	for _, f := range st.FieldList {
		path := prefix.Append(f.Name)

		if sub, ok := f.Type.(*StructType); ok {
			if !anyWithPrefix(referenced, path) {
				continue
			}

			pruned := pruneStruct(sub, path, referenced)
			if len(pruned.FieldList) == 0 {
				continue
			}

			out.FieldList = append(out.FieldList, StructField{
				Name:     f.Name,
				Type:     pruned,
				Required: f.Required,
			})

			continue
		}

		if containsPath(referenced, path) {
			out.FieldList = append(out.FieldList, f)
		}
	}

	return out
}

func anyWithPrefix(referenced []ColumnPath, prefix ColumnPath) bool {
	for _, r := range referenced {
		if prefix.IsPrefixOf(r) {
			return true
		}
	}

	return false
}

func containsPath(referenced []ColumnPath, path ColumnPath) bool {
	for _, r := range referenced {
		if path.Equals(r) {
			return true
		}
	}

	return false
}
