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
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var decimalRegex = regexp.MustCompile(`decimal\(\s*(\d+)\s*,\s*(\d+)\s*\)`)

// Type is an interface representing any of the available column types,
// such as primitives (int32/int64/etc.) or nested types (list/struct/map).
type Type interface {
	fmt.Stringer
	Type() string
	Equals(Type) bool
}

// NestedType is an interface that allows access to the child fields of
// a nested type such as a list/struct/map type.
type NestedType interface {
	Type
	Fields() []StructField
}

// PrimitiveType is a non-nested type, eligible to carry per-file min/max
// statistics.
type PrimitiveType interface {
	Type
	primitive()
}

type typeIFace struct {
	Type
}

func (t *typeIFace) MarshalJSON() ([]byte, error) {
	if nested, ok := t.Type.(NestedType); ok {
		return json.Marshal(nested)
	}

	return []byte(`"` + t.Type.Type() + `"`), nil
}

func (t *typeIFace) UnmarshalJSON(b []byte) error {
	var typename string
	err := json.Unmarshal(b, &typename)
	if err == nil {
		switch typename {
		case "boolean":
			t.Type = BooleanType{}
		case "int":
			t.Type = Int32Type{}
		case "long":
			t.Type = Int64Type{}
		case "float":
			t.Type = Float32Type{}
		case "double":
			t.Type = Float64Type{}
		case "date":
			t.Type = DateType{}
		case "time":
			t.Type = TimeType{}
		case "timestamp":
			t.Type = TimestampType{}
		case "timestamptz":
			t.Type = TimestampTzType{}
		case "string":
			t.Type = StringType{}
		case "uuid":
			t.Type = UUIDType{}
		case "binary":
			t.Type = BinaryType{}
		default:
			if strings.HasPrefix(typename, "decimal") {
				matches := decimalRegex.FindStringSubmatch(typename)
				if len(matches) != 3 {
					return fmt.Errorf("%w: %s", ErrInvalidTypeString, typename)
				}

				prec, _ := strconv.Atoi(matches[1])
				scale, _ := strconv.Atoi(matches[2])
				t.Type = DecimalType{precision: prec, scale: scale}

				return nil
			}

			return fmt.Errorf("%w: unrecognized field type", ErrInvalidSchema)
		}

		return nil
	}

	aux := struct {
		TypeName string `json:"type"`
	}{}
	if err = json.Unmarshal(b, &aux); err != nil {
		return err
	}

	switch aux.TypeName {
	case "list":
		t.Type = &ListType{}
	case "map":
		t.Type = &MapType{}
	case "struct":
		t.Type = &StructType{}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidTypeString, aux.TypeName)
	}

	return json.Unmarshal(b, t.Type)
}

// StructField is a single named field of a StructType.
type StructField struct {
	Type `json:"-"`

	Name     string `json:"name"`
	Required bool   `json:"required"`
}

func optOrReq(required bool) string {
	if required {
		return "required"
	}

	return "optional"
}

func (f StructField) String() string {
	return fmt.Sprintf("%s: %s %s", f.Name, optOrReq(f.Required), f.Type)
}

func (f *StructField) Equals(other StructField) bool {
	return f.Name == other.Name &&
		f.Required == other.Required &&
		f.Type.Equals(other.Type)
}

func (f StructField) MarshalJSON() ([]byte, error) {
	type Alias StructField

	return json.Marshal(struct {
		Type *typeIFace `json:"type"`
		*Alias
	}{Type: &typeIFace{f.Type}, Alias: (*Alias)(&f)})
}

func (f *StructField) UnmarshalJSON(b []byte) error {
	type Alias StructField
	aux := struct {
		Type typeIFace `json:"type"`
		*Alias
	}{
		Alias: (*Alias)(f),
	}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	f.Type = aux.Type.Type

	return nil
}

type StructType struct {
	FieldList []StructField `json:"fields"`
}

func (s *StructType) Equals(other Type) bool {
	st, ok := other.(*StructType)
	if !ok {
		return false
	}

	return slices.EqualFunc(s.FieldList, st.FieldList, func(a, b StructField) bool {
		return a.Equals(b)
	})
}

func (s *StructType) Fields() []StructField { return s.FieldList }

// Field returns the direct child field with the given name, case-sensitive.
func (s *StructType) Field(name string) (StructField, bool) {
	for _, f := range s.FieldList {
		if f.Name == name {
			return f, true
		}
	}

	return StructField{}, false
}

// FieldByPath resolves a possibly nested column path against this struct,
// descending through intermediate struct fields.
func (s *StructType) FieldByPath(path ColumnPath) (StructField, bool) {
	if len(path) == 0 {
		return StructField{}, false
	}

	cur := s
	for i, name := range path {
		f, ok := cur.Field(name)
		if !ok {
			return StructField{}, false
		}
		if i == len(path)-1 {
			return f, true
		}

		cur, ok = f.Type.(*StructType)
		if !ok {
			return StructField{}, false
		}
	}

	return StructField{}, false
}

func (s *StructType) MarshalJSON() ([]byte, error) {
	type Alias StructType

	return json.Marshal(struct {
		Type string `json:"type"`
		*Alias
	}{Type: s.Type(), Alias: (*Alias)(s)})
}

func (*StructType) Type() string { return "struct" }
func (s *StructType) String() string {
	var b strings.Builder
	b.WriteString("struct<")
	for i, f := range s.FieldList {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(optOrReq(f.Required))
		b.WriteByte(' ')
		b.WriteString(f.Type.String())
	}
	b.WriteString(">")

	return b.String()
}

type ListType struct {
	Element         Type `json:"-"`
	ElementRequired bool `json:"element-required"`
}

func (l *ListType) MarshalJSON() ([]byte, error) {
	type Alias ListType

	return json.Marshal(struct {
		Type string `json:"type"`
		*Alias
		Element *typeIFace `json:"element"`
	}{Type: l.Type(), Alias: (*Alias)(l), Element: &typeIFace{l.Element}})
}

func (l *ListType) Equals(other Type) bool {
	rhs, ok := other.(*ListType)
	if !ok {
		return false
	}

	return l.Element.Equals(rhs.Element) &&
		l.ElementRequired == rhs.ElementRequired
}

func (l *ListType) Fields() []StructField {
	return []StructField{{
		Name:     "element",
		Type:     l.Element,
		Required: l.ElementRequired,
	}}
}

func (*ListType) Type() string     { return "list" }
func (l *ListType) String() string { return fmt.Sprintf("list<%s>", l.Element) }

func (l *ListType) UnmarshalJSON(b []byte) error {
	aux := struct {
		Elem typeIFace `json:"element"`
		Req  bool      `json:"element-required"`
	}{}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	l.Element = aux.Elem.Type
	l.ElementRequired = aux.Req

	return nil
}

type MapType struct {
	KeyType       Type `json:"-"`
	ValueType     Type `json:"-"`
	ValueRequired bool `json:"value-required"`
}

func (m *MapType) MarshalJSON() ([]byte, error) {
	type Alias MapType

	return json.Marshal(struct {
		Type string `json:"type"`
		*Alias
		Key   *typeIFace `json:"key"`
		Value *typeIFace `json:"value"`
	}{
		Type: m.Type(), Alias: (*Alias)(m),
		Key: &typeIFace{m.KeyType}, Value: &typeIFace{m.ValueType},
	})
}

func (m *MapType) Equals(other Type) bool {
	rhs, ok := other.(*MapType)
	if !ok {
		return false
	}

	return m.KeyType.Equals(rhs.KeyType) &&
		m.ValueType.Equals(rhs.ValueType) &&
		m.ValueRequired == rhs.ValueRequired
}

func (m *MapType) Fields() []StructField {
	return []StructField{
		{Name: "key", Type: m.KeyType, Required: true},
		{Name: "value", Type: m.ValueType, Required: m.ValueRequired},
	}
}

func (*MapType) Type() string { return "map" }
func (m *MapType) String() string {
	return fmt.Sprintf("map<%s, %s>", m.KeyType, m.ValueType)
}

func (m *MapType) UnmarshalJSON(b []byte) error {
	aux := struct {
		Key   typeIFace `json:"key"`
		Value typeIFace `json:"value"`
		Req   bool      `json:"value-required"`
	}{}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	m.KeyType = aux.Key.Type
	m.ValueType = aux.Value.Type
	m.ValueRequired = aux.Req

	return nil
}

type BooleanType struct{}

func (BooleanType) primitive()         {}
func (BooleanType) Type() string       { return "boolean" }
func (BooleanType) String() string     { return "boolean" }
func (BooleanType) Equals(t Type) bool { _, ok := t.(BooleanType); return ok }

type Int32Type struct{}

func (Int32Type) primitive()         {}
func (Int32Type) Type() string       { return "int" }
func (Int32Type) String() string     { return "int" }
func (Int32Type) Equals(t Type) bool { _, ok := t.(Int32Type); return ok }

type Int64Type struct{}

func (Int64Type) primitive()         {}
func (Int64Type) Type() string       { return "long" }
func (Int64Type) String() string     { return "long" }
func (Int64Type) Equals(t Type) bool { _, ok := t.(Int64Type); return ok }

type Float32Type struct{}

func (Float32Type) primitive()         {}
func (Float32Type) Type() string       { return "float" }
func (Float32Type) String() string     { return "float" }
func (Float32Type) Equals(t Type) bool { _, ok := t.(Float32Type); return ok }

type Float64Type struct{}

func (Float64Type) primitive()         {}
func (Float64Type) Type() string       { return "double" }
func (Float64Type) String() string     { return "double" }
func (Float64Type) Equals(t Type) bool { _, ok := t.(Float64Type); return ok }

type DecimalType struct {
	precision, scale int
}

func DecimalTypeOf(prec, scale int) DecimalType {
	return DecimalType{precision: prec, scale: scale}
}

func (d DecimalType) Precision() int { return d.precision }
func (d DecimalType) Scale() int     { return d.scale }

func (DecimalType) primitive() {}
func (d DecimalType) Type() string {
	return fmt.Sprintf("decimal(%d, %d)", d.precision, d.scale)
}
func (d DecimalType) String() string { return d.Type() }
func (d DecimalType) Equals(t Type) bool {
	rhs, ok := t.(DecimalType)

	return ok && d == rhs
}

type DateType struct{}

func (DateType) primitive()         {}
func (DateType) Type() string       { return "date" }
func (DateType) String() string     { return "date" }
func (DateType) Equals(t Type) bool { _, ok := t.(DateType); return ok }

type TimeType struct{}

func (TimeType) primitive()         {}
func (TimeType) Type() string       { return "time" }
func (TimeType) String() string     { return "time" }
func (TimeType) Equals(t Type) bool { _, ok := t.(TimeType); return ok }

type TimestampType struct{}

func (TimestampType) primitive()         {}
func (TimestampType) Type() string       { return "timestamp" }
func (TimestampType) String() string     { return "timestamp" }
func (TimestampType) Equals(t Type) bool { _, ok := t.(TimestampType); return ok }

type TimestampTzType struct{}

func (TimestampTzType) primitive()         {}
func (TimestampTzType) Type() string       { return "timestamptz" }
func (TimestampTzType) String() string     { return "timestamptz" }
func (TimestampTzType) Equals(t Type) bool { _, ok := t.(TimestampTzType); return ok }

// StringType optionally carries the name of the collation governing
// comparisons of its values. The zero value is the default binary collation.
type StringType struct {
	collation string
}

// StringTypeWithCollation returns a string type whose values compare under
// the named collation rather than byte order.
func StringTypeWithCollation(collationName string) StringType {
	return StringType{collation: collationName}
}

func (s StringType) CollationName() string {
	if s.collation == "" {
		return DefaultCollationName
	}

	return s.collation
}

func (StringType) primitive()     {}
func (StringType) Type() string   { return "string" }
func (StringType) String() string { return "string" }
func (s StringType) Equals(t Type) bool {
	rhs, ok := t.(StringType)

	return ok && s.CollationName() == rhs.CollationName()
}

type BinaryType struct{}

func (BinaryType) primitive()         {}
func (BinaryType) Type() string       { return "binary" }
func (BinaryType) String() string     { return "binary" }
func (BinaryType) Equals(t Type) bool { _, ok := t.(BinaryType); return ok }

type UUIDType struct{}

func (UUIDType) primitive()         {}
func (UUIDType) Type() string       { return "uuid" }
func (UUIDType) String() string     { return "uuid" }
func (UUIDType) Equals(t Type) bool { _, ok := t.(UUIDType); return ok }

// PrimitiveTypes is a set of shorthands so that you can use
// "PrimitiveTypes.Int32" rather than "Int32Type{}" for cleaner code.
var PrimitiveTypes = struct {
	Bool        PrimitiveType
	Int32       PrimitiveType
	Int64       PrimitiveType
	Float32     PrimitiveType
	Float64     PrimitiveType
	Date        PrimitiveType
	Time        PrimitiveType
	Timestamp   PrimitiveType
	TimestampTz PrimitiveType
	String      PrimitiveType
	Binary      PrimitiveType
	UUID        PrimitiveType
}{
	Bool:        BooleanType{},
	Int32:       Int32Type{},
	Int64:       Int64Type{},
	Float32:     Float32Type{},
	Float64:     Float64Type{},
	Date:        DateType{},
	Time:        TimeType{},
	Timestamp:   TimestampType{},
	TimestampTz: TimestampTzType{},
	String:      StringType{},
	Binary:      BinaryType{},
	UUID:        UUIDType{},
}
