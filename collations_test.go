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
	"slices"
	"testing"

	"github.com/dataskip/dataskip-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func icu(name string) dataskip.CollationIdentifier {
	return dataskip.CollationIdentifier{Provider: dataskip.ProviderICU, Name: name}
}

func TestParseCollationIdentifier(t *testing.T) {
	tests := []struct {
		str      string
		expected dataskip.CollationIdentifier
	}{
		{"SPARK.UTF8_BINARY", dataskip.DefaultCollationIdentifier},
		{"spark.UTF8_BINARY", dataskip.DefaultCollationIdentifier},
		{"ICU.UNICODE_CI", icu("UNICODE_CI")},
		{"icu.UNICODE", icu("UNICODE")},
		{"ICU.en_USA.75.1", dataskip.CollationIdentifier{
			Provider: "ICU", Name: "en_USA", Version: "75.1",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			id, err := dataskip.ParseCollationIdentifier(tt.str)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}

	_, err := dataskip.ParseCollationIdentifier("ACME.UNICODE")
	assert.ErrorIs(t, err, dataskip.ErrInvalidCollationProvider)

	for _, s := range []string{"", "ICU", "ICU.", ".UNICODE"} {
		_, err := dataskip.ParseCollationIdentifier(s)
		assert.ErrorIs(t, err, dataskip.ErrInvalidCollationName, s)
	}
}

func TestCollationIdentifierString(t *testing.T) {
	assert.Equal(t, "SPARK.UTF8_BINARY", dataskip.DefaultCollationIdentifier.String())

	versioned := icu("UNICODE_CI")
	versioned.Version = dataskip.ICUCollatorVersion
	assert.Equal(t, "ICU.UNICODE_CI.75.1", versioned.String())
	assert.Equal(t, "ICU.UNICODE_CI", versioned.StringWithoutVersion())
}

func TestFetchDefaultCollation(t *testing.T) {
	c, err := dataskip.FetchCollation(dataskip.DefaultCollationIdentifier)
	require.NoError(t, err)
	assert.Equal(t, dataskip.DefaultCollationIdentifier, c.Identifier)

	// byte order: uppercase before lowercase, shorter prefix first
	assert.Negative(t, c.Comparator("A", "a"))
	assert.Negative(t, c.Comparator("abc", "abcd"))
	assert.Zero(t, c.Comparator("abc", "abc"))
	assert.Positive(t, c.Comparator("b", "a"))

	// the zero identifier behaves as the default
	z, err := dataskip.FetchCollation(dataskip.CollationIdentifier{})
	require.NoError(t, err)
	assert.Equal(t, dataskip.DefaultCollationIdentifier, z.Identifier)
}

func TestFetchCollationErrors(t *testing.T) {
	_, err := dataskip.FetchCollation(dataskip.CollationIdentifier{
		Provider: dataskip.ProviderSpark, Name: "UTF8_LCASE",
	})
	assert.ErrorIs(t, err, dataskip.ErrUnsupportedCollation)

	_, err = dataskip.FetchCollation(dataskip.CollationIdentifier{
		Provider: "ACME", Name: "UNICODE",
	})
	assert.ErrorIs(t, err, dataskip.ErrInvalidCollationProvider)

	versioned := icu("UNICODE_CI")
	versioned.Version = "99.9"
	_, err = dataskip.FetchCollation(versioned)
	assert.ErrorIs(t, err, dataskip.ErrInvalidCollationVersion)

	_, err = dataskip.FetchCollation(icu("UNICODE_XYZ"))
	assert.ErrorIs(t, err, dataskip.ErrInvalidCollationName)

	_, err = dataskip.FetchCollation(icu("NOSUCHLOCALE"))
	assert.ErrorIs(t, err, dataskip.ErrInvalidCollationName)
}

func TestFetchCollationVersioned(t *testing.T) {
	versioned := icu("UNICODE")
	versioned.Version = dataskip.ICUCollatorVersion

	c, err := dataskip.FetchCollation(versioned)
	require.NoError(t, err)
	assert.Equal(t, versioned, c.Identifier)
	assert.Zero(t, c.Comparator("abc", "abc"))
}

func TestICUSensitivitySuffixes(t *testing.T) {
	// all spellings of the case-sensitive accent-sensitive class
	for _, name := range []string{"UNICODE", "UNICODE_AS", "UNICODE_CS",
		"UNICODE_AS_CS", "UNICODE_CS_AS"} {
		t.Run(name, func(t *testing.T) {
			c, err := dataskip.FetchCollation(icu(name))
			require.NoError(t, err)
			assert.NotZero(t, c.Comparator("hello", "HELLO"))
			assert.NotZero(t, c.Comparator("café", "cafe"))
			assert.Zero(t, c.Comparator("hello", "hello"))
		})
	}

	for _, name := range []string{"UNICODE_CI", "UNICODE_AS_CI", "UNICODE_CI_AS"} {
		t.Run(name, func(t *testing.T) {
			c, err := dataskip.FetchCollation(icu(name))
			require.NoError(t, err)
			assert.Zero(t, c.Comparator("hello", "HELLO"))
			assert.NotZero(t, c.Comparator("café", "cafe"))
		})
	}

	for _, name := range []string{"UNICODE_AI", "UNICODE_CS_AI", "UNICODE_AI_CS"} {
		t.Run(name, func(t *testing.T) {
			c, err := dataskip.FetchCollation(icu(name))
			require.NoError(t, err)
			assert.Zero(t, c.Comparator("café", "cafe"))
			assert.NotZero(t, c.Comparator("hello", "HELLO"))
		})
	}

	for _, name := range []string{"UNICODE_CI_AI", "UNICODE_AI_CI"} {
		t.Run(name, func(t *testing.T) {
			c, err := dataskip.FetchCollation(icu(name))
			require.NoError(t, err)
			assert.Zero(t, c.Comparator("hello", "HELLO"))
			assert.Zero(t, c.Comparator("café", "cafe"))
			assert.Zero(t, c.Comparator("CAFÉ", "cafe"))
		})
	}
}

func TestICUNameCaseInsensitive(t *testing.T) {
	c, err := dataskip.FetchCollation(icu("unicode_ci"))
	require.NoError(t, err)
	assert.Zero(t, c.Comparator("hello", "HELLO"))
}

func TestICUOrderingDiffersFromBinary(t *testing.T) {
	c, err := dataskip.FetchCollation(icu("UNICODE"))
	require.NoError(t, err)

	// root collation orders case after letter identity, byte order does not
	assert.Negative(t, c.Comparator("apple", "Banana"))
	assert.Positive(t, dataskip.DefaultCollation.Comparator("apple", "Banana"))
}

func TestFetchCollationConcurrent(t *testing.T) {
	id := icu("UNICODE_CI")

	results := make([]dataskip.Collation, 16)
	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			c, err := dataskip.FetchCollation(id)
			if err != nil {
				return err
			}
			results[i] = c

			return nil
		})
	}
	require.NoError(t, g.Wait())

	pairs := [][2]string{
		{"hello", "HELLO"}, {"café", "cafe"}, {"a", "b"}, {"b", "a"},
	}
	first := results[0]
	for _, c := range results[1:] {
		assert.Equal(t, first.Identifier, c.Identifier)
		for _, p := range pairs {
			assert.Equal(t, first.Comparator(p[0], p[1]), c.Comparator(p[0], p[1]))
		}
	}
}

func TestLocaleNames(t *testing.T) {
	names, err := dataskip.LocaleNames()
	require.NoError(t, err)

	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, "UNICODE")
}
