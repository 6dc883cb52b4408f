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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocaleName(t *testing.T) {
	tests := []struct {
		tag      string
		expected string
	}{
		{"en", "en"},
		{"en-US", "en_USA"},
		{"sr-Latn", "sr_Latn"},
		{"sr-Cyrl-RS", "sr_Cyrl_SRB"},
		{"es-419", "es_419"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			name, ok := localeName(language.MustParse(tt.tag))
			require.True(t, ok)
			assert.Equal(t, tt.expected, name)
		})
	}

	// variant and extension subtags disqualify a tag
	for _, tag := range []string{"de-1901", "en-u-co-phonebk"} {
		_, ok := localeName(language.MustParse(tag))
		assert.False(t, ok, tag)
	}
}

func TestLocaleRegistry(t *testing.T) {
	reg, err := newLocaleRegistry([]language.Tag{
		language.MustParse("en"),
		language.MustParse("en-US"),
		language.MustParse("sr-Latn"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"UNICODE", "en", "en_USA", "sr_Latn"}, reg.names)

	tag, ok := reg.resolve("UNICODE")
	require.True(t, ok)
	assert.Equal(t, language.Und, tag)

	tag, ok = reg.resolve("EN_USA")
	require.True(t, ok)
	assert.Equal(t, language.MustParse("en-US"), tag)

	// tags carrying variants are skipped rather than registered
	reg, err = newLocaleRegistry([]language.Tag{language.MustParse("de-1901")})
	require.NoError(t, err)
	assert.Equal(t, []string{"UNICODE"}, reg.names)

	_, err = newLocaleRegistry([]language.Tag{
		language.MustParse("en"),
		language.MustParse("en"),
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLongestPrefixLocaleMatch(t *testing.T) {
	reg, err := newLocaleRegistry([]language.Tag{
		language.MustParse("en"),
		language.MustParse("en-US"),
	})
	require.NoError(t, err)

	// EN_USA must win over the shorter EN prefix
	locale, ok := reg.longestPrefix("EN_USA_CI")
	require.True(t, ok)
	assert.Equal(t, "EN_USA", locale)

	locale, ok = reg.longestPrefix("EN_CI")
	require.True(t, ok)
	assert.Equal(t, "EN", locale)

	_, ok = reg.longestPrefix("FR_CI")
	assert.False(t, ok)
}

func TestResolveICUCollationLocales(t *testing.T) {
	reg, err := newLocaleRegistry([]language.Tag{
		language.MustParse("en"),
		language.MustParse("en-US"),
	})
	require.NoError(t, err)

	for _, name := range []string{"EN", "EN_CI", "EN_USA", "EN_USA_CI_AI", "en_usa_ci"} {
		t.Run(name, func(t *testing.T) {
			c, err := resolveICUCollation(reg, CollationIdentifier{
				Provider: ProviderICU, Name: name,
			})
			require.NoError(t, err)
			assert.Zero(t, c.Comparator("same", "same"))
		})
	}

	// a sensitivity specifier alone is not a locale
	_, err = resolveICUCollation(reg, CollationIdentifier{
		Provider: ProviderICU, Name: "CI",
	})
	assert.ErrorIs(t, err, ErrInvalidCollationName)

	// junk between the locale and the specifiers
	_, err = resolveICUCollation(reg, CollationIdentifier{
		Provider: ProviderICU, Name: "EN_USA_XX_CI",
	})
	assert.ErrorIs(t, err, ErrInvalidCollationName)
}
