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
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	// ProviderSpark is the provider namespace of the built-in binary
	// collations. ProviderICU is the namespace of locale-aware collations
	// backed by the Unicode collation tables.
	ProviderSpark = "SPARK"
	ProviderICU   = "ICU"

	// DefaultCollationName is the name of the binary collation used for
	// every string column that is not configured otherwise. Its comparator
	// is plain byte-order comparison.
	DefaultCollationName = "UTF8_BINARY"

	// ICUCollatorVersion is the only collator format version accepted on
	// versioned ICU collation identifiers.
	ICUCollatorVersion = "75.1"

	// rootLocaleName is a fixed alias for the root locale.
	rootLocaleName = "UNICODE"

	// maxLocales caps the number of registered locales. Locale identity is
	// encoded in a 12-bit field in the binary layout of collated stats, so
	// the registry must never outgrow it.
	maxLocales = 1 << 12
)

// CollationIdentifier names a collation as provider + name + optional
// version. It is a plain comparable value; two identifiers differing only
// by version are distinct.
type CollationIdentifier struct {
	Provider string
	Name     string
	Version  string
}

// DefaultCollationIdentifier identifies the binary collation every string
// column defaults to.
var DefaultCollationIdentifier = CollationIdentifier{
	Provider: ProviderSpark,
	Name:     DefaultCollationName,
}

// ParseCollationIdentifier parses the "<PROVIDER>.<NAME>[.<VERSION>]"
// string form. The provider is matched case-insensitively; versions may
// themselves contain dots.
func ParseCollationIdentifier(s string) (CollationIdentifier, error) {
	parts := strings.SplitN(s, ".", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return CollationIdentifier{}, fmt.Errorf("%w: %s", ErrInvalidCollationName, s)
	}

	id := CollationIdentifier{
		Provider: strings.ToUpper(parts[0]),
		Name:     parts[1],
	}
	if len(parts) == 3 {
		id.Version = parts[2]
	}

	switch id.Provider {
	case ProviderSpark, ProviderICU:
		return id, nil
	}

	return CollationIdentifier{}, fmt.Errorf("%w: %s", ErrInvalidCollationProvider, parts[0])
}

// IsDefault reports whether this identifier denotes the default binary
// collation. The zero identifier also counts as default so that predicates
// constructed without an explicit collation behave as uncollated.
func (c CollationIdentifier) IsDefault() bool {
	return c == CollationIdentifier{} || c == DefaultCollationIdentifier
}

func (c CollationIdentifier) Equals(other CollationIdentifier) bool {
	return c == other
}

func (c CollationIdentifier) String() string {
	if c.Version == "" {
		return c.StringWithoutVersion()
	}

	return c.Provider + "." + c.Name + "." + c.Version
}

// StringWithoutVersion formats the identifier as "<PROVIDER>.<NAME>".
func (c CollationIdentifier) StringWithoutVersion() string {
	return c.Provider + "." + c.Name
}

// Collation pairs an identifier with the concrete comparator implementing
// it. The comparator is a pure function value with total-order semantics:
// negative if a sorts before b, zero if they are equivalent, positive
// otherwise. It is safe for unrestricted concurrent use.
type Collation struct {
	Identifier CollationIdentifier
	Comparator func(a, b string) int
}

// DefaultCollation is the shared binary collation.
var DefaultCollation = Collation{
	Identifier: DefaultCollationIdentifier,
	Comparator: strings.Compare,
}

// collationCache memoizes resolved collations for the process lifetime.
// Concurrent resolution of the same uncached identifier may build twice;
// results are pure functions of the key, so either value is equivalent.
var collationCache sync.Map

// FetchCollation resolves a collation identifier to a concrete Collation.
// The default identifier resolves to the shared DefaultCollation without
// touching the cache. Resolution failures indicate malformed configuration
// and are not retryable.
func FetchCollation(id CollationIdentifier) (Collation, error) {
	if id.IsDefault() {
		return DefaultCollation, nil
	}

	if v, ok := collationCache.Load(id); ok {
		return v.(Collation), nil
	}

	var (
		c   Collation
		err error
	)
	switch id.Provider {
	case ProviderSpark:
		c, err = fetchBinaryCollation(id)
	case ProviderICU:
		c, err = fetchICUCollation(id)
	default:
		err = fmt.Errorf("%w: %s", ErrInvalidCollationProvider, id.Provider)
	}
	if err != nil {
		return Collation{}, err
	}

	actual, _ := collationCache.LoadOrStore(id, c)

	return actual.(Collation), nil
}

func fetchBinaryCollation(id CollationIdentifier) (Collation, error) {
	if id.Name != DefaultCollationName {
		return Collation{}, fmt.Errorf("%w: %s", ErrUnsupportedCollation, id.StringWithoutVersion())
	}

	return Collation{Identifier: id, Comparator: strings.Compare}, nil
}

// caseSensitivity and accentSensitivity are the two orthogonal specifiers
// an ICU collation name may carry after its locale.
type caseSensitivity int

const (
	caseSensitive caseSensitivity = iota
	caseInsensitive
)

type accentSensitivity int

const (
	accentSensitive accentSensitivity = iota
	accentInsensitive
)

func fetchICUCollation(id CollationIdentifier) (Collation, error) {
	reg, err := globalLocaleRegistry()
	if err != nil {
		return Collation{}, err
	}

	return resolveICUCollation(reg, id)
}

func resolveICUCollation(reg *localeRegistry, id CollationIdentifier) (Collation, error) {
	if id.Version != "" && id.Version != ICUCollatorVersion {
		return Collation{}, fmt.Errorf("%w: %s", ErrInvalidCollationVersion, id.Version)
	}

	name := strings.ToUpper(id.Name)

	locale, ok := reg.longestPrefix(name)
	if !ok {
		return Collation{}, fmt.Errorf("%w: %s", ErrInvalidCollationName, id.StringWithoutVersion())
	}

	cs, as, err := parseSensitivity(id, name, locale)
	if err != nil {
		return Collation{}, err
	}

	tag, _ := reg.resolve(locale)

	return Collation{
		Identifier: id,
		Comparator: newCollatorComparator(tag, cs, as),
	}, nil
}

// parseSensitivity matches the remainder of the collation name after the
// locale against the eight canonical suffix spellings. Specifier pairs are
// order-insensitive.
func parseSensitivity(id CollationIdentifier, name, locale string) (caseSensitivity, accentSensitivity, error) {
	switch name {
	case locale, locale + "_AS", locale + "_CS", locale + "_AS_CS", locale + "_CS_AS":
		return caseSensitive, accentSensitive, nil
	case locale + "_CI", locale + "_AS_CI", locale + "_CI_AS":
		return caseInsensitive, accentSensitive, nil
	case locale + "_AI", locale + "_CS_AI", locale + "_AI_CS":
		return caseSensitive, accentInsensitive, nil
	case locale + "_AI_CI", locale + "_CI_AI":
		return caseInsensitive, accentInsensitive, nil
	}

	return 0, 0, fmt.Errorf("%w: %s", ErrInvalidCollationName, id.StringWithoutVersion())
}

// newCollatorComparator builds a collator for the tagged locale variant and
// wraps its comparison operation as a plain function value. The underlying
// collator reuses internal iterators and must not be shared between
// goroutines, so the wrapper serializes access; callers see a pure,
// concurrency-safe comparator.
func newCollatorComparator(tag language.Tag, cs caseSensitivity, as accentSensitivity) func(a, b string) int {
	opts := make([]collate.Option, 0, 2)
	if cs == caseInsensitive {
		opts = append(opts, collate.IgnoreCase)
	}
	if as == accentInsensitive {
		opts = append(opts, collate.IgnoreDiacritics)
	}

	c := collate.New(tag, opts...)
	var mu sync.Mutex

	return func(a, b string) int {
		mu.Lock()
		defer mu.Unlock()

		return c.CompareString(a, b)
	}
}

// localeRegistry is the read-only table of locales eligible to back ICU
// collations. It is built once and never mutated afterwards.
type localeRegistry struct {
	tags  map[string]language.Tag // canonical locale name -> tag
	upper map[string]string       // upper-cased name -> canonical name
	names []string                // canonical names, sorted
}

var globalLocaleRegistry = sync.OnceValues(func() (*localeRegistry, error) {
	return newLocaleRegistry(collate.Supported())
})

// newLocaleRegistry formats each available locale as
// language[_Script][_CCC] (CCC being the region's 3-letter code), skipping
// locales that carry variant or extension subtags, and registers the fixed
// UNICODE alias for the root locale. Locale names must be unique, also
// after upper-casing.
func newLocaleRegistry(available []language.Tag) (*localeRegistry, error) {
	r := &localeRegistry{
		tags:  map[string]language.Tag{rootLocaleName: language.Und},
		upper: make(map[string]string),
	}

	for _, t := range available {
		name, ok := localeName(t)
		if !ok {
			continue
		}

		if _, dup := r.tags[name]; dup {
			return nil, fmt.Errorf("%w: duplicate locale name %s", ErrInvalidArgument, name)
		}
		r.tags[name] = t
	}

	for name := range r.tags {
		up := strings.ToUpper(name)
		if _, dup := r.upper[up]; dup {
			return nil, fmt.Errorf("%w: locale names %s and %s collide after upper-casing",
				ErrInvalidArgument, r.upper[up], name)
		}
		r.upper[up] = name
	}

	r.names = slices.Sorted(maps.Keys(r.tags))
	if len(r.names) > maxLocales {
		return nil, fmt.Errorf("%w: %d locales exceed the supported maximum of %d",
			ErrInvalidArgument, len(r.names), maxLocales)
	}

	return r, nil
}

// localeName formats a tag as language[_Script][_CCC]. Returns false for
// tags that should not be registered: no base language, or carrying
// variant/extension subtags beyond base/script/region.
func localeName(t language.Tag) (string, bool) {
	base, script, region := t.Raw()
	if base.String() == "und" {
		return "", false
	}

	// Recomposing only the raw base/script/region drops any variant or
	// extension subtags; a mismatch flags the tag as carrying them.
	clean, err := language.Compose(base, script, region)
	if err != nil || clean.String() != t.String() {
		return "", false
	}

	var b strings.Builder
	b.WriteString(base.String())
	if s := script.String(); s != "Zzzz" {
		b.WriteByte('_')
		b.WriteString(s)
	}
	if region.String() != "ZZ" {
		b.WriteByte('_')
		if iso3 := region.ISO3(); iso3 != "" && iso3 != "ZZZ" {
			b.WriteString(iso3)
		} else {
			// numeric UN M.49 regions have no 3-letter code
			b.WriteString(region.String())
		}
	}

	return b.String(), true
}

// longestPrefix returns the longest prefix of the upper-cased name that is
// a registered locale. Script and country suffixes in locale names can look
// like sensitivity specifiers, so prefix length, not first match, is what
// disambiguates.
func (r *localeRegistry) longestPrefix(upperName string) (string, bool) {
	last := ""
	for i := 1; i <= len(upperName); i++ {
		if _, ok := r.upper[upperName[:i]]; ok {
			last = upperName[:i]
		}
	}

	return last, last != ""
}

func (r *localeRegistry) resolve(upperLocale string) (language.Tag, bool) {
	canonical, ok := r.upper[upperLocale]
	if !ok {
		return language.Und, false
	}

	t, ok := r.tags[canonical]

	return t, ok
}

// LocaleNames returns the sorted names of all locales eligible to back ICU
// collations, including the UNICODE root alias.
func LocaleNames() ([]string, error) {
	reg, err := globalLocaleRegistry()
	if err != nil {
		return nil, err
	}

	return slices.Clone(reg.names), nil
}
