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

import "errors"

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidSchema     = errors.New("invalid schema")
	ErrInvalidTypeString = errors.New("invalid type")
	ErrType              = errors.New("type error")
	ErrNotImplemented    = errors.New("not implemented")

	// Collation resolution failures. All of these indicate malformed
	// configuration rather than transient faults and are not retryable.
	ErrUnsupportedCollation     = errors.New("unsupported collation")
	ErrInvalidCollationVersion  = errors.New("invalid collation version")
	ErrInvalidCollationName     = errors.New("invalid collation name")
	ErrInvalidCollationProvider = errors.New("invalid collation provider")
)
