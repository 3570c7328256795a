/*
   Copyright 2026 The SvcLib Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errcode provides parsing, normalization and validation for stable
// error-code identifiers.
//
// A code is the machine-readable identity of a failure class, such as
// "order_rejected" or "token_expired". Codes are meant to be:
//
//   - short and stable across releases;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - safe to put in JSON payloads and to key registries by.
//
// Empty codes ("") are NOT allowed: every payload carries a non-empty code.
package errcode
