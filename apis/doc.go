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

// Package apis defines the public Go-level contracts for svclib error
// handling.
//
// The goal of this package is to provide small, composable interfaces and
// view types that transport adapters, loggers and business code can depend on
// without importing the concrete error implementation. Concrete error types
// (apperr.Error) implement these interfaces; callers should target the
// interfaces, not the concrete types.
//
// This package must remain lightweight: interfaces, view structs, and nothing
// heavier than the gRPC code enum.
package apis
