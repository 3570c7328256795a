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

// Package status defines the closed enumeration of operation outcome states
// shared across svclib services.
//
// A "domain status" classifies what happened to an operation independently of
// any transport: it either succeeded, failed, completed partially, or was
// never processed at all. The set is deliberately closed — adding a value is
// a cross-service contract change, not a local edit.
//
// Note that Success is a perfectly valid Status on its own; it is the apperr
// package that forbids attaching it to an error value.
package status
