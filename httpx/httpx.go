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

// Package httpx writes apperr errors as HTTP responses.
//
// The error itself dictates the response status line — every apperr.Error
// carries a validated 4xx/5xx status by construction — so no status
// resolution happens here, only encoding.
package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"svclib.dev/apperr"
	"svclib.dev/apperr/adapter"
)

// Meta carries extra context that the HTTP layer can add on top of the error
// itself. All fields are optional and typically come from request context,
// headers, or rate-limiter output.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// Write serializes the error's view as a JSON body and writes it with the
// error's own HTTP status. A positive RetryAfterSeconds also sets the
// Retry-After header.
//
// No automatic redaction or filtering is performed: whatever is present in
// the error and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed. A nil error writes nothing.
func Write(rw http.ResponseWriter, e *apperr.Error, meta Meta) {
	if e == nil {
		return
	}

	view := adapter.ToView(e)
	view.Correlation = meta.Correlation
	view.TraceID = meta.TraceID
	view.SpanID = meta.SpanID
	view.RetryAfterSeconds = meta.RetryAfterSeconds

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(e.HTTPStatus())

	b, _ := json.Marshal(view)
	_, _ = rw.Write(b)
}
