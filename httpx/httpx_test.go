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

package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"svclib.dev/apperr"
	"svclib.dev/apperr/apis"
	"svclib.dev/apperr/errcode"
	"svclib.dev/apperr/payload"
	"svclib.dev/apperr/status"
)

func testError(t *testing.T) *apperr.Error {
	t.Helper()
	code := payload.ErrorCode{Code: errcode.MustParse("rate_limited"), Description: "too many requests"}
	p := payload.New(code, "rate limit hit")

	e, err := apperr.NewBusiness(http.StatusTooManyRequests, status.Unprocessed, p, "try again later")
	require.NoError(t, err)
	return e
}

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()

	Write(rec, testError(t), Meta{
		Correlation:       "req-123",
		TraceID:           "trace-abc",
		RetryAfterSeconds: 30,
	})

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "30", rec.Header().Get("Retry-After"))

	var view apis.ErrorView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Equal(t, "business", view.Kind)
	require.Equal(t, "unprocessed", view.DomainStatus)
	require.Equal(t, "try again later", view.Message)
	require.Equal(t, "req-123", view.Correlation)
	require.Equal(t, "trace-abc", view.TraceID)
	require.Equal(t, int32(30), view.RetryAfterSeconds)
	require.NotNil(t, view.Payload)
	require.Equal(t, "rate_limited", view.Payload.Code)
}

func TestWrite_NoRetryHint(t *testing.T) {
	rec := httptest.NewRecorder()

	Write(rec, testError(t), Meta{})

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Empty(t, rec.Header().Get("Retry-After"))
}

func TestWrite_NilError(t *testing.T) {
	rec := httptest.NewRecorder()

	Write(rec, nil, Meta{})

	require.Equal(t, http.StatusOK, rec.Code) // untouched recorder default
	require.Zero(t, rec.Body.Len())
}
