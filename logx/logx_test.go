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

package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"svclib.dev/apperr"
	"svclib.dev/apperr/errcode"
	"svclib.dev/apperr/payload"
	"svclib.dev/apperr/status"
)

func TestObject(t *testing.T) {
	code := payload.ErrorCode{Code: errcode.MustParse("storage_down"), Description: "storage unavailable"}
	p := payload.New(code, "primary store unreachable")

	e, err := apperr.NewSystem(http.StatusServiceUnavailable, status.Failure, p, "db is down",
		apperr.WithCause(errors.New("connection refused")))
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Error().Object("error", Object(e)).Msg("request failed")

	var line struct {
		Error struct {
			Kind            string `json:"kind"`
			HTTPStatus      int    `json:"http_status"`
			DomainStatus    string `json:"domain_status"`
			Message         string `json:"message"`
			ErrorCode       string `json:"error_code"`
			NativeErrorText string `json:"native_error_text"`
			Cause           string `json:"cause"`
		} `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	require.Equal(t, "request failed", line.Message)
	require.Equal(t, "system", line.Error.Kind)
	require.Equal(t, http.StatusServiceUnavailable, line.Error.HTTPStatus)
	require.Equal(t, "failure", line.Error.DomainStatus)
	require.Equal(t, "db is down", line.Error.Message)
	require.Equal(t, "storage_down", line.Error.ErrorCode)
	require.Equal(t, "connection refused", line.Error.NativeErrorText)
	require.Equal(t, "connection refused", line.Error.Cause)
}

func TestLog(t *testing.T) {
	code := payload.ErrorCode{Code: errcode.MustParse("storage_down"), Description: "storage unavailable"}
	p := payload.New(code, "primary store unreachable")

	e, err := apperr.NewSystem(http.StatusServiceUnavailable, status.Failure, p, "db is down")
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	Log(logger.Error(), e).Msg("request failed")

	var line struct {
		Error struct {
			Kind       string `json:"kind"`
			HTTPStatus int    `json:"http_status"`
			ErrorCode  string `json:"error_code"`
		} `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "request failed", line.Message)
	require.Equal(t, "system", line.Error.Kind)
	require.Equal(t, http.StatusServiceUnavailable, line.Error.HTTPStatus)
	require.Equal(t, "storage_down", line.Error.ErrorCode)
}

func TestObject_NilError(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Error().Object("error", Object(nil)).Msg("boom")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, map[string]any{}, line["error"])
}
