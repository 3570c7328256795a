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

// Package logx exposes apperr errors as zerolog objects so services can log
// the full error shape as structured fields instead of a flattened string.
package logx

import (
	"github.com/rs/zerolog"

	"svclib.dev/apperr"
)

// Object wraps e as a zerolog.LogObjectMarshaler:
//
//	log.Error().Object("error", logx.Object(e)).Msg("request failed")
func Object(e *apperr.Error) zerolog.LogObjectMarshaler {
	return object{e: e}
}

// Log attaches e to ev under the "error" key and returns ev for chaining:
//
//	logx.Log(log.Error(), e).Msg("request failed")
func Log(ev *zerolog.Event, e *apperr.Error) *zerolog.Event {
	return ev.Object("error", Object(e))
}

type object struct {
	e *apperr.Error
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (o object) MarshalZerologObject(ev *zerolog.Event) {
	e := o.e
	if e == nil {
		return
	}
	ev.Str("kind", e.Kind().String()).
		Int("http_status", e.HTTPStatus()).
		Str("domain_status", e.DomainStatus().String()).
		Str("message", e.Message())

	if p := e.Payload(); p != nil {
		ev.Str("error_code", p.Code.Code.String())
		if p.Description != "" {
			ev.Str("error_description", p.Description)
		}
		if native := p.NativeErrorText(); native != "" {
			ev.Str("native_error_text", native)
		}
	}
	if cause := e.Unwrap(); cause != nil {
		ev.AnErr("cause", cause)
	}
}
