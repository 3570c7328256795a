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

// Package adapter converts apperr errors into the neutral view and descriptor
// shapes from the apis package.
package adapter

import (
	"svclib.dev/apperr"
	"svclib.dev/apperr/apis"
)

// ToView converts a domain-level error into a public ErrorView.
//
// No redaction or filtering is performed here; the view exposes exactly what
// the error instance contains, including the payload's native error text.
// Boundaries that must not disclose internals should blank the fields they
// care about before encoding.
func ToView(e *apperr.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Kind:         e.Kind().String(),
		DomainStatus: e.DomainStatus().String(),
		Message:      e.Message(),
	}
	if p := e.Payload(); p != nil {
		v.Payload = &apis.PayloadView{
			Code:            p.Code.Code.String(),
			Description:     p.Description,
			NativeErrorText: p.NativeErrorText(),
		}
	}
	return v
}

// ToDescriptor converts a domain-level error together with its resolved
// transport status into a portable ErrorDescriptor, intended for structured
// logging, tracing, or message bus propagation.
func ToDescriptor(e *apperr.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Kind:         e.Kind().String(),
		DomainStatus: e.DomainStatus().String(),
		HTTPStatus:   st.HTTP,
		GRPCCode:     int(st.GRPC),
		Message:      e.Message(),
	}
	if p := e.Payload(); p != nil {
		d.Code = p.Code.Code.String()
		d.NativeErrorText = p.NativeErrorText()
	}
	return d
}
