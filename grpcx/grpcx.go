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

// Package grpcx projects apperr errors onto gRPC status errors, carrying the
// structured details as google.rpc error detail messages.
package grpcx

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"svclib.dev/apperr"
	"svclib.dev/apperr/apis"
)

// CodeOf maps an HTTP error status onto the closest gRPC status code.
//
// Statuses without a distinguished counterpart collapse onto InvalidArgument
// (4xx) or Internal (5xx). Non-error statuses — which a validated
// apperr.Error can never carry — map to Unknown.
func CodeOf(httpStatus int) codes.Code {
	switch httpStatus {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound, http.StatusGone:
		return codes.NotFound
	case http.StatusConflict:
		return codes.Aborted
	case http.StatusPreconditionFailed:
		return codes.FailedPrecondition
	case http.StatusRequestedRangeNotSatisfiable:
		return codes.OutOfRange
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case 499: // client closed request (nginx convention)
		return codes.Canceled
	case http.StatusNotImplemented:
		return codes.Unimplemented
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	case http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	}
	switch {
	case httpStatus >= 500 && httpStatus <= 599:
		return codes.Internal
	case httpStatus >= 400:
		return codes.InvalidArgument
	}
	return codes.Unknown
}

// StatusOf resolves the transport status pair for a single error: the HTTP
// status the error already carries, plus its gRPC projection.
func StatusOf(e *apperr.Error) apis.Status {
	if e == nil {
		return apis.Status{}
	}
	return apis.Status{HTTP: e.HTTPStatus(), GRPC: CodeOf(e.HTTPStatus())}
}

// Meta holds optional per-request hints the interceptor can attach as
// additional status details.
type Meta struct {
	// RetryAfter, when positive, is published as a google.rpc.RetryInfo
	// detail so clients can back off sensibly.
	RetryAfter time.Duration
}

// MetaFn extracts Meta from the request context and the domain error. It may
// return the zero Meta when nothing is available.
type MetaFn func(ctx context.Context, e *apperr.Error) Meta

// UnaryServerInterceptor returns a gRPC interceptor that maps apperr errors
// returned by handlers into gRPC status errors with a google.rpc.ErrorInfo
// detail (and a RetryInfo detail when Meta provides a hint).
//
// domain is the ErrorInfo domain, typically the service's vanity host
// (e.g. "svclib.dev"). metaFn may be nil. Errors that are not *apperr.Error
// pass through untouched.
func UnaryServerInterceptor(domain string, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *apperr.Error) Meta { return Meta{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		e, ok := err.(*apperr.Error)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}

		st := StatusOf(e)
		base := gstatus.New(st.GRPC, e.Message())

		with, derr := base.WithDetails(details(domain, e, st, metaFn(ctx, e))...)
		if derr != nil {
			// Failing to attach details must never eat the error itself.
			return nil, base.Err()
		}
		return nil, with.Err()
	}
}

// ExtractErrorInfo pulls the google.rpc.ErrorInfo detail out of a gRPC error,
// if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// details builds the status detail messages for one error occurrence.
func details(domain string, e *apperr.Error, st apis.Status, meta Meta) []protoadapt.MessageV1 {
	info := &errdetails.ErrorInfo{
		Reason:   reasonOf(e),
		Domain:   domain,
		Metadata: metadataOf(e, st),
	}

	ds := []protoadapt.MessageV1{info}
	if meta.RetryAfter > 0 {
		ds = append(ds, &errdetails.RetryInfo{RetryDelay: durationpb.New(meta.RetryAfter)})
	}
	return ds
}

// reasonOf derives the ErrorInfo reason: the payload's stable code when
// present, otherwise the kind. ErrorInfo reasons are UPPER_SNAKE_CASE by
// convention and our codes are lower_snake_case, so uppercase here.
func reasonOf(e *apperr.Error) string {
	if c := e.ErrorCode(); c != "" {
		return strings.ToUpper(c)
	}
	return strings.ToUpper(e.Kind().String())
}

func metadataOf(e *apperr.Error, st apis.Status) map[string]string {
	md := map[string]string{
		"kind":          e.Kind().String(),
		"domain_status": e.DomainStatus().String(),
		"http_status":   strconv.Itoa(st.HTTP),
	}
	if p := e.Payload(); p != nil {
		if p.Description != "" {
			md["description"] = p.Description
		}
		if native := p.NativeErrorText(); native != "" {
			md["native_error_text"] = native
		}
	}
	return md
}
