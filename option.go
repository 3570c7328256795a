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

package apperr

// Option configures construction behavior in New. Options run before
// validation and never survive the constructor call.
type Option func(*options)

type options struct {
	cause      error
	noBackfill bool
}

// WithCause attaches the underlying error that triggered this one. The cause
// is held as a weak back-reference (the Error does not manage its lifecycle)
// and is exposed via Unwrap for errors.Is / errors.As.
func WithCause(err error) Option {
	return func(o *options) { o.cause = err }
}

// WithoutNativeErrorBackfill disables the constructor's root-cause walk, so
// the payload's native error text stays exactly as the caller left it even
// when a cause is attached.
func WithoutNativeErrorBackfill() Option {
	return func(o *options) { o.noBackfill = true }
}
