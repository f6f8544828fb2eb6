// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of FREQGATE.
//
//  FREQGATE is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  FREQGATE is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with FREQGATE.  If not, see <https://www.gnu.org/licenses/>.

package merror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound = errors.New("not found")
)

type InputError struct {
	Msg string
}

func (err InputError) Error() string {
	return err.Msg
}

func (err InputError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ----------------------------

type InternalError struct {
	Msg string
}

func (err InternalError) Error() string {
	return err.Msg
}

func (err InternalError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ----------------------------

// TransportError means we were not able to reach the frequency
// database or it responded with a non-success status.
type TransportError struct {
	URL    string
	Status int
	Cause  error
}

func (err TransportError) Error() string {
	if err.Cause != nil {
		return fmt.Sprintf("failed to query %s: %s", err.URL, err.Cause)
	}
	return fmt.Sprintf("failed to query %s: status %d", err.URL, err.Status)
}

func (err TransportError) Unwrap() error {
	return err.Cause
}

func (err TransportError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}

// ----------------------------

// MalformedResponseError is returned in case the frequency
// database responds with a success status but the body
// does not have the expected structure (the service is known
// to return e.g. a plain string with status 200).
type MalformedResponseError struct {
	Msg string
}

func (err MalformedResponseError) Error() string {
	return "malformed response: " + err.Msg
}

func (err MalformedResponseError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}

// -----------------

// HTTPStatusOf maps an error to a proper HTTP status
// of our own API.
func HTTPStatusOf(err error) int {
	var inputErr InputError
	var transErr TransportError
	var malfErr MalformedResponseError
	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &transErr), errors.As(err, &malfErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func PanicValueToErr(v any) (err error) {
	switch tr := v.(type) {
	case error:
		err = fmt.Errorf("recovered panic: %w", tr)
	case string:
		err = fmt.Errorf("recovered panic: %s", tr)
	default:
		err = fmt.Errorf("recovered panic from an error of type %T", v)
	}
	return
}
