// Copyright (c) 2026 dotandev
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for comparison with errors.Is
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrMissingCustomFields = errors.New("missing required options for custom profile")
	ErrUnknownProfile      = errors.New("unknown profile")
	ErrProfileFile         = errors.New("profile file error")
	ErrProfileValidation   = errors.New("profile validation failed")
	ErrConfigError         = errors.New("config error")
)

// Wrap functions for consistent error wrapping
func WrapInvalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func WrapMissingCustomFields(missing []string) error {
	return fmt.Errorf("%w: %s", ErrMissingCustomFields, strings.Join(missing, ", "))
}

func WrapUnknownProfile(key string) error {
	return fmt.Errorf("%w: %s. Must be one of: aztec, soundness, zama, custom", ErrUnknownProfile, key)
}

func WrapProfileFile(err error) error {
	return fmt.Errorf("%w: %w", ErrProfileFile, err)
}

func WrapProfileValidation(msg string) error {
	return fmt.Errorf("%w: %s", ErrProfileValidation, msg)
}

func WrapConfigError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrConfigError, msg, err)
}
