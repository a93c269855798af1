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
	"testing"
)

func TestWrappedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"invalid input", WrapInvalidInput("tx_count must be positive"), ErrInvalidInput},
		{"missing custom fields", WrapMissingCustomFields([]string{"--proof-gas"}), ErrMissingCustomFields},
		{"unknown profile", WrapUnknownProfile("optimism"), ErrUnknownProfile},
		{"profile file", WrapProfileFile(fmt.Errorf("no such file")), ErrProfileFile},
		{"profile validation", WrapProfileValidation("key is required"), ErrProfileValidation},
		{"config", WrapConfigError("failed to read config file", fmt.Errorf("permission denied")), ErrConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false", tt.err)
			}
		})
	}
}

func TestWrapMissingCustomFields_ListsAllFlags(t *testing.T) {
	err := WrapMissingCustomFields([]string{"--proof-gas", "--calldata-gas-per-tx", "--overhead-gas-per-batch"})

	for _, flag := range []string{"--proof-gas", "--calldata-gas-per-tx", "--overhead-gas-per-batch"} {
		if !strings.Contains(err.Error(), flag) {
			t.Errorf("error %q missing flag %s", err.Error(), flag)
		}
	}
}

func TestWrapUnknownProfile_NamesValidKeys(t *testing.T) {
	err := WrapUnknownProfile("arbitrum")

	msg := err.Error()
	if !strings.Contains(msg, "arbitrum") {
		t.Errorf("error %q should name the bad key", msg)
	}
	for _, key := range []string{"aztec", "soundness", "zama", "custom"} {
		if !strings.Contains(msg, key) {
			t.Errorf("error %q should list %s", msg, key)
		}
	}
}

func TestWrapConfigError_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := WrapConfigError("failed to read config file", cause)

	if !errors.Is(err, ErrConfigError) {
		t.Errorf("expected ErrConfigError")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("cause lost: %v", err)
	}
}
