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

package costmodel

import (
	"encoding/json"
	"fmt"
	"os"
)

// ParseProfile loads a profile record from a JSON file.
func ParseProfile(filePath string) (*Profile, error) {
	if filePath == "" {
		return nil, fmt.Errorf("profile file path cannot be empty")
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	return ParseProfileFromBytes(data)
}

// ParseProfileFromBytes decodes a profile record from raw JSON.
func ParseProfileFromBytes(data []byte) (*Profile, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("profile data cannot be empty")
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &p, nil
}

func (p *Profile) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
