// Copyright 2025 Rollupcost Users
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dotandev/rollupcost/internal/costmodel"
)

// JSON writes the machine-readable form of a summary: sorted keys,
// 2-space indent. Key order comes from marshalling a map, which the
// encoder emits sorted.
func JSON(w io.Writer, summary *costmodel.Summary) error {
	data, err := json.MarshalIndent(summary.Fields(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
