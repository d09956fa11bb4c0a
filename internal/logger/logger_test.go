/*
Copyright 2025 Trident Authors

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

//nolint:testpackage // This is a white-box test file for an internal package.
package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "json", slog.LevelInfo)
	log.Info("registry loaded", "records", 154)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output %q is not JSON: %v", buf.String(), err)
	}
	if record["msg"] != "registry loaded" || record["level"] != "INFO" {
		t.Errorf("unexpected record %v", record)
	}
	if record["records"] != float64(154) {
		t.Errorf("records = %v, want 154", record["records"])
	}
}

func TestNew_TextLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "text", slog.LevelWarn)
	log.Info("hidden")
	log.Warn("shown", "tag", "en-US")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "tag=en-US") {
		t.Errorf("unexpected text output %q", out)
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(t.Context(), slog.LevelError) {
		t.Error("Discard() logger should not be enabled")
	}
}
