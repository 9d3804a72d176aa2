// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package site

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidConfig is returned for a configuration the engine would reject.
var ErrInvalidConfig = errors.New("invalid chart configuration")

// configSchema is the shape of an exported configuration.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["type", "data", "options"],
  "properties": {
    "type": {"enum": ["bar", "line", "pie", "doughnut", "scatter"]},
    "data": {
      "type": "object",
      "required": ["datasets"],
      "properties": {
        "labels": {"type": "array", "items": {"type": "string"}},
        "datasets": {
          "type": "array",
          "minItems": 1,
          "items": {
            "type": "object",
            "required": ["data"],
            "properties": {
              "label": {"type": "string"},
              "type": {"enum": ["bar", "line", "pie", "doughnut", "scatter"]},
              "data": {
                "type": "array",
                "items": {
                  "oneOf": [
                    {"type": "number"},
                    {"type": "null"},
                    {
                      "type": "object",
                      "required": ["x", "y"],
                      "properties": {
                        "x": {"type": "number"},
                        "y": {"type": "number"},
                        "r": {"type": "number", "minimum": 0}
                      }
                    }
                  ]
                }
              }
            }
          }
        }
      }
    },
    "options": {
      "type": "object",
      "properties": {
        "indexAxis": {"enum": ["x", "y"]},
        "aspectRatio": {"type": "number", "exclusiveMinimum": 0},
        "scales": {"type": "object"},
        "plugins": {"type": "object"}
      }
    },
    "plugins": {"type": "array", "items": {"type": "string"}}
  }
}`

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(configSchema))
	})
	return schema, schemaErr
}

// Validate checks cfg against the exported configuration schema.
func Validate(cfg *visualization.Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil", ErrInvalidConfig)
	}
	s, err := loadSchema()
	if err != nil {
		return fmt.Errorf("failed to load config schema: %w", err)
	}
	result, err := s.Validate(gojsonschema.NewGoLoader(cfg.Map()))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			msgs[i] = e.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}
	return nil
}
