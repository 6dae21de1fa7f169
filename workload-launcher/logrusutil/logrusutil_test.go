/*
Copyright 2026 The Airbyte Authors.

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

package logrusutil

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestDefaultFieldsFormatter(t *testing.T) {
	testCases := []struct {
		description string
		entry       *logrus.Entry
		expected    string
	}{
		{
			description: "default fields are added",
			entry:       &logrus.Entry{Message: "Applied check pod."},
			expected:    "level=panic msg=\"Applied check pod.\" component=check-pod-launcher\n",
		},
		{
			description: "entry fields win over defaults",
			entry:       &logrus.Entry{Message: "message", Data: logrus.Fields{"component": "sidecar"}},
			expected:    "level=panic msg=message component=sidecar\n",
		},
		{
			description: "other entry fields are kept",
			entry:       &logrus.Entry{Message: "message", Data: logrus.Fields{"pod": "check-1"}},
			expected:    "level=panic msg=message component=check-pod-launcher pod=check-1\n",
		},
	}

	formatter := NewDefaultFieldsFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	}, logrus.Fields{"component": "check-pod-launcher"})

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			before := len(tc.entry.Data)
			formatted, err := formatter.Format(tc.entry)
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if string(formatted) != tc.expected {
				t.Errorf("Expected '%s', got '%s'", tc.expected, string(formatted))
			}
			if len(tc.entry.Data) != before {
				t.Errorf("Formatter modified the caller's entry: %v", tc.entry.Data)
			}
		})
	}
}

func TestNewDefaultFieldsFormatterDefaultsToJSON(t *testing.T) {
	formatter := NewDefaultFieldsFormatter(nil, nil)
	if _, ok := formatter.WrappedFormatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Expected a JSON formatter, got %T", formatter.WrappedFormatter)
	}
}

func TestComponentInit(t *testing.T) {
	defer logrus.SetFormatter(logrus.StandardLogger().Formatter)
	ComponentInit("check-pod-launcher", logrus.Fields{"version": "dev"})

	formatter, ok := logrus.StandardLogger().Formatter.(*DefaultFieldsFormatter)
	if !ok {
		t.Fatalf("Expected a DefaultFieldsFormatter, got %T", logrus.StandardLogger().Formatter)
	}
	if formatter.DefaultFields["component"] != "check-pod-launcher" || formatter.DefaultFields["version"] != "dev" {
		t.Errorf("Unexpected default fields: %v", formatter.DefaultFields)
	}
}
