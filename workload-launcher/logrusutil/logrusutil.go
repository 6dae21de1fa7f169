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

// Package logrusutil sets up logrus the same way for every launcher binary.
package logrusutil

import (
	"github.com/sirupsen/logrus"
)

// DefaultFieldsFormatter stamps DefaultFields onto every entry before
// handing it to WrappedFormatter. Fields already set on the entry win.
type DefaultFieldsFormatter struct {
	WrappedFormatter logrus.Formatter
	DefaultFields    logrus.Fields
}

// ComponentInit switches the standard logger to JSON output carrying the
// component name and any extra fields on every entry.
func ComponentInit(component string, extra logrus.Fields) {
	fields := logrus.Fields{"component": component}
	for k, v := range extra {
		fields[k] = v
	}
	logrus.SetFormatter(NewDefaultFieldsFormatter(nil, fields))
}

// NewDefaultFieldsFormatter wraps wrapped, or a logrus.JSONFormatter when
// wrapped is nil.
func NewDefaultFieldsFormatter(wrapped logrus.Formatter, defaults logrus.Fields) *DefaultFieldsFormatter {
	if wrapped == nil {
		wrapped = &logrus.JSONFormatter{}
	}
	return &DefaultFieldsFormatter{WrappedFormatter: wrapped, DefaultFields: defaults}
}

// Format implements logrus.Formatter. The entry is copied rather than
// modified since callers may share it between goroutines.
func (d *DefaultFieldsFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	merged := make(logrus.Fields, len(entry.Data)+len(d.DefaultFields))
	for _, fields := range []logrus.Fields{d.DefaultFields, entry.Data} {
		for k, v := range fields {
			merged[k] = v
		}
	}
	copied := *entry
	copied.Data = merged
	return d.WrappedFormatter.Format(&copied)
}
