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

// Package flagutil contains utilities and interfaces shared between
// launcher binaries.
package flagutil

import (
	"flag"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// OptionGroup provides an interface which can be satisfied by any
// grouping of options to make them easier to compose.
type OptionGroup interface {
	// AddFlags injects options into the given FlagSet.
	AddFlags(fs *flag.FlagSet)
	// Validate validates options.
	Validate(dryRun bool) error
}

// ValidateAll validates every group and reports all problems at once.
func ValidateAll(dryRun bool, groups ...OptionGroup) error {
	var errs []error
	for _, group := range groups {
		if err := group.Validate(dryRun); err != nil {
			errs = append(errs, err)
		}
	}
	return utilerrors.NewAggregate(errs)
}
