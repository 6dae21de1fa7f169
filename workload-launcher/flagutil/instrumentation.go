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

package flagutil

import (
	"flag"
	"fmt"
	"net/url"
)

// InstrumentationOptions holds options for reporting launcher metrics.
type InstrumentationOptions struct {
	// PushGateway is the Prometheus Pushgateway metrics are pushed to
	// before the launcher exits. Empty disables pushing.
	PushGateway string
}

// AddFlags injects instrumentation options into the given FlagSet.
func (o *InstrumentationOptions) AddFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.PushGateway, "push-gateway", "", "Prometheus Pushgateway URL to push metrics to on exit")
}

// Validate validates instrumentation options.
func (o *InstrumentationOptions) Validate(_ bool) error {
	if o.PushGateway == "" {
		return nil
	}
	if _, err := url.ParseRequestURI(o.PushGateway); err != nil {
		return fmt.Errorf("invalid --push-gateway URI %q: %w", o.PushGateway, err)
	}
	return nil
}
