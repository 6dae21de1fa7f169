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

// Package metrics pushes launcher metrics to a Prometheus Pushgateway.
// Launches are one-shot, so there is nothing long-lived to scrape.
package metrics

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Push sends everything gathered by g to endpoint under the component's
// job name, grouped by the local hostname. A nil gatherer pushes the
// default registry.
func Push(component, endpoint string, g prometheus.Gatherer) error {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	pusher := push.New(endpoint, component).Gatherer(g)
	if hostname, err := os.Hostname(); err == nil {
		pusher = pusher.Grouping("instance", hostname)
	}
	if err := pusher.Push(); err != nil {
		return fmt.Errorf("push metrics to %s: %w", endpoint, err)
	}
	return nil
}
