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

package kube

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
	resultDryRun  = "dry_run"
)

var (
	podSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "check_pod_submissions_total",
		Help: "Number of check pods submitted to the cluster",
	}, []string{
		// namespace the pod was submitted to
		"namespace",
		// success, failure or dry_run
		"result",
	})
)

func init() {
	prometheus.MustRegister(podSubmissions)
}

func recordSubmission(namespace string, err error) {
	result := resultSuccess
	if err != nil {
		result = resultFailure
	}
	podSubmissions.WithLabelValues(namespace, result).Inc()
}

func recordDryRun(namespace string) {
	podSubmissions.WithLabelValues(namespace, resultDryRun).Inc()
}
