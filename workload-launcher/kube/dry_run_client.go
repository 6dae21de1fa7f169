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
	"context"
	"fmt"
	"io"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/yaml"
)

// DryRunApplier writes pods to out as YAML documents instead of submitting
// them.
type DryRunApplier struct {
	out io.Writer
}

// NewDryRunApplier prints applied pods to out.
func NewDryRunApplier(out io.Writer) *DryRunApplier {
	return &DryRunApplier{out: out}
}

// Apply implements PodApplier. The returned pod is the one that would have
// been submitted.
func (a *DryRunApplier) Apply(_ context.Context, pod *corev1.Pod, namespace string) (*corev1.Pod, error) {
	body, err := applyBody(pod, namespace)
	if err != nil {
		return nil, err
	}
	raw, err := yaml.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal pod %s/%s: %w", namespace, body.Name, err)
	}
	if _, err := fmt.Fprintf(a.out, "---\n%s", raw); err != nil {
		return nil, fmt.Errorf("write pod %s/%s: %w", namespace, body.Name, err)
	}
	recordDryRun(namespace)
	return body, nil
}
