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

// Package v1 holds the request types accepted by the check pod launcher.
package v1

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/go-containerregistry/pkg/name"
	corev1 "k8s.io/api/core/v1"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"sigs.k8s.io/yaml"
)

// LaunchRequest asks for one check pod. It is owned by the caller and
// never modified by the launcher.
type LaunchRequest struct {
	// Labels and Annotations are copied verbatim onto the pod.
	Labels      map[string]string `json:"labels,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty"`
	// NodeSelectors are copied verbatim onto the pod spec.
	NodeSelectors map[string]string `json:"nodeSelectors,omitempty"`
	// Pod identifies the pod to create and the connector it runs.
	Pod PodInfo `json:"pod"`
	// ExtraEnv is appended to the sidecar's static environment.
	ExtraEnv map[string]string `json:"extraEnv,omitempty"`
}

// PodInfo is the identity of the pod to launch.
type PodInfo struct {
	Name              string        `json:"name"`
	Namespace         string        `json:"namespace"`
	MainContainerInfo ContainerInfo `json:"mainContainerInfo"`
}

// ContainerInfo describes the connector image.
type ContainerInfo struct {
	Image      string            `json:"image"`
	PullPolicy corev1.PullPolicy `json:"pullPolicy,omitempty"`
}

// Validate reports the fields a pod cannot be built without.
func (r LaunchRequest) Validate() error {
	var errs []error
	if r.Pod.Name == "" {
		errs = append(errs, errors.New("pod.name is required"))
	}
	if r.Pod.Namespace == "" {
		errs = append(errs, errors.New("pod.namespace is required"))
	}
	if r.Pod.MainContainerInfo.Image == "" {
		errs = append(errs, errors.New("pod.mainContainerInfo.image is required"))
	} else if _, err := name.ParseReference(r.Pod.MainContainerInfo.Image); err != nil {
		errs = append(errs, fmt.Errorf("pod.mainContainerInfo.image: %w", err))
	}
	return utilerrors.NewAggregate(errs)
}

// LoadRequest reads a LaunchRequest from a YAML or JSON file.
func LoadRequest(path string) (*LaunchRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return ParseRequest(raw)
}

// ParseRequest unmarshals and validates a LaunchRequest.
func ParseRequest(raw []byte) (*LaunchRequest, error) {
	req := &LaunchRequest{}
	if err := yaml.UnmarshalStrict(raw, req); err != nil {
		return nil, fmt.Errorf("error unmarshaling launch request: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid launch request: %w", err)
	}
	return req, nil
}
