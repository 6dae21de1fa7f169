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

// Package config knows how to read and parse the launcher's config.yaml.
package config

import (
	"fmt"
	"os"

	"github.com/google/go-containerregistry/pkg/name"
	"github.com/sirupsen/logrus"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/sets"
	"sigs.k8s.io/yaml"
)

const (
	// DefaultInitImage runs the init container's polling loop.
	DefaultInitImage = "busybox:1.35"
	// DefaultPullPolicy applies to the check job and the sidecar when unset.
	DefaultPullPolicy = corev1.PullIfNotPresent
)

var (
	validPullPolicies = sets.NewString(string(corev1.PullAlways), string(corev1.PullIfNotPresent), string(corev1.PullNever))
	knownOperators    = sets.NewString("", string(corev1.TolerationOpExists), string(corev1.TolerationOpEqual))
	knownEffects      = sets.NewString("", string(corev1.TaintEffectNoSchedule), string(corev1.TaintEffectPreferNoSchedule), string(corev1.TaintEffectNoExecute))
)

// Config is a read-only snapshot of the launcher configuration. It is
// loaded once at startup and shared by every launch.
type Config struct {
	CheckJob CheckJob `json:"checkJob"`
	Sidecar  Sidecar  `json:"sidecar"`

	// InitImage is the image of the container that waits for the
	// configuration to be staged. Defaults to DefaultInitImage.
	InitImage string `json:"initImage,omitempty"`
	// ServiceAccount the check pods run as. Empty leaves the cluster default.
	ServiceAccount string `json:"serviceAccount,omitempty"`
}

// CheckJob holds the settings shared by every container of a check pod.
type CheckJob struct {
	// Resources sizes all three containers of the pod.
	Resources Resources `json:"resources,omitempty"`
	// Env is passed to the connector container.
	Env []corev1.EnvVar `json:"env,omitempty"`
	// ImagePullPolicy is used for the connector image when the launch
	// request does not carry one.
	ImagePullPolicy  corev1.PullPolicy `json:"imagePullPolicy,omitempty"`
	ImagePullSecrets []string          `json:"imagePullSecrets,omitempty"`
	Tolerations      []Toleration      `json:"tolerations,omitempty"`
}

// Sidecar describes the helper container that stages the connector
// configuration and relays the results.
type Sidecar struct {
	Image           string                 `json:"image"`
	ImagePullPolicy corev1.PullPolicy      `json:"imagePullPolicy,omitempty"`
	Command         []string               `json:"command,omitempty"`
	Env             []corev1.EnvVar        `json:"env,omitempty"`
	Ports           []corev1.ContainerPort `json:"ports,omitempty"`
}

// Resources are quantities as written in config, e.g. "500m" or "1Gi".
// Blank values are left unset.
type Resources struct {
	CPURequest              string `json:"cpuRequest,omitempty"`
	CPULimit                string `json:"cpuLimit,omitempty"`
	MemoryRequest           string `json:"memoryRequest,omitempty"`
	MemoryLimit             string `json:"memoryLimit,omitempty"`
	EphemeralStorageRequest string `json:"ephemeralStorageRequest,omitempty"`
	EphemeralStorageLimit   string `json:"ephemeralStorageLimit,omitempty"`
}

// Toleration is a node taint toleration applied to check pods.
type Toleration struct {
	Key      string `json:"key,omitempty"`
	Effect   string `json:"effect,omitempty"`
	Operator string `json:"operator,omitempty"`
	Value    string `json:"value,omitempty"`
}

type quantity struct {
	name  corev1.ResourceName
	value string
}

// Requirements converts r into container resource requirements.
func (r Resources) Requirements() (corev1.ResourceRequirements, error) {
	requests, err := resourceList([]quantity{
		{corev1.ResourceCPU, r.CPURequest},
		{corev1.ResourceMemory, r.MemoryRequest},
		{corev1.ResourceEphemeralStorage, r.EphemeralStorageRequest},
	})
	if err != nil {
		return corev1.ResourceRequirements{}, fmt.Errorf("requests: %w", err)
	}
	limits, err := resourceList([]quantity{
		{corev1.ResourceCPU, r.CPULimit},
		{corev1.ResourceMemory, r.MemoryLimit},
		{corev1.ResourceEphemeralStorage, r.EphemeralStorageLimit},
	})
	if err != nil {
		return corev1.ResourceRequirements{}, fmt.Errorf("limits: %w", err)
	}
	return corev1.ResourceRequirements{Requests: requests, Limits: limits}, nil
}

func resourceList(quantities []quantity) (corev1.ResourceList, error) {
	var list corev1.ResourceList
	var errs []error
	for _, raw := range quantities {
		if raw.value == "" {
			continue
		}
		q, err := resource.ParseQuantity(raw.value)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s %q: %w", raw.name, raw.value, err))
			continue
		}
		if list == nil {
			list = corev1.ResourceList{}
		}
		list[raw.name] = q
	}
	return list, utilerrors.NewAggregate(errs)
}

// Load loads and parses the config at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse unmarshals, defaults and validates raw YAML config.
func Parse(raw []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(raw, c); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	c.setDefaults()
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

func (c *Config) setDefaults() {
	if c.InitImage == "" {
		c.InitImage = DefaultInitImage
	}
	if c.CheckJob.ImagePullPolicy == "" {
		c.CheckJob.ImagePullPolicy = DefaultPullPolicy
	}
	if c.Sidecar.ImagePullPolicy == "" {
		c.Sidecar.ImagePullPolicy = DefaultPullPolicy
	}
}

func (c *Config) validate() error {
	var errs []error
	if c.Sidecar.Image == "" {
		errs = append(errs, fmt.Errorf("sidecar.image is required"))
	} else if _, err := name.ParseReference(c.Sidecar.Image); err != nil {
		errs = append(errs, fmt.Errorf("sidecar.image: %w", err))
	}
	if _, err := name.ParseReference(c.InitImage); err != nil {
		errs = append(errs, fmt.Errorf("initImage: %w", err))
	}
	if _, err := c.CheckJob.Resources.Requirements(); err != nil {
		errs = append(errs, fmt.Errorf("checkJob.resources: %w", err))
	}
	if !validPullPolicies.Has(string(c.CheckJob.ImagePullPolicy)) {
		errs = append(errs, fmt.Errorf("checkJob.imagePullPolicy %q must be one of %v", c.CheckJob.ImagePullPolicy, validPullPolicies.List()))
	}
	if !validPullPolicies.Has(string(c.Sidecar.ImagePullPolicy)) {
		errs = append(errs, fmt.Errorf("sidecar.imagePullPolicy %q must be one of %v", c.Sidecar.ImagePullPolicy, validPullPolicies.List()))
	}
	// Tolerations are passed through as written; the cluster is left to
	// judge them.
	for i, t := range c.CheckJob.Tolerations {
		if !knownOperators.Has(t.Operator) || !knownEffects.Has(t.Effect) {
			logrus.WithFields(logrus.Fields{
				"toleration": i,
				"operator":   t.Operator,
				"effect":     t.Effect,
			}).Warn("Toleration has an unrecognized operator or effect.")
		}
	}
	for i, p := range c.Sidecar.Ports {
		if p.ContainerPort <= 0 || p.ContainerPort > 65535 {
			errs = append(errs, fmt.Errorf("sidecar.ports[%d].containerPort %d is out of range", i, p.ContainerPort))
		}
	}
	return utilerrors.NewAggregate(errs)
}
