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

// Package decorate builds the pod that runs a connector check: an init
// container that waits for the configuration to be staged, the connector
// container and the sidecar that stages configuration and relays results.
package decorate

import (
	"fmt"
	"sort"

	corev1 "k8s.io/api/core/v1"

	launchv1 "github.com/revanthkumar385/airbyte-platform/workload-launcher/apis/launch/v1"
	"github.com/revanthkumar385/airbyte-platform/workload-launcher/config"
	"github.com/revanthkumar385/airbyte-platform/workload-launcher/pod-utils/handshake"
)

const (
	InitContainerName    = "init"
	MainContainerName    = "main"
	SidecarContainerName = "connector-sidecar"
)

// Decorator turns launch requests into check pods. It holds the resolved
// configuration and is safe for concurrent use.
type Decorator struct {
	config    config.Config
	resources corev1.ResourceRequirements

	waitCommand  []string
	checkCommand []string
}

// NewDecorator resolves everything in c that does not depend on the
// request, so that building a pod cannot fail on configuration.
func NewDecorator(c config.Config) (*Decorator, error) {
	resources, err := c.CheckJob.Resources.Requirements()
	if err != nil {
		return nil, fmt.Errorf("check job resources: %w", err)
	}
	wait, err := handshake.DefaultWaitScript().Render()
	if err != nil {
		return nil, err
	}
	check, err := handshake.DefaultCheckScript().Render()
	if err != nil {
		return nil, err
	}
	return &Decorator{
		config:       c,
		resources:    resources,
		waitCommand:  handshake.Command(wait),
		checkCommand: handshake.Command(check),
	}, nil
}

// InitContainer blocks the pod until the sidecar has written the upload
// marker, and fails it if the marker does not show up in time.
func (d *Decorator) InitContainer() corev1.Container {
	return corev1.Container{
		Name:         InitContainerName,
		Image:        d.config.InitImage,
		WorkingDir:   handshake.ConfigDir,
		Command:      copyStrings(d.waitCommand),
		Resources:    *d.resources.DeepCopy(),
		VolumeMounts: []corev1.VolumeMount{ConfigVolumeMount()},
	}
}

// MainContainer runs the connector's check and records its output and exit
// code in the config volume.
func (d *Decorator) MainContainer(info launchv1.ContainerInfo) corev1.Container {
	pullPolicy := info.PullPolicy
	if pullPolicy == "" {
		pullPolicy = d.config.CheckJob.ImagePullPolicy
	}
	return corev1.Container{
		Name:            MainContainerName,
		Image:           info.Image,
		ImagePullPolicy: pullPolicy,
		WorkingDir:      handshake.ConfigDir,
		Command:         copyStrings(d.checkCommand),
		Env:             copyEnv(d.config.CheckJob.Env),
		Resources:       *d.resources.DeepCopy(),
		VolumeMounts:    []corev1.VolumeMount{ConfigVolumeMount()},
	}
}

// SidecarContainer runs the helper that stages the configuration. Its
// environment is the static sidecar environment followed by extraEnv.
// Repeated names are kept; the container runtime uses the last one.
func (d *Decorator) SidecarContainer(extraEnv map[string]string) corev1.Container {
	env := copyEnv(d.config.Sidecar.Env)
	env = append(env, kubeEnv(extraEnv)...)
	return corev1.Container{
		Name:            SidecarContainerName,
		Image:           d.config.Sidecar.Image,
		ImagePullPolicy: d.config.Sidecar.ImagePullPolicy,
		WorkingDir:      handshake.ConfigDir,
		Command:         copyStrings(d.config.Sidecar.Command),
		Ports:           append([]corev1.ContainerPort(nil), d.config.Sidecar.Ports...),
		Env:             env,
		Resources:       *d.resources.DeepCopy(),
		VolumeMounts:    []corev1.VolumeMount{ConfigVolumeMount()},
	}
}

// kubeEnv transforms a mapping of environment variables
// into their serialized form for a PodSpec, sorting by
// the name of the env vars
func kubeEnv(environment map[string]string) []corev1.EnvVar {
	var keys []string
	for key := range environment {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var kubeEnvironment []corev1.EnvVar
	for _, key := range keys {
		kubeEnvironment = append(kubeEnvironment, corev1.EnvVar{
			Name:  key,
			Value: environment[key],
		})
	}

	return kubeEnvironment
}

func copyEnv(env []corev1.EnvVar) []corev1.EnvVar {
	if env == nil {
		return nil
	}
	out := make([]corev1.EnvVar, len(env))
	for i := range env {
		env[i].DeepCopyInto(&out[i])
	}
	return out
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
