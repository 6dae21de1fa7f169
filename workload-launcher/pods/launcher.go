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

// Package pods launches connector check pods.
package pods

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	corev1 "k8s.io/api/core/v1"

	launchv1 "github.com/revanthkumar385/airbyte-platform/workload-launcher/apis/launch/v1"
	"github.com/revanthkumar385/airbyte-platform/workload-launcher/kube"
	"github.com/revanthkumar385/airbyte-platform/workload-launcher/pod-utils/decorate"
)

// Launcher builds check pods and hands them to the cluster. A failed
// submission is returned to the caller as is; retrying is up to them.
type Launcher struct {
	decorator *decorate.Decorator
	applier   kube.PodApplier
}

// NewLauncher returns a Launcher submitting through applier.
func NewLauncher(decorator *decorate.Decorator, applier kube.PodApplier) *Launcher {
	return &Launcher{
		decorator: decorator,
		applier:   applier,
	}
}

// Launch assembles the check pod for req and applies it to the request's
// namespace, returning the pod as stored by the cluster.
func (l *Launcher) Launch(ctx context.Context, req launchv1.LaunchRequest) (*corev1.Pod, error) {
	log := logrus.WithFields(logrus.Fields{
		"pod":       req.Pod.Name,
		"namespace": req.Pod.Namespace,
	})

	pod, err := l.decorator.CheckPod(req)
	if err != nil {
		return nil, fmt.Errorf("build check pod: %w", err)
	}
	log.WithField("image", req.Pod.MainContainerInfo.Image).Debug("Built check pod.")

	applied, err := l.applier.Apply(ctx, pod, req.Pod.Namespace)
	if err != nil {
		log.WithError(err).Warn("Cluster rejected check pod.")
		return nil, err
	}
	log.WithField("uid", applied.UID).Info("Applied check pod.")
	return applied, nil
}
