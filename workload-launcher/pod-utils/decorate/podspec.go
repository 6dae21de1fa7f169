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

package decorate

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	utilpointer "k8s.io/utils/pointer"

	launchv1 "github.com/revanthkumar385/airbyte-platform/workload-launcher/apis/launch/v1"
)

// CheckPod assembles the pod for req. Labels, annotations and node
// selectors are passed through unchanged; any field not set here is left
// to the cluster defaults.
func (d *Decorator) CheckPod(req launchv1.LaunchRequest) (*corev1.Pod, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("launch request: %w", err)
	}

	pod := &corev1.Pod{
		TypeMeta: metav1.TypeMeta{
			APIVersion: corev1.SchemeGroupVersion.String(),
			Kind:       "Pod",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:        req.Pod.Name,
			Namespace:   req.Pod.Namespace,
			Labels:      copyMap(req.Labels),
			Annotations: copyMap(req.Annotations),
		},
		Spec: corev1.PodSpec{
			ServiceAccountName:           d.config.ServiceAccount,
			AutomountServiceAccountToken: utilpointer.Bool(true),
			RestartPolicy:                corev1.RestartPolicyNever,
			InitContainers:               []corev1.Container{d.InitContainer()},
			// The order is declarative only; both start once init succeeds.
			Containers: []corev1.Container{
				d.SidecarContainer(req.ExtraEnv),
				d.MainContainer(req.Pod.MainContainerInfo),
			},
			Volumes:          []corev1.Volume{ConfigVolume()},
			NodeSelector:     copyMap(req.NodeSelectors),
			ImagePullSecrets: PullSecrets(d.config.CheckJob.ImagePullSecrets),
		},
	}
	if tolerations, ok := BuildTolerations(d.config.CheckJob.Tolerations).Get(); ok {
		pod.Spec.Tolerations = tolerations
	}
	return pod, nil
}

func copyMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
