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
	corev1 "k8s.io/api/core/v1"

	"github.com/revanthkumar385/airbyte-platform/workload-launcher/config"
	"github.com/revanthkumar385/airbyte-platform/workload-launcher/pod-utils/handshake"
)

// ConfigVolume is the memory-backed volume every container of a check pod
// uses to exchange files.
func ConfigVolume() corev1.Volume {
	return corev1.Volume{
		Name: handshake.VolumeName,
		VolumeSource: corev1.VolumeSource{
			EmptyDir: &corev1.EmptyDirVolumeSource{
				Medium: corev1.StorageMediumMemory,
			},
		},
	}
}

// ConfigVolumeMount mounts ConfigVolume at the shared config directory.
func ConfigVolumeMount() corev1.VolumeMount {
	return corev1.VolumeMount{
		Name:      handshake.VolumeName,
		MountPath: handshake.ConfigDir,
	}
}

// PullSecrets references the named image pull secrets. No names yield an
// empty list, which the API server treats as a no-op.
func PullSecrets(names []string) []corev1.LocalObjectReference {
	refs := make([]corev1.LocalObjectReference, 0, len(names))
	for _, name := range names {
		refs = append(refs, corev1.LocalObjectReference{Name: name})
	}
	return refs
}

// Tolerations is an optional list of tolerations. An absent list leaves
// scheduling to the cluster defaults, which is not the same thing as an
// explicitly empty list.
type Tolerations struct {
	items   []corev1.Toleration
	present bool
}

// NoTolerations is the absent list.
func NoTolerations() Tolerations {
	return Tolerations{}
}

// SomeTolerations wraps a list that should be set on the pod as is.
func SomeTolerations(items []corev1.Toleration) Tolerations {
	return Tolerations{items: items, present: true}
}

// Get returns the list and whether it is present.
func (t Tolerations) Get() ([]corev1.Toleration, bool) {
	return t.items, t.present
}

// BuildTolerations translates configured tolerations one to one. Nil or
// empty input is absent.
func BuildTolerations(in []config.Toleration) Tolerations {
	if len(in) == 0 {
		return NoTolerations()
	}
	out := make([]corev1.Toleration, 0, len(in))
	for _, t := range in {
		out = append(out, corev1.Toleration{
			Key:      t.Key,
			Effect:   corev1.TaintEffect(t.Effect),
			Operator: corev1.TolerationOperator(t.Operator),
			Value:    t.Value,
		})
	}
	return SomeTolerations(out)
}
