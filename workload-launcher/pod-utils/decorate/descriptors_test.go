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
	"testing"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/equality"
	"k8s.io/apimachinery/pkg/util/diff"

	"github.com/revanthkumar385/airbyte-platform/workload-launcher/config"
)

func TestConfigVolume(t *testing.T) {
	expected := corev1.Volume{
		Name: "airbyte-config",
		VolumeSource: corev1.VolumeSource{
			EmptyDir: &corev1.EmptyDirVolumeSource{Medium: corev1.StorageMediumMemory},
		},
	}
	if actual := ConfigVolume(); !equality.Semantic.DeepEqual(expected, actual) {
		t.Errorf("unexpected volume: %s", diff.ObjectReflectDiff(expected, actual))
	}
	if mount := ConfigVolumeMount(); mount.Name != expected.Name || mount.MountPath != "/config" {
		t.Errorf("unexpected mount: %+v", mount)
	}
}

func TestPullSecrets(t *testing.T) {
	testCases := []struct {
		name     string
		names    []string
		expected []corev1.LocalObjectReference
	}{
		{
			name:     "nil names give an empty list",
			expected: []corev1.LocalObjectReference{},
		},
		{
			name:     "empty names give an empty list",
			names:    []string{},
			expected: []corev1.LocalObjectReference{},
		},
		{
			name:     "names map to references in order",
			names:    []string{"regcred", "mirror"},
			expected: []corev1.LocalObjectReference{{Name: "regcred"}, {Name: "mirror"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := PullSecrets(tc.names)
			if actual == nil {
				t.Fatal("expected a non-nil list")
			}
			if !equality.Semantic.DeepEqual(tc.expected, actual) {
				t.Errorf("unexpected pull secrets: %s", diff.ObjectReflectDiff(tc.expected, actual))
			}
		})
	}
}

func TestBuildTolerations(t *testing.T) {
	testCases := []struct {
		name     string
		input    []config.Toleration
		present  bool
		expected []corev1.Toleration
	}{
		{
			name: "nil input is absent",
		},
		{
			name:  "empty input is absent",
			input: []config.Toleration{},
		},
		{
			name: "each toleration is translated",
			input: []config.Toleration{
				{Key: "airbyte-server", Effect: "NoSchedule", Operator: "Equal", Value: "true"},
				{Key: "spot", Effect: "NoExecute", Operator: "Exists"},
			},
			present: true,
			expected: []corev1.Toleration{
				{Key: "airbyte-server", Effect: corev1.TaintEffectNoSchedule, Operator: corev1.TolerationOpEqual, Value: "true"},
				{Key: "spot", Effect: corev1.TaintEffectNoExecute, Operator: corev1.TolerationOpExists},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, present := BuildTolerations(tc.input).Get()
			if present != tc.present {
				t.Fatalf("expected present=%t, got %t", tc.present, present)
			}
			if len(actual) != len(tc.input) && present {
				t.Errorf("expected %d tolerations, got %d", len(tc.input), len(actual))
			}
			if !equality.Semantic.DeepEqual(tc.expected, actual) {
				t.Errorf("unexpected tolerations: %s", diff.ObjectReflectDiff(tc.expected, actual))
			}
		})
	}

	if _, present := SomeTolerations(nil).Get(); !present {
		t.Error("SomeTolerations(nil) should be present")
	}
	if _, present := NoTolerations().Get(); present {
		t.Error("NoTolerations() should be absent")
	}
}
