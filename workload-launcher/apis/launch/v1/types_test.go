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

package v1

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
)

func TestParseRequest(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		expected    *LaunchRequest
		expectedErr []string
	}{
		{
			name: "complete request",
			raw: `
labels:
  a: "1"
annotations:
  airbyte.io/workload: check
nodeSelectors:
  pool: jobs
extraEnv:
  WORKLOAD_ID: abc
pod:
  name: source-pokeapi-check-1
  namespace: jobs
  mainContainerInfo:
    image: airbyte/source-pokeapi:0.2.0
    pullPolicy: Always
`,
			expected: &LaunchRequest{
				Labels:        map[string]string{"a": "1"},
				Annotations:   map[string]string{"airbyte.io/workload": "check"},
				NodeSelectors: map[string]string{"pool": "jobs"},
				ExtraEnv:      map[string]string{"WORKLOAD_ID": "abc"},
				Pod: PodInfo{
					Name:      "source-pokeapi-check-1",
					Namespace: "jobs",
					MainContainerInfo: ContainerInfo{
						Image:      "airbyte/source-pokeapi:0.2.0",
						PullPolicy: corev1.PullAlways,
					},
				},
			},
		},
		{
			name:        "missing identity",
			raw:         "labels:\n  a: b\n",
			expectedErr: []string{"pod.name", "pod.namespace", "pod.mainContainerInfo.image"},
		},
		{
			name:        "malformed image reference",
			raw:         "pod:\n  name: p\n  namespace: n\n  mainContainerInfo:\n    image: \"Airbyte/Source:latest\"\n",
			expectedErr: []string{"pod.mainContainerInfo.image"},
		},
		{
			name:        "unknown field",
			raw:         "pod:\n  name: p\n  namespace: n\n  mainContainerInfo:\n    image: i\ncolor: blue\n",
			expectedErr: []string{"color"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := ParseRequest([]byte(tc.raw))
			if len(tc.expectedErr) > 0 {
				if err == nil {
					t.Fatal("expected an error, got none")
				}
				for _, want := range tc.expectedErr {
					if !strings.Contains(err.Error(), want) {
						t.Errorf("expected error to mention %q, got %v", want, err)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("request differs from expected (-want +got):\n%s", diff)
			}
		})
	}
}
