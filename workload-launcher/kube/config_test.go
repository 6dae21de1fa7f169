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
	"os"
	"path/filepath"
	"testing"
)

const kubeconfig = `apiVersion: v1
kind: Config
clusters:
- name: build
  cluster:
    server: https://build.example.com
- name: jobs
  cluster:
    server: https://jobs.example.com
users:
- name: launcher
  user:
    token: not-a-real-token
contexts:
- name: build
  context:
    cluster: build
    user: launcher
- name: jobs
  context:
    cluster: jobs
    user: launcher
current-context: build
`

func TestLoadClusterConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	if err := os.WriteFile(path, []byte(kubeconfig), 0600); err != nil {
		t.Fatalf("could not write kubeconfig: %v", err)
	}

	testCases := []struct {
		name         string
		kubeconfig   string
		context      string
		expectedHost string
		expectErr    bool
	}{
		{
			name:         "current context",
			kubeconfig:   path,
			expectedHost: "https://build.example.com",
		},
		{
			name:         "explicit context",
			kubeconfig:   path,
			context:      "jobs",
			expectedHost: "https://jobs.example.com",
		},
		{
			name:       "unknown context",
			kubeconfig: path,
			context:    "nowhere",
			expectErr:  true,
		},
		{
			name:       "missing kubeconfig",
			kubeconfig: filepath.Join(t.TempDir(), "missing"),
			expectErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadClusterConfig(tc.kubeconfig, tc.context)
			if tc.expectErr {
				if err == nil {
					t.Fatalf("expected an error, got config for %s", cfg.Host)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Host != tc.expectedHost {
				t.Errorf("expected host %s, got %s", tc.expectedHost, cfg.Host)
			}
			if cfg.BearerToken != "not-a-real-token" {
				t.Errorf("expected the user's token to be loaded, got %q", cfg.BearerToken)
			}
		})
	}
}

func TestNewClientset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	if err := os.WriteFile(path, []byte(kubeconfig), 0600); err != nil {
		t.Fatalf("could not write kubeconfig: %v", err)
	}
	client, err := NewClientset(path, "jobs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected a client")
	}
}
