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

// Package kube submits check pods to a cluster.
package kube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	corev1client "k8s.io/client-go/kubernetes/typed/core/v1"
	utilpointer "k8s.io/utils/pointer"
)

// FieldManager owns the fields the launcher applies.
const FieldManager = "check-pod-launcher"

// PodApplier submits a pod definition and returns the pod as stored by the
// cluster.
type PodApplier interface {
	Apply(ctx context.Context, pod *corev1.Pod, namespace string) (*corev1.Pod, error)
}

// ClientApplier submits pods with server-side apply, so submitting the same
// definition again updates the existing pod instead of failing. Conflicts
// with other field managers are forced in our favour. Nothing is retried.
type ClientApplier struct {
	client       corev1client.PodsGetter
	fieldManager string
}

// NewClientApplier applies pods through client.
func NewClientApplier(client corev1client.PodsGetter) *ClientApplier {
	return &ClientApplier{client: client, fieldManager: FieldManager}
}

// Apply implements PodApplier.
func (a *ClientApplier) Apply(ctx context.Context, pod *corev1.Pod, namespace string) (*corev1.Pod, error) {
	body, err := applyBody(pod, namespace)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal pod %s/%s: %w", namespace, body.Name, err)
	}
	applied, err := a.client.Pods(namespace).Patch(ctx, body.Name, types.ApplyPatchType, data, metav1.PatchOptions{
		FieldManager: a.fieldManager,
		Force:        utilpointer.Bool(true),
	})
	recordSubmission(namespace, err)
	if err != nil {
		return nil, fmt.Errorf("apply pod %s/%s: %w", namespace, body.Name, err)
	}
	return applied, nil
}

// applyBody copies pod and pins it to namespace. An apply request must
// carry its type information.
func applyBody(pod *corev1.Pod, namespace string) (*corev1.Pod, error) {
	if pod == nil {
		return nil, errors.New("no pod to apply")
	}
	if pod.Name == "" {
		return nil, errors.New("pod has no name")
	}
	if namespace == "" {
		return nil, fmt.Errorf("no namespace to apply pod %s to", pod.Name)
	}
	body := pod.DeepCopy()
	body.Namespace = namespace
	body.SetGroupVersionKind(corev1.SchemeGroupVersion.WithKind("Pod"))
	return body, nil
}
