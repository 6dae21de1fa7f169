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

package flagutil

import (
	"errors"
	"flag"
	"fmt"
	"os"

	corev1client "k8s.io/client-go/kubernetes/typed/core/v1"

	"github.com/revanthkumar385/airbyte-platform/workload-launcher/kube"
)

// KubernetesOptions holds options for reaching the cluster check pods are
// submitted to.
type KubernetesOptions struct {
	kubeconfig string
	context    string
}

// AddFlags injects Kubernetes options into the given FlagSet.
func (o *KubernetesOptions) AddFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.kubeconfig, "kubeconfig", "", "Path to .kube/config file. If empty, uses the in-cluster config or the default loading rules.")
	fs.StringVar(&o.context, "context", "", "Context of the kubeconfig to use. If empty, uses the current context.")
}

// Validate validates Kubernetes options.
func (o *KubernetesOptions) Validate(_ bool) error {
	if o.kubeconfig != "" {
		if _, err := os.Stat(o.kubeconfig); err != nil {
			return fmt.Errorf("error accessing --kubeconfig: %w", err)
		}
	}
	return nil
}

// PodClient returns the pods client of the selected cluster. There is no
// dry-run client; callers print pods instead of submitting them.
func (o *KubernetesOptions) PodClient(dryRun bool) (corev1client.PodsGetter, error) {
	if dryRun {
		return nil, errors.New("no pod client is supported in dry-run mode")
	}
	client, err := kube.NewClientset(o.kubeconfig, o.context)
	if err != nil {
		return nil, err
	}
	return client.CoreV1(), nil
}
