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

// check-pod-launcher builds the pod running a connector check and applies
// it to the cluster. With --dry-run the pod is printed instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	launchv1 "github.com/revanthkumar385/airbyte-platform/workload-launcher/apis/launch/v1"
	"github.com/revanthkumar385/airbyte-platform/workload-launcher/config"
	"github.com/revanthkumar385/airbyte-platform/workload-launcher/flagutil"
	"github.com/revanthkumar385/airbyte-platform/workload-launcher/kube"
	"github.com/revanthkumar385/airbyte-platform/workload-launcher/logrusutil"
	"github.com/revanthkumar385/airbyte-platform/workload-launcher/metrics"
	"github.com/revanthkumar385/airbyte-platform/workload-launcher/pod-utils/decorate"
	"github.com/revanthkumar385/airbyte-platform/workload-launcher/pods"
)

const component = "check-pod-launcher"

type options struct {
	configPath  string
	requestPath string
	dryRun      bool
	timeout     time.Duration
	logLevel    string

	kubernetes      flagutil.KubernetesOptions
	instrumentation flagutil.InstrumentationOptions
}

func (o *options) Validate() error {
	if o.configPath == "" {
		return errors.New("required flag --config was unset")
	}
	if o.requestPath == "" {
		return errors.New("required flag --request was unset")
	}
	if _, err := logrus.ParseLevel(o.logLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	return flagutil.ValidateAll(o.dryRun, &o.kubernetes, &o.instrumentation)
}

func gatherOptions(fs *flag.FlagSet, args ...string) options {
	o := options{}
	fs.StringVar(&o.configPath, "config", "", "Path to the launcher config.yaml.")
	fs.StringVar(&o.requestPath, "request", "", "Launch request to submit, - for stdin.")
	fs.BoolVar(&o.dryRun, "dry-run", false, "Print the pod as YAML instead of applying it.")
	fs.DurationVar(&o.timeout, "timeout", time.Minute, "How long to wait for the cluster to accept the pod.")
	fs.StringVar(&o.logLevel, "log-level", "info", "Logging level.")
	for _, group := range []flagutil.OptionGroup{&o.kubernetes, &o.instrumentation} {
		group.AddFlags(fs)
	}
	fs.Parse(args)
	return o
}

func readRequest(path string, stdin io.Reader) (*launchv1.LaunchRequest, error) {
	if path != "-" {
		return launchv1.LoadRequest(path)
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read launch request from stdin: %w", err)
	}
	return launchv1.ParseRequest(raw)
}

func newApplier(o options, out io.Writer) (kube.PodApplier, error) {
	if o.dryRun {
		return kube.NewDryRunApplier(out), nil
	}
	client, err := o.kubernetes.PodClient(false)
	if err != nil {
		return nil, err
	}
	return kube.NewClientApplier(client), nil
}

func run(ctx context.Context, o options, stdin io.Reader, out io.Writer) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	req, err := readRequest(o.requestPath, stdin)
	if err != nil {
		return err
	}
	decorator, err := decorate.NewDecorator(*cfg)
	if err != nil {
		return err
	}
	applier, err := newApplier(o, out)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	pod, err := pods.NewLauncher(decorator, applier).Launch(ctx, *req)
	if err != nil {
		return err
	}
	if !o.dryRun {
		fmt.Fprintf(out, "pod/%s applied in %s\n", pod.Name, pod.Namespace)
	}
	return nil
}

func main() {
	logrusutil.ComponentInit(component, nil)

	o := gatherOptions(flag.CommandLine, os.Args[1:]...)
	if err := o.Validate(); err != nil {
		logrus.WithError(err).Fatal("Invalid options")
	}
	level, _ := logrus.ParseLevel(o.logLevel)
	logrus.SetLevel(level)

	runErr := run(context.Background(), o, os.Stdin, os.Stdout)

	if o.instrumentation.PushGateway != "" {
		if err := metrics.Push(component, o.instrumentation.PushGateway, nil); err != nil {
			logrus.WithError(err).Warn("Failed to push metrics.")
		}
	}
	if runErr != nil {
		logrus.WithError(runErr).Fatal("Could not launch check pod.")
	}
}
