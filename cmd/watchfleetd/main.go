// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/cluster-inventory-watcher/pkg/k8s/client"
	"github.com/NVIDIA/cluster-inventory-watcher/pkg/logging"
	"github.com/NVIDIA/cluster-inventory-watcher/pkg/procscan"
	"github.com/NVIDIA/cluster-inventory-watcher/pkg/serializer"
	"github.com/NVIDIA/cluster-inventory-watcher/pkg/server"
	"github.com/NVIDIA/cluster-inventory-watcher/pkg/stats"
	"github.com/NVIDIA/cluster-inventory-watcher/pkg/version"
	"github.com/NVIDIA/cluster-inventory-watcher/pkg/watchfleet"
)

// minSupportedServerVersion is the oldest Kubernetes server version this
// daemon's watchers (networking.k8s.io/v1 Ingress, apps/v1 workloads) are
// exercised against.
var minSupportedServerVersion = version.NewVersion(1, 23, 0)

// buildVersion is set at release time via -ldflags; undefined otherwise.
var buildVersion = "undefined"

// defaultWatchSpecs is the watcher set wired when --watch is never given:
// the cluster-scoped kinds plus the pod/workload kinds most consumers ask
// for first.
var defaultWatchSpecs = []string{
	"nodes:Node",
	"namespaces:Namespace",
	"pods:Pod",
	"services:Service",
	"deployments:Deployment",
}

func main() {
	cmd := &cli.Command{
		Name:                  "watchfleetd",
		EnableShellCompletion: true,
		Usage:                 "Watch Kubernetes resources and scan host processes, serving both as compressed snapshots over HTTP",
		Description: `watchfleetd runs two independent cores side by side:

  - a fleet of per-resource-kind Kubernetes watchers, each holding a
    compressed, trimmed snapshot of its kind's current cluster state
  - a periodic host-process scanner, applying a configurable regex
    accept/drop/rewrite policy and tagging matched processes

Both are exposed read-only over the status/metrics HTTP server: watcher
snapshots under /watch/<kind>, the latest process scan under /scan, and
Prometheus counters under /metrics.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kubeconfig",
				Usage:   "Path to kubeconfig; empty uses KUBECONFIG env, ~/.kube/config, or in-cluster config",
				Sources: cli.EnvVars("KUBECONFIG"),
			},
			&cli.StringSliceFlag{
				Name:    "watch",
				Usage:   "Resource to watch, repeatable, format resource_key:kind_label[:namespace]",
				Sources: cli.EnvVars("WATCHFLEETD_WATCH"),
				Value:   defaultWatchSpecs,
			},
			&cli.StringFlag{
				Name:    "namespace",
				Usage:   "Default namespace applied to --watch entries that omit one",
				Sources: cli.EnvVars("WATCHFLEETD_NAMESPACE"),
			},
			&cli.StringFlag{
				Name:    "scan-config",
				Usage:   "Path to a YAML file describing the process scanner's ScanConfig; scanning is disabled if unset",
				Sources: cli.EnvVars("WATCHFLEETD_SCAN_CONFIG"),
			},
			&cli.DurationFlag{
				Name:    "scan-interval",
				Usage:   "Interval between process scans",
				Sources: cli.EnvVars("WATCHFLEETD_SCAN_INTERVAL"),
				Value:   60 * time.Second,
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logging.SetDefaultStructuredLogger("watchfleetd", buildVersion)

	kubeClient, _, err := client.BuildKubeClient(cmd.String("kubeconfig"))
	if err != nil {
		return fmt.Errorf("failed to build kubernetes client: %w", err)
	}

	if err := checkServerVersion(kubeClient); err != nil {
		return err
	}

	registry := stats.NewPrometheusRegistry()
	prometheus.MustRegister(registry)

	factory := watchfleet.NewFactory(kubeClient)
	members, err := buildWatchers(factory, cmd.StringSlice("watch"), cmd.String("namespace"), registry)
	if err != nil {
		return fmt.Errorf("failed to build watcher fleet: %w", err)
	}
	fleet := watchfleet.NewFleet(members...)

	scans := newScanStore()
	scanner := procscan.NewScanner(procscan.WithPostScanHook(func(data []procscan.ProcessData) {
		scans.set(data, procscan.Digest(data))
	}))

	var scanCfg *procscan.ScanConfig
	if path := cmd.String("scan-config"); path != "" {
		cfg, err := loadScanConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load scan config: %w", err)
		}
		scanCfg = cfg
	}

	handlers := map[string]http.HandlerFunc{
		"/watch": watchStatusHandler(fleet),
		"/scan":  scanHandler(scans),
	}
	for _, watcher := range fleet.Watchers() {
		handlers["/watch/"+strings.ToLower(watcher.Kind())] = watchEntriesHandlerByKind(fleet, watcher.Kind())
	}

	srv := server.New(
		server.WithName("watchfleetd"),
		server.WithVersion(buildVersion),
		server.WithHandler(handlers),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fleet.Start(gctx)
	})
	g.Go(func() error {
		return srv.Run(gctx)
	})
	if scanCfg != nil {
		g.Go(func() error {
			return runScanLoop(gctx, scanner, *scanCfg, cmd.Duration("scan-interval"))
		})
	}

	return g.Wait()
}

// checkServerVersion logs the cluster's Kubernetes version and refuses to
// start against a server older than minSupportedServerVersion.
func checkServerVersion(kubeClient client.Interface) error {
	info, err := kubeClient.Discovery().ServerVersion()
	if err != nil {
		return fmt.Errorf("failed to query kubernetes server version: %w", err)
	}

	parsed, err := version.ParseVersion(info.GitVersion)
	if err != nil {
		slog.Warn("could not parse server version, skipping minimum-version check",
			slog.String("gitVersion", info.GitVersion), slog.String("error", err.Error()))
		return nil
	}

	if !parsed.EqualsOrNewer(minSupportedServerVersion) {
		return fmt.Errorf("kubernetes server version %s is older than the minimum supported version %s",
			parsed.String(), minSupportedServerVersion.String())
	}

	slog.Info("connected to kubernetes server", slog.String("version", parsed.String()))
	return nil
}

// watchSpec is one parsed --watch entry.
type watchSpec struct {
	resourceKey string
	kindLabel   string
	namespace   string
}

func parseWatchSpec(raw, defaultNamespace string) (watchSpec, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return watchSpec{}, fmt.Errorf("invalid --watch entry %q: want resource_key:kind_label[:namespace]", raw)
	}
	spec := watchSpec{resourceKey: parts[0], kindLabel: parts[1], namespace: defaultNamespace}
	if len(parts) == 3 {
		spec.namespace = parts[2]
	}
	return spec, nil
}

func buildWatchers(factory *watchfleet.Factory, raw []string, defaultNamespace string, reg stats.Registry) ([]watchfleet.FleetMember, error) {
	members := make([]watchfleet.FleetMember, 0, len(raw))
	for _, r := range raw {
		spec, err := parseWatchSpec(r, defaultNamespace)
		if err != nil {
			return nil, err
		}
		member, err := factory.NewWatcher(spec.resourceKey, spec.kindLabel, spec.namespace, reg)
		if err != nil {
			return nil, fmt.Errorf("failed to build watcher for %q: %w", r, err)
		}
		members = append(members, member)
	}
	return members, nil
}

// watchStatusHandler reports every watcher's kind, version, readiness, and
// most recent unconsumed error.
func watchStatusHandler(fleet *watchfleet.Fleet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		type status struct {
			Kind    string `json:"kind"`
			Version uint64 `json:"version"`
			Ready   bool   `json:"ready"`
			Error   string `json:"error,omitempty"`
		}

		out := make([]status, 0, len(fleet.Watchers()))
		for _, watcher := range fleet.Watchers() {
			s := status{Kind: watcher.Kind(), Version: watcher.Version(), Ready: watcher.Ready()}
			if errMsg, ok := watcher.Error(); ok {
				s.Error = errMsg
			}
			out = append(out, s)
		}
		serializer.RespondJSON(w, http.StatusOK, out)
	}
}

func watchEntriesHandlerByKind(fleet *watchfleet.Fleet, kindLabel string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, watcher := range fleet.Watchers() {
			if !strings.EqualFold(watcher.Kind(), kindLabel) {
				continue
			}
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Header().Set("X-Watchfleet-Version", fmt.Sprintf("%d", watcher.Version()))
			w.WriteHeader(http.StatusOK)
			for _, entry := range watcher.Entries() {
				if _, err := w.Write(entry); err != nil {
					slog.Warn("failed writing watch entry", slog.String("error", err.Error()))
					return
				}
			}
			return
		}
		http.NotFound(w, r)
	}
}

// scanStore holds the most recent process scan result for the /scan
// handler, guarded by a mutex since it is written from the scan loop
// goroutine and read from arbitrary HTTP handler goroutines.
type scanStore struct {
	mu     sync.RWMutex
	data   []procscan.ProcessData
	digest [20]byte
}

func newScanStore() *scanStore {
	return &scanStore{}
}

func (s *scanStore) set(data []procscan.ProcessData, digest [20]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.digest = digest
}

func (s *scanStore) get() ([]procscan.ProcessData, [20]byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, s.digest
}

func scanHandler(store *scanStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, digest := store.get()
		serializer.RespondJSON(w, http.StatusOK, map[string]any{
			"digest":    fmt.Sprintf("%x", digest),
			"processes": data,
		})
	}
}

func runScanLoop(ctx context.Context, scanner *procscan.Scanner, cfg procscan.ScanConfig, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := scanner.Scan(ctx, cfg); err != nil {
			slog.Error("process scan failed", slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func loadScanConfig(path string) (*procscan.ScanConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scan config %s: %w", path, err)
	}
	var cfg procscan.ScanConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scan config %s: %w", path, err)
	}
	return &cfg, nil
}
