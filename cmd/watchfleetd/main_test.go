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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	k8sversion "k8s.io/apimachinery/pkg/version"
	fakediscovery "k8s.io/client-go/discovery/fake"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/NVIDIA/cluster-inventory-watcher/pkg/procscan"
	"github.com/NVIDIA/cluster-inventory-watcher/pkg/watchfleet"
)

func TestParseWatchSpec_TwoPartsUsesDefaultNamespace(t *testing.T) {
	spec, err := parseWatchSpec("pods:Pod", "default")
	require.NoError(t, err)
	assert.Equal(t, watchSpec{resourceKey: "pods", kindLabel: "Pod", namespace: "default"}, spec)
}

func TestParseWatchSpec_ThreePartsOverridesNamespace(t *testing.T) {
	spec, err := parseWatchSpec("pods:Pod:kube-system", "default")
	require.NoError(t, err)
	assert.Equal(t, "kube-system", spec.namespace)
}

func TestParseWatchSpec_RejectsMalformedEntries(t *testing.T) {
	_, err := parseWatchSpec("pods", "default")
	assert.Error(t, err)

	_, err = parseWatchSpec("a:b:c:d", "default")
	assert.Error(t, err)
}

// fakeMember is a minimal watchfleet.FleetMember used to exercise the HTTP
// handlers without a real Kubernetes client.
type fakeMember struct {
	kind    string
	version uint64
	ready   bool
	errMsg  string
	hasErr  bool
	entries [][]byte
}

func (m *fakeMember) Kind() string          { return m.kind }
func (m *fakeMember) Version() uint64       { return m.version }
func (m *fakeMember) Ready() bool           { return m.ready }
func (m *fakeMember) Error() (string, bool) { return m.errMsg, m.hasErr }
func (m *fakeMember) Entries() [][]byte     { return m.entries }
func (m *fakeMember) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func TestWatchStatusHandler_ReportsEveryWatcher(t *testing.T) {
	fleet := watchfleet.NewFleet(
		&fakeMember{kind: "Pod", version: 3, ready: true},
		&fakeMember{kind: "Node", version: 0, ready: false, errMsg: "list failed", hasErr: true},
	)

	req := httptest.NewRequest(http.MethodGet, "/watch", nil)
	rec := httptest.NewRecorder()
	watchStatusHandler(fleet)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out []struct {
		Kind    string `json:"kind"`
		Version uint64 `json:"version"`
		Ready   bool   `json:"ready"`
		Error   string `json:"error,omitempty"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Pod", out[0].Kind)
	assert.True(t, out[0].Ready)
	assert.Equal(t, "Node", out[1].Kind)
	assert.Equal(t, "list failed", out[1].Error)
}

func TestWatchEntriesHandlerByKind_WritesMatchingWatcherEntries(t *testing.T) {
	fleet := watchfleet.NewFleet(
		&fakeMember{kind: "Pod", entries: [][]byte{[]byte("blob-1"), []byte("blob-2")}},
		&fakeMember{kind: "Node", entries: [][]byte{[]byte("other")}},
	)

	req := httptest.NewRequest(http.MethodGet, "/watch/pod", nil)
	rec := httptest.NewRecorder()
	watchEntriesHandlerByKind(fleet, "Pod")(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "blob-1blob-2", rec.Body.String())
}

func TestWatchEntriesHandlerByKind_UnknownKindIsNotFound(t *testing.T) {
	fleet := watchfleet.NewFleet(&fakeMember{kind: "Pod"})

	req := httptest.NewRequest(http.MethodGet, "/watch/bogus", nil)
	rec := httptest.NewRecorder()
	watchEntriesHandlerByKind(fleet, "Bogus")(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckServerVersion_AcceptsSupportedVersion(t *testing.T) {
	client := fake.NewSimpleClientset()
	fakeDisc, ok := client.Discovery().(*fakediscovery.FakeDiscovery)
	require.True(t, ok)
	fakeDisc.FakedServerVersion = &k8sversion.Info{GitVersion: "v1.30.2"}

	assert.NoError(t, checkServerVersion(client))
}

func TestCheckServerVersion_RejectsUnsupportedVersion(t *testing.T) {
	client := fake.NewSimpleClientset()
	fakeDisc, ok := client.Discovery().(*fakediscovery.FakeDiscovery)
	require.True(t, ok)
	fakeDisc.FakedServerVersion = &k8sversion.Info{GitVersion: "v1.18.0"}

	err := checkServerVersion(client)
	assert.Error(t, err)
}

func TestLoadScanConfig_ParsesMinLifetimeAsSeconds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("os_proc_socket_min_lifetime: 5\n"), 0o644))

	cfg, err := loadScanConfig(path)
	require.NoError(t, err)
	assert.EqualValues(t, 5, cfg.MinLifetimeSeconds)
	assert.Equal(t, 5*time.Second, cfg.MinLifetime())
}

func TestScanStore_GetReflectsMostRecentSet(t *testing.T) {
	store := newScanStore()

	data, digest := store.get()
	assert.Empty(t, data)
	assert.Equal(t, [20]byte{}, digest)

	want := []procscan.ProcessData{{PID: 1, Name: "nginx"}}
	wantDigest := procscan.Digest(want)
	store.set(want, wantDigest)

	data, digest = store.get()
	assert.Equal(t, want, data)
	assert.Equal(t, wantDigest, digest)
}

func TestScanHandler_ReportsDigestAndProcesses(t *testing.T) {
	store := newScanStore()
	data := []procscan.ProcessData{{PID: 7, Name: "worker"}}
	store.set(data, procscan.Digest(data))

	req := httptest.NewRequest(http.MethodGet, "/scan", nil)
	rec := httptest.NewRecorder()
	scanHandler(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Digest    string                  `json:"digest"`
		Processes []procscan.ProcessData `json:"processes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Processes, 1)
	assert.Equal(t, uint64(7), out.Processes[0].PID)
	assert.NotEmpty(t, out.Digest)
}
