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

package watchfleet

import (
	"bytes"
	"compress/zlib"
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/NVIDIA/cluster-inventory-watcher/pkg/defaults"
	"github.com/NVIDIA/cluster-inventory-watcher/pkg/stats"
	"github.com/NVIDIA/cluster-inventory-watcher/pkg/watchfleet/kinds"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/utils/clock"
)

// Watcher is the read-only view every ResourceWatcher[T] exposes, regardless
// of which concrete kind it holds. A Fleet stores a homogeneous []Watcher
// rather than a sum type over every supported kind.
type Watcher interface {
	// Kind returns the watcher's resource kind label, e.g. "Pod".
	Kind() string
	// Version returns the monotonic version counter; it advances whenever
	// the stored object set changes.
	Version() uint64
	// Ready reports whether the initial list has completed.
	Ready() bool
	// Error returns the most recent list/watch failure message, clearing it
	// as a side effect — a second call returns ("", false) until a new
	// error occurs.
	Error() (string, bool)
	// Entries returns a snapshot of every stored, compressed object blob.
	Entries() [][]byte
}

// ResourceWatcher reconciles one Kubernetes resource kind: an initial list,
// followed by a watch stream, with relist-on-stream-end fallback. It is
// parameterized by the Adapter for kind T and satisfies Watcher.
type ResourceWatcher[T kinds.Object] struct {
	adapter kinds.Adapter[T]
	kind    string
	store   *Store
	counter *Counter
	clock   clock.Clock

	zlibBuf *bytes.Buffer
	zlibW   *zlib.Writer
}

// NewResourceWatcher builds a ResourceWatcher for kind T. clk is normally
// clock.RealClock{}; tests substitute clock.NewFakeClock to drive the
// list/sleep intervals deterministically.
func NewResourceWatcher[T kinds.Object](adapter kinds.Adapter[T], kindLabel string, clk clock.Clock) *ResourceWatcher[T] {
	buf := new(bytes.Buffer)
	return &ResourceWatcher[T]{
		adapter: adapter,
		kind:    kindLabel,
		store:   NewStore(),
		counter: &Counter{},
		clock:   clk,
		zlibBuf: buf,
		zlibW:   zlib.NewWriter(buf),
	}
}

// Kind implements Watcher.
func (w *ResourceWatcher[T]) Kind() string { return w.kind }

// Version implements Watcher.
func (w *ResourceWatcher[T]) Version() uint64 { return w.store.Version() }

// Ready implements Watcher.
func (w *ResourceWatcher[T]) Ready() bool { return w.store.Ready() }

// Error implements Watcher.
func (w *ResourceWatcher[T]) Error() (string, bool) { return w.store.Error() }

// Entries implements Watcher.
func (w *ResourceWatcher[T]) Entries() [][]byte { return w.store.Entries() }

// CounterSource returns a stats.Source snapshotting this watcher's telemetry.
// It closes only over the Counter's atomics, never over the watcher itself.
func (w *ResourceWatcher[T]) CounterSource() stats.Source {
	counter := w.counter
	return counter.Snapshot
}

// Run drives the list-then-watch reconciliation loop until ctx is canceled.
// It always returns nil: per-loop failures are recorded on the Store, not
// returned, so one watcher's troubles never need to propagate to a caller
// fanning out many watchers (see Fleet).
func (w *ResourceWatcher[T]) Run(ctx context.Context) error {
	w.fullSync(ctx)
	w.store.SetReady(true)
	slog.Info("watcher ready", slog.String("kind", w.kind))

	lastList := w.clock.Now()

	for ctx.Err() == nil {
		stream, err := w.adapter.Watch(ctx, metav1.ListOptions{})
		if err != nil {
			slog.Warn("watch open failed", slog.String("kind", w.kind), slog.String("error", err.Error()))
		} else {
			if w.consumeWatch(ctx, stream) {
				lastList = w.clock.Now()
			}
		}

		if w.clock.Since(lastList) >= defaults.ListInterval {
			w.fullSync(ctx)
			lastList = w.clock.Now()
		}

		w.sleep(ctx)
	}

	return nil
}

// consumeWatch drains one watch stream, applying events until it closes.
// It returns true if a Gone error triggered a synthesized restart (which
// already performed a fresh list), so the caller can reset its relist
// timer without also performing a redundant list of its own.
func (w *ResourceWatcher[T]) consumeWatch(ctx context.Context, stream watch.Interface) bool {
	defer stream.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case event, ok := <-stream.ResultChan():
			if !ok {
				return false
			}
			if restarted := w.resolveEvent(ctx, event); restarted {
				return true
			}
		}
	}
}

// resolveEvent applies one watch event to the store. It returns true only
// when the event triggered a synthesized restart.
func (w *ResourceWatcher[T]) resolveEvent(ctx context.Context, event watch.Event) bool {
	switch event.Type {
	case watch.Added, watch.Modified:
		obj, ok := event.Object.(T)
		if !ok {
			return false
		}
		w.insert(obj)
		w.counter.RecordApplied()
	case watch.Deleted:
		obj, ok := event.Object.(T)
		if !ok {
			return false
		}
		w.store.Delete(string(obj.GetUID()))
		w.counter.RecordDeleted()
	case watch.Error:
		if isGoneStatus(event.Object) {
			w.synthesizeRestart(ctx)
			return true
		}
		slog.Warn("watch stream error", slog.String("kind", w.kind))
	case watch.Bookmark:
		// no state change
	}
	return false
}

// synthesizeRestart performs a fresh list and reproduces the original
// implementation's Restarted handling: of the full, UID-sorted result set,
// only the last element is kept. Every earlier element is discarded. This
// is a faithful reproduction of a documented upstream quirk, not a bug
// introduced here.
func (w *ResourceWatcher[T]) synthesizeRestart(ctx context.Context) {
	objs, err := w.adapter.List(ctx, metav1.ListOptions{})
	if err != nil {
		w.counter.RecordListError()
		w.store.SetError(w.kind + " watcher relist after restart failed: " + err.Error())
		return
	}
	if len(objs) == 0 {
		return
	}

	sort.Slice(objs, func(i, j int) bool {
		return objs[i].GetUID() < objs[j].GetUID()
	})

	last := objs[len(objs)-1]
	w.insert(last)
	w.counter.RecordRestarted()
}

// fullSync lists the entire current state and replaces the store wholesale.
func (w *ResourceWatcher[T]) fullSync(ctx context.Context) {
	start := w.clock.Now()
	objs, err := w.adapter.List(ctx, metav1.ListOptions{})
	cost := w.clock.Since(start)

	if err != nil {
		w.counter.RecordListError()
		w.store.SetError(w.kind + " watcher list failed: " + err.Error())
		slog.Warn("list failed", slog.String("kind", w.kind), slog.String("error", err.Error()))
		return
	}

	w.counter.RecordList(len(objs), cost.Nanoseconds())

	next := make(map[string][]byte, len(objs))
	for _, obj := range objs {
		uid := string(obj.GetUID())
		if uid == "" {
			continue
		}
		blob, err := w.serialize(obj)
		if err != nil {
			slog.Warn("serialize failed", slog.String("kind", w.kind), slog.String("uid", uid), slog.String("error", err.Error()))
			continue
		}
		next[uid] = blob
	}
	w.store.ReplaceAll(next)
}

// insert projects, serializes, compresses, and upserts one object.
func (w *ResourceWatcher[T]) insert(obj T) {
	uid := string(obj.GetUID())
	if uid == "" {
		return
	}
	blob, err := w.serialize(obj)
	if err != nil {
		slog.Warn("serialize failed", slog.String("kind", w.kind), slog.String("uid", uid), slog.String("error", err.Error()))
		return
	}
	w.store.Upsert(uid, blob)
}

// serialize projects obj, marshals it to canonical JSON, and compresses it
// into a standalone RFC 1950 zlib stream.
func (w *ResourceWatcher[T]) serialize(obj T) ([]byte, error) {
	trimmed := w.adapter.Project(obj)

	raw, err := json.Marshal(trimmed)
	if err != nil {
		return nil, err
	}

	w.zlibBuf.Reset()
	w.zlibW.Reset(w.zlibBuf)
	if _, err := w.zlibW.Write(raw); err != nil {
		return nil, err
	}
	if err := w.zlibW.Close(); err != nil {
		return nil, err
	}

	out := make([]byte, w.zlibBuf.Len())
	copy(out, w.zlibBuf.Bytes())
	return out, nil
}

func (w *ResourceWatcher[T]) sleep(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-w.clock.After(defaults.SleepInterval):
	}
}

// isGoneStatus reports whether a watch.Error event's object carries an HTTP
// 410 Gone status, indicating the resource version used to open the stream
// has expired and a fresh list is required.
func isGoneStatus(obj interface{}) bool {
	status, ok := obj.(*metav1.Status)
	if !ok {
		return false
	}
	return status.Reason == metav1.StatusReasonGone || status.Code == 410
}
