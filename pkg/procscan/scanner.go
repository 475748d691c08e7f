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

package procscan

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/procfs"

	cnserrors "github.com/NVIDIA/cluster-inventory-watcher/pkg/errors"
)

// clockTicksPerSecond is the kernel's USER_HZ value. It is effectively
// always 100 on Linux/x86 and is hardcoded by other widely used tools
// (e.g. cadvisor, Docker) rather than read via getconf at every call.
const clockTicksPerSecond = 100

// Scanner drives a process-tree scan: procfs enumeration, uptime
// filtering, rule evaluation, username resolution, and tag attachment.
type Scanner struct {
	tagFetcher   *TagFetcher
	postScanHook PostScanHook
}

// Option configures a Scanner at construction time.
type Option func(*Scanner)

// WithPostScanHook overrides the default no-op PostScanHook.
func WithPostScanHook(hook PostScanHook) Option {
	return func(s *Scanner) { s.postScanHook = hook }
}

// NewScanner builds a Scanner with the given options applied.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		tagFetcher:   NewTagFetcher(),
		postScanHook: func([]ProcessData) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan enumerates every process under cfg.ProcRoot, keeping only those
// that live long enough (cfg.MinLifetime()) and match at least one
// configured Rule. A process matching no rule at all is excluded from the
// result entirely, mirroring the original scanner's behavior.
func (s *Scanner) Scan(ctx context.Context, cfg ScanConfig) ([]ProcessData, error) {
	rules := make([]*Rule, 0, len(cfg.Rules))
	for _, rc := range cfg.Rules {
		rule, err := NewRule(rc)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	tags, err := s.tagFetcher.Fetch(ctx, cfg.AppTagExecUser, cfg.AppTagExec)
	if err != nil {
		slog.Warn("process tag fetch failed, scanning without tags", slog.String("error", err.Error()))
		tags = map[uint64][]TagKV{}
	}

	root := cfg.ProcRoot
	if root == "" {
		root = "/"
	}
	mountPoint := filepath.Join(root, "proc")

	fs, err := procfs.NewFS(mountPoint)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeTransient, "open procfs failed", err,
			map[string]any{"mountPoint": mountPoint})
	}

	procs, err := fs.AllProcs()
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeTransient, "list processes failed", err,
			map[string]any{"mountPoint": mountPoint})
	}

	kstat, err := fs.Stat()
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeTransient, "read kernel stat failed", err,
			map[string]any{"mountPoint": mountPoint})
	}

	now := time.Now()
	pwdCache := NewPasswordCache()

	var out []ProcessData
	for _, proc := range procs {
		pd, err := processDataFromProc(mountPoint, proc, kstat.BootTime)
		if err != nil {
			slog.Debug("skip process", slog.Int("pid", proc.PID), slog.String("error", err.Error()))
			continue
		}

		if now.Sub(pd.StartTime) < cfg.MinLifetime() {
			continue
		}

		for _, rule := range rules {
			if !rule.MatchAndRewrite(&pd, false) {
				continue
			}
			if rule.Drop() {
				break
			}

			if name, ok := pwdCache.Username(mountPoint, pd.PID, pd.UserID); ok {
				pd.User = name
			}
			if t, ok := tags[pd.PID]; ok {
				pd.OSAppTags = t
			}
			out = append(out, pd)
			break
		}
	}

	s.postScanHook(out)
	return out, nil
}

// SelfProcess returns the scanning process's own ProcessData with no rule
// filtering. It resolves the username from the real /etc/passwd, since
// the scanner's own process is not running inside a container mount
// namespace jail the way a scanned process might be.
func (s *Scanner) SelfProcess() (ProcessData, error) {
	proc, err := procfs.Self()
	if err != nil {
		return ProcessData{}, cnserrors.Wrap(cnserrors.ErrCodeTransient, "read self process failed", err)
	}

	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return ProcessData{}, cnserrors.Wrap(cnserrors.ErrCodeTransient, "open procfs failed", err)
	}
	kstat, err := fs.Stat()
	if err != nil {
		return ProcessData{}, cnserrors.Wrap(cnserrors.ErrCodeTransient, "read kernel stat failed", err)
	}

	pd, err := processDataFromProc("/proc", proc, kstat.BootTime)
	if err != nil {
		return ProcessData{}, cnserrors.Wrap(cnserrors.ErrCodeInternal, "build self process data failed", err)
	}

	byUID, err := loadPasswd("/etc/passwd")
	if err == nil {
		if name, ok := byUID[pd.UserID]; ok {
			pd.User = name
		}
	}

	return pd, nil
}

// processDataFromProc builds a ProcessData from a procfs.Proc, leaving
// User empty (username resolution is the caller's responsibility).
// procRoot is the directory containing the pid's numbered subdirectory
// (normally "/proc"; a synthetic root in tests).
func processDataFromProc(procRoot string, proc procfs.Proc, bootTime uint64) (ProcessData, error) {
	exe, err := proc.Executable()
	if err != nil {
		return ProcessData{}, err
	}
	name := filepath.Base(exe)

	cmd, err := proc.CmdLine()
	if err != nil {
		return ProcessData{}, err
	}

	stat, err := proc.Stat()
	if err != nil {
		return ProcessData{}, err
	}
	startSec := bootTime + stat.Starttime/clockTicksPerSecond

	uid, err := procUID(procRoot, proc.PID)
	if err != nil {
		return ProcessData{}, err
	}

	return ProcessData{
		PID:         uint64(proc.PID),
		ProcessName: name,
		Name:        name,
		Cmd:         cmd,
		UserID:      uid,
		StartTime:   time.Unix(int64(startSec), 0),
	}, nil
}

// procUID returns the uid that owns procRoot/<pid>, the same signal the
// original implementation reads to determine a process's owning user.
func procUID(procRoot string, pid int) (uint32, error) {
	info, err := os.Stat(filepath.Join(procRoot, strconv.Itoa(pid)))
	if err != nil {
		return 0, err
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, cnserrors.New(cnserrors.ErrCodeInternal, "no syscall.Stat_t available for pid directory")
	}
	return stat.Uid, nil
}
