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
	"os/exec"
	"os/user"
	"strconv"
	"syscall"

	"gopkg.in/yaml.v3"

	cnserrors "github.com/NVIDIA/cluster-inventory-watcher/pkg/errors"
)

// tagFetchResult is the YAML shape AppTagExec is expected to print to
// stdout: a list of per-pid tag sets.
type tagFetchResult struct {
	PID  uint64  `yaml:"pid"`
	Tags []TagKV `yaml:"tags"`
}

// TagFetcher runs a configured command as a configured user and parses its
// YAML stdout into a pid -> tags map.
type TagFetcher struct{}

// NewTagFetcher builds a TagFetcher.
func NewTagFetcher() *TagFetcher { return &TagFetcher{} }

// Fetch runs cmd as username and parses its stdout. An empty username or
// empty cmd disables tag fetching and returns an empty map with no error,
// matching the original scanner's behavior of silently skipping tag
// collection when it isn't configured.
func (f *TagFetcher) Fetch(ctx context.Context, username string, cmd []string) (map[uint64][]TagKV, error) {
	if username == "" || len(cmd) == 0 {
		return map[uint64][]TagKV{}, nil
	}

	u, err := user.Lookup(username)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeConfig, "resolve tag-fetch user failed", err,
			map[string]any{"user": username})
	}
	uid, err := strconv.ParseUint(u.Uid, 10, 32)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeConfig, "parse tag-fetch user uid failed", err,
			map[string]any{"user": username, "uid": u.Uid})
	}
	gid, err := strconv.ParseUint(u.Gid, 10, 32)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeConfig, "parse tag-fetch user gid failed", err,
			map[string]any{"user": username, "gid": u.Gid})
	}

	command := exec.CommandContext(ctx, cmd[0], cmd[1:]...)
	command.SysProcAttr = &syscall.SysProcAttr{
		Credential: &syscall.Credential{Uid: uint32(uid), Gid: uint32(gid)},
	}

	out, err := command.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeTransient, "tag-fetch command failed", err,
				map[string]any{"cmd": cmd, "user": username, "stderr": string(exitErr.Stderr)})
		}
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeTransient, "tag-fetch command failed", err,
			map[string]any{"cmd": cmd, "user": username})
	}

	var results []tagFetchResult
	if err := yaml.Unmarshal(out, &results); err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeTransient, "unmarshal tag-fetch output failed", err,
			map[string]any{"cmd": cmd})
	}

	tags := make(map[uint64][]TagKV, len(results))
	for _, r := range results {
		tags[r.PID] = r.Tags
	}
	return tags, nil
}
