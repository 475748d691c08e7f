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

import "time"

// TagKV is one key/value tag attached to a process, sourced from
// ScanConfig.AppTagExec's YAML output.
type TagKV struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// ProcessData describes one scanned host process after rule filtering,
// rewrite, username resolution, and tag attachment.
type ProcessData struct {
	PID         uint64    `json:"pid"`
	ProcessName string    `json:"process_name"` // raw process name from /proc/<pid>/exe
	Name        string    `json:"name"`         // process name, possibly rewritten by a matching Rule
	Cmd         []string  `json:"cmd"`
	UserID      uint32    `json:"user_id"`
	User        string    `json:"user"`
	StartTime   time.Time `json:"start_time"`
	OSAppTags   []TagKV   `json:"os_app_tags,omitempty"`
}

// ScanConfig parameterizes one Scan call.
type ScanConfig struct {
	// ProcRoot is the filesystem root under which /proc-shaped directories
	// are read, e.g. "/" for the real host or a t.TempDir() in tests.
	// Empty means "/".
	ProcRoot string `yaml:"os_proc_root"`
	// MinLifetimeSeconds excludes processes younger than this many seconds
	// from the result. A plain integer scalar, not a duration string: YAML
	// has no notion of time.Duration, so the config key is specified in
	// seconds and converted explicitly via MinLifetime.
	MinLifetimeSeconds int64 `yaml:"os_proc_socket_min_lifetime"`
	// Rules are evaluated in order; the first match wins. A process that
	// matches no rule is excluded from the scan entirely — this mirrors the
	// original scanner, where only rule-matched processes are ever reported.
	Rules []RuleConfig `yaml:"os_proc_regex"`
	// AppTagExecUser is the username the tag-fetch command runs as. Empty
	// disables tag fetching.
	AppTagExecUser string `yaml:"os_app_tag_exec_user"`
	// AppTagExec is the command and arguments used to fetch per-pid tags.
	// Empty disables tag fetching.
	AppTagExec []string `yaml:"os_app_tag_exec"`
}

// MinLifetime returns MinLifetimeSeconds as a time.Duration.
func (c ScanConfig) MinLifetime() time.Duration {
	return time.Duration(c.MinLifetimeSeconds) * time.Second
}

// RuleConfig is the unparsed, user-facing form of a Rule.
type RuleConfig struct {
	// MatchType is "" or "process_name" to match the process name, or "cmd"
	// to match the joined command line.
	MatchType string `yaml:"match_type"`
	// MatchRegex is the regular expression evaluated against MatchType's
	// target string.
	MatchRegex string `yaml:"match_regex"`
	// Action is "" or "accept" to keep the process (rewriting Name if
	// RewriteName is set), or "drop" to exclude it.
	Action string `yaml:"action"`
	// RewriteName is the replacement pattern applied to the matched text
	// when Action is accept. %VAR%-style OS environment references are
	// expanded once, at rule-compile time; regex capture groups ($1, $2,
	// ...) are expanded per match.
	RewriteName string `yaml:"rewrite_name"`
}

// PostScanHook runs once per Scan call, after rule filtering, username
// resolution, and tag attachment have been applied to every returned
// process. The default is a no-op; embedding applications can observe or
// further annotate the scanned set.
type PostScanHook func([]ProcessData)
