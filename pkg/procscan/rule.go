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
	"os"
	"regexp"
	"strings"

	cnserrors "github.com/NVIDIA/cluster-inventory-watcher/pkg/errors"
)

// Match type and action string values accepted by RuleConfig.
const (
	MatchTypeProcessName = "process_name"
	MatchTypeCmd         = "cmd"

	ActionAccept = "accept"
	ActionDrop   = "drop"
)

// Rule is a compiled, ready-to-evaluate RuleConfig.
type Rule struct {
	matchCmd bool // false matches ProcessName, true matches Cmd
	drop     bool
	regex    *regexp.Regexp
	rewrite  string // environment-expanded, empty means "no rewrite"
}

// NewRule compiles cfg into a Rule. An unparseable regex or an unrecognized
// MatchType/Action is a configuration error (ErrCodeConfig), surfaced once
// at scan-config build time rather than during scanning.
func NewRule(cfg RuleConfig) (*Rule, error) {
	re, err := regexp.Compile(cfg.MatchRegex)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeConfig, "invalid process scan rule regex", err,
			map[string]any{"regex": cfg.MatchRegex})
	}

	var matchCmd bool
	switch cfg.MatchType {
	case "", MatchTypeProcessName:
		matchCmd = false
	case MatchTypeCmd:
		matchCmd = true
	default:
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeConfig, "unknown process scan rule match type",
			map[string]any{"matchType": cfg.MatchType})
	}

	var drop bool
	switch cfg.Action {
	case "", ActionAccept:
		drop = false
	case ActionDrop:
		drop = true
	default:
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeConfig, "unknown process scan rule action",
			map[string]any{"action": cfg.Action})
	}

	return &Rule{
		matchCmd: matchCmd,
		drop:     drop,
		regex:    re,
		rewrite:  expandEnv(cfg.RewriteName),
	}, nil
}

// Drop reports whether a match against this rule should exclude the
// process entirely.
func (r *Rule) Drop() bool { return r.drop }

// MatchAndRewrite reports whether r matches pd, rewriting pd.Name in place
// when the rule accepts and a rewrite pattern is configured. matchOnly
// suppresses the rewrite even on a match, mirroring the original
// implementation's match-without-mutate mode.
func (r *Rule) MatchAndRewrite(pd *ProcessData, matchOnly bool) bool {
	target := pd.ProcessName
	if r.matchCmd {
		target = strings.Join(pd.Cmd, " ")
	}

	loc := r.regex.FindStringIndex(target)
	if loc == nil {
		return false
	}

	if !r.drop && r.rewrite != "" && !matchOnly {
		pd.Name = r.regex.ReplaceAllString(target, r.rewrite)
	}
	return true
}

// expandEnv expands %VAR%-style OS environment references, defaulting
// unset variables to the empty string. This runs once at rule-compile
// time, not per match.
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	for {
		start := strings.IndexByte(s, '%')
		if start < 0 {
			b.WriteString(s)
			break
		}
		end := strings.IndexByte(s[start+1:], '%')
		if end < 0 {
			b.WriteString(s)
			break
		}
		end += start + 1
		b.WriteString(s[:start])
		b.WriteString(os.Getenv(s[start+1 : end]))
		s = s[end+1:]
	}
	return b.String()
}
