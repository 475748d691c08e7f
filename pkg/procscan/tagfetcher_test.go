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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagFetcher_Fetch_DisabledWhenUserEmpty(t *testing.T) {
	f := NewTagFetcher()
	tags, err := f.Fetch(context.Background(), "", []string{"echo", "hi"})
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestTagFetcher_Fetch_DisabledWhenCmdEmpty(t *testing.T) {
	f := NewTagFetcher()
	tags, err := f.Fetch(context.Background(), "nobody", nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestTagFetcher_Fetch_UnknownUserReturnsConfigError(t *testing.T) {
	f := NewTagFetcher()
	_, err := f.Fetch(context.Background(), "procscan-test-user-does-not-exist", []string{"echo"})
	require.Error(t, err)
}
