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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest_OrderIndependent(t *testing.T) {
	a := []ProcessData{
		{PID: 2, OSAppTags: []TagKV{{Key: "env", Value: "prod"}}},
		{PID: 1, OSAppTags: nil},
	}
	b := []ProcessData{
		{PID: 1, OSAppTags: nil},
		{PID: 2, OSAppTags: []TagKV{{Key: "env", Value: "prod"}}},
	}

	assert.Equal(t, Digest(a), Digest(b))
}

func TestDigest_IgnoresNonTagFields(t *testing.T) {
	a := []ProcessData{{PID: 1, Name: "nginx", User: "root"}}
	b := []ProcessData{{PID: 1, Name: "totally-different", User: "nobody"}}

	assert.Equal(t, Digest(a), Digest(b))
}

func TestDigest_TagsChangeDigest(t *testing.T) {
	a := []ProcessData{{PID: 1, OSAppTags: []TagKV{{Key: "env", Value: "prod"}}}}
	b := []ProcessData{{PID: 1, OSAppTags: []TagKV{{Key: "env", Value: "staging"}}}}

	assert.NotEqual(t, Digest(a), Digest(b))
}

func TestDigest_EmptyInputIsStable(t *testing.T) {
	assert.Equal(t, Digest(nil), Digest([]ProcessData{}))
}
