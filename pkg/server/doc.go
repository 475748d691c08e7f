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

// Package server implements a minimal read-only HTTP status and metrics
// server for the watcher fleet and process scanner.
//
// # Architecture
//
// The server exposes a stateless HTTP surface with:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for log correlation
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//
// Status endpoints (fleet kind/version/ready/error per watcher, scanner
// digest) are registered by the caller through WithHandler; this package
// owns only the transport, middleware, and system endpoints.
//
// # Usage
//
//	s := server.New(server.WithHandler(map[string]http.HandlerFunc{
//	    "/v1/status": statusHandler,
//	}))
//	if err := s.Run(ctx); err != nil {
//	    panic(err)
//	}
//
// # API Endpoints
//
// GET /health - liveness probe, always 200 OK.
//
// GET /ready - readiness probe, 200 once the server has started, 503
// before that and during shutdown.
//
// GET /metrics - Prometheus exposition format, via promhttp.Handler.
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	If not provided, the server generates one automatically, and returns
//	it in the X-Request-Id response header and in error bodies.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per window
//	  X-RateLimit-Remaining: Requests remaining in current window
//	  X-RateLimit-Reset: Unix timestamp when window resets
//
//	When rate limited, returns 429 with a Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "unknown resource key",
//	  "details": {"kind": "widgets"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - UUID generation: https://pkg.go.dev/github.com/google/uuid
//   - Error groups: https://pkg.go.dev/golang.org/x/sync/errgroup
//   - Kubernetes probes: https://kubernetes.io/docs/tasks/configure-pod-container/configure-liveness-readiness-startup-probes/
package server
