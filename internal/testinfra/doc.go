// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to start the backing services rigcheck
// can be deployed against, so the Redis and MongoDB cache stores, the MongoDB
// catalog and the S3-compatible fallback loader are tested against real
// servers rather than fakes:
//
//	func TestRedisStore(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    redis, err := testinfra.StartRedis(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, redis)
//
//	    store, err := cache.NewRedisStore(ctx, redis.URL, "test:")
//	    // ...
//	}
//
// # CI Considerations
//
// Every file carries the integration build tag; run them with
//
//	go test -tags integration ./...
//
// Tests are skipped gracefully if Docker is unavailable. The first run pulls
// the container images.
package testinfra
