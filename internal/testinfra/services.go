// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

//go:build integration

package testinfra

import (
	"context"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultRedisImage backs the redis cache store tests.
	DefaultRedisImage = "redis:7-alpine"

	// DefaultMongoImage backs the mongo cache store and catalog tests.
	DefaultMongoImage = "mongo:7"

	// DefaultMinIOImage backs the object store fallback loader tests.
	DefaultMinIOImage = "minio/minio:latest"

	// MinIO root credentials used by StartMinIO.
	MinIOAccessKey = "rigcheck"
	MinIOSecretKey = "rigcheck-secret"
)

// RedisContainer is a running Redis server.
type RedisContainer struct {
	testcontainers.Container
	// URL is a redis:// connection URL.
	URL string
}

// StartRedis starts a Redis container.
func StartRedis(ctx context.Context) (*RedisContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        DefaultRedisImage,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(DefaultStartTimeout),
	}
	container, addr, err := startContainer(ctx, req, "6379")
	if err != nil {
		return nil, err
	}
	return &RedisContainer{Container: container, URL: "redis://" + addr + "/0"}, nil
}

// MongoContainer is a running single-node MongoDB server.
type MongoContainer struct {
	testcontainers.Container
	// URI is a mongodb:// connection string.
	URI string
}

// StartMongo starts a MongoDB container.
func StartMongo(ctx context.Context) (*MongoContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        DefaultMongoImage,
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("27017/tcp"),
			wait.ForLog("Waiting for connections"),
		).WithStartupTimeout(DefaultStartTimeout),
	}
	container, addr, err := startContainer(ctx, req, "27017")
	if err != nil {
		return nil, err
	}
	return &MongoContainer{Container: container, URI: "mongodb://" + addr}, nil
}

// MinIOContainer is a running S3-compatible MinIO server.
type MinIOContainer struct {
	testcontainers.Container
	// Endpoint is host:port without a scheme, as minio-go expects.
	Endpoint  string
	AccessKey string
	SecretKey string
}

// StartMinIO starts a MinIO server with MinIOAccessKey and MinIOSecretKey as
// root credentials.
func StartMinIO(ctx context.Context) (*MinIOContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        DefaultMinIOImage,
		ExposedPorts: []string{"9000/tcp"},
		Cmd:          []string{"server", "/data"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     MinIOAccessKey,
			"MINIO_ROOT_PASSWORD": MinIOSecretKey,
		},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").WithStartupTimeout(DefaultStartTimeout),
	}
	container, addr, err := startContainer(ctx, req, "9000")
	if err != nil {
		return nil, err
	}
	return &MinIOContainer{
		Container: container,
		Endpoint:  addr,
		AccessKey: MinIOAccessKey,
		SecretKey: MinIOSecretKey,
	}, nil
}
