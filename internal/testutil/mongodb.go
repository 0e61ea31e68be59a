// Package testutil provides shared test infrastructure, most notably a
// MongoDB container reused across integration tests.
package testutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	mongoCtxTimeout              = 5 * time.Second
	mongoPingTimeout             = 2 * time.Second
	pingRetryDelay               = 500 * time.Millisecond
	mongoContainerStartupTimeout = 60 * time.Second
)

// sharedContainer holds the singleton MongoDB container for the test binary.
var (
	sharedContainer     *SharedMongoContainer
	sharedContainerOnce sync.Once
	errSharedContainer  error
)

// SharedMongoContainer represents a reusable MongoDB container for tests.
type SharedMongoContainer struct {
	Container testcontainers.Container
	URI       string
}

// GetSharedMongoContainer returns a singleton MongoDB container.
// The container is started once and reused across all tests.
func GetSharedMongoContainer(ctx context.Context) (*SharedMongoContainer, error) {
	sharedContainerOnce.Do(func() {
		container, err := startMongoContainer(ctx)
		if err != nil {
			errSharedContainer = err
			return
		}
		sharedContainer = container
	})

	return sharedContainer, errSharedContainer
}

// startMongoContainer starts a new MongoDB container.
func startMongoContainer(ctx context.Context) (*SharedMongoContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "mongo:8",
		Name:         "artify-test-mongodb", // Required for Reuse mode
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(mongoContainerStartupTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
		Reuse:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	uri := fmt.Sprintf("mongodb://%s", net.JoinHostPort(host, port.Port()))

	return &SharedMongoContainer{
		Container: container,
		URI:       uri,
	}, nil
}

// SetupTestMongoDB returns an isolated database in the shared container.
// The test is skipped when Docker is not available.
func SetupTestMongoDB(t *testing.T) *mongo.Database {
	t.Helper()

	if os.Getenv("SKIP_MONGO_TESTS") != "" {
		t.Skip("SKIP_MONGO_TESTS is set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoContainerStartupTimeout)
	defer cancel()

	container, err := GetSharedMongoContainer(ctx)
	if err != nil {
		t.Skipf("MongoDB container unavailable (is Docker running?): %v", err)
	}

	client, err := mongo.Connect(options.Client().ApplyURI(container.URI))
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Ping with retries: the container may still be warming up.
	maxRetries := 5
	for i := range maxRetries {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), mongoPingTimeout)
		err = client.Ping(pingCtx, nil)
		pingCancel()
		if err == nil {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(pingRetryDelay)
		}
	}
	if err != nil {
		t.Fatalf("Failed to ping MongoDB after %d retries: %v", maxRetries, err)
	}

	db := client.Database(generateTestDBName(t.Name()))

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), mongoCtxTimeout)
		defer cleanupCancel()
		_ = db.Drop(cleanupCtx)
		_ = client.Disconnect(cleanupCtx)
	})

	return db
}

// generateTestDBName derives a short, valid database name from a test name.
// Test names can exceed MongoDB's database name limit, so hash them.
func generateTestDBName(testName string) string {
	sum := sha256.Sum256([]byte(testName))
	return "artify_test_" + hex.EncodeToString(sum[:8])
}
