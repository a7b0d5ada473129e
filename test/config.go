package test

import (
	"fmt"
	"os"
	"testing"

	"github.com/ory/dockertest/v3"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Firestore emulator test configuration
const (
	FirestoreProject      = "draft-creator-test"
	firestoreEmulatorPort = "8080/tcp"
)

// RunFirestoreEmulator starts the Firestore emulator container and blocks
// until it accepts connections. The returned host is suitable for
// FIRESTORE_EMULATOR_HOST.
func RunFirestoreEmulator(t *testing.T, pool *dockertest.Pool) (*dockertest.Resource, string) {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "gcr.io/google.com/cloudsdktool/cloud-sdk",
		Tag:        "emulators",
		Cmd: []string{
			"gcloud", "emulators", "firestore", "start",
			"--host-port=0.0.0.0:8080",
		},
		ExposedPorts: []string{firestoreEmulatorPort},
	})
	if err != nil {
		t.Fatalf("Could not run firestore emulator from docker: %s", err)
	}

	host := fmt.Sprintf("localhost:%s", resource.GetPort(firestoreEmulatorPort))
	if err := pool.Retry(func() error {
		conn, err := grpc.NewClient(host, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return err
		}
		defer conn.Close()
		conn.Connect()
		return nil
	}); err != nil {
		t.Fatalf("Could not connect to firestore emulator: %s", err)
	}

	// The firestore client reads this to talk to the emulator instead
	// of the live service.
	os.Setenv("FIRESTORE_EMULATOR_HOST", host)
	return resource, host
}
