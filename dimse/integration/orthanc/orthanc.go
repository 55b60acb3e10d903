// Package orthanc spins up an Orthanc PACS in a container for integration
// tests of the DICOM Upper Layer against a real peer.
package orthanc

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Container wraps a testcontainers Orthanc instance with its mapped
// endpoints.
type Container struct {
	container testcontainers.Container

	// DICOMAddress is the host:port of the mapped DICOM listener.
	DICOMAddress string
	// AETitle is the application entity title Orthanc answers to.
	AETitle string
}

// Start launches an Orthanc container configured to accept any calling AE
// and answer C-ECHO, waiting until its HTTP API reports ready.
func Start(ctx context.Context) (*Container, error) {
	req := testcontainers.ContainerRequest{
		Image:        "orthancteam/orthanc:latest",
		ExposedPorts: []string{"4242/tcp", "8042/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("4242/tcp"),
			wait.ForHTTP("/system").WithPort("8042/tcp").WithStartupTimeout(60*time.Second),
		),
		Env: map[string]string{
			"ORTHANC__DICOM_AET":               "ORTHANC",
			"ORTHANC__DICOM_CHECK_CALLED_AET":  "false",
			"ORTHANC__AUTHENTICATION_ENABLED":  "false",
			"ORTHANC__DICOM_ALWAYS_ALLOW_ECHO": "true",
			"ORTHANC__REMOTE_ACCESS_ALLOWED":   "true",
		},
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start Orthanc container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "4242")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve DICOM port: %w", err)
	}

	return &Container{
		container:    container,
		DICOMAddress: fmt.Sprintf("%s:%s", host, port.Port()),
		AETitle:      "ORTHANC",
	}, nil
}

// Stop terminates the container.
func (c *Container) Stop(ctx context.Context) error {
	if c.container != nil {
		return c.container.Terminate(ctx)
	}
	return nil
}
