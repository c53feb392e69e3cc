// This file is a helper for running tests with testcontainers.
// It builds the salesdb image (or reuses a cached one), starts a MariaDB
// container beside it, and seeds the legacy dump the service migrates on boot.
//

package helpers

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/localnerve/salesdb/data"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

const legacyStoreContainerPath = "/data/legacy-store.json"

type TestContainers struct {
	Network          *testcontainers.DockerNetwork
	DBContainer      testcontainers.Container
	SalesDBContainer testcontainers.Container
}

func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.SalesDBContainer != nil {
		if err := tc.SalesDBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate SalesDB: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate MariaDB: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

func CreateAllTestContainers(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	testContainers := &TestContainers{}

	// Create a network
	nw, err := network.New(ctx)
	if err != nil {
		exitWithError(t, err, "Failed to create network")
	}
	testContainers.Network = nw
	networkName := nw.Name

	// Create and start the Database container
	dbNetworkName := envDefault("DB_HOST", "mariadb")
	tcpDbPort, err := nat.NewPort("tcp", envDefault("DB_PORT", "3306"))
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to create DB port")
	}
	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        envDefault("DB_IMAGE", "mariadb:11"),
			ExposedPorts: []string{string(tcpDbPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": envDefault("DB_ROOT_PASSWORD", "rootpass"),
				"MYSQL_DATABASE":      envDefault("DB_DATABASE", "salesdb"),
				"MYSQL_USER":          envDefault("DB_USER", "sales"),
				"MYSQL_PASSWORD":      envDefault("DB_PASSWORD", "salespass"),
			},
			WaitingFor: wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
			Networks:   []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {dbNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to start Database")
	}
	testContainers.DBContainer = dbContainer

	// Make sure the database accepts the app user before the service boots
	dbHost, _ := dbContainer.Host(ctx)
	dbPort, _ := dbContainer.MappedPort(ctx, tcpDbPort)
	if err := waitForMySql(t, testContainers, dbHost, dbPort); err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to initialize database")
	}

	imageName := "salesdb-test:latest"

	// Check if image exists
	imageExists, err := imageExists(ctx, imageName)
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to check if image exists")
	}

	salesdbPortNumber := envDefault("PORT", "3000")
	tcpSalesdbPort, err := nat.NewPort("tcp", salesdbPortNumber)
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to create SalesDB port")
	}

	// Create SalesDB container request (we add to it later)
	salesdbContainerRequest := testcontainers.ContainerRequest{
		ExposedPorts: []string{string(tcpSalesdbPort)},
		Env: map[string]string{
			"DB_TYPE":           "mysql",
			"DB_HOST":           dbNetworkName,
			"DB_PORT":           envDefault("DB_PORT", "3306"),
			"DB_DATABASE":       envDefault("DB_DATABASE", "salesdb"),
			"DB_USER":           envDefault("DB_USER", "sales"),
			"DB_PASSWORD":       envDefault("DB_PASSWORD", "salespass"),
			"PORT":              salesdbPortNumber,
			"LEGACY_STORE_PATH": legacyStoreContainerPath,
			"MIGRATE_ON_START":  "true",
		},
		Files: []testcontainers.ContainerFile{
			{
				Reader:            bytes.NewReader(data.SampleLegacyStore),
				ContainerFilePath: legacyStoreContainerPath,
				FileMode:          0o644,
			},
		},
		WaitingFor: wait.ForHTTP("/health").WithPort(tcpSalesdbPort).WithStartupTimeout(30 * time.Second),
		Networks:   []string{networkName},
	}

	if !imageExists {
		salesdbResourceReaperSessionID := uuid.New().String()
		salesdbBuildArgs := map[string]*string{
			"RESOURCE_REAPER_SESSION_ID": &salesdbResourceReaperSessionID,
		}

		buildContext := os.Getenv("TESTCONTAINERS_BUILD_CONTEXT")
		if buildContext == "" {
			buildContext = "../.."
		}

		logMessage(t, "Image %s does not exist, building...", imageName)
		imageNameParts := strings.Split(imageName, ":")
		salesdbContainerRequest.FromDockerfile = testcontainers.FromDockerfile{
			Context:       buildContext,
			Dockerfile:    "Dockerfile",
			Repo:          imageNameParts[0],
			Tag:           imageNameParts[1],
			KeepImage:     true, // Keep the image so we can reuse it
			BuildArgs:     salesdbBuildArgs,
			PrintBuildLog: true,
		}
	} else {
		// Add Image to SalesDB container request to reuse the existing image
		logMessage(t, "Image %s exists, reusing...", imageName)
		salesdbContainerRequest.Image = imageName
	}

	// Create and start the SalesDB container
	salesdbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: salesdbContainerRequest,
		Started:          true,
	})
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to start SalesDB")
	}
	testContainers.SalesDBContainer = salesdbContainer

	// Log the localhost and mapped ports for SalesDB
	salesdbHost, _ := salesdbContainer.Host(ctx)
	salesdbPort, _ := salesdbContainer.MappedPort(ctx, tcpSalesdbPort)
	logMessage(t, "BASE_URL=%s:%s", salesdbHost, salesdbPort.Port())

	logMessage(t, "SalesDB testcontainer started successfully")
	return testContainers, nil
}

// waitForMySql blocks until the root account answers, then makes sure the app
// user can reach its database from any host on the container network.
func waitForMySql(t *testing.T, testContainers *TestContainers, dbHost string, dbPort nat.Port) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", envDefault("DB_ROOT_PASSWORD", "rootpass"), dbHost, dbPort.Port()))
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to connect to MariaDB for setup")
	}
	defer db.Close()

	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "MariaDB not ready after 30 seconds")
	}

	_, err = db.Exec(fmt.Sprintf("GRANT ALL PRIVILEGES ON %s.* TO '%s'@'%%'",
		envDefault("DB_DATABASE", "salesdb"), envDefault("DB_USER", "sales")))
	if err != nil {
		return fmt.Errorf("failed to grant privileges: %w", err)
	}
	_, err = db.Exec("FLUSH PRIVILEGES")
	if err != nil {
		return fmt.Errorf("failed to flush privileges: %w", err)
	}
	return nil
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, image := range images {
		for _, tag := range image.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func envDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func exitWithError(t *testing.T, err error, msg string) {
	if t != nil {
		t.Fatalf(msg+": %v", err)
	} else {
		fmt.Printf(msg+": %v\n", err)
		os.Exit(1)
	}
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
