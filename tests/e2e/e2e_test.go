// e2e_test.go
//
// A relational sales-management data service with one-time migration from the legacy key-value store
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of salesdb.
// salesdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// salesdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with salesdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/localnerve/salesdb/internal/models"
	"github.com/localnerve/salesdb/tests/helpers"
)

// TestE2EWithFullStack tests the entire service stack: MariaDB, the salesdb
// image built from the repo Dockerfile, and the one-time migration of the
// sample legacy dump that runs on service start.
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	ctx := context.Background()

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	salesdbHost, _ := tc.SalesDBContainer.Host(ctx)
	salesdbPort, _ := tc.SalesDBContainer.MappedPort(ctx, "3000")
	baseURL := fmt.Sprintf("http://%s:%s", salesdbHost, salesdbPort.Port())

	// Wait a bit for everything to stabilize
	time.Sleep(5 * time.Second)

	t.Run("HealthCheck", func(t *testing.T) {
		testHealthCheck(t, baseURL)
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		testPrometheusMetrics(t, baseURL)
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		testSwaggerUI(t, baseURL)
	})

	t.Run("StartupMigration", func(t *testing.T) {
		testStartupMigration(t, baseURL)
	})

	t.Run("MigratedData", func(t *testing.T) {
		testMigratedData(t, baseURL)
	})

	t.Run("UnknownRoute", func(t *testing.T) {
		testUnknownRoute(t, baseURL)
	})
}

func testHealthCheck(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/health")
	if err != nil {
		t.Fatalf("Failed to get health: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)

	var health struct {
		Status    string `json:"status"`
		Database  string `json:"database"`
		Migration string `json:"migration"`
	}
	helpers.ParseJSON(t, resp, &health)

	if health.Status != "healthy" {
		t.Errorf("Expected healthy status, got %q", health.Status)
	}
	if health.Database != "ok" {
		t.Errorf("Expected database ok, got %q", health.Database)
	}
	// The container starts with MIGRATE_ON_START=true
	if health.Migration != "completed" {
		t.Errorf("Expected migration completed, got %q", health.Migration)
	}
}

func testPrometheusMetrics(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/metrics")
	if err != nil {
		t.Fatalf("Failed to get metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for metrics, got %d. Body: %s", resp.StatusCode, string(body))
	}

	t.Logf("Metrics endpoint working, found %d bytes of metrics", len(body))
}

func testSwaggerUI(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/swagger/index.html")
	if err != nil {
		t.Fatalf("Failed to get Swagger UI: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for Swagger UI, got %d", resp.StatusCode)
	}
}

func testStartupMigration(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/migration")
	if err != nil {
		t.Fatalf("Failed to get migration status: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)

	var status struct {
		Migrated bool `json:"migrated"`
	}
	helpers.ParseJSON(t, resp, &status)

	if !status.Migrated {
		t.Error("Expected startup migration to have completed")
	}
}

// testMigratedData checks that the sample legacy dump came through the
// migration with its records intact, including the child rows.
func testMigratedData(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/clients")
	if err != nil {
		t.Fatalf("Failed to get clients: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)

	var clients []models.Client
	helpers.ParseJSON(t, resp, &clients)
	if len(clients) != 2 {
		t.Errorf("Expected 2 migrated clients, got %d", len(clients))
	}

	resp, err = http.Get(baseURL + "/api/products")
	if err != nil {
		t.Fatalf("Failed to get products: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)

	var products []models.Product
	helpers.ParseJSON(t, resp, &products)
	if len(products) != 2 {
		t.Fatalf("Expected 2 migrated products, got %d", len(products))
	}
	for _, p := range products {
		if p.ID == 10 {
			// The legacy record carried a single image and a comma decimal price
			if len(p.Images) != 1 {
				t.Errorf("Expected 1 image on product 10, got %d", len(p.Images))
			}
			if p.Price != 24.90 {
				t.Errorf("Expected price 24.90 on product 10, got %v", p.Price)
			}
		}
	}

	resp, err = http.Get(baseURL + "/api/orders")
	if err != nil {
		t.Fatalf("Failed to get orders: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)

	var orders []models.Order
	helpers.ParseJSON(t, resp, &orders)
	if len(orders) != 1 {
		t.Fatalf("Expected 1 migrated order, got %d", len(orders))
	}
	if orders[0].PaymentMethod != "bank_slip" {
		t.Errorf("Expected bank_slip payment method, got %q", orders[0].PaymentMethod)
	}
	if len(orders[0].Installments) != 2 {
		t.Errorf("Expected 2 installments, got %d", len(orders[0].Installments))
	}
}

func testUnknownRoute(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/nothing")
	if err != nil {
		t.Fatalf("Failed to request unknown route: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}

	// Verify response is valid JSON
	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Errorf("Response is not valid JSON: %v", err)
	}
}
