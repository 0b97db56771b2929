// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/config"
	"github.com/cashflow-tracker/backend/internal/infra/dependency"
	"github.com/cashflow-tracker/backend/internal/integration/persistence/model"
	"github.com/cashflow-tracker/backend/test/integration/mock"
)

// testContext holds per-scenario state: the last response, seeded record ids
// and the shared server handle.
type testContext struct {
	client       *http.Client
	db           *mock.Db
	response     *http.Response
	responseBody []byte

	accountID     uuid.UUID
	categoryID    uuid.UUID
	transactionID uuid.UUID
	lastID        string
}

var serverOnce sync.Once
var testServer *httptest.Server
var testDB *mock.Db

// startServer wires the full application stack once: shared in-memory SQLite,
// miniredis, the dependency injector and an httptest server.
func startServer() {
	serverOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		os.Setenv("ENV", "test")

		testDB = mock.NewDb(map[string]any{
			"accounts":     &model.AccountModel{},
			"categories":   &model.CategoryModel{},
			"transactions": &model.TransactionModel{},
		})
		redisClient := mock.NewRedis()

		cfg := config.Load()
		cfg.Server.Environment = "test"

		injector := dependency.NewInjector(cfg, testDB.DbConn, redisClient)
		if err := injector.Hub.Run(context.Background()); err != nil {
			panic("failed to start change notification hub: " + err.Error())
		}

		testServer = httptest.NewServer(injector.Router.Setup("test"))
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(startServer)

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		startServer()
		test.db = testDB
		test.response = nil
		test.responseBody = nil
		test.accountID = uuid.Nil
		test.categoryID = uuid.Nil
		test.transactionID = uuid.Nil
		test.lastID = ""
		return ctx, test.db.ClearDB()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Data setup steps
	ctx.Given(`^an account exists with name "([^"]*)"$`, test.anAccountExistsWithName)
	ctx.Given(`^an inactive account exists with name "([^"]*)"$`, test.anInactiveAccountExistsWithName)
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^a transaction exists with type "([^"]*)", amount "([^"]*)" and description "([^"]*)" on date "([^"]*)"$`, test.aTransactionExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func (t *testContext) theAPIServerIsRunning() error {
	if testServer == nil {
		return errors.New("test server is not running")
	}
	return nil
}

func (t *testContext) anAccountExistsWithName(name string) error {
	return t.createAccount(name, true)
}

func (t *testContext) anInactiveAccountExistsWithName(name string) error {
	return t.createAccount(name, false)
}

func (t *testContext) createAccount(name string, active bool) error {
	now := time.Now()
	account := &model.AccountModel{
		ID:        uuid.New(),
		Name:      name,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t.accountID = account.ID
	return t.db.DbConn.Create(account).Error
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	now := time.Now()
	category := &model.CategoryModel{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t.categoryID = category.ID
	return t.db.DbConn.Create(category).Error
}

// aTransactionExists seeds a transaction, referencing the current account and
// category (with name snapshots) when earlier steps created them.
func (t *testContext) aTransactionExists(txType, amount, description, date string) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	parsedDate, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	now := time.Now()
	tx := &model.TransactionModel{
		ID:          uuid.New(),
		Type:        txType,
		Description: description,
		Amount:      parsedAmount,
		Date:        &parsedDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.accountID != uuid.Nil {
		var account model.AccountModel
		if err := t.db.DbConn.First(&account, "id = ?", t.accountID).Error; err != nil {
			return err
		}
		tx.AccountID = &account.ID
		tx.AccountName = account.Name
	}
	if t.categoryID != uuid.Nil {
		var category model.CategoryModel
		if err := t.db.DbConn.First(&category, "id = ?", t.categoryID).Error; err != nil {
			return err
		}
		tx.CategoryID = &category.ID
		tx.CategoryName = category.Name
	}

	t.transactionID = tx.ID
	return t.db.DbConn.Create(tx).Error
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{account_id}}", t.accountID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.categoryID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.transactionID.String())
	content = strings.ReplaceAll(content, "{{id}}", t.lastID)
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, testServer.URL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	t.response = resp
	t.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// Capture the created record's id for follow-up requests.
	var parsed map[string]any
	if err := json.Unmarshal(t.responseBody, &parsed); err == nil {
		if id, ok := parsed["id"].(string); ok {
			t.lastID = id
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)",
			expectedStatus, t.response.StatusCode, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.responseBody), expected) {
		return fmt.Errorf("response does not contain %q (body: %s)", expected, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

// responseField walks a dot-separated path through the response JSON.
// Numeric segments index into arrays, e.g. "items.0.name".
func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	var current any
	if err := json.Unmarshal(t.responseBody, &current); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	for _, segment := range strings.Split(field, ".") {
		switch v := current.(type) {
		case map[string]any:
			value, ok := v[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found (body: %s)", field, string(t.responseBody))
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(v) {
				return nil, fmt.Errorf("invalid array index %q in field %q", segment, field)
			}
			current = v[index]
		default:
			return nil, fmt.Errorf("field %q not found (body: %s)", field, string(t.responseBody))
		}
	}

	return current, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := t.db.DbConn.Find(slicePtr.Interface()).Error; err != nil {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q, got %d", quantity, table, count)
	}
	return nil
}
