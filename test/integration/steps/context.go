// Package steps wires Godog step definitions to a running API instance
// backed by an in-memory database and redis.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/budgetlens/backend/internal/application/usecase/aireport"
	"github.com/budgetlens/backend/internal/application/usecase/auth"
	"github.com/budgetlens/backend/internal/application/usecase/budget"
	"github.com/budgetlens/backend/internal/application/usecase/category"
	"github.com/budgetlens/backend/internal/application/usecase/goal"
	"github.com/budgetlens/backend/internal/application/usecase/report"
	"github.com/budgetlens/backend/internal/application/usecase/transaction"
	"github.com/budgetlens/backend/internal/domain/entity"
	"github.com/budgetlens/backend/internal/infra/server/router"
	"github.com/budgetlens/backend/internal/integration/adapters"
	"github.com/budgetlens/backend/internal/integration/cache"
	"github.com/budgetlens/backend/internal/integration/entrypoint/controller"
	"github.com/budgetlens/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetlens/backend/internal/integration/persistence"
	"github.com/budgetlens/backend/internal/integration/persistence/model"
	"github.com/budgetlens/backend/test/integration/mock"
)

const (
	testJWTSecret  = "test-jwt-secret-key-for-testing-purposes"
	testCronSecret = "test-cron-secret"

	dateLayout = "2006-01-02"
)

// stubCompletionService replaces the Gemini adapter so report scenarios are
// deterministic and offline.
type stubCompletionService struct{}

func (stubCompletionService) IsAvailable() bool { return true }

func (stubCompletionService) Complete(_ context.Context, _, _ string) (string, error) {
	return "Your spending this month stayed close to plan. Keep an eye on your largest expense category and consider moving the surplus into savings.", nil
}

type testContext struct {
	uri              string
	headers          map[string]string
	client           *http.Client
	response         *response
	db               *mock.Db
	serverPort       int
	accessToken      string
	refreshToken     string
	currentUserID    uuid.UUID
	currentUserEmail string
	categoryIDs      map[string]uuid.UUID
	currentBudgetID  uuid.UUID
	currentGoalID    uuid.UUID
	transactionIDs   []uuid.UUID
	lastID           uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

// InitializeTestSuite is the Godog suite hook.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(initializePort)
}

// InitializeScenario registers every step definition for a scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("budgetlens", map[string]any{
			"users":              &model.UserModel{},
			"refresh_tokens":     &model.RefreshTokenModel{},
			"categories":         &model.CategoryModel{},
			"transactions":       &model.TransactionModel{},
			"budgets":            &model.BudgetModel{},
			"goals":              &model.GoalModel{},
			"ai_reports":         &model.AIReportModel{},
			"subscription_plans": &model.SubscriptionPlanModel{},
			"user_subscriptions": &model.UserSubscriptionModel{},
			"email_queue":        &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Data setup steps
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^the following transactions exist:$`, test.theFollowingTransactionsExist)
	ctx.Given(`^the user has a "([^"]*)" transaction of "([^"]*)" today$`, test.theUserHasATransactionToday)
	ctx.Given(`^a budget of "([^"]*)" exists for category "([^"]*)" in month "([^"]*)"$`, test.aBudgetExistsForCategoryInMonth)
	ctx.Given(`^a goal exists with name "([^"]*)", target "([^"]*)" and current amount "([^"]*)"$`, test.aGoalExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentUserEmail = ""
	t.categoryIDs = make(map[string]uuid.UUID)
	t.currentBudgetID = uuid.Nil
	t.currentGoalID = uuid.Nil
	t.transactionIDs = nil
	t.lastID = uuid.Nil
	t.response = nil

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}

	// Registration provisions a subscription against the free plan, which
	// main seeds at boot; the scenario reset has to reseed it.
	now := time.Now().UTC()
	return t.db.DbConn.Create(&model.SubscriptionPlanModel{
		ID:          uuid.New(),
		Name:        entity.FreePlanName,
		Description: "Default free tier",
		CreatedAt:   now,
		UpdatedAt:   now,
	}).Error
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
			goalRepo := persistence.NewGoalRepository(testDB.DbConn)
			aiReportRepo := persistence.NewAIReportRepository(testDB.DbConn)
			subscriptionRepo := persistence.NewSubscriptionRepository(testDB.DbConn)

			// Services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			statsCache := cache.NewStatsCache(mock.NewRedis(), time.Minute)

			// Use cases
			provisionUseCase := auth.NewProvisionUserUseCase(categoryRepo, subscriptionRepo)
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, provisionUseCase)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

			listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo)
			createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
			updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, categoryRepo, transactionRepo)
			deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

			listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
			createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
			getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
			updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
			addFundsUseCase := goal.NewAddFundsUseCase(goalRepo)
			deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

			statsUseCase := report.NewGetDashboardStatsUseCase(transactionRepo, statsCache)
			monthlyReportUseCase := report.NewGetMonthlyReportUseCase(transactionRepo)

			listReportsUseCase := aireport.NewListReportsUseCase(aiReportRepo)
			generateReportUseCase := aireport.NewGenerateReportUseCase(
				aiReportRepo, transactionRepo, userRepo, stubCompletionService{}, nil)
			autoGenerateUseCase := aireport.NewAutoGenerateUseCase(userRepo, transactionRepo, generateReportUseCase)

			// Controllers
			healthController := controller.NewHealthController(func() bool { return true })
			authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
			userController := controller.NewUserController(userRepo)
			categoryController := controller.NewCategoryController(
				listCategoriesUseCase, createCategoryUseCase, updateCategoryUseCase, deleteCategoryUseCase)
			transactionController := controller.NewTransactionController(
				listTransactionsUseCase, createTransactionUseCase, updateTransactionUseCase, deleteTransactionUseCase)
			budgetController := controller.NewBudgetController(
				listBudgetsUseCase, createBudgetUseCase, updateBudgetUseCase, deleteBudgetUseCase)
			goalController := controller.NewGoalController(
				listGoalsUseCase, createGoalUseCase, getGoalUseCase, updateGoalUseCase, addFundsUseCase, deleteGoalUseCase)
			reportController := controller.NewReportController(statsUseCase, monthlyReportUseCase)
			aiReportController := controller.NewAIReportController(
				listReportsUseCase, generateReportUseCase, autoGenerateUseCase)

			// Middleware: a generous login limit so scenarios never trip it
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				userController,
				categoryController,
				transactionController,
				budgetController,
				goalController,
				reportController,
				aiReportController,
				loginRateLimiter,
				authMiddleware,
				testCronSecret,
			)

			engine := r.Setup("test")
			if err := engine.Run(fmt.Sprintf(":%d", testServerPort)); err != nil {
				panic(err)
			}
		}()
	})
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := t.client.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	return errors.New("API server did not become healthy in time")
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "Password123!")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password)
}

func (t *testContext) createUser(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:                 uuid.New(),
		Email:              email,
		Name:               "Test User",
		PasswordHash:       string(hash),
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := t.db.DbConn.Create(user).Error; err != nil {
		return err
	}

	t.currentUserID = user.ID
	t.currentUserEmail = email
	return nil
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	if t.currentUserID == uuid.Nil {
		return errors.New("no user created for this scenario")
	}

	tokenRepo := persistence.NewTokenRepository(t.db.DbConn)
	tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)

	pair, err := tokenService.GenerateTokenPair(context.Background(), t.currentUserID, t.currentUserEmail, false)
	if err != nil {
		return fmt.Errorf("failed to generate token pair: %w", err)
	}

	t.accessToken = pair.AccessToken
	t.refreshToken = pair.RefreshToken
	return nil
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		Name:      name,
		Type:      categoryType,
		Icon:      entity.DefaultCategoryIcon,
		Color:     entity.DefaultCategoryColor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(categoryModel).Error; err != nil {
		return err
	}

	t.categoryIDs[name] = categoryModel.ID
	return nil
}

// theFollowingTransactionsExist seeds transactions from a table with the
// columns type, amount, date and category. An empty category column leaves
// the transaction uncategorized.
func (t *testContext) theFollowingTransactionsExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("transactions table needs a header and at least one row")
	}

	columns := make(map[string]int)
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}

	for _, row := range table.Rows[1:] {
		amount, err := decimal.NewFromString(row.Cells[columns["amount"]].Value)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		// Local so boundary dates land inside the report month windows.
		date, err := time.ParseInLocation(dateLayout, row.Cells[columns["date"]].Value, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}

		var categoryID *uuid.UUID
		if idx, ok := columns["category"]; ok {
			if name := row.Cells[idx].Value; name != "" {
				id, ok := t.categoryIDs[name]
				if !ok {
					return fmt.Errorf("category %q was not seeded", name)
				}
				categoryID = &id
			}
		}

		if err := t.createTransaction(row.Cells[columns["type"]].Value, amount, categoryID, date); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) theUserHasATransactionToday(transactionType, amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	return t.createTransaction(transactionType, value, nil, time.Now().UTC())
}

func (t *testContext) createTransaction(transactionType string, amount decimal.Decimal, categoryID *uuid.UUID, date time.Time) error {
	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:         uuid.New(),
		UserID:     t.currentUserID,
		Type:       transactionType,
		Amount:     amount,
		CategoryID: categoryID,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := t.db.DbConn.Create(transactionModel).Error; err != nil {
		return err
	}

	t.transactionIDs = append(t.transactionIDs, transactionModel.ID)
	return nil
}

func (t *testContext) aBudgetExistsForCategoryInMonth(amount, categoryName, month string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("category %q was not seeded", categoryName)
	}

	now := time.Now().UTC()
	budgetModel := &model.BudgetModel{
		ID:         uuid.New(),
		UserID:     t.currentUserID,
		CategoryID: categoryID,
		Amount:     value,
		Month:      month,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := t.db.DbConn.Create(budgetModel).Error; err != nil {
		return err
	}

	t.currentBudgetID = budgetModel.ID
	return nil
}

func (t *testContext) aGoalExists(name, target, current string) error {
	targetAmount, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid target amount: %w", err)
	}
	currentAmount, err := decimal.NewFromString(current)
	if err != nil {
		return fmt.Errorf("invalid current amount: %w", err)
	}

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:            uuid.New(),
		UserID:        t.currentUserID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Color:         entity.DefaultGoalColor,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := t.db.DbConn.Create(goalModel).Error; err != nil {
		return err
	}

	t.currentGoalID = goalModel.ID
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = t.replacePlaceholders(value)
	return nil
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
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{budget_id}}", t.currentBudgetID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	content = strings.ReplaceAll(content, "{{cron_secret}}", testCronSecret)

	if len(t.transactionIDs) > 0 {
		content = strings.ReplaceAll(content, "{{transaction_id}}", t.transactionIDs[len(t.transactionIDs)-1].String())
	}
	for name, id := range t.categoryIDs {
		content = strings.ReplaceAll(content, "{{category_id:"+name+"}}", id.String())
	}

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.uri + path

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field %q: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field %q not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	if value := getFieldValue(body, field); value != nil {
		return fmt.Errorf("field %q should be absent but is %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, expectedCount int) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list: %v", field, value)
	}
	if len(list) != expectedCount {
		return fmt.Errorf("field %q expected %d items, got %d", field, expectedCount, len(list))
	}
	return nil
}

func (t *testContext) responseObject() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	slicePtr := newModelSlice(entityModel)
	if err := t.db.DbConn.Unscoped().Find(slicePtr.Interface()).Error; err != nil {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q, got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	slicePtr := newModelSlice(entityModel)
	if err := query.Find(slicePtr.Interface()).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// newModelSlice builds a *[]T for the given model so gorm can scan into it.
func newModelSlice(entityModel any) reflect.Value {
	entityType := reflect.TypeOf(entityModel).Elem()
	slice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	slicePtr := reflect.New(slice.Type())
	slicePtr.Elem().Set(slice)
	return slicePtr
}

// getFieldValue resolves a dot separated path into a decoded JSON value,
// treating numeric segments as list indexes.
func getFieldValue(object any, dotSeparatedField string) any {
	var current any = object

	for _, segment := range strings.Split(dotSeparatedField, ".") {
		switch v := current.(type) {
		case map[string]any:
			current = v[segment]
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(v) {
				return nil
			}
			current = v[index]
		default:
			return nil
		}
		if current == nil {
			return nil
		}
	}

	return current
}
