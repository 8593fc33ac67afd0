package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/repairdesk/backend/internal/application/usecase/attribution"
	"github.com/repairdesk/backend/internal/application/usecase/auth"
	"github.com/repairdesk/backend/internal/application/usecase/dashboard"
	"github.com/repairdesk/backend/internal/application/usecase/expense"
	"github.com/repairdesk/backend/internal/application/usecase/ledger"
	"github.com/repairdesk/backend/internal/application/usecase/party"
	"github.com/repairdesk/backend/internal/application/usecase/product"
	"github.com/repairdesk/backend/internal/application/usecase/reminder"
	"github.com/repairdesk/backend/internal/application/usecase/repair"
	"github.com/repairdesk/backend/internal/application/usecase/sale"
	"github.com/repairdesk/backend/internal/infra/server/router"
	"github.com/repairdesk/backend/internal/integration/adapters"
	"github.com/repairdesk/backend/internal/integration/cache"
	"github.com/repairdesk/backend/internal/integration/entrypoint/controller"
	"github.com/repairdesk/backend/internal/integration/entrypoint/middleware"
	"github.com/repairdesk/backend/internal/integration/persistence"
	"github.com/repairdesk/backend/internal/integration/persistence/model"
	"github.com/repairdesk/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	serverPort    int
	accessToken   string
	refreshToken  string
	currentUserID uuid.UUID
	partyID       uuid.UUID
	supplierID    uuid.UUID
	productID     uuid.UUID
	repairID      uuid.UUID
	lastID        uuid.UUID
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
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"parties":        &model.PartyModel{},
			"ledger_entries": &model.LedgerEntryModel{},
			"repairs":        &model.RepairModel{},
			"phone_sales":    &model.PhoneSaleModel{},
			"products":       &model.ProductModel{},
			"product_sales":  &model.ProductSaleModel{},
			"expenses":       &model.ExpenseModel{},
			"email_jobs":     &model.EmailJobModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Directory setup steps
	ctx.Given(`^a customer exists with name "([^"]*)" and phone "([^"]*)"$`, test.aCustomerExistsWithNameAndPhone)
	ctx.Given(`^a customer exists with name "([^"]*)" phone "([^"]*)" and email "([^"]*)"$`, test.aCustomerExistsWithNamePhoneAndEmail)
	ctx.Given(`^a supplier exists named "([^"]*)"$`, test.aSupplierExistsNamed)
	ctx.Given(`^the party "([^"]*)" has debt "([^"]*)"$`, test.thePartyHasDebt)
	ctx.Given(`^the party "([^"]*)" has credit "([^"]*)"$`, test.thePartyHasCredit)

	// Catalog and transaction setup steps
	ctx.Given(`^a product exists with name "([^"]*)" cost "([^"]*)" price "([^"]*)" and stock (\d+)$`, test.aProductExists)
	ctx.Given(`^a repair exists for customer "([^"]*)" with phone "([^"]*)" status "([^"]*)" repair cost "([^"]*)" parts cost "([^"]*)" created at "([^"]*)"$`, test.aRepairExists)
	ctx.Given(`^a phone sale exists for customer "([^"]*)" with phone "([^"]*)" purchase price "([^"]*)" sale price "([^"]*)" created at "([^"]*)"$`, test.aPhoneSaleExists)
	ctx.Given(`^a product sale exists for customer "([^"]*)" with phone "([^"]*)" quantity (\d+) unit price "([^"]*)" unit cost "([^"]*)" created at "([^"]*)"$`, test.aProductSaleExists)
	ctx.Given(`^an expense exists with description "([^"]*)" category "([^"]*)" amount "([^"]*)" dated "([^"]*)"$`, test.anExpenseExists)

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
	ctx.Then(`^the response field "([^"]*)" should have (\d+) elements$`, test.theResponseFieldShouldHaveElements)

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

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.partyID = uuid.Nil
	t.supplierID = uuid.Nil
	t.productID = uuid.Nil
	t.repairID = uuid.Nil
	t.lastID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			partyRepo := persistence.NewPartyRepository(testDB.DbConn)
			ledgerRepo := persistence.NewLedgerRepository(testDB.DbConn)
			repairRepo := persistence.NewRepairRepository(testDB.DbConn)
			phoneSaleRepo := persistence.NewPhoneSaleRepository(testDB.DbConn)
			productRepo := persistence.NewProductRepository(testDB.DbConn)
			productSaleRepo := persistence.NewProductSaleRepository(testDB.DbConn)
			expenseRepo := persistence.NewExpenseRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			summaryCache := cache.NewSummaryCache(mock.NewRedis())

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			// Create party, ledger and attribution use cases
			createPartyUseCase := party.NewCreatePartyUseCase(partyRepo)
			updatePartyUseCase := party.NewUpdatePartyUseCase(partyRepo)
			deletePartyUseCase := party.NewDeletePartyUseCase(partyRepo)
			listPartiesUseCase := party.NewListPartiesUseCase(partyRepo)
			importPartiesUseCase := party.NewImportPartiesUseCase(partyRepo, repairRepo, phoneSaleRepo, productSaleRepo)
			postAdjustmentUseCase := ledger.NewPostAdjustmentUseCase(partyRepo, ledgerRepo, summaryCache)
			listEntriesUseCase := ledger.NewListEntriesUseCase(partyRepo, ledgerRepo)
			activityUseCase := attribution.NewAggregateActivityUseCase(partyRepo, repairRepo, phoneSaleRepo, productSaleRepo)

			// Create repair use cases
			createRepairUseCase := repair.NewCreateRepairUseCase(repairRepo, ledgerRepo, summaryCache)
			updateRepairUseCase := repair.NewUpdateRepairUseCase(repairRepo, ledgerRepo, summaryCache)
			listRepairsUseCase := repair.NewListRepairsUseCase(repairRepo)
			deleteRepairUseCase := repair.NewDeleteRepairUseCase(repairRepo, summaryCache)

			// Create sale use cases
			createPhoneSaleUseCase := sale.NewCreatePhoneSaleUseCase(phoneSaleRepo, summaryCache)
			listPhoneSalesUseCase := sale.NewListPhoneSalesUseCase(phoneSaleRepo)
			deletePhoneSaleUseCase := sale.NewDeletePhoneSaleUseCase(phoneSaleRepo, summaryCache)
			createProductSaleUseCase := sale.NewCreateProductSaleUseCase(productRepo, productSaleRepo, summaryCache)
			listProductSalesUseCase := sale.NewListProductSalesUseCase(productSaleRepo)
			deleteProductSaleUseCase := sale.NewDeleteProductSaleUseCase(productSaleRepo, summaryCache)

			// Create product use cases
			createProductUseCase := product.NewCreateProductUseCase(productRepo)
			updateProductUseCase := product.NewUpdateProductUseCase(productRepo)
			listProductsUseCase := product.NewListProductsUseCase(productRepo)
			deleteProductUseCase := product.NewDeleteProductUseCase(productRepo)

			// Create expense use cases
			createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, summaryCache)
			updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, summaryCache)
			listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
			deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, summaryCache)

			// Create dashboard and reminder use cases
			summaryUseCase := dashboard.NewGetSummaryUseCase(repairRepo, phoneSaleRepo, productSaleRepo, expenseRepo, partyRepo, summaryCache)
			queueRemindersUseCase := reminder.NewQueueDebtRemindersUseCase(partyRepo, emailQueueRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
			partyController := controller.NewPartyController(
				createPartyUseCase,
				updatePartyUseCase,
				deletePartyUseCase,
				listPartiesUseCase,
				importPartiesUseCase,
				postAdjustmentUseCase,
				listEntriesUseCase,
				activityUseCase,
			)
			repairController := controller.NewRepairController(createRepairUseCase, updateRepairUseCase, listRepairsUseCase, deleteRepairUseCase)
			saleController := controller.NewSaleController(
				createPhoneSaleUseCase,
				listPhoneSalesUseCase,
				deletePhoneSaleUseCase,
				createProductSaleUseCase,
				listProductSalesUseCase,
				deleteProductSaleUseCase,
			)
			productController := controller.NewProductController(createProductUseCase, updateProductUseCase, listProductsUseCase, deleteProductUseCase)
			expenseController := controller.NewExpenseController(createExpenseUseCase, updateExpenseUseCase, listExpensesUseCase, deleteExpenseUseCase)
			dashboardController := controller.NewDashboardController(summaryUseCase, queueRemindersUseCase)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				partyController,
				repairController,
				saleController,
				productController,
				expenseController,
				dashboardController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessTokenString, err := t.signToken("access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshTokenString, err := t.signToken("refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) signToken(tokenType string, now time.Time, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(duration)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "repairdesk",
		"sub":        t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) createParty(kind, name, phone, email string) (uuid.UUID, error) {
	partyID := uuid.New()
	now := time.Now().UTC()

	partyModel := &model.PartyModel{
		ID:             partyID,
		Kind:           kind,
		Name:           name,
		Phone:          phone,
		Email:          email,
		Debt:           decimal.Zero,
		Credit:         decimal.Zero,
		TotalPurchased: decimal.Zero,
		TotalPaid:      decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return partyID, t.db.DbConn.Create(partyModel).Error
}

func (t *testContext) aCustomerExistsWithNameAndPhone(name, phone string) error {
	id, err := t.createParty("customer", name, phone, "")
	if err != nil {
		return err
	}
	t.partyID = id
	return nil
}

func (t *testContext) aCustomerExistsWithNamePhoneAndEmail(name, phone, email string) error {
	id, err := t.createParty("customer", name, phone, email)
	if err != nil {
		return err
	}
	t.partyID = id
	return nil
}

func (t *testContext) aSupplierExistsNamed(name string) error {
	id, err := t.createParty("supplier", name, "", "")
	if err != nil {
		return err
	}
	t.supplierID = id
	return nil
}

func (t *testContext) thePartyHasDebt(name, amount string) error {
	debt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid debt amount %q: %w", amount, err)
	}
	return t.db.DbConn.
		Model(&model.PartyModel{}).
		Where("name = ?", name).
		Update("debt", debt).Error
}

func (t *testContext) thePartyHasCredit(name, amount string) error {
	credit, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid credit amount %q: %w", amount, err)
	}
	return t.db.DbConn.
		Model(&model.PartyModel{}).
		Where("name = ?", name).
		Update("credit", credit).Error
}

func (t *testContext) aProductExists(name, cost, price string, stock int) error {
	costPrice, err := decimal.NewFromString(cost)
	if err != nil {
		return fmt.Errorf("invalid cost price %q: %w", cost, err)
	}
	salePrice, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid sale price %q: %w", price, err)
	}

	productID := uuid.New()
	t.productID = productID

	now := time.Now().UTC()
	productModel := &model.ProductModel{
		ID:        productID,
		Name:      name,
		CostPrice: costPrice,
		SalePrice: salePrice,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(productModel).Error
}

func (t *testContext) aRepairExists(customerName, customerPhone, status, repairCost, partsCost, createdAt string) error {
	rc, err := decimal.NewFromString(repairCost)
	if err != nil {
		return fmt.Errorf("invalid repair cost %q: %w", repairCost, err)
	}
	pc, err := decimal.NewFromString(partsCost)
	if err != nil {
		return fmt.Errorf("invalid parts cost %q: %w", partsCost, err)
	}
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return fmt.Errorf("invalid created at %q: %w", createdAt, err)
	}

	repairID := uuid.New()
	t.repairID = repairID

	repairModel := &model.RepairModel{
		ID:            repairID,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Parts:         pq.StringArray{},
		RepairCost:    rc,
		PartsCost:     pc,
		Status:        status,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}

	return t.db.DbConn.Create(repairModel).Error
}

func (t *testContext) aPhoneSaleExists(customerName, customerPhone, purchasePrice, salePrice, createdAt string) error {
	pp, err := decimal.NewFromString(purchasePrice)
	if err != nil {
		return fmt.Errorf("invalid purchase price %q: %w", purchasePrice, err)
	}
	sp, err := decimal.NewFromString(salePrice)
	if err != nil {
		return fmt.Errorf("invalid sale price %q: %w", salePrice, err)
	}
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return fmt.Errorf("invalid created at %q: %w", createdAt, err)
	}

	saleModel := &model.PhoneSaleModel{
		ID:            uuid.New(),
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		PurchasePrice: pp,
		SalePrice:     sp,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}

	return t.db.DbConn.Create(saleModel).Error
}

func (t *testContext) aProductSaleExists(customerName, customerPhone string, quantity int, unitPrice, unitCost, createdAt string) error {
	up, err := decimal.NewFromString(unitPrice)
	if err != nil {
		return fmt.Errorf("invalid unit price %q: %w", unitPrice, err)
	}
	uc, err := decimal.NewFromString(unitCost)
	if err != nil {
		return fmt.Errorf("invalid unit cost %q: %w", unitCost, err)
	}
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return fmt.Errorf("invalid created at %q: %w", createdAt, err)
	}

	saleModel := &model.ProductSaleModel{
		ID:            uuid.New(),
		ProductName:   "Tempered Glass",
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Quantity:      quantity,
		UnitPrice:     up,
		UnitCost:      uc,
		CreatedAt:     ts,
	}

	return t.db.DbConn.Create(saleModel).Error
}

func (t *testContext) anExpenseExists(description, category, amount, date string) error {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	now := time.Now().UTC()
	expenseModel := &model.ExpenseModel{
		ID:          uuid.New(),
		Description: description,
		Category:    category,
		Amount:      amt,
		Date:        day,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(expenseModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{party_id}}", t.partyID.String())
	content = strings.ReplaceAll(content, "{{supplier_id}}", t.supplierID.String())
	content = strings.ReplaceAll(content, "{{product_id}}", t.productID.String())
	content = strings.ReplaceAll(content, "{{repair_id}}", t.repairID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
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

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastID = id
			}
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
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveElements(field string, count int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(list) != count {
		return fmt.Errorf("field '%s' expected %d elements, got %d", field, count, len(list))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
