package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Credentials come from the environment, optionally via a .env file.
type Credentials struct {
	Username string
	Password string
}

func loadCredentials() Credentials {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	creds := Credentials{
		Username: os.Getenv("LULU_USERNAME"),
		Password: os.Getenv("LULU_PASSWORD"),
	}

	if creds.Username == "" || creds.Password == "" {
		fmt.Println(T("creds_missing_warning"))
	}

	return creds
}

// nextProjectID returns the next sequential project id, persisted to disk so
// each run gets a fresh title.
func nextProjectID(path string) (int, error) {
	current := 0
	if data, err := os.ReadFile(path); err == nil {
		current, err = strconv.Atoi(strings.TrimSpace(string(data)))
		if err != nil {
			return 0, fmt.Errorf("corrupt project counter %s: %w", path, err)
		}
	}

	next := current + 1
	if err := os.WriteFile(path, []byte(strconv.Itoa(next)), 0644); err != nil {
		return 0, fmt.Errorf("failed to persist project counter: %w", err)
	}
	return next, nil
}

// parsePrice extracts a decimal amount from a displayed price like "$24.99"
// or "USD 1,299.00".
func parsePrice(s string) (float64, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, fmt.Errorf("no amount found in %q", s)
	}
	price, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q: %w", s, err)
	}
	return price, nil
}

// Workflow sequences the wizard pages end to end: login, project setup,
// interior and cover submission, cart, checkout. Exactly one flow drives the
// page at a time; all waiting happens inside the condition poller.
type Workflow struct {
	config    *Config
	driver    PageDriver
	validator *UploadValidator
	creds     Credentials
}

func NewWorkflow(config *Config, driver PageDriver) *Workflow {
	return &Workflow{
		config:    config,
		driver:    driver,
		validator: NewUploadValidator(driver, config.Probes, config.Polling),
		creds:     loadCredentials(),
	}
}

// promptContinue blocks until the user presses Enter (continue) or ESC
// (abort). Used wherever the remote flow may need a human, e.g. CAPTCHA.
func promptContinue() error {
	reader := bufio.NewReader(os.Stdin)
	for {
		input, err := reader.ReadByte()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if input == '\n' || input == '\r' {
			fmt.Println()
			return nil
		}

		if input == 27 { // ESC key
			fmt.Println()
			return fmt.Errorf("user canceled operation")
		}
	}
}

// ensureLoggedIn opens the wizard and logs in if the session cookie has
// expired. Login may hit a CAPTCHA, in which case the user finishes it by
// hand and presses Enter.
func (w *Workflow) ensureLoggedIn() error {
	fmt.Println(T("login_checking"))

	if err := w.driver.Navigate(w.config.StartURL); err != nil {
		return err
	}
	if err := w.driver.WaitLoad(); err != nil {
		return err
	}

	if w.driver.Observe(w.config.Probes.ProductTypePage, 2*time.Second) {
		fmt.Println(T("login_already"))
		return nil
	}

	fmt.Println(T("login_attempting"))

	sels := w.config.Selectors
	if err := w.driver.FillAny("username", w.creds.Username, sels.UsernameField...); err != nil {
		return err
	}
	if err := w.driver.FillAny("password", w.creds.Password, sels.PasswordField...); err != nil {
		return err
	}
	if err := w.driver.ClickAny("login button", sels.LoginButton...); err != nil {
		return err
	}

	fmt.Println(T("login_waiting"))
	if w.driver.Observe(w.config.Probes.ProductTypePage, 15*time.Second) {
		fmt.Println(T("login_success"))
		return nil
	}

	fmt.Println(T("login_manual_needed"))
	fmt.Print(T("login_manual_prompt"))
	if err := promptContinue(); err != nil {
		return err
	}

	if !w.driver.Observe(w.config.Probes.ProductTypePage, 3*time.Second) {
		return fmt.Errorf("still not logged in")
	}
	fmt.Println(T("login_success"))
	return nil
}

// setupProject fills wizard page 1: product type, goal, title, category.
func (w *Workflow) setupProject(title string) error {
	sels := w.config.Selectors

	if !w.driver.Observe(w.config.Probes.ProductTypePage, 15*time.Second) {
		return fmt.Errorf("product type page never appeared")
	}

	// Print Book is usually preselected; click anyway so the state is known.
	if err := w.driver.ClickAny("print book option", sels.PrintBookRadio...); err != nil {
		return err
	}
	if err := w.driver.ClickAny("print goal option", sels.PrintGoalRadio...); err != nil {
		return err
	}

	fmt.Printf(T("project_title")+"\n", title)
	if err := w.driver.FillAny("project title", title, sels.ProjectTitleField...); err != nil {
		return err
	}
	if err := w.driver.FillAny("book category", w.config.BookCategory, sels.BookCategoryField...); err != nil {
		return err
	}

	if err := w.driver.ClickAny("design project button", sels.DesignProjectButton...); err != nil {
		return err
	}

	fmt.Println(T("project_page1_done"))
	return nil
}

func (w *Workflow) chooseBinding(binding Binding) error {
	sels, ok := w.config.Selectors.BindingChoice[binding.Name()]
	if !ok || len(sels) == 0 {
		return fmt.Errorf("no selectors configured for %q binding option", binding.Name())
	}

	fmt.Printf(T("binding_selecting")+"\n", binding.Name())
	return w.driver.ClickAny("binding option", sels...)
}

// submitOnce runs one full submission: project setup, interior upload,
// binding choice, cover upload. Any Reset bubbles up as the retry signal.
func (w *Workflow) submitOnce(title string, interior *InteriorInfo, coverPath string, binding Binding) error {
	if err := w.driver.Navigate(w.config.StartURL); err != nil {
		return err
	}
	if err := w.driver.WaitLoad(); err != nil {
		return err
	}

	if err := w.setupProject(title); err != nil {
		return err
	}

	if _, err := w.validator.RunValidation(interior.Path, KindInterior); err != nil {
		return err
	}

	if err := w.chooseBinding(binding); err != nil {
		return err
	}
	if err := w.driver.ClickAny("next step button", w.config.Selectors.NextStepButton...); err != nil {
		return err
	}

	if _, err := w.validator.RunValidation(coverPath, KindCover); err != nil {
		return err
	}

	return nil
}

// submitWithRetry restarts the whole submission on a silent wizard reset,
// bounded by the configured budget. A reset discards all in-progress state;
// there is no in-place resumption.
func (w *Workflow) submitWithRetry(title string, interior *InteriorInfo, coverPath string, binding Binding) error {
	limit := w.config.SubmissionRetryLimit
	if limit < 1 {
		limit = 1
	}

	var lastErr error
	for attempt := 1; attempt <= limit; attempt++ {
		if attempt > 1 {
			fmt.Printf(T("submission_retrying")+"\n", attempt, limit)
		}

		lastErr = w.submitOnce(title, interior, coverPath, binding)
		if lastErr == nil {
			return nil
		}

		if !retryWholeSubmission(lastErr) {
			return lastErr
		}

		fmt.Println(T("submission_reset_restart"))
	}

	return fmt.Errorf("submission failed after %d attempts: %w", limit, lastErr)
}

// fillShipping types the configured address into the checkout form, skipping
// fields the config leaves empty.
func (w *Workflow) fillShipping() error {
	sels := w.config.Selectors
	ship := w.config.Shipping

	fields := []struct {
		description string
		value       string
		selectors   []string
	}{
		{"recipient name", ship.Name, sels.ShipNameField},
		{"street", ship.Street, sels.ShipStreetField},
		{"city", ship.City, sels.ShipCityField},
		{"state", ship.State, sels.ShipStateField},
		{"postal code", ship.PostalCode, sels.ShipPostalField},
		{"country", ship.Country, sels.ShipCountryField},
		{"phone", ship.Phone, sels.ShipPhoneField},
	}

	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := w.driver.FillAny(f.description, f.value, f.selectors...); err != nil {
			return err
		}
	}

	return nil
}

// verifyOrderTotal compares the displayed total against the expected price
// passed in by the caller. Prices never live in shared state between steps.
func (w *Workflow) verifyOrderTotal(expectedPrice float64) error {
	raw, err := w.driver.ReadField(w.config.Selectors.OrderTotalField, 10*time.Second)
	if err != nil {
		return fmt.Errorf("failed to read order total: %w", err)
	}

	price, err := parsePrice(raw)
	if err != nil {
		return err
	}

	fmt.Printf(T("checkout_order_total")+"\n", price)

	if expectedPrice > 0 && math.Abs(price-expectedPrice) > 0.005 {
		return fmt.Errorf("order total %.2f does not match expected %.2f", price, expectedPrice)
	}

	return nil
}

// checkout walks cart and checkout: add to cart, shipping form, price
// verification, final order. Payment-provider frames are left to the remote
// page; dry-run stops before the order is placed.
func (w *Workflow) checkout(expectedPrice float64) error {
	sels := w.config.Selectors

	fmt.Println(T("checkout_adding_to_cart"))
	if err := w.driver.ClickAny("add to cart button", sels.AddToCartButton...); err != nil {
		return err
	}

	if err := w.driver.ClickAny("checkout button", sels.CheckoutButton...); err != nil {
		return err
	}
	if err := w.driver.WaitLoad(); err != nil {
		return err
	}

	fmt.Println(T("checkout_filling_shipping"))
	if err := w.fillShipping(); err != nil {
		return err
	}

	if err := w.verifyOrderTotal(expectedPrice); err != nil {
		return err
	}

	if w.config.DryRun {
		fmt.Println(T("checkout_dry_run_stop"))
		return nil
	}

	fmt.Println(T("checkout_placing_order"))
	if err := w.driver.ClickAny("place order button", sels.PlaceOrderButton...); err != nil {
		return err
	}

	fmt.Println(T("checkout_complete"))
	return nil
}

// Run executes the whole flow for one book.
func (w *Workflow) Run(interior *InteriorInfo, coverPath string, binding Binding, title string) error {
	if err := w.ensureLoggedIn(); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if title == "" {
		id, err := nextProjectID(w.config.ProjectCounterPath)
		if err != nil {
			return err
		}
		title = fmt.Sprintf("Book_%d", id)
	}

	if err := w.submitWithRetry(title, interior, coverPath, binding); err != nil {
		return err
	}

	fmt.Println(T("submission_complete"))

	return w.checkout(w.config.ExpectedPrice)
}
