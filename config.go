package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	StartURL string `yaml:"start_url"`

	BrowserProfilePath string `yaml:"browser_profile_path"`

	Headless        bool `yaml:"headless"`
	KeepBrowserOpen bool `yaml:"keep_browser_open"`

	PageLoadTimeout int     `yaml:"page_load_timeout"`
	MinDelayBetween float64 `yaml:"min_delay_between"`
	MaxDelayBetween float64 `yaml:"max_delay_between"`

	// Binding policy. The hardcover threshold is asserted product policy, not
	// derived; the fallback spine width is opt-in and off (0) by default.
	HardcoverPageThreshold int     `yaml:"hardcover_page_threshold"`
	FallbackSpineWidthMm   float64 `yaml:"fallback_spine_width_mm"`

	ProjectCounterPath string `yaml:"project_counter_path"`
	BookCategory       string `yaml:"book_category"`

	CoverFontPath     string `yaml:"cover_font_path"`
	CoverFontBoldPath string `yaml:"cover_font_bold_path"`

	// A silent wizard reset restarts the whole submission, bounded here.
	SubmissionRetryLimit int `yaml:"submission_retry_limit"`

	// Expected order total at checkout. 0 skips verification.
	ExpectedPrice float64 `yaml:"expected_price"`

	Polling   PollTiming     `yaml:"polling"`
	Probes    ProbeConfig    `yaml:"probes"`
	Selectors SelectorConfig `yaml:"selectors"`
	Shipping  ShippingConfig `yaml:"shipping"`

	DryRun    bool `yaml:"dry_run"`
	DebugMode bool `yaml:"debug_mode"`
}

// PollTiming controls the condition poller. All values are milliseconds.
type PollTiming struct {
	IntervalMs        int `yaml:"interval_ms"`
	PerCheckMs        int `yaml:"per_check_ms"`
	UploadTimeoutMs   int `yaml:"upload_timeout_ms"`
	ProgressTimeoutMs int `yaml:"progress_timeout_ms"`
	ResolveTimeoutMs  int `yaml:"resolve_timeout_ms"`
}

// ProbeConfig holds the observable conditions of the remote wizard. A
// "text=" prefix matches visible text, anything else is a CSS selector.
type ProbeConfig struct {
	ProductTypePage   string `yaml:"product_type_page"`
	UploadStarted     string `yaml:"upload_started"`
	Validating        string `yaml:"validating"`
	ValidationSuccess string `yaml:"validation_success"`
	ValidationError   string `yaml:"validation_error"`
	FontError         string `yaml:"font_error"`
	WizardReset       string `yaml:"wizard_reset"`
}

// SelectorConfig lists every known markup shape of each element the workflow
// touches. The driver tries them in order until one resolves.
type SelectorConfig struct {
	UsernameField []string `yaml:"username_field"`
	PasswordField []string `yaml:"password_field"`
	LoginButton   []string `yaml:"login_button"`

	PrintBookRadio      []string `yaml:"print_book_radio"`
	PrintGoalRadio      []string `yaml:"print_goal_radio"`
	ProjectTitleField   []string `yaml:"project_title_field"`
	BookCategoryField   []string `yaml:"book_category_field"`
	DesignProjectButton []string `yaml:"design_project_button"`

	// Keyed by binding family name.
	BindingChoice map[string][]string `yaml:"binding_choice"`

	NextStepButton []string `yaml:"next_step_button"`

	ShipNameField    []string `yaml:"ship_name_field"`
	ShipStreetField  []string `yaml:"ship_street_field"`
	ShipCityField    []string `yaml:"ship_city_field"`
	ShipStateField   []string `yaml:"ship_state_field"`
	ShipPostalField  []string `yaml:"ship_postal_field"`
	ShipCountryField []string `yaml:"ship_country_field"`
	ShipPhoneField   []string `yaml:"ship_phone_field"`

	AddToCartButton  []string `yaml:"add_to_cart_button"`
	CheckoutButton   []string `yaml:"checkout_button"`
	OrderTotalField  string   `yaml:"order_total_field"`
	PlaceOrderButton []string `yaml:"place_order_button"`
}

// ShippingConfig is the address typed into the checkout form. Empty fields
// are skipped.
type ShippingConfig struct {
	Name       string `yaml:"name"`
	Street     string `yaml:"street"`
	City       string `yaml:"city"`
	State      string `yaml:"state"`
	PostalCode string `yaml:"postal_code"`
	Country    string `yaml:"country"`
	Phone      string `yaml:"phone"`
}

func DefaultConfig() *Config {
	userDataDir := getUserDataDir()

	return &Config{
		StartURL:           "https://www.lulu.com/account/wizard/draft/start",
		BrowserProfilePath: filepath.Join(userDataDir, "browser-profile"),
		Headless:           false,
		KeepBrowserOpen:    true,
		PageLoadTimeout:    30,
		MinDelayBetween:    0.3,
		MaxDelayBetween:    0.6,

		HardcoverPageThreshold: 23,
		FallbackSpineWidthMm:   0,

		ProjectCounterPath: filepath.Join(userDataDir, "project_counter.txt"),
		BookCategory:       "Fiction",

		SubmissionRetryLimit: 3,

		Polling: PollTiming{
			IntervalMs:        500,
			PerCheckMs:        1000,
			UploadTimeoutMs:   30000,
			ProgressTimeoutMs: 10000,
			ResolveTimeoutMs:  120000,
		},

		Probes: ProbeConfig{
			ProductTypePage:   "text=Select a Product Type",
			UploadStarted:     "text=Uploading",
			Validating:        "text=Validating your file",
			ValidationSuccess: "text=File accepted",
			ValidationError:   "text=There was a problem with your file",
			FontError:         "text=fonts are not embedded",
			WizardReset:       "text=Drag and drop your file here",
		},

		Selectors: SelectorConfig{
			UsernameField: []string{"input[type='email']", "input[name='username']", "input[id*='username']", "input[name='email']"},
			PasswordField: []string{"input[type='password']", "input[name='password']", "input[id*='password']"},
			LoginButton:   []string{"button[type='submit']", "input[type='submit']"},

			PrintBookRadio:      []string{"label[for*='print-book']", "input[value='print-book']"},
			PrintGoalRadio:      []string{"label[for*='print-your-book']", "input[value='print-your-book']"},
			ProjectTitleField:   []string{"input[name='projectTitle']", "input[placeholder*='project title']"},
			BookCategoryField:   []string{"input[name='bookCategory']", "input[placeholder*='category']"},
			DesignProjectButton: []string{"button[data-testid='design-project']", "button[type='submit']"},

			BindingChoice: map[string][]string{
				"saddle-stitch paperback": {"label[for*='saddle-stitch']", "input[value='saddle-stitch']"},
				"perfect-bound paperback": {"label[for*='perfect-bound']", "input[value='perfect']"},
				"case-wrap hardcover":     {"label[for*='case-wrap']", "input[value='casewrap']"},
				"linen-wrap hardcover":    {"label[for*='linen-wrap']", "input[value='linen']"},
				"coil-bound paperback":    {"label[for*='coil']", "input[value='coil']"},
			},

			NextStepButton: []string{"button[data-testid='next-step']", "button[type='submit']"},

			ShipNameField:    []string{"input[name='fullName']", "input[autocomplete='name']"},
			ShipStreetField:  []string{"input[name='addressLine1']", "input[autocomplete='address-line1']"},
			ShipCityField:    []string{"input[name='city']", "input[autocomplete='address-level2']"},
			ShipStateField:   []string{"input[name='state']", "input[autocomplete='address-level1']"},
			ShipPostalField:  []string{"input[name='postalCode']", "input[autocomplete='postal-code']"},
			ShipCountryField: []string{"input[name='country']", "input[autocomplete='country-name']"},
			ShipPhoneField:   []string{"input[name='phone']", "input[autocomplete='tel']"},

			AddToCartButton:  []string{"button[data-testid='add-to-cart']", ".add-to-cart"},
			CheckoutButton:   []string{"button[data-testid='checkout']", ".btn-checkout"},
			OrderTotalField:  "[data-testid='order-total']",
			PlaceOrderButton: []string{"button[data-testid='place-order']", ".confirm-order"},
		},

		Shipping: ShippingConfig{},

		DryRun:    false,
		DebugMode: false,
	}
}

func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.Save(path); err != nil {
			return nil, err
		}
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if config.BrowserProfilePath != "" {
		if err := os.MkdirAll(config.BrowserProfilePath, 0755); err != nil {
			return nil, err
		}
	}

	return config, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
