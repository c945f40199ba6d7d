package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// PageDriver is the remote-document collaborator the core drives. Observe is
// the primitive the condition poller samples; the core never depends on
// concrete selector lists, those live in config.
type PageDriver interface {
	Navigate(url string) error
	WaitLoad() error
	Observe(selectorOrText string, timeout time.Duration) bool
	SubmitFile(inputIndex int, path string) error
	ReadField(selector string, timeout time.Duration) (string, error)
	ClickAny(description string, selectors ...string) error
	FillAny(description, value string, selectors ...string) error
}

type rodDriver struct {
	config   *Config
	browser  *rod.Browser
	page     *rod.Page
	launcher *launcher.Launcher
	rand     *rand.Rand
	stopChan chan bool
}

func newRodDriver(config *Config) *rodDriver {
	return &rodDriver{
		config:   config,
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		stopChan: make(chan bool, 1),
	}
}

func (d *rodDriver) Close() {
	select {
	case d.stopChan <- true:
	default:
	}

	fmt.Println(T("cleaning_up"))

	if d.page != nil {
		d.page.Close()
	}

	if d.browser != nil {
		d.browser.Close()
	}

	if d.launcher != nil {
		d.launcher.Cleanup()
	}

	fmt.Println(T("browser_destroyed"))
}

func (d *rodDriver) isBrowserAlive() bool {
	if d.browser == nil {
		return false
	}

	_, err := d.browser.Version()
	if err != nil {
		d.debugLog("Browser version check failed: %v", err)
		return false
	}

	if d.page != nil {
		_, err := d.page.Info()
		if err != nil {
			d.debugLog("Page info check failed: %v", err)
			return false
		}
	}

	return true
}

func (d *rodDriver) checkBrowserOrExit() {
	if !d.isBrowserAlive() {
		fmt.Println(T("browser_closed_by_user"))
		fmt.Println(T("shutting_down"))
		os.Exit(0)
	}
}

func (d *rodDriver) watchBrowser() {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopChan:
			return
		case <-ticker.C:
			d.checkBrowserOrExit()
		}
	}
}

func (d *rodDriver) debugLog(format string, args ...interface{}) {
	if d.config.DebugMode {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

func (d *rodDriver) settleDelay() {
	min := d.config.MinDelayBetween
	max := d.config.MaxDelayBetween
	duration := min + d.rand.Float64()*(max-min)
	time.Sleep(time.Duration(duration * float64(time.Second)))
}

func (d *rodDriver) elementTimeout() time.Duration {
	timeoutMs := 1500 + d.rand.Intn(500) // Random 1500-2000ms per selector try
	return time.Duration(timeoutMs) * time.Millisecond
}

func (d *rodDriver) setupBrowser() error {
	fmt.Println(T("browser_launching"))

	// Disable leakless mode on Windows to prevent deadlock
	// See: https://github.com/go-rod/rod/issues/853
	useLeakless := runtime.GOOS != "windows"

	// Try to find system Chrome first (avoids download and permission issues)
	chromePath, chromeExists := launcher.LookPath()

	d.launcher = launcher.New().
		Leakless(useLeakless).
		Headless(d.config.Headless)

	// Set custom user data dir so the login session survives between runs.
	// IMPORTANT: Must set this before Bin() to ensure it's applied
	if d.config.BrowserProfilePath != "" {
		d.launcher = d.launcher.UserDataDir(d.config.BrowserProfilePath)
		d.debugLog("Browser profile: %s", d.config.BrowserProfilePath)
	}

	if chromeExists {
		d.launcher = d.launcher.Bin(chromePath)
		fmt.Println(T("browser_using_system_chrome"))
		d.debugLog("Chrome path: %s", chromePath)
	} else {
		fmt.Println(T("browser_chrome_not_found"))
		// Will use automatic Chromium download (default behavior)
	}

	if runtime.GOOS == "windows" {
		fmt.Println(T("windows_leakless_disabled"))
	}

	url, err := d.launcher.Launch()
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "Opening in existing browser session") ||
			strings.Contains(errMsg, "ProcessSingleton") ||
			strings.Contains(errMsg, "SingletonLock") {
			fmt.Println(T("error_chrome_already_running_header"))
			fmt.Println(T("error_chrome_fix_instructions"))
			return fmt.Errorf(T("error_chrome_already_running"))
		}

		return fmt.Errorf("failed to launch browser: %w", err)
	}

	d.browser = rod.New().ControlURL(url).MustConnect()

	go d.watchBrowser()
	d.debugLog("Browser watcher started")

	fmt.Println(T("browser_launched"))
	return nil
}

// openPage creates the stealth page the whole workflow runs in. The wizard
// session is exclusively owned by this single page for the whole run.
func (d *rodDriver) openPage() error {
	var err error
	d.page, err = stealth.Page(d.browser)
	if err != nil {
		return fmt.Errorf("failed to create stealth page: %w", err)
	}

	d.debugLog("Stealth mode enabled (anti-bot detection)")

	userAgent := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
	err = d.page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent: userAgent,
	})
	if err != nil {
		d.debugLog("Warning: Failed to set User-Agent: %v", err)
	}

	return nil
}

func (d *rodDriver) Navigate(url string) error {
	if err := d.page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

func (d *rodDriver) WaitLoad() error {
	page := d.page.Timeout(time.Duration(d.config.PageLoadTimeout) * time.Second)
	defer page.CancelTimeout()

	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("page failed to load: %w", err)
	}
	return nil
}

// Observe reports whether the query matches something on the page within the
// budget. A "text=" prefix searches visible text; anything else is a CSS
// selector.
func (d *rodDriver) Observe(selectorOrText string, timeout time.Duration) bool {
	page := d.page.Timeout(timeout)
	defer page.CancelTimeout()

	var err error
	if text, ok := strings.CutPrefix(selectorOrText, "text="); ok {
		_, err = page.ElementR("*", regexp.QuoteMeta(text))
	} else {
		_, err = page.Element(selectorOrText)
	}

	return err == nil
}

func (d *rodDriver) SubmitFile(inputIndex int, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	page := d.page.Timeout(10 * time.Second)
	defer page.CancelTimeout()

	// Wait for at least one file input to exist before enumerating them.
	if _, err := page.Element("input[type=file]"); err != nil {
		return fmt.Errorf("no file input on page: %w", err)
	}

	inputs, err := page.Elements("input[type=file]")
	if err != nil {
		return fmt.Errorf("failed to enumerate file inputs: %w", err)
	}
	if inputIndex >= len(inputs) {
		return fmt.Errorf("file input %d not present (page has %d)", inputIndex, len(inputs))
	}

	if err := inputs[inputIndex].SetFiles([]string{abs}); err != nil {
		return fmt.Errorf("failed to attach %s: %w", abs, err)
	}

	d.debugLog("Submitted %s to file input %d", abs, inputIndex)
	return nil
}

func (d *rodDriver) ReadField(selector string, timeout time.Duration) (string, error) {
	page := d.page.Timeout(timeout)
	defer page.CancelTimeout()

	el, err := page.Element(selector)
	if err != nil {
		return "", fmt.Errorf("field %s not found: %w", selector, err)
	}

	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("failed to read field %s: %w", selector, err)
	}

	return strings.TrimSpace(text), nil
}

// ClickAny tries each selector in turn and clicks the first that resolves.
// The remote markup varies between deploys, so callers pass every known shape
// of the element.
func (d *rodDriver) ClickAny(description string, selectors ...string) error {
	for _, sel := range selectors {
		page := d.page.Timeout(d.elementTimeout())
		el, err := page.Element(sel)
		if err != nil {
			page.CancelTimeout()
			continue
		}

		err = el.Click(proto.InputMouseButtonLeft, 1)
		page.CancelTimeout()
		if err != nil {
			d.debugLog("Click on %s failed: %v", sel, err)
			continue
		}

		d.debugLog("Clicked %s via %s", description, sel)
		d.settleDelay()
		return nil
	}

	return fmt.Errorf("could not find %s using any selector", description)
}

// FillAny tries each selector in turn and types value into the first field
// that resolves.
func (d *rodDriver) FillAny(description, value string, selectors ...string) error {
	for _, sel := range selectors {
		page := d.page.Timeout(d.elementTimeout())
		el, err := page.Element(sel)
		if err != nil {
			page.CancelTimeout()
			continue
		}

		if err := el.SelectAllText(); err == nil {
			err = el.Input(value)
		}
		page.CancelTimeout()
		if err != nil {
			d.debugLog("Fill of %s failed: %v", sel, err)
			continue
		}

		d.debugLog("Filled %s via %s", description, sel)
		d.settleDelay()
		return nil
	}

	return fmt.Errorf("could not find %s using any selector", description)
}
