package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	interiorPath := flag.String("interior", "", "Path to the interior PDF to submit")
	title := flag.String("title", "", "Project title (default: sequential Book_N)")
	coverTitle := flag.String("cover-title", "", "Title printed on the cover (default: project title)")
	subtitle := flag.String("subtitle", "", "Subtitle printed on the cover")
	author := flag.String("author", "", "Author printed on the cover")
	coverOut := flag.String("cover-out", "cover.pdf", "Where to write the generated cover")
	price := flag.Float64("price", 0, "Expected order total for checkout verification (overrides config)")
	dryRun := flag.Bool("dry-run", false, "Test mode: stop before placing the order")
	debug := flag.Bool("debug", false, "Enable detailed debug logging")
	flag.Parse()

	if err := InitLocale(); err != nil {
		log.Printf("Warning: Locale initialization failed, using default English: %v", err)
	}

	config, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *dryRun {
		config.DryRun = true
	}
	if *debug {
		config.DebugMode = true
	}
	if *price > 0 {
		config.ExpectedPrice = *price
	}

	if *interiorPath == "" {
		log.Fatal("No interior PDF specified. Use -interior path/to/book.pdf")
	}

	fmt.Println("╔═══════════════════════════════════════════════════════════╗")
	fmt.Println("║              Print Wizard Submission Assistant            ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Interior: %s\n", *interiorPath)
	fmt.Printf("Browser Profile: %s\n", config.BrowserProfilePath)

	if config.DryRun {
		fmt.Println(T("dry_run_mode"))
	}
	if config.DebugMode {
		fmt.Println("🔍 DEBUG MODE - Detailed logging enabled")
	}
	fmt.Println()

	fmt.Println("📄 Step 1: Inspecting interior document...")
	interior, err := inspectInterior(*interiorPath)
	if err != nil {
		log.Fatalf("Failed to inspect interior: %v", err)
	}
	fmt.Printf(T("interior_summary")+"\n", interior.PageCount, interior.Trim.WidthMm, interior.Trim.HeightMm)

	binding := bindingForPageCount(interior.PageCount, config.HardcoverPageThreshold)

	spine, err := binding.SpineWidth(interior.PageCount)
	if err != nil {
		if errors.Is(err, errSpineRange) && config.FallbackSpineWidthMm > 0 {
			fmt.Printf(T("spine_fallback_used")+"\n", config.FallbackSpineWidthMm)
			spine = config.FallbackSpineWidthMm
		} else {
			log.Fatalf("Invalid binding/page-count combination: %v", err)
		}
	}
	fmt.Printf(T("binding_chosen")+"\n", binding.Name(), spine)

	fmt.Println("\n🎨 Step 2: Generating print-ready cover...")
	geo := binding.Geometry(interior.Trim, spine)
	fmt.Printf(T("cover_sheet")+"\n", geo.SheetWidthMm, geo.SheetHeightMm)

	content := CoverContent{
		Title:    *coverTitle,
		Subtitle: *subtitle,
		Author:   *author,
	}
	if content.Title == "" {
		if *title != "" {
			content.Title = *title
		} else {
			content.Title = "Untitled"
		}
	}

	fontRegular, fontBold, err := loadCoverFonts(config)
	if err != nil {
		log.Fatalf("Cover font unavailable: %v", err)
	}

	coverBytes, err := renderCover(geo, content, fontRegular, fontBold)
	if err != nil {
		log.Fatalf("Failed to render cover: %v", err)
	}
	if err := os.WriteFile(*coverOut, coverBytes, 0644); err != nil {
		log.Fatalf("Failed to write cover: %v", err)
	}
	fmt.Printf(T("cover_written")+"\n", *coverOut)

	fmt.Println("\n🌐 Step 3: Setting up browser...")
	driver := newRodDriver(config)
	defer driver.Close()

	if err := driver.setupBrowser(); err != nil {
		log.Fatalf("Failed to setup browser: %v", err)
	}
	if err := driver.openPage(); err != nil {
		log.Fatalf("Failed to open page: %v", err)
	}

	fmt.Println("\n🚀 Step 4: Running submission workflow...")
	workflow := NewWorkflow(config, driver)
	if err := workflow.Run(interior, *coverOut, binding, *title); err != nil {
		log.Fatalf("Workflow failed: %v", err)
	}

	fmt.Println()
	fmt.Println(T("run_complete"))
	fmt.Println()

	if config.KeepBrowserOpen {
		fmt.Println(T("keeping_browser_open"))
		time.Sleep(30 * time.Second)
	}
}

func getUserDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./bindery-data"
	}
	return filepath.Join(home, ".bindery")
}
