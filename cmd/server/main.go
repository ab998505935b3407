package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"rollmenu/internal/api"
	"rollmenu/internal/engine"
	"rollmenu/internal/preset"
)

const (
	basePort     = 5000
	maxPortTries = 50
)

func main() {
	ds, err := engine.LoadDataset(dataPath())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded dataset: %d columns, %d rows", len(ds.Columns), len(ds.Rows))

	store := engine.NewStore(ds)
	presets, err := preset.NewStore("presets")
	if err != nil {
		log.Fatal(err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// Control and overlay pages plus their assets.
	e.File("/", "ui/control.html")
	e.File("/control", "ui/control.html")
	e.File("/overlay", "ui/overlay.html")
	e.Static("/ui", "ui")
	e.Static("/pics", "pics")
	e.Static("/fonts", "fonts")

	h := api.NewHandler(ds, store, presets)
	h.RegisterRoutes(e)

	port, err := findFreePort(basePort, maxPortTries)
	if err != nil {
		log.Fatal(err)
	}

	printBanner(port)
	e.Logger.Fatal(e.Start(fmt.Sprintf("127.0.0.1:%d", port)))
}

// dataPath prefers the Excel workbook the control page documents, falling
// back to a CSV with the same stem.
func dataPath() string {
	xlsx := filepath.Join("data", "data.xlsx")
	if _, err := os.Stat(xlsx); err == nil {
		return xlsx
	}
	return filepath.Join("data", "data.csv")
}

// findFreePort scans upward from start for a bindable local port.
func findFreePort(start, tries int) (int, error) {
	for port := start; port < start+tries; port++ {
		l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err != nil {
			continue
		}
		l.Close()
		return port, nil
	}
	return 0, fmt.Errorf("no free port in range %d-%d", start, start+tries-1)
}

func printBanner(port int) {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	link := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Underline(true)
	dim := lipgloss.NewStyle().Faint(true)

	fmt.Println(title.Render("Rolling Menu Overlay"))
	fmt.Println("Control panel:")
	fmt.Println("  " + link.Render(fmt.Sprintf("http://127.0.0.1:%d/control", port)))
	fmt.Println("Overlay (use this URL as the OBS browser source):")
	fmt.Println("  " + link.Render(fmt.Sprintf("http://127.0.0.1:%d/overlay", port)))
	fmt.Println(dim.Render("Stop with Ctrl+C or by closing this window."))
	fmt.Println()
}
