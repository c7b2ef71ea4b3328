// ABOUTME: Entry point for the sketchsound asset tool
// ABOUTME: Resolves asset paths against codec support, optionally from a browser report
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Sendspin/sketchsound/internal/discovery"
	"github.com/Sendspin/sketchsound/internal/ui"
	"github.com/Sendspin/sketchsound/internal/version"
	"github.com/Sendspin/sketchsound/pkg/audio/output"
	"github.com/Sendspin/sketchsound/pkg/audio/probe"
	"github.com/Sendspin/sketchsound/pkg/format"
	"github.com/Sendspin/sketchsound/pkg/sketch"
	"github.com/Sendspin/sketchsound/pkg/support"
)

var (
	formats    = flag.String("formats", "ogg,mp3", "Preferred formats, highest priority first")
	candidates = flag.Bool("candidates", false, "Treat arguments as one ordered candidate list")
	inspect    = flag.Bool("inspect", false, "Inspect resolved files on disk")
	listen     = flag.String("listen", "", "Accept browser capability reports on this address (e.g. :8930)")
	noMDNS     = flag.Bool("no-mdns", false, "Disable mDNS advertisement of the capability endpoint")
	useTUI     = flag.Bool("tui", false, "Show the interactive format matrix")
	device     = flag.Bool("device", false, "Open the system audio device instead of a headless output")
	sampleRate = flag.Int("sample-rate", 44100, "Output sample rate")
	volume     = flag.Float64("volume", 1.0, "Master volume (linear gain)")
	tone       = flag.Float64("tone", -1, "Play a sine at this MIDI note through the output (negative disables)")
	toneLength = flag.Duration("tone-length", time.Second, "How long -tone plays")
	logFile    = flag.String("log-file", "sketchsound.log", "Log file path")
)

func main() {
	flag.Parse()

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if *useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	log.Printf("Starting %s %s", version.Product, version.Version)

	// Pick the support oracle
	var oracle support.Oracle = probe.Linked()
	source := "linked codecs"
	var reporter *support.Reporter
	if *listen != "" {
		reporter = support.NewReporter(support.NewSnapshot())
		oracle = reporter.Snapshot()
		source = "waiting for report on " + *listen
	}

	var out output.Output = output.NewNull()
	if *device {
		out = output.NewOto()
	}

	snd, err := sketch.New(sketch.Config{
		Output:           out,
		SampleRate:       *sampleRate,
		Oracle:           oracle,
		PreferredFormats: splitFormats(*formats),
	})
	if err != nil {
		var invalid *format.InvalidFormatError
		if errors.As(err, &invalid) {
			log.Fatalf("Unknown format %q in -formats", invalid.Format)
		}
		log.Fatalf("Failed to create sound: %v", err)
	}
	defer snd.Close()

	snd.SetMasterVolume(*volume)

	assets := flag.Args()

	if reporter != nil {
		startReporter(reporter, *listen)
	}

	if *useTUI {
		runTUI(snd, assets, source, oracle, reporter)
		return
	}

	printResolutions(snd, assets)

	if *tone >= 0 {
		playTone(snd, *tone, *toneLength)
	}

	if reporter == nil {
		return
	}

	// Re-resolve whenever a browser reports new capabilities
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case report := <-reporter.Updates():
			log.Printf("Capability report from %s", report.RemoteAddr)
			printResolutions(snd, assets)
		case <-sigChan:
			log.Printf("Shutdown signal received")
			return
		}
	}
}

// playTone sounds a reference note at the current master volume until done or interrupted
func playTone(snd *sketch.Sound, note float64, d time.Duration) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := snd.PlayTone(ctx, note, d); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Tone playback failed: %v", err)
	}
}

// startReporter serves the capability endpoint and advertises it
func startReporter(reporter *support.Reporter, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/capabilities", reporter)

	go func() {
		log.Printf("Capability endpoint listening on %s/capabilities", addr)
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Capability endpoint failed: %v", err)
		}
	}()

	if *noMDNS {
		return
	}

	port, err := portOf(addr)
	if err != nil {
		log.Printf("Skipping mDNS advertisement: %v", err)
		return
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	disc := discovery.NewManager(discovery.Config{
		ServiceName: fmt.Sprintf("%s-%s", hostname, version.Product),
		Port:        port,
		Path:        "/capabilities",
	})
	if err := disc.Advertise(); err != nil {
		log.Printf("Failed to start mDNS advertisement: %v", err)
	}
}

// printResolutions writes one line per asset (or one for the candidate list)
func printResolutions(snd *sketch.Sound, assets []string) {
	if *candidates {
		printResolution(strings.Join(assets, ","), snd.ResolveFromCandidates(assets))
		return
	}
	for _, asset := range assets {
		printResolution(asset, snd.ResolveSinglePath(asset))
	}
}

func printResolution(request string, res format.Resolution) {
	status := "ok"
	if !res.Supported {
		status = "no supported format"
	}

	line := fmt.Sprintf("%s -> %s (%s)", request, res.Path, status)
	if *inspect && res.Supported {
		info, err := probe.Inspect(res.Path)
		if err != nil {
			line += fmt.Sprintf(" [inspect: %v]", err)
		} else {
			line += fmt.Sprintf(" [%s]", info)
		}
	}
	fmt.Println(line)
}

// runTUI shows the format matrix until the user quits
func runTUI(snd *sketch.Sound, assets []string, source string, oracle support.Oracle, reporter *support.Reporter) {
	controls := ui.NewControls()

	prog, err := ui.Run(ui.Options{
		Assets:    assets,
		Preferred: snd.PreferredFormats(),
		Supported: support.Probe(oracle),
		Source:    source,
		Volume:    snd.GetMasterVolume(),
	}, controls)
	if err != nil {
		log.Fatalf("Failed to start TUI: %v", err)
	}

	go handleControls(snd, controls)

	if reporter != nil {
		go func() {
			for report := range reporter.Updates() {
				prog.Send(ui.SupportMsg{
					Source:    "report from " + report.RemoteAddr,
					Supported: report.Supported,
				})
			}
		}()
	}

	if _, err := prog.Run(); err != nil {
		log.Printf("TUI error: %v", err)
	}
}

// handleControls applies volume changes from the TUI
func handleControls(snd *sketch.Sound, controls *ui.Controls) {
	for {
		select {
		case change := <-controls.Volume:
			log.Printf("Volume change: %.2f", change.Volume)
			snd.SetMasterVolume(change.Volume)
		case <-controls.Quit:
			return
		}
	}
}
