package main

import (
	"flag"
	"runtime"

	"fisheye/internal/logger"
	"fisheye/pkg/config"
	"fisheye/pkg/scene"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	log := logger.NewLogger("info")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Logging.File != "" {
		fileLog, err := logger.NewMultiLogger(cfg.Logging.Level, cfg.Logging.File)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		log = fileLog
	} else {
		log.SetLevel(cfg.Logging.Level)
	}
	defer log.Close()

	display, err := scene.NewGLFWDisplay(cfg.Graphics.Width, cfg.Graphics.Height, "Fisheye", cfg.Graphics.VSync)
	if err != nil {
		log.Fatalf("Failed to create display: %v", err)
	}
	defer display.Close()

	s, err := scene.New(display, scene.Options{
		Text:      cfg.Scene.Text,
		Speed:     cfg.Scene.Speed,
		K:         cfg.Scene.K,
		Kcube:     cfg.Scene.Kcube,
		FrameRate: cfg.Graphics.FrameRate,
		FontPath:  cfg.Scene.FontPath,
	}, log)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}
	defer s.Close()

	log.Infof("Starting render loop...")
	if err := s.Run(); err != nil {
		log.Errorf("Render loop stopped: %v", err)
	}
}
