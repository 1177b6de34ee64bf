package main

import (
	"log"
	"sync"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	files, err := listGPXFiles(cfg.InputDir)
	if err != nil {
		log.Fatalf("Error scanning input directory: %v", err)
	}
	log.Printf("Found %d GPX file(s) in %s", len(files), cfg.InputDir)
	if len(files) == 0 {
		log.Println("Nothing to do.")
		return
	}

	// The reset must finish before any splitter starts writing.
	log.Printf("Clearing output directory %s...", cfg.OutputDir)
	if err := resetOutputDir(cfg.OutputDir); err != nil {
		log.Printf("Warning: %v; continuing anyway", err)
	}

	bar := newSplitBar(len(files))
	var wg sync.WaitGroup

	for _, filePath := range files {
		wg.Add(1)

		go func(file string) {
			defer wg.Done()
			defer bar.Add(1)

			log.Printf("Processing %s...", file)

			parts, err := splitGPX(file, cfg.OutputDir, cfg.PointsPerFile)
			switch {
			case err != nil:
				log.Printf("Error splitting %s: %v", file, err)
			case parts == 0:
				log.Printf("No route points in %s, skipping", file)
			default:
				log.Printf("Saved %d part(s) for %s", parts, file)
			}
		}(filePath)
	}

	wg.Wait()
	bar.Finish()

	log.Println("All GPX files processed.")
}
