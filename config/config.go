// Package config loads the game settings from a JSON file, writing the
// defaults back when the file does not exist yet, and can hot-reload
// the file so the next game picks up edited values.
package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// AppConfig holds the structure of the configuration.
type AppConfig struct {
	GridWidth  int    `json:"grid_width"`
	GridHeight int    `json:"grid_height"`
	BlockSize  int    `json:"block_size"`  // pixel size of one cell in exported frames
	Difficulty string `json:"difficulty"`  // "Easy" .. "Extreme"
	SnakeColor string `json:"snake_color"` // "green", "blue", ...
	FoodColor  string `json:"food_color"`  // "red", "orange", ...
	Seed       int64  `json:"seed"`        // 0 seeds from the clock
	ExportDir  string `json:"export_dir"`
}

var (
	instance *AppConfig
	mu       sync.RWMutex
	once     sync.Once
)

func defaults() *AppConfig {
	return &AppConfig{
		GridWidth:  40,
		GridHeight: 30,
		BlockSize:  20,
		Difficulty: "Medium",
		SnakeColor: "green",
		FoodColor:  "red",
		ExportDir:  "./output",
	}
}

// LoadConfig initializes the configuration singleton from filePath,
// creating the file with defaults when it is missing.
func LoadConfig(filePath string) AppConfig {
	once.Do(func() {
		c := defaults()
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			if err := c.save(filePath); err != nil {
				log.Printf("config: writing defaults to %s: %v", filePath, err)
			}
		} else if err := c.load(filePath); err != nil {
			log.Fatalf("config: %v", err)
		}
		mu.Lock()
		instance = c
		mu.Unlock()
	})
	return Get()
}

// Get returns a snapshot of the current configuration.
func Get() AppConfig {
	mu.RLock()
	defer mu.RUnlock()
	return *instance
}

// load reads the settings from the file.
func (c *AppConfig) load(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(c)
}

// save writes the current settings to the file.
func (c *AppConfig) save(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Watch reloads the configuration whenever the file changes on disk.
// It blocks and is meant to run in its own goroutine. A file that no
// longer parses is ignored and the previous settings stay active.
func Watch(filePath string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("config: watch disabled: %v", err)
		return
	}
	defer watcher.Close()

	done := make(chan bool)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filepath.Base(filePath) {
					continue
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					fresh := defaults()
					if err := fresh.load(filePath); err != nil {
						log.Printf("config: reload skipped: %v", err)
						continue
					}
					mu.Lock()
					instance = fresh
					mu.Unlock()
					log.Printf("config: reloaded %s", filePath)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("config: watch error: %v", err)
			}
		}
	}()

	// Watch the directory: editors replace the file on save.
	if err := watcher.Add(filepath.Dir(filePath)); err != nil {
		log.Printf("config: watch disabled: %v", err)
		return
	}
	<-done
}
