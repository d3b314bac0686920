// Package config provides setup management for the Shobu game.
//
// The config package handles:
//   - Loading named setups from JSON files
//   - Caching and default selection
//   - Validation of setup files for the validate command
//
// Configuration Format:
//
// A setup is a JSON file in the configs directory:
//
//	{
//	  "name": "classic",
//	  "description": "Standard opening",
//	  "boards": [
//	    ["1111", "....", "....", "2222"],
//	    ...
//	  ],
//	  "messages": {"welcome": "...", "victory": "%s wins!"}
//	}
//
// Boards are listed a to d, each as four rows from the top. '1' is a Black
// stone, '2' a White stone and '.' an empty cell.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	puzzle, err := manager.LoadConfig("corner_push")
//	defaultConfig := manager.GetDefault()
//	configs, err := manager.ListConfigs()
//
// When the directory holds no usable setup the standard opening is used.
package config
