// Package ui provides semantic text formatting for CLI output.
//
// Formatters render appropriately based on terminal capabilities: colorized
// when colors are available, text decorations (backticks, quotes) when
// NO_COLOR is set or the terminal does not support color.
//
//	ui.Code.Sprint("padlock init")        // commands
//	ui.Path.Sprint("~/.padlock/store.db") // file paths
//	ui.Success.Sprint("✓")                // success indicators
//	ui.Error.Sprint("✗")                  // error indicators
//	ui.Highlight.Sprint("github")         // entry names and user values
package ui
