// Package ui provides the Bubble Tea viewer for a tailed file.
package ui
