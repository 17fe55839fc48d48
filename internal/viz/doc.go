// Package viz renders dimensional results for the terminal.
//
//   - [Theme] and [Styles]: lipgloss color schemes shared with the TUI
//   - [Sweep]: samples a unit conversion over a value range and plots it
//   - [RenderUnits], [RenderResults], [RenderHistory]: tabular output
package viz
