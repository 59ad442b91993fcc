// Package style holds the colors and styles of the rich terminal output.
package style
